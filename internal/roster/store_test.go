package roster

import (
	"testing"

	"skireis/internal/types"
)

func strPtr(s string) *string { return &s }

func busPtr(b types.BusNumber) *types.BusNumber { return &b }

func TestStore_AddAssignsUniqueIDs(t *testing.T) {
	store := NewStore()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p := store.Add()
		if p.ID == "" {
			t.Fatal("Add() returned participant without id")
		}
		if seen[p.ID] {
			t.Fatalf("Add() reused id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Naam != "" || p.Woonplaats != "" || p.BusNr.Assigned() || p.EigenSkis {
			t.Errorf("Add() returned non-default fields: %+v", p)
		}
	}
	if store.Len() != 10 {
		t.Errorf("Len() = %d, want 10", store.Len())
	}
}

func TestStore_UpdateChangesOnlyPatchedFields(t *testing.T) {
	store := NewStore()
	p := store.Add()
	store.Update(p.ID, types.ParticipantPatch{
		Naam:       strPtr("Jan de Vries"),
		Woonplaats: strPtr("Amsterdam"),
	})

	if !store.Update(p.ID, types.ParticipantPatch{BusNr: busPtr(types.Bus2)}) {
		t.Fatal("Update() = false for existing id")
	}

	got := store.List()[0]
	if got.ID != p.ID {
		t.Errorf("Update() changed id: %q -> %q", p.ID, got.ID)
	}
	if got.BusNr != types.Bus2 {
		t.Errorf("BusNr = %v, want %v", got.BusNr, types.Bus2)
	}
	if got.Naam != "Jan de Vries" || got.Woonplaats != "Amsterdam" {
		t.Errorf("Update() touched unrelated fields: %+v", got)
	}
}

func TestStore_UpdateMissingIDIsNoOp(t *testing.T) {
	store := NewStore()
	p := store.Add()

	if store.Update("no-such-id", types.ParticipantPatch{Naam: strPtr("X")}) {
		t.Error("Update() = true for missing id")
	}
	if got := store.List()[0]; got != p {
		t.Errorf("Update() on missing id modified the roster: %+v", got)
	}
}

func TestStore_RemovePreservesOrder(t *testing.T) {
	store := NewStore()
	a := store.Add()
	b := store.Add()
	c := store.Add()

	if !store.Remove(b.ID) {
		t.Fatal("Remove() = false for existing id")
	}

	got := store.List()
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != c.ID {
		t.Errorf("List() after remove = %+v, want [%s %s]", got, a.ID, c.ID)
	}

	if store.Remove(b.ID) {
		t.Error("Remove() = true for already removed id")
	}
}

func TestStore_RemoveClearsSelection(t *testing.T) {
	store := NewStore()
	a := store.Add()
	b := store.Add()

	store.Select(a.ID)
	store.Remove(b.ID)
	if store.Selected() != a.ID {
		t.Errorf("Selected() = %q after removing unselected row, want %q", store.Selected(), a.ID)
	}

	store.Remove(a.ID)
	if store.Selected() != "" {
		t.Errorf("Selected() = %q after removing selected row, want empty", store.Selected())
	}
}

func TestStore_SelectMissingIDClears(t *testing.T) {
	store := NewStore()
	a := store.Add()
	store.Select(a.ID)

	if store.Select("stale-id") {
		t.Error("Select() = true for missing id")
	}
	if store.Selected() != "" {
		t.Errorf("Selected() = %q after selecting missing id, want empty", store.Selected())
	}

	if !store.Select("") {
		t.Error("Select(\"\") = false, want true")
	}
}

func TestStore_BusCounts(t *testing.T) {
	store := NewStore()
	assignments := []types.BusNumber{types.Bus1, types.Bus1, types.Bus2, types.BusUnassigned, types.Bus3}
	for _, bus := range assignments {
		p := store.Add()
		if bus.Assigned() {
			store.Update(p.ID, types.ParticipantPatch{BusNr: busPtr(bus)})
		}
	}

	counts := store.BusCounts()
	want := map[types.BusNumber]int{types.Bus1: 2, types.Bus2: 1, types.Bus3: 1}
	for bus, n := range want {
		if counts[bus] != n {
			t.Errorf("BusCounts()[%d] = %d, want %d", bus, counts[bus], n)
		}
	}
	if _, ok := counts[types.BusUnassigned]; ok {
		t.Error("BusCounts() contains an entry for unassigned participants")
	}
}

func TestStore_SeedDemo(t *testing.T) {
	store := NewStore()
	store.SeedDemo()

	if store.Len() != 5 {
		t.Fatalf("Len() after SeedDemo = %d, want 5", store.Len())
	}

	// Seeding twice must not duplicate rows.
	store.SeedDemo()
	if store.Len() != 5 {
		t.Errorf("Len() after second SeedDemo = %d, want 5", store.Len())
	}

	counts := store.BusCounts()
	if counts[types.Bus1] != 2 || counts[types.Bus2] != 1 || counts[types.Bus3] != 2 {
		t.Errorf("BusCounts() after seed = %v, want 2/1/2", counts)
	}
}

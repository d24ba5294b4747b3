package markers

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"skireis/internal/location"
	"skireis/internal/projection"
	"skireis/internal/roster"
	"skireis/internal/types"
)

var testTable = []location.TableEntry{
	{Key: "amsterdam", Name: "Amsterdam", Lat: 52.3676, Lng: 4.9041},
	{Key: "rotterdam", Name: "Rotterdam", Lat: 51.9244, Lng: 4.4777},
	{Key: "utrecht", Name: "Utrecht", Lat: 52.0907, Lng: 5.1214},
}

func newTestService(t *testing.T, store *roster.Store) Service {
	t.Helper()
	projector, err := projection.NewProjector(
		projection.Bounds{North: 53.6, South: 50.7, East: 7.3, West: 3.3},
		projection.Viewport{Width: 380, Height: 480},
	)
	if err != nil {
		t.Fatalf("NewProjector() error = %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, location.NewResolverWithTable(testTable), projector, logger)
}

func addParticipant(store *roster.Store, naam, woonplaats, pickup string, bus types.BusNumber) types.Participant {
	p := store.Add()
	patch := types.ParticipantPatch{
		Naam:                     &naam,
		Woonplaats:               &woonplaats,
		AfgesprokenOphaalLocatie: &pickup,
	}
	if bus.Assigned() {
		patch.BusNr = &bus
	}
	store.Update(p.ID, patch)
	return p
}

func TestService_Derive(t *testing.T) {
	tests := []struct {
		name     string
		populate func(*roster.Store) // sets up the roster
		validate func(*testing.T, Summary)
	}{
		{
			name:     "empty roster",
			populate: func(*roster.Store) {},
			validate: func(t *testing.T, s Summary) {
				if s.Total != 0 || s.Mapped != 0 || s.Unmapped != 0 || len(s.Markers) != 0 {
					t.Errorf("Derive() on empty roster = %+v", s)
				}
			},
		},
		{
			name: "home city fallback",
			populate: func(store *roster.Store) {
				addParticipant(store, "Emma", "Rotterdam", "", types.Bus2)
			},
			validate: func(t *testing.T, s Summary) {
				if len(s.Markers) != 1 {
					t.Fatalf("Markers = %d, want 1", len(s.Markers))
				}
				m := s.Markers[0]
				if m.Location != "Rotterdam" {
					t.Errorf("Location = %q, want Rotterdam", m.Location)
				}
				if m.IsPickupLocation {
					t.Error("IsPickupLocation = true for home-city marker")
				}
				if m.BusNr != types.Bus2 {
					t.Errorf("BusNr = %v, want 2", m.BusNr)
				}
			},
		},
		{
			name: "pickup location wins over home city",
			populate: func(store *roster.Store) {
				addParticipant(store, "Emma", "Rotterdam", "Utrecht", types.BusUnassigned)
			},
			validate: func(t *testing.T, s Summary) {
				if len(s.Markers) != 1 {
					t.Fatalf("Markers = %d, want 1", len(s.Markers))
				}
				m := s.Markers[0]
				if m.Location != "Utrecht" {
					t.Errorf("Location = %q, want Utrecht", m.Location)
				}
				if !m.IsPickupLocation {
					t.Error("IsPickupLocation = false for pickup marker")
				}
			},
		},
		{
			name: "unknown city counts as unmapped",
			populate: func(store *roster.Store) {
				addParticipant(store, "Ghost", "Nergenshuizen", "", types.BusUnassigned)
			},
			validate: func(t *testing.T, s Summary) {
				if len(s.Markers) != 0 {
					t.Errorf("Markers = %d, want 0", len(s.Markers))
				}
				if s.Unmapped != 1 {
					t.Errorf("Unmapped = %d, want 1", s.Unmapped)
				}
				if s.Total != 1 {
					t.Errorf("Total = %d, want 1", s.Total)
				}
			},
		},
		{
			name: "blank row produces no marker and no unmapped count",
			populate: func(store *roster.Store) {
				store.Add()
			},
			validate: func(t *testing.T, s Summary) {
				if len(s.Markers) != 0 || s.Unmapped != 0 {
					t.Errorf("Derive() for blank row = %+v, want no marker, no unmapped", s)
				}
				if s.Total != 1 {
					t.Errorf("Total = %d, want 1", s.Total)
				}
			},
		},
		{
			name: "markers follow roster order",
			populate: func(store *roster.Store) {
				addParticipant(store, "A", "Amsterdam", "", types.Bus1)
				addParticipant(store, "B", "Nergenshuizen", "", types.Bus1)
				addParticipant(store, "C", "Utrecht", "", types.Bus2)
			},
			validate: func(t *testing.T, s Summary) {
				if len(s.Markers) != 2 {
					t.Fatalf("Markers = %d, want 2", len(s.Markers))
				}
				if s.Markers[0].Naam != "A" || s.Markers[1].Naam != "C" {
					t.Errorf("marker order = [%s %s], want [A C]", s.Markers[0].Naam, s.Markers[1].Naam)
				}
				if s.Mapped != 2 || s.Unmapped != 1 || s.Total != 3 {
					t.Errorf("counts = %d/%d/%d, want mapped 2, unmapped 1, total 3", s.Mapped, s.Unmapped, s.Total)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := roster.NewStore()
			tt.populate(store)
			svc := newTestService(t, store)
			tt.validate(t, svc.Derive())
		})
	}
}

func TestService_DeriveProjectsCoordinates(t *testing.T) {
	store := roster.NewStore()
	addParticipant(store, "Emma", "Rotterdam", "", types.Bus2)
	svc := newTestService(t, store)

	summary := svc.Derive()
	if len(summary.Markers) != 1 {
		t.Fatalf("Markers = %d, want 1", len(summary.Markers))
	}

	// Rotterdam: lat 51.9244, lng 4.4777 against the 53.6/50.7/3.3/7.3
	// bounds on a 380x480 viewport.
	wantX := (4.4777 - 3.3) / (7.3 - 3.3) * 380
	wantY := (53.6 - 51.9244) / (53.6 - 50.7) * 480
	m := summary.Markers[0]
	if math.Abs(m.X-wantX) > 1e-9 || math.Abs(m.Y-wantY) > 1e-9 {
		t.Errorf("marker at (%v, %v), want (%v, %v)", m.X, m.Y, wantX, wantY)
	}

	if summary.Viewport.Width != 380 || summary.Viewport.Height != 480 {
		t.Errorf("Viewport = %+v, want 380x480", summary.Viewport)
	}
}

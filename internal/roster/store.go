// Package roster owns the ordered participant list and the shared
// selection. It is the single source of truth read by both the grid and
// the map; consumers mutate it only through the store's operations.
package roster

import (
	"sync"

	"github.com/google/uuid"

	"skireis/internal/types"
)

// Store holds the participant roster. All operations are synchronous and
// total: a mutation naming a missing id is absorbed as a no-op rather than
// raised, since there is no external consistency to protect.
type Store struct {
	mu           sync.Mutex
	participants []types.Participant
	selectedID   string
}

// NewStore creates an empty roster.
func NewStore() *Store {
	return &Store{}
}

// List returns a snapshot of the roster in insertion order.
func (s *Store) List() []types.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Participant, len(s.participants))
	copy(out, s.participants)
	return out
}

// Len returns the number of participants.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.participants)
}

// Add appends a new participant with a generated id and all other fields
// at their defaults, and returns it.
func (s *Store) Add() types.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := types.Participant{ID: uuid.NewString()}
	s.participants = append(s.participants, p)
	return p
}

// Update applies a field-level patch to the participant with the given id.
// The id itself is never changed. Returns false, without modifying
// anything, when the id is not present.
func (s *Store) Update(id string, patch types.ParticipantPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.participants {
		if s.participants[i].ID == id {
			patch.Apply(&s.participants[i])
			return true
		}
	}
	return false
}

// Remove deletes the participant with the given id, preserving the order
// of the remaining rows. If the removed participant was selected, the
// selection is cleared so no stale reference survives. Returns false when
// the id is not present.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.participants {
		if s.participants[i].ID == id {
			s.participants = append(s.participants[:i], s.participants[i+1:]...)
			if s.selectedID == id {
				s.selectedID = ""
			}
			return true
		}
	}
	return false
}

// Select marks the participant with the given id as selected, or clears
// the selection when id is empty. Selecting an id that is not in the
// roster clears the selection instead, absorbing stale references.
func (s *Store) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		s.selectedID = ""
		return true
	}
	for i := range s.participants {
		if s.participants[i].ID == id {
			s.selectedID = id
			return true
		}
	}
	s.selectedID = ""
	return false
}

// Selected returns the currently selected participant id, or the empty
// string when nothing is selected.
func (s *Store) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// BusCounts returns the number of participants assigned to each bus.
// Unassigned participants contribute to no bus.
func (s *Store) BusCounts() map[types.BusNumber]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[types.BusNumber]int, len(types.Buses))
	for _, bus := range types.Buses {
		counts[bus] = 0
	}
	for _, p := range s.participants {
		if p.BusNr.Assigned() {
			counts[p.BusNr]++
		}
	}
	return counts
}

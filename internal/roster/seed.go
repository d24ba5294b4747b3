package roster

import (
	"github.com/google/uuid"

	"skireis/internal/types"
)

// SeedDemo fills an empty roster with a handful of sample participants so
// a fresh instance has something to show. No-op when the roster already
// has rows.
func (s *Store) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.participants) > 0 {
		return
	}
	demo := []types.Participant{
		{Naam: "Jan de Vries", Woonplaats: "Amsterdam", BusNr: types.Bus1, EigenSkis: true, Telefoonnummer: "06-12345678"},
		{Naam: "Emma Bakker", Woonplaats: "Rotterdam", AfgesprokenOphaalLocatie: "Utrecht", BusNr: types.Bus2, Telefoonnummer: "06-23456789"},
		{Naam: "Lucas Jansen", Woonplaats: "Groningen", BusNr: types.Bus1, EigenSkis: true, Telefoonnummer: "06-34567890"},
		{Naam: "Sophie Visser", Woonplaats: "Eindhoven", AfgesprokenOphaalLocatie: "Den Bosch", BusNr: types.Bus3, Telefoonnummer: "06-45678901"},
		{Naam: "Daan Smit", Woonplaats: "Maastricht", BusNr: types.Bus3, EigenSkis: true, Telefoonnummer: "06-56789012"},
	}
	for _, p := range demo {
		p.ID = uuid.NewString()
		s.participants = append(s.participants, p)
	}
}

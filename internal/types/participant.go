package types

import (
	"encoding/json"
	"fmt"
)

// BusNumber identifies one of the trip buses. The zero value means no bus
// has been assigned yet and serializes as JSON null.
type BusNumber int

const (
	BusUnassigned BusNumber = 0
	Bus1          BusNumber = 1
	Bus2          BusNumber = 2
	Bus3          BusNumber = 3
)

// Buses lists the assignable bus numbers in order.
var Buses = []BusNumber{Bus1, Bus2, Bus3}

// Valid reports whether b is an assignable bus number.
func (b BusNumber) Valid() bool {
	return b >= Bus1 && b <= Bus3
}

// Assigned reports whether a bus has been assigned.
func (b BusNumber) Assigned() bool {
	return b != BusUnassigned
}

// MarshalJSON renders an unassigned bus as null, matching the grid's
// "1 | 2 | 3 | null" wire shape.
func (b BusNumber) MarshalJSON() ([]byte, error) {
	if !b.Assigned() {
		return []byte("null"), nil
	}
	return json.Marshal(int(b))
}

// UnmarshalJSON accepts null or one of the closed set {1,2,3}. Anything else
// is rejected here so invalid assignments never reach the roster.
func (b *BusNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = BusUnassigned
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("bus number must be 1, 2, 3 or null: %w", err)
	}
	bn := BusNumber(n)
	if !bn.Valid() {
		return fmt.Errorf("bus number must be 1, 2, 3 or null, got %d", n)
	}
	*b = bn
	return nil
}

// Participant is one row of the trip roster. Field names follow the
// organizer's spreadsheet columns; absent text fields are empty strings,
// never null.
type Participant struct {
	ID                       string    `json:"id"`
	Naam                     string    `json:"naam"`
	Woonplaats               string    `json:"woonplaats"`
	AfgesprokenOphaalLocatie string    `json:"afgesprokenOphaalLocatie"`
	BusNr                    BusNumber `json:"busNr"`
	EigenSkis                bool      `json:"eigenSkis"`
	Telefoonnummer           string    `json:"telefoonnummer"`
}

// PickupPoint returns the place the participant boards: the agreed pickup
// location when one is set, otherwise the home city. Empty when neither is
// filled in.
func (p Participant) PickupPoint() (location string, isPickup bool) {
	if p.AfgesprokenOphaalLocatie != "" {
		return p.AfgesprokenOphaalLocatie, true
	}
	return p.Woonplaats, false
}

// ParticipantPatch is a field-level partial update. Nil fields are left
// untouched; the id is never part of a patch.
type ParticipantPatch struct {
	Naam                     *string    `json:"naam,omitempty"`
	Woonplaats               *string    `json:"woonplaats,omitempty"`
	AfgesprokenOphaalLocatie *string    `json:"afgesprokenOphaalLocatie,omitempty"`
	BusNr                    *BusNumber `json:"busNr,omitempty"`
	EigenSkis                *bool      `json:"eigenSkis,omitempty"`
	Telefoonnummer           *string    `json:"telefoonnummer,omitempty"`
}

// UnmarshalJSON distinguishes an absent busNr from an explicit null: the
// grid clears a bus assignment by sending null, which must apply as
// BusUnassigned rather than being skipped.
func (patch *ParticipantPatch) UnmarshalJSON(data []byte) error {
	type plain ParticipantPatch
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if _, ok := raw["busNr"]; ok && p.BusNr == nil {
		unassigned := BusUnassigned
		p.BusNr = &unassigned
	}
	*patch = ParticipantPatch(p)
	return nil
}

// Apply copies the patch's set fields onto p.
func (patch ParticipantPatch) Apply(p *Participant) {
	if patch.Naam != nil {
		p.Naam = *patch.Naam
	}
	if patch.Woonplaats != nil {
		p.Woonplaats = *patch.Woonplaats
	}
	if patch.AfgesprokenOphaalLocatie != nil {
		p.AfgesprokenOphaalLocatie = *patch.AfgesprokenOphaalLocatie
	}
	if patch.BusNr != nil {
		p.BusNr = *patch.BusNr
	}
	if patch.EigenSkis != nil {
		p.EigenSkis = *patch.EigenSkis
	}
	if patch.Telefoonnummer != nil {
		p.Telefoonnummer = *patch.Telefoonnummer
	}
}

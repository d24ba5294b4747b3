package types

// CityCoordinate is one entry of the static place-name reference table.
type CityCoordinate struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Marker is the derived screen position for one participant. It is
// recomputed from the roster on demand and never stored.
type Marker struct {
	ParticipantID    string    `json:"participantId"`
	X                float64   `json:"x"`
	Y                float64   `json:"y"`
	BusNr            BusNumber `json:"busNr"`
	Naam             string    `json:"naam"`
	Location         string    `json:"location"`
	IsPickupLocation bool      `json:"isPickupLocation"`
}

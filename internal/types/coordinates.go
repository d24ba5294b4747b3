package types

// Coords is a WGS84 coordinate pair in decimal degrees.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Coords returns the table entry's position as a coordinate pair.
func (c CityCoordinate) Coords() Coords {
	return NewCoords(c.Lat, c.Lng)
}

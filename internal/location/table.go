package location

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"skireis/internal/types"
)

//go:embed cities.json
var citiesJSON []byte

// TableEntry is one row of the static place-name table. Key is the
// lowercase lookup spelling; several keys may alias the same canonical
// city (e.g. "den bosch" and "'s-hertogenbosch").
type TableEntry struct {
	Key  string  `json:"key"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// City returns the entry's canonical city record.
func (e TableEntry) City() types.CityCoordinate {
	return types.CityCoordinate{Name: e.Name, Lat: e.Lat, Lng: e.Lng}
}

// loadTable parses the embedded city table. The slice keeps the file's
// declaration order, which the fallback scan in Resolve depends on.
func loadTable() ([]TableEntry, error) {
	var entries []TableEntry
	if err := json.Unmarshal(citiesJSON, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse embedded city table: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("embedded city table is empty")
	}
	return entries, nil
}

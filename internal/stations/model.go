package stations

import "errors"

var ErrNotFound = errors.New("stations: not found")

// Station is a public charge point. The whole record is readable without
// authentication.
type Station struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Plug    string  `json:"plug"`
	PowerKW float64 `json:"power_kw"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

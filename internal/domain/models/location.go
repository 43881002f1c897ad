package models

// Location is one parking site of the catalog.
type Location struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Address   string  `json:"address" yaml:"address"`
	Rate      int64   `json:"rate" yaml:"rate"`
	Available int     `json:"available" yaml:"available"`
	Total     int     `json:"total" yaml:"total"`
	Lat       float64 `json:"lat" yaml:"lat"`
	Lng       float64 `json:"lng" yaml:"lng"`
}

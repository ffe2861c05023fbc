package entity

// Airport is one entry of the supported-airport set, optionally enriched
// with reference metadata from the airports table.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`

	// Optional reference metadata, zero-valued when not configured.
	ICAO        string  `json:"icao,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	ElevationFt int     `json:"elevationFt,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	Website     string  `json:"website,omitempty"`
	Wikipedia   string  `json:"wikipedia,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Reviews     int     `json:"reviews,omitempty"`
}

// HasLocation reports whether coordinate metadata is present.
func (a *Airport) HasLocation() bool {
	return a.Latitude != 0 || a.Longitude != 0
}

// HasRating reports whether review metadata is present.
func (a *Airport) HasRating() bool {
	return a.Reviews > 0
}

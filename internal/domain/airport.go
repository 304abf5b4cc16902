package domain

type Airport struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IATACode string `json:"iata_code"`
	CityID   int64  `json:"city_id"`

	// Filled by list/retrieve queries, not stored on the airport row.
	CityName    string `json:"city_name,omitempty"`
	CityCountry string `json:"city_country,omitempty"`
}

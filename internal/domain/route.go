package domain

type Route struct {
	ID            int64 `json:"id"`
	SourceID      int64 `json:"source_id"`
	DestinationID int64 `json:"destination_id"`
	// Distance in kilometers.
	Distance int `json:"distance"`

	SourceName      string `json:"source_name,omitempty"`
	DestinationName string `json:"destination_name,omitempty"`
}

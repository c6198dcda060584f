package model

const (
	EntityName = "preference"
)

// Source tells where an effective preference came from.
type Source string

const (
	SourceStored  Source = "stored"
	SourceSystem  Source = "system"
	SourceDefault Source = "default"
)

// Preference is the persisted display preference of one client.
type Preference struct {
	DarkMode bool `json:"dark_mode"`
}

package domain

import "time"

// Photo is gallery metadata. The image itself lives behind URL on external
// storage; upload pipelines are out of scope here.
type Photo struct {
	ID         string
	URL        string
	Title      string
	UploadedBy string   // Profile ID
	Tags       []string // Parsed from space-delimited storage
	Width      int
	Height     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

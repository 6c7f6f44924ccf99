package domain

import "time"

// RegistryItem tracks how much of a registry target has been fulfilled.
// Items are seeded by migration; only Current changes at runtime.
type RegistryItem struct {
	ID        string // slug, e.g. "burp-cloths"
	Name      string
	Icon      string
	Current   int
	Target    int
	Category  string
	UpdatedAt time.Time
}

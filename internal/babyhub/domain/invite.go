package domain

import "time"

// SystemProfileID is the sentinel identity used as created_by on invite
// codes seeded before any human admin exists (the nil UUID).
const SystemProfileID = "00000000-0000-0000-0000-000000000000"

// InviteCode is a short, role-bound, expiring, single-use token. A code is
// redeemable iff UsedBy is empty and the current time is before ExpiresAt.
// Once redeemed, UsedBy is permanent.
type InviteCode struct {
	ID        string
	Code      string // 6-char uppercase alphanumeric, unique
	Role      Role   // Role granted on redemption
	ExpiresAt time.Time
	UsedBy    string // Profile ID of the redeemer, empty until redeemed
	CreatedBy string // Profile ID of the issuer, or SystemProfileID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Redeemable reports whether the code can still be consumed at time now.
func (c InviteCode) Redeemable(now time.Time) bool {
	return c.UsedBy == "" && now.Before(c.ExpiresAt)
}

// InviteCodeListing is an InviteCode joined with the redeemer's display
// name for the admin panel.
type InviteCodeListing struct {
	InviteCode
	UsedByName string // Display name of the redeemer, empty if unredeemed
}

package domain

import "time"

// Profile extends an identity-provider account with role and display
// metadata. The ID shares the provider's user id space (one-to-one).
type Profile struct {
	ID          string
	Role        Role
	DisplayName string
	AvatarURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

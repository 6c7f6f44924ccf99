package store

import (
	"context"
	"errors"
	"time"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a WithTx helper so multi-step operations like invite
// redemption stay atomic.
type Store interface {
	Profiles() Profiles
	Invites() Invites
	Photos() Photos
	Registry() Registry

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Profiles interface {
	// GetProfileByID returns a profile by its identity-provider user id.
	GetProfileByID(ctx context.Context, id string) (domain.Profile, error)

	// CreateProfile inserts a new profile (id comes from the identity provider).
	CreateProfile(ctx context.Context, p domain.Profile) error

	// ListProfiles returns all profiles ordered by creation date (newest first).
	ListProfiles(ctx context.Context) ([]domain.Profile, error)

	// UpdateRole sets the profile's role and bumps updated_at.
	UpdateRole(ctx context.Context, profileID string, role domain.Role) error

	// ApplyInviteRole sets role and display_name in one statement; used by
	// the redemption transaction.
	ApplyInviteRole(ctx context.Context, profileID string, role domain.Role, displayName string) error

	// IsEmpty returns true if there are no profiles.
	IsEmpty(ctx context.Context) (bool, error)
}

type Invites interface {
	// CreateInvite writes a new invite code. A duplicate code string maps to
	// ErrAlreadyExists (UNIQUE index on code), which issuance treats as a
	// signal to regenerate.
	CreateInvite(ctx context.Context, inv domain.InviteCode) error

	// GetInviteByID returns a code regardless of use state.
	GetInviteByID(ctx context.Context, id string) (domain.InviteCode, error)

	// GetActiveInviteByCode returns an unredeemed, unexpired invite by its
	// uppercase code string.
	GetActiveInviteByCode(ctx context.Context, code string, now time.Time) (domain.InviteCode, error)

	// ConsumeInvite is the at-most-once redemption write: a conditional
	// update guarded by used_by IS NULL and expires_at > now. Zero rows
	// affected maps to ErrNotFound.
	ConsumeInvite(ctx context.Context, inviteID, usedByProfileID string, now time.Time) error

	// ListInvites returns all codes (newest first) joined with the
	// redeemer's display name.
	ListInvites(ctx context.Context) ([]domain.InviteCodeListing, error)

	// DeleteUnredeemedInvite deletes only while used_by IS NULL; a redeemed
	// or missing row maps to ErrNotFound so the caller can decide which.
	DeleteUnredeemedInvite(ctx context.Context, inviteID string) error

	// DeleteExpiredInvites removes expired codes that were never redeemed.
	// Redeemed rows are kept as the redemption audit trail.
	DeleteExpiredInvites(ctx context.Context, now time.Time) error

	// IsEmpty returns true if there are no invite codes.
	IsEmpty(ctx context.Context) (bool, error)
}

type Photos interface {
	// ListPhotos returns all photos ordered by creation date (newest first).
	ListPhotos(ctx context.Context) ([]domain.Photo, error)

	// GetPhotoByID returns a photo by id.
	GetPhotoByID(ctx context.Context, id string) (domain.Photo, error)

	// CreatePhoto inserts a new photo record (id is provided by app via ULID).
	CreatePhoto(ctx context.Context, p domain.Photo) error

	// UpdatePhotoTags replaces the tag list and bumps updated_at.
	UpdatePhotoTags(ctx context.Context, photoID string, tags []string) error
}

type Registry interface {
	// ListRegistryItems returns all items ordered by category then name.
	ListRegistryItems(ctx context.Context) ([]domain.RegistryItem, error)

	// GetRegistryItemByID returns an item by its slug.
	GetRegistryItemByID(ctx context.Context, id string) (domain.RegistryItem, error)

	// UpdateRegistryItemCount sets the fulfilled count and bumps updated_at.
	UpdateRegistryItemCount(ctx context.Context, itemID string, current int) error
}

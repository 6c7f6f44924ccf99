package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store"
	"github.com/bagelsfordinner/Babyhub/pkg/cryptox"
	"github.com/bagelsfordinner/Babyhub/pkg/idx"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

var (
	ErrInviteInvalid  = errors.New("invite code not found or expired")
	ErrInviteRedeemed = errors.New("invite code has already been used")
	ErrIssuanceFailed = errors.New("could not generate a unique invite code")
	ErrInvalidRole    = errors.New("invalid role")
	ErrInvalidExpiry  = errors.New("expiry must be in the future and within a year")
)

// maxCodeAttempts bounds the regeneration loop when a freshly generated
// code collides with an existing one. With a 36^6 code space collisions
// are vanishingly rare; hitting the bound means something is badly wrong.
const maxCodeAttempts = 10

// maxInviteTTL caps how far out a code may expire.
const maxInviteTTL = 365 * 24 * time.Hour

// InviteService owns the invite code lifecycle: issuance, verification,
// redemption, listing, and revocation.
type InviteService struct {
	Store store.Store

	// Now is swappable for tests.
	Now func() time.Time
}

func (s *InviteService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Issue creates a new invite code bound to a role, expiring at expiresAt.
// Uniqueness is enforced by the store's UNIQUE index; on collision a fresh
// code is generated, up to maxCodeAttempts times. Store-write failures
// surface as ErrIssuanceFailed wrapping the cause.
func (s *InviteService) Issue(
	ctx context.Context,
	role domain.Role,
	expiresAt time.Time,
	createdBy string,
) (domain.InviteCode, error) {
	log := slogx.FromContext(ctx)
	now := s.now()

	// 1. Validate the role is one of the closed set.
	if !role.Valid() {
		log.Warn("attempted to issue invite with invalid role",
			slog.String("role", role.String()),
		)
		return domain.InviteCode{}, ErrInvalidRole
	}

	// 2. Validate expiry is in the future and bounded.
	expiresAt = expiresAt.UTC()
	if !expiresAt.After(now) || expiresAt.After(now.Add(maxInviteTTL)) {
		log.Warn("attempted to issue invite with invalid expiry",
			slog.Time("expires_at", expiresAt),
		)
		return domain.InviteCode{}, ErrInvalidExpiry
	}

	// 3. Generate and insert, regenerating on code collision. The UNIQUE
	// index is the arbiter, so two concurrent issuers can never end up
	// sharing a code string.
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := cryptox.GenerateInviteCode()
		if err != nil {
			log.Error("failed to generate invite code", slog.Any("error", err))
			return domain.InviteCode{}, err
		}

		invite := domain.InviteCode{
			ID:        idx.New().String(),
			Code:      code,
			Role:      role,
			ExpiresAt: expiresAt,
			CreatedBy: createdBy,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = s.Store.Invites().CreateInvite(ctx, invite)
		if err == nil {
			log.Info("invite code issued",
				slog.String("invite_id", invite.ID),
				slog.String("role", role.String()),
				slog.Time("expires_at", expiresAt),
			)
			return invite, nil
		}
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("invite code collision, regenerating",
				slog.Int("attempt", attempt),
			)
			continue
		}

		log.Error("failed to store invite code", slog.Any("error", err))
		return domain.InviteCode{}, fmt.Errorf("%w: %w", ErrIssuanceFailed, err)
	}

	log.Error("exhausted invite code generation attempts")
	return domain.InviteCode{}, ErrIssuanceFailed
}

// Verify checks a code without consuming it, for the pre-signup landing
// page. Returns the role the code would grant. The lookup result is
// advisory only; redemption re-checks everything atomically.
func (s *InviteService) Verify(ctx context.Context, code string) (domain.Role, error) {
	log := slogx.FromContext(ctx)

	normalized := NormalizeCode(code)
	if normalized == "" {
		return "", ErrInviteInvalid
	}

	invite, err := s.Store.Invites().GetActiveInviteByCode(ctx, normalized, s.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInviteInvalid
		}
		log.Error("failed to look up invite code", slog.Any("error", err))
		return "", err
	}

	return invite.Role, nil
}

// Redeem consumes a code for profileID and applies the code's role to the
// profile, all within one transaction. The conditional update inside
// ConsumeInvite makes redemption at-most-once: of N concurrent redeemers
// exactly one succeeds and the rest see ErrInviteInvalid. Used, expired,
// and unknown codes are deliberately indistinguishable to the caller.
func (s *InviteService) Redeem(
	ctx context.Context,
	code string,
	profileID string,
	displayName string,
) (domain.Role, error) {
	log := slogx.FromContext(ctx)
	now := s.now()

	normalized := NormalizeCode(code)
	if normalized == "" {
		return "", ErrInviteInvalid
	}

	var granted domain.Role

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Load the invite while it is still active.
		invite, err := tx.Invites().GetActiveInviteByCode(ctx, normalized, now)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteInvalid
			}
			return err
		}

		// 2. Consume it. Zero rows affected means someone else won the
		// race between our read and this write; the loser sees the same
		// ErrInviteInvalid as any other dead code.
		if err := tx.Invites().ConsumeInvite(ctx, invite.ID, profileID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteInvalid
			}
			return err
		}

		// 3. Apply the granted role to the profile. An empty display name
		// keeps whatever the profile already has. A session whose profile
		// row never materialized is an authentication problem, not a code
		// problem, and rolls the consume back with it.
		if displayName == "" {
			err = tx.Profiles().UpdateRole(ctx, profileID, invite.Role)
		} else {
			err = tx.Profiles().ApplyInviteRole(ctx, profileID, invite.Role, displayName)
		}
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUnauthenticated
			}
			return err
		}

		granted = invite.Role
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInviteInvalid) || errors.Is(err, ErrUnauthenticated) {
			log.Warn("invite redemption rejected",
				slog.String("profile_id", profileID),
				slog.Any("reason", err),
			)
			return "", err
		}
		log.Error("invite redemption failed", slog.Any("error", err))
		return "", err
	}

	log.Info("invite code redeemed",
		slog.String("profile_id", profileID),
		slog.String("role", granted.String()),
	)
	return granted, nil
}

// List returns every invite code with redeemer display names, newest first.
// Admin only; enforced by the caller's middleware.
func (s *InviteService) List(ctx context.Context) ([]domain.InviteCodeListing, error) {
	return s.Store.Invites().ListInvites(ctx)
}

// Revoke deletes an unredeemed invite code. Redeemed codes are the audit
// trail of who joined how and cannot be deleted.
func (s *InviteService) Revoke(ctx context.Context, inviteID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.Invites().DeleteUnredeemedInvite(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Either the code never existed or it has been redeemed;
			// both are a rejection from the caller's point of view.
			invite, getErr := s.Store.Invites().GetInviteByID(ctx, inviteID)
			if getErr == nil && invite.UsedBy != "" {
				return ErrInviteRedeemed
			}
			return ErrInviteInvalid
		}
		log.Error("failed to revoke invite", slog.Any("error", err))
		return err
	}

	log.Info("invite code revoked", slog.String("invite_id", inviteID))
	return nil
}

// PurgeExpired removes expired unredeemed codes. Called by housekeeping.
func (s *InviteService) PurgeExpired(ctx context.Context) error {
	return s.Store.Invites().DeleteExpiredInvites(ctx, s.now())
}

// NormalizeCode uppercases and trims a user-supplied code, returning ""
// when the result is not exactly the expected shape.
func NormalizeCode(code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != cryptox.InviteCodeLength {
		return ""
	}
	for _, r := range normalized {
		if !strings.ContainsRune(cryptox.CodeAlphabet, r) {
			return ""
		}
	}
	return normalized
}

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

var (
	ErrBootstrapDisabled = errors.New("bootstrap is not configured")
	ErrBootstrapDenied   = errors.New("bootstrap token mismatch")
	ErrAlreadySeeded     = errors.New("invite codes already exist")
)

// bootstrapExpiry is how long seeded codes stay redeemable. Long enough
// for a human to act, short enough not to linger.
const bootstrapExpiry = 30 * 24 * time.Hour

// BootstrapService seeds the first invite codes on a fresh database,
// solving the chicken-and-egg problem of needing an admin to mint codes
// before any admin exists. It is guarded by a deployment-configured token
// and refuses to run once any code exists.
type BootstrapService struct {
	Store   store.Store
	Invites *InviteService

	// Token is compared in constant time against the caller's token.
	// Empty disables bootstrap entirely.
	Token string
}

// Seed mints one code per role, all expiring in thirty days, attributed
// to the system profile. Safe to call at most once per database.
func (s *BootstrapService) Seed(ctx context.Context, token string) ([]domain.InviteCode, error) {
	log := slogx.FromContext(ctx)

	// 1. Check the deployment actually enabled bootstrap.
	if s.Token == "" {
		return nil, ErrBootstrapDisabled
	}

	// 2. Constant-time token comparison.
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		log.Warn("bootstrap attempt with bad token")
		return nil, ErrBootstrapDenied
	}

	// 3. Refuse once any invite code exists; bootstrap is for the very
	// first boot only.
	empty, err := s.Store.Invites().IsEmpty(ctx)
	if err != nil {
		log.Error("failed to check invite table", slog.Any("error", err))
		return nil, err
	}
	if !empty {
		return nil, ErrAlreadySeeded
	}

	// 4. Mint one code per role.
	expiresAt := time.Now().UTC().Add(bootstrapExpiry)
	codes := make([]domain.InviteCode, 0, len(domain.Roles()))
	for _, role := range domain.Roles() {
		invite, err := s.Invites.Issue(ctx, role, expiresAt, domain.SystemProfileID)
		if err != nil {
			log.Error("bootstrap issuance failed",
				slog.String("role", role.String()),
				slog.Any("error", err),
			)
			return nil, err
		}
		codes = append(codes, invite)
	}

	log.Info("bootstrap codes seeded", slog.Int("count", len(codes)))
	return codes, nil
}

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

// Housekeeper periodically purges expired unredeemed invite codes so the
// admin list stays readable. Redeemed codes are never touched.
type Housekeeper struct {
	Invites  *InviteService
	Interval time.Duration
}

// Run blocks until ctx is cancelled, purging on every tick. An immediate
// purge runs at startup so restarts don't postpone cleanup by a full
// interval.
func (h *Housekeeper) Run(ctx context.Context) {
	log := slogx.FromContext(ctx)

	interval := h.Interval
	if interval <= 0 {
		interval = time.Hour
	}

	h.purge(ctx, log)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("housekeeping stopped")
			return
		case <-ticker.C:
			h.purge(ctx, log)
		}
	}
}

func (h *Housekeeper) purge(ctx context.Context, log *slog.Logger) {
	if err := h.Invites.PurgeExpired(ctx); err != nil {
		log.Error("failed to purge expired invites", slog.Any("error", err))
	}
}

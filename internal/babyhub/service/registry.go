package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

var ErrRegistryItemNotFound = errors.New("registry item not found")

// RegistryService tracks fulfillment counts for the baby registry. Items
// themselves are seeded by migration; only the current count moves.
type RegistryService struct {
	Store store.Store
}

// List returns all registry items grouped by category.
func (s *RegistryService) List(ctx context.Context) ([]domain.RegistryItem, error) {
	return s.Store.Registry().ListRegistryItems(ctx)
}

// SetCount sets an item's fulfilled count. Negative values clamp to zero;
// counts above target are allowed (generous guests are not an error).
func (s *RegistryService) SetCount(ctx context.Context, itemID string, current int) (domain.RegistryItem, error) {
	log := slogx.FromContext(ctx)

	if current < 0 {
		current = 0
	}

	if err := s.Store.Registry().UpdateRegistryItemCount(ctx, itemID, current); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.RegistryItem{}, ErrRegistryItemNotFound
		}
		log.Error("failed to update registry count", slog.Any("error", err))
		return domain.RegistryItem{}, err
	}

	item, err := s.Store.Registry().GetRegistryItemByID(ctx, itemID)
	if err != nil {
		return domain.RegistryItem{}, err
	}

	log.Info("registry count updated",
		slog.String("item_id", itemID),
		slog.Int("current", current),
	)
	return item, nil
}

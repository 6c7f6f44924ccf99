package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store"
)

type registryRepo struct {
	db dbtx
}

func (r *registryRepo) ListRegistryItems(ctx context.Context) ([]domain.RegistryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, icon, current, target, category, updated_at
		FROM registry_items ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RegistryItem
	for rows.Next() {
		var it domain.RegistryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Icon, &it.Current, &it.Target, &it.Category, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *registryRepo) GetRegistryItemByID(ctx context.Context, id string) (domain.RegistryItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, icon, current, target, category, updated_at
		FROM registry_items WHERE id = ?`, id)

	var it domain.RegistryItem
	err := row.Scan(&it.ID, &it.Name, &it.Icon, &it.Current, &it.Target, &it.Category, &it.UpdatedAt)
	if err != nil {
		return domain.RegistryItem{}, mapNotFound(err)
	}
	return it, nil
}

func (r *registryRepo) UpdateRegistryItemCount(ctx context.Context, itemID string, current int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE registry_items SET current = ?, updated_at = ? WHERE id = ?`,
		current, time.Now().UTC(), itemID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// requireRowAffected maps "update matched nothing" onto store.ErrNotFound.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

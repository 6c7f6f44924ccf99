package sqlite

import (
	"context"
	"time"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
)

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) GetProfileByID(ctx context.Context, id string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, role, display_name, avatar_url, created_at, updated_at
		FROM profiles WHERE id = ?`, id)

	var p domain.Profile
	var role string
	if err := row.Scan(&p.ID, &role, &p.DisplayName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.Role = domain.Role(role)
	return p, nil
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	now := time.Now().UTC()
	role := p.Role
	if role == "" {
		role = domain.DefaultRole
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, role, display_name, avatar_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, string(role), p.DisplayName, p.AvatarURL, now, now,
	)
	return mapConflict(err)
}

func (r *profilesRepo) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, role, display_name, avatar_url, created_at, updated_at
		FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		var p domain.Profile
		var role string
		if err := rows.Scan(&p.ID, &role, &p.DisplayName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Role = domain.Role(role)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *profilesRepo) UpdateRole(ctx context.Context, profileID string, role domain.Role) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), time.Now().UTC(), profileID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *profilesRepo) ApplyInviteRole(
	ctx context.Context,
	profileID string,
	role domain.Role,
	displayName string,
) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET role = ?, display_name = ?, updated_at = ? WHERE id = ?`,
		string(role), displayName, time.Now().UTC(), profileID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *profilesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, code, role, expires_at, used_by, created_by, created_at, updated_at`

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.InviteCode) error {
	createdAt := inv.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	updatedAt := inv.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invite_codes (id, code, role, expires_at, used_by, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, NULL, ?, ?, ?)`,
		inv.ID, inv.Code, string(inv.Role), inv.ExpiresAt.UTC(), inv.CreatedBy,
		createdAt.UTC(), updatedAt.UTC(),
	)
	return mapConflict(err)
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.InviteCode, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invite_codes WHERE id = ?`, id)
	return scanInvite(row)
}

func (r *invitesRepo) GetActiveInviteByCode(
	ctx context.Context,
	code string,
	now time.Time,
) (domain.InviteCode, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inviteColumns+`
		FROM invite_codes
		WHERE code = ? AND used_by IS NULL AND expires_at > ?`,
		code, now.UTC(),
	)
	return scanInvite(row)
}

// ConsumeInvite is the at-most-once write. The used_by IS NULL guard means
// two racing redemptions of the same code settle to exactly one winner.
func (r *invitesRepo) ConsumeInvite(
	ctx context.Context,
	inviteID string,
	usedByProfileID string,
	now time.Time,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invite_codes
		SET used_by = ?, updated_at = ?
		WHERE id = ? AND used_by IS NULL AND expires_at > ?`,
		usedByProfileID, now.UTC(), inviteID, now.UTC(),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitesRepo) ListInvites(ctx context.Context) ([]domain.InviteCodeListing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT i.id, i.code, i.role, i.expires_at, i.used_by, i.created_by,
		       i.created_at, i.updated_at, p.display_name
		FROM invite_codes i
		LEFT JOIN profiles p ON p.id = i.used_by
		ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.InviteCodeListing
	for rows.Next() {
		var l domain.InviteCodeListing
		var usedBy, usedByName, role sql.NullString
		if err := rows.Scan(
			&l.ID, &l.Code, &role, &l.ExpiresAt, &usedBy, &l.CreatedBy,
			&l.CreatedAt, &l.UpdatedAt, &usedByName,
		); err != nil {
			return nil, err
		}
		l.Role = domain.Role(mapNullString(role))
		l.UsedBy = mapNullString(usedBy)
		l.UsedByName = mapNullString(usedByName)
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *invitesRepo) DeleteUnredeemedInvite(ctx context.Context, inviteID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM invite_codes WHERE id = ? AND used_by IS NULL`, inviteID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invite_codes WHERE used_by IS NULL AND expires_at <= ?`, now.UTC())
	return err
}

func (r *invitesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invite_codes`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvite(row rowScanner) (domain.InviteCode, error) {
	var inv domain.InviteCode
	var role string
	var usedBy sql.NullString
	err := row.Scan(
		&inv.ID, &inv.Code, &role, &inv.ExpiresAt, &usedBy, &inv.CreatedBy,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.InviteCode{}, mapNotFound(err)
	}
	inv.Role = domain.Role(role)
	inv.UsedBy = mapNullString(usedBy)
	return inv, nil
}

package sqlite

import (
	"context"
	"time"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
)

type photosRepo struct {
	db dbtx
}

const photoColumns = `id, url, title, uploaded_by, tags, width, height, created_at, updated_at`

func (r *photosRepo) ListPhotos(ctx context.Context) ([]domain.Photo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+photoColumns+` FROM photos ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *photosRepo) GetPhotoByID(ctx context.Context, id string) (domain.Photo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE id = ?`, id)
	p, err := scanPhoto(row)
	if err != nil {
		return domain.Photo{}, mapNotFound(err)
	}
	return p, nil
}

func (r *photosRepo) CreatePhoto(ctx context.Context, p domain.Photo) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO photos (id, url, title, uploaded_by, tags, width, height, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.URL, p.Title, p.UploadedBy, joinTags(p.Tags), p.Width, p.Height, now, now,
	)
	return mapConflict(err)
}

func (r *photosRepo) UpdatePhotoTags(ctx context.Context, photoID string, tags []string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE photos SET tags = ?, updated_at = ? WHERE id = ?`,
		joinTags(tags), time.Now().UTC(), photoID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanPhoto(row rowScanner) (domain.Photo, error) {
	var p domain.Photo
	var tags string
	err := row.Scan(
		&p.ID, &p.URL, &p.Title, &p.UploadedBy, &tags, &p.Width, &p.Height,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Photo{}, err
	}
	p.Tags = splitTags(tags)
	return p, nil
}

package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkovac/folio/internal/domain"
	"github.com/dkovac/folio/internal/repository"
)

type ProjectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepo(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (id, user_id, title, description, image_url, technologies, github_url, live_url, is_featured, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.UserID, p.Title, p.Description, p.ImageURL, p.Technologies,
		p.GithubURL, p.LiveURL, p.IsFeatured, p.Priority, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *ProjectRepo) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error) {
	query := `
		SELECT id, user_id, title, description, image_url, technologies, github_url, live_url, is_featured, priority, created_at, updated_at
		FROM projects
		WHERE id = $1 AND user_id = $2`

	var p domain.Project
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&p.ID, &p.UserID, &p.Title, &p.Description, &p.ImageURL, &p.Technologies,
		&p.GithubURL, &p.LiveURL, &p.IsFeatured, &p.Priority, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

// ListPublic orders the portfolio the way the site renders it: featured
// first, then explicit priority, then freshness.
func (r *ProjectRepo) ListPublic(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT id, user_id, title, description, image_url, technologies, github_url, live_url, is_featured, priority, created_at, updated_at
		FROM projects
		ORDER BY is_featured DESC, priority ASC, updated_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.ImageURL, &p.Technologies,
			&p.GithubURL, &p.LiveURL, &p.IsFeatured, &p.Priority, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepo) Update(ctx context.Context, id, ownerID uuid.UUID, patch repository.ProjectPatch) (bool, error) {
	query := `
		UPDATE projects SET
			title = COALESCE($3, title),
			description = COALESCE($4, description),
			image_url = COALESCE($5, image_url),
			technologies = COALESCE($6, technologies),
			github_url = COALESCE($7, github_url),
			live_url = COALESCE($8, live_url),
			is_featured = COALESCE($9, is_featured),
			priority = COALESCE($10, priority),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID,
		patch.Title, patch.Description, patch.ImageURL, patch.Technologies,
		patch.GithubURL, patch.LiveURL, patch.IsFeatured, patch.Priority,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

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

type SkillRepo struct {
	pool *pgxpool.Pool
}

func NewSkillRepo(pool *pgxpool.Pool) *SkillRepo {
	return &SkillRepo{pool: pool}
}

func (r *SkillRepo) Create(ctx context.Context, s *domain.Skill) error {
	query := `
		INSERT INTO skills (id, user_id, skill_name, category, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.UserID, s.SkillName, s.Category, s.Priority, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *SkillRepo) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Skill, error) {
	query := `
		SELECT id, user_id, skill_name, category, priority, created_at, updated_at
		FROM skills
		WHERE id = $1 AND user_id = $2`

	var s domain.Skill
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&s.ID, &s.UserID, &s.SkillName, &s.Category, &s.Priority, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &s, err
}

func (r *SkillRepo) ListPublic(ctx context.Context) ([]domain.Skill, error) {
	query := `
		SELECT id, user_id, skill_name, category, priority, created_at, updated_at
		FROM skills
		ORDER BY category DESC, priority ASC, updated_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.SkillName, &s.Category, &s.Priority, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *SkillRepo) Update(ctx context.Context, id, ownerID uuid.UUID, patch repository.SkillPatch) (bool, error) {
	query := `
		UPDATE skills SET
			skill_name = COALESCE($3, skill_name),
			category = COALESCE($4, category),
			priority = COALESCE($5, priority),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID, patch.SkillName, patch.Category, patch.Priority)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SkillRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

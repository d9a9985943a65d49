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

type InfoRepo struct {
	pool *pgxpool.Pool
}

func NewInfoRepo(pool *pgxpool.Pool) *InfoRepo {
	return &InfoRepo{pool: pool}
}

// Upsert writes the profile in one statement so two concurrent PUTs for the
// same owner can never both insert. xmax = 0 only for a freshly inserted
// row, which is what distinguishes 201 from 200 upstream.
func (r *InfoRepo) Upsert(ctx context.Context, id, ownerID uuid.UUID, patch repository.InfoPatch) (bool, error) {
	query := `
		INSERT INTO personal_info (id, user_id, name, tagline, long_bio, photo_url, contact_email, linkedin_url, github_url, resume_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			name = COALESCE(EXCLUDED.name, personal_info.name),
			tagline = COALESCE(EXCLUDED.tagline, personal_info.tagline),
			long_bio = COALESCE(EXCLUDED.long_bio, personal_info.long_bio),
			photo_url = COALESCE(EXCLUDED.photo_url, personal_info.photo_url),
			contact_email = COALESCE(EXCLUDED.contact_email, personal_info.contact_email),
			linkedin_url = COALESCE(EXCLUDED.linkedin_url, personal_info.linkedin_url),
			github_url = COALESCE(EXCLUDED.github_url, personal_info.github_url),
			resume_url = COALESCE(EXCLUDED.resume_url, personal_info.resume_url),
			updated_at = NOW()
		RETURNING (xmax = 0)`

	var inserted bool
	err := r.pool.QueryRow(ctx, query,
		id, ownerID,
		patch.Name, patch.Tagline, patch.LongBio, patch.PhotoURL,
		patch.ContactEmail, patch.LinkedinURL, patch.GithubURL, patch.ResumeURL,
	).Scan(&inserted)
	return inserted, err
}

func (r *InfoRepo) GetPublic(ctx context.Context) (*domain.PersonalInfo, error) {
	query := `
		SELECT id, user_id, name, tagline, long_bio, photo_url, contact_email, linkedin_url, github_url, resume_url, updated_at
		FROM personal_info
		LIMIT 1`

	var info domain.PersonalInfo
	err := r.pool.QueryRow(ctx, query).Scan(
		&info.ID, &info.UserID, &info.Name, &info.Tagline, &info.LongBio, &info.PhotoURL,
		&info.ContactEmail, &info.LinkedinURL, &info.GithubURL, &info.ResumeURL, &info.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &info, err
}

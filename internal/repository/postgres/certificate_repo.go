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

type CertificateRepo struct {
	pool *pgxpool.Pool
}

func NewCertificateRepo(pool *pgxpool.Pool) *CertificateRepo {
	return &CertificateRepo{pool: pool}
}

func (r *CertificateRepo) Create(ctx context.Context, c *domain.Certificate) error {
	query := `
		INSERT INTO certificates (id, user_id, title, issuer, date, credential_url, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.UserID, c.Title, c.Issuer, c.Date, c.CredentialURL, c.ImageURL, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *CertificateRepo) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Certificate, error) {
	query := `
		SELECT id, user_id, title, issuer, date, credential_url, image_url, created_at, updated_at
		FROM certificates
		WHERE id = $1 AND user_id = $2`

	var c domain.Certificate
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&c.ID, &c.UserID, &c.Title, &c.Issuer, &c.Date, &c.CredentialURL, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &c, err
}

func (r *CertificateRepo) ListPublic(ctx context.Context) ([]domain.Certificate, error) {
	query := `
		SELECT id, user_id, title, issuer, date, credential_url, image_url, created_at, updated_at
		FROM certificates
		ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certificates []domain.Certificate
	for rows.Next() {
		var c domain.Certificate
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.Issuer, &c.Date, &c.CredentialURL, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		certificates = append(certificates, c)
	}
	return certificates, rows.Err()
}

func (r *CertificateRepo) Update(ctx context.Context, id, ownerID uuid.UUID, patch repository.CertificatePatch) (bool, error) {
	query := `
		UPDATE certificates SET
			title = COALESCE($3, title),
			issuer = COALESCE($4, issuer),
			date = COALESCE($5::date, date),
			credential_url = COALESCE($6, credential_url),
			image_url = COALESCE($7, image_url),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID,
		patch.Title, patch.Issuer, patch.Date, patch.CredentialURL, patch.ImageURL,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CertificateRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM certificates WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

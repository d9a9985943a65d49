package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkovac/folio/internal/domain"
	"github.com/dkovac/folio/internal/repository"
)

// ErrEmptyUpdate is shared by every partial-update path: a PUT carrying no
// recognized field is a validation failure, not a no-op.
var ErrEmptyUpdate = errors.New("at least one field is required for update")

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrInvalidDate         = errors.New("date must be formatted as YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

type CertificateService struct {
	certificateRepo repository.CertificateRepository
}

func NewCertificateService(certificateRepo repository.CertificateRepository) *CertificateService {
	return &CertificateService{certificateRepo: certificateRepo}
}

type CreateCertificateInput struct {
	Title         string  `json:"title"`
	Issuer        *string `json:"issuer"`
	Date          string  `json:"date"`
	CredentialURL *string `json:"credential_url"`
	ImageURL      *string `json:"image_url"`
}

type UpdateCertificateInput struct {
	Title         *string `json:"title"`
	Issuer        *string `json:"issuer"`
	Date          *string `json:"date"`
	CredentialURL *string `json:"credential_url"`
	ImageURL      *string `json:"image_url"`
}

func (s *CertificateService) Create(ctx context.Context, ownerID uuid.UUID, input CreateCertificateInput) (uuid.UUID, error) {
	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return uuid.Nil, ErrInvalidDate
	}

	now := time.Now()
	c := &domain.Certificate{
		ID:            uuid.New(),
		UserID:        ownerID,
		Title:         input.Title,
		Issuer:        input.Issuer,
		Date:          date,
		CredentialURL: input.CredentialURL,
		ImageURL:      input.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.certificateRepo.Create(ctx, c); err != nil {
		return uuid.Nil, fmt.Errorf("creating certificate: %w", err)
	}

	return c.ID, nil
}

func (s *CertificateService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Certificate, error) {
	c, err := s.certificateRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCertificateNotFound
	}
	return c, nil
}

func (s *CertificateService) ListPublic(ctx context.Context) ([]domain.Certificate, error) {
	return s.certificateRepo.ListPublic(ctx)
}

func (s *CertificateService) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateCertificateInput) error {
	patch := repository.CertificatePatch{
		Title:         input.Title,
		Issuer:        input.Issuer,
		Date:          input.Date,
		CredentialURL: input.CredentialURL,
		ImageURL:      input.ImageURL,
	}
	if patch.Empty() {
		return ErrEmptyUpdate
	}
	if patch.Date != nil {
		if _, err := time.Parse(dateLayout, *patch.Date); err != nil {
			return ErrInvalidDate
		}
	}

	updated, err := s.certificateRepo.Update(ctx, id, ownerID, patch)
	if err != nil {
		return fmt.Errorf("updating certificate: %w", err)
	}
	if !updated {
		return ErrCertificateNotFound
	}
	return nil
}

func (s *CertificateService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	deleted, err := s.certificateRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting certificate: %w", err)
	}
	if !deleted {
		return ErrCertificateNotFound
	}
	return nil
}

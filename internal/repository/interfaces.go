package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dkovac/folio/internal/domain"
)

// Patch types carry partial updates. A nil field means "keep the stored
// value"; the postgres implementations translate that into COALESCE so an
// omitted field is never nulled out.

type CertificatePatch struct {
	Title         *string
	Issuer        *string
	Date          *string
	CredentialURL *string
	ImageURL      *string
}

func (p CertificatePatch) Empty() bool {
	return p.Title == nil && p.Issuer == nil && p.Date == nil && p.CredentialURL == nil && p.ImageURL == nil
}

type ProjectPatch struct {
	Title        *string
	Description  *string
	ImageURL     *string
	Technologies []string
	GithubURL    *string
	LiveURL      *string
	IsFeatured   *bool
	Priority     *int
}

func (p ProjectPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.ImageURL == nil && p.Technologies == nil &&
		p.GithubURL == nil && p.LiveURL == nil && p.IsFeatured == nil && p.Priority == nil
}

type SkillPatch struct {
	SkillName *string
	Category  *string
	Priority  *int
}

func (p SkillPatch) Empty() bool {
	return p.SkillName == nil && p.Category == nil && p.Priority == nil
}

type InfoPatch struct {
	Name         *string
	Tagline      *string
	LongBio      *string
	PhotoURL     *string
	ContactEmail *string
	LinkedinURL  *string
	GithubURL    *string
	ResumeURL    *string
}

func (p InfoPatch) Empty() bool {
	return p.Name == nil && p.Tagline == nil && p.LongBio == nil && p.PhotoURL == nil &&
		p.ContactEmail == nil && p.LinkedinURL == nil && p.GithubURL == nil && p.ResumeURL == nil
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// InfoRepository manages the singleton profile row. Upsert is a single
// atomic conditional write keyed by owner; it reports whether a row was
// inserted (as opposed to updated in place).
type InfoRepository interface {
	Upsert(ctx context.Context, id, ownerID uuid.UUID, patch InfoPatch) (inserted bool, err error)
	GetPublic(ctx context.Context) (*domain.PersonalInfo, error)
}

// The three list-resource repositories share one contract: reads and writes
// on a single row are always filtered by (id AND owner), and Update/Delete
// report whether any row was affected so callers can map zero to NotFound.

type CertificateRepository interface {
	Create(ctx context.Context, c *domain.Certificate) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Certificate, error)
	ListPublic(ctx context.Context) ([]domain.Certificate, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, patch CertificatePatch) (bool, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error)
	ListPublic(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, patch ProjectPatch) (bool, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

type SkillRepository interface {
	Create(ctx context.Context, s *domain.Skill) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Skill, error)
	ListPublic(ctx context.Context) ([]domain.Skill, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, patch SkillPatch) (bool, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

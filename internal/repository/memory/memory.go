// Package memory implements the repository interfaces over plain maps.
// It mirrors the postgres semantics closely enough for tests: ownership
// filtering on (id AND owner), COALESCE-style merge on partial updates, the
// owner-keyed profile upsert, and the public list orderings.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkovac/folio/internal/domain"
	"github.com/dkovac/folio/internal/repository"
)

var errDuplicateEmail = errors.New("duplicate email")

type UserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[uuid.UUID]domain.User)}
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return errDuplicateEmail
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

type InfoRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.PersonalInfo // keyed by owner
}

func NewInfoRepo() *InfoRepo {
	return &InfoRepo{rows: make(map[uuid.UUID]domain.PersonalInfo)}
}

func (r *InfoRepo) Upsert(_ context.Context, id, ownerID uuid.UUID, patch repository.InfoPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, exists := r.rows[ownerID]
	if !exists {
		row = domain.PersonalInfo{ID: id, UserID: ownerID}
	}

	coalesce(&row.Name, patch.Name)
	coalesce(&row.Tagline, patch.Tagline)
	coalesce(&row.LongBio, patch.LongBio)
	coalesce(&row.PhotoURL, patch.PhotoURL)
	coalesce(&row.ContactEmail, patch.ContactEmail)
	coalesce(&row.LinkedinURL, patch.LinkedinURL)
	coalesce(&row.GithubURL, patch.GithubURL)
	coalesce(&row.ResumeURL, patch.ResumeURL)
	row.UpdatedAt = time.Now()

	r.rows[ownerID] = row
	return !exists, nil
}

func (r *InfoRepo) GetPublic(_ context.Context) (*domain.PersonalInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		copied := row
		return &copied, nil
	}
	return nil, nil
}

type CertificateRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.Certificate
}

func NewCertificateRepo() *CertificateRepo {
	return &CertificateRepo{rows: make(map[uuid.UUID]domain.Certificate)}
}

func (r *CertificateRepo) Create(_ context.Context, c *domain.Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[c.ID] = *c
	return nil
}

func (r *CertificateRepo) GetByID(_ context.Context, id, ownerID uuid.UUID) (*domain.Certificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.rows[id]
	if !ok || c.UserID != ownerID {
		return nil, nil
	}
	copied := c
	return &copied, nil
}

func (r *CertificateRepo) ListPublic(_ context.Context) ([]domain.Certificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Certificate, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *CertificateRepo) Update(_ context.Context, id, ownerID uuid.UUID, patch repository.CertificatePatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.rows[id]
	if !ok || c.UserID != ownerID {
		return false, nil
	}

	if patch.Title != nil {
		c.Title = *patch.Title
	}
	coalesce(&c.Issuer, patch.Issuer)
	if patch.Date != nil {
		date, err := time.Parse("2006-01-02", *patch.Date)
		if err != nil {
			return false, err
		}
		c.Date = date
	}
	coalesce(&c.CredentialURL, patch.CredentialURL)
	coalesce(&c.ImageURL, patch.ImageURL)
	c.UpdatedAt = time.Now()

	r.rows[id] = c
	return true, nil
}

func (r *CertificateRepo) Delete(_ context.Context, id, ownerID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.rows[id]
	if !ok || c.UserID != ownerID {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

type ProjectRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.Project
}

func NewProjectRepo() *ProjectRepo {
	return &ProjectRepo{rows: make(map[uuid.UUID]domain.Project)}
}

func (r *ProjectRepo) Create(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[p.ID] = *p
	return nil
}

func (r *ProjectRepo) GetByID(_ context.Context, id, ownerID uuid.UUID) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.rows[id]
	if !ok || p.UserID != ownerID {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (r *ProjectRepo) ListPublic(_ context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Project, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsFeatured != b.IsFeatured {
			return a.IsFeatured
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})
	return out, nil
}

func (r *ProjectRepo) Update(_ context.Context, id, ownerID uuid.UUID, patch repository.ProjectPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.rows[id]
	if !ok || p.UserID != ownerID {
		return false, nil
	}

	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	coalesce(&p.ImageURL, patch.ImageURL)
	if patch.Technologies != nil {
		p.Technologies = patch.Technologies
	}
	coalesce(&p.GithubURL, patch.GithubURL)
	coalesce(&p.LiveURL, patch.LiveURL)
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	p.UpdatedAt = time.Now()

	r.rows[id] = p
	return true, nil
}

func (r *ProjectRepo) Delete(_ context.Context, id, ownerID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.rows[id]
	if !ok || p.UserID != ownerID {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

type SkillRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.Skill
}

func NewSkillRepo() *SkillRepo {
	return &SkillRepo{rows: make(map[uuid.UUID]domain.Skill)}
}

func (r *SkillRepo) Create(_ context.Context, s *domain.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[s.ID] = *s
	return nil
}

func (r *SkillRepo) GetByID(_ context.Context, id, ownerID uuid.UUID) (*domain.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.rows[id]
	if !ok || s.UserID != ownerID {
		return nil, nil
	}
	copied := s
	return &copied, nil
}

func (r *SkillRepo) ListPublic(_ context.Context) ([]domain.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Skill, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ac, bc := strOrEmpty(a.Category), strOrEmpty(b.Category)
		if ac != bc {
			return ac > bc
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})
	return out, nil
}

func (r *SkillRepo) Update(_ context.Context, id, ownerID uuid.UUID, patch repository.SkillPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.rows[id]
	if !ok || s.UserID != ownerID {
		return false, nil
	}

	if patch.SkillName != nil {
		s.SkillName = *patch.SkillName
	}
	coalesce(&s.Category, patch.Category)
	if patch.Priority != nil {
		s.Priority = *patch.Priority
	}
	s.UpdatedAt = time.Now()

	r.rows[id] = s
	return true, nil
}

func (r *SkillRepo) Delete(_ context.Context, id, ownerID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.rows[id]
	if !ok || s.UserID != ownerID {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func coalesce(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

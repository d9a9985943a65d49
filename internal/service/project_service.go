package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkovac/folio/internal/domain"
	"github.com/dkovac/folio/internal/repository"
)

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrEmptyTechnologies = errors.New("technologies must contain at least one non-empty entry")
)

type ProjectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

type CreateProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     *string  `json:"image_url"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"github_url"`
	LiveURL      *string  `json:"live_url"`
	IsFeatured   bool     `json:"is_featured"`
	Priority     int      `json:"priority"`
}

type UpdateProjectInput struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"image_url"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"github_url"`
	LiveURL      *string  `json:"live_url"`
	IsFeatured   *bool    `json:"is_featured"`
	Priority     *int     `json:"priority"`
}

func (s *ProjectService) Create(ctx context.Context, ownerID uuid.UUID, input CreateProjectInput) (uuid.UUID, error) {
	technologies := trimTechnologies(input.Technologies)
	if len(technologies) == 0 {
		return uuid.Nil, ErrEmptyTechnologies
	}

	now := time.Now()
	p := &domain.Project{
		ID:           uuid.New(),
		UserID:       ownerID,
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		Technologies: technologies,
		GithubURL:    input.GithubURL,
		LiveURL:      input.LiveURL,
		IsFeatured:   input.IsFeatured,
		Priority:     input.Priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.projectRepo.Create(ctx, p); err != nil {
		return uuid.Nil, fmt.Errorf("creating project: %w", err)
	}

	return p.ID, nil
}

func (s *ProjectService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Project, error) {
	p, err := s.projectRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}
	return p, nil
}

func (s *ProjectService) ListPublic(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.ListPublic(ctx)
}

func (s *ProjectService) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateProjectInput) error {
	patch := repository.ProjectPatch{
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		Technologies: input.Technologies,
		GithubURL:    input.GithubURL,
		LiveURL:      input.LiveURL,
		IsFeatured:   input.IsFeatured,
		Priority:     input.Priority,
	}
	if patch.Empty() {
		return ErrEmptyUpdate
	}
	if input.Technologies != nil {
		patch.Technologies = trimTechnologies(input.Technologies)
		if len(patch.Technologies) == 0 {
			return ErrEmptyTechnologies
		}
	}

	updated, err := s.projectRepo.Update(ctx, id, ownerID, patch)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if !updated {
		return ErrProjectNotFound
	}
	return nil
}

func (s *ProjectService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	deleted, err := s.projectRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if !deleted {
		return ErrProjectNotFound
	}
	return nil
}

func trimTechnologies(technologies []string) []string {
	out := make([]string, 0, len(technologies))
	for _, t := range technologies {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

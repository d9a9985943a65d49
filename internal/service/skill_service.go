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

var ErrSkillNotFound = errors.New("skill not found")

type SkillService struct {
	skillRepo repository.SkillRepository
}

func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

type CreateSkillInput struct {
	SkillName string  `json:"skill_name"`
	Category  *string `json:"category"`
	Priority  int     `json:"priority"`
}

type UpdateSkillInput struct {
	SkillName *string `json:"skill_name"`
	Category  *string `json:"category"`
	Priority  *int    `json:"priority"`
}

func (s *SkillService) Create(ctx context.Context, ownerID uuid.UUID, input CreateSkillInput) (uuid.UUID, error) {
	now := time.Now()
	skill := &domain.Skill{
		ID:        uuid.New(),
		UserID:    ownerID,
		SkillName: input.SkillName,
		Category:  input.Category,
		Priority:  input.Priority,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return uuid.Nil, fmt.Errorf("creating skill: %w", err)
	}

	return skill.ID, nil
}

func (s *SkillService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, ErrSkillNotFound
	}
	return skill, nil
}

func (s *SkillService) ListPublic(ctx context.Context) ([]domain.Skill, error) {
	return s.skillRepo.ListPublic(ctx)
}

func (s *SkillService) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateSkillInput) error {
	patch := repository.SkillPatch{
		SkillName: input.SkillName,
		Category:  input.Category,
		Priority:  input.Priority,
	}
	if patch.Empty() {
		return ErrEmptyUpdate
	}

	updated, err := s.skillRepo.Update(ctx, id, ownerID, patch)
	if err != nil {
		return fmt.Errorf("updating skill: %w", err)
	}
	if !updated {
		return ErrSkillNotFound
	}
	return nil
}

func (s *SkillService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	deleted, err := s.skillRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting skill: %w", err)
	}
	if !deleted {
		return ErrSkillNotFound
	}
	return nil
}

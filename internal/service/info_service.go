package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkovac/folio/internal/domain"
	"github.com/dkovac/folio/internal/repository"
)

type InfoService struct {
	infoRepo repository.InfoRepository
}

func NewInfoService(infoRepo repository.InfoRepository) *InfoService {
	return &InfoService{infoRepo: infoRepo}
}

type UpsertInfoInput struct {
	Name         *string `json:"name"`
	Tagline      *string `json:"tagline"`
	LongBio      *string `json:"long_bio"`
	PhotoURL     *string `json:"photo_url"`
	ContactEmail *string `json:"contact_email"`
	LinkedinURL  *string `json:"linkedin_url"`
	GithubURL    *string `json:"github_url"`
	ResumeURL    *string `json:"resume_url"`
}

// Upsert writes the owner's singleton profile. The bool reports whether a
// new row was created, which the handler turns into 201 vs 200.
func (s *InfoService) Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertInfoInput) (bool, error) {
	patch := repository.InfoPatch{
		Name:         input.Name,
		Tagline:      input.Tagline,
		LongBio:      input.LongBio,
		PhotoURL:     input.PhotoURL,
		ContactEmail: input.ContactEmail,
		LinkedinURL:  input.LinkedinURL,
		GithubURL:    input.GithubURL,
		ResumeURL:    input.ResumeURL,
	}
	if patch.Empty() {
		return false, ErrEmptyUpdate
	}

	inserted, err := s.infoRepo.Upsert(ctx, uuid.New(), ownerID, patch)
	if err != nil {
		return false, fmt.Errorf("upserting personal info: %w", err)
	}
	return inserted, nil
}

func (s *InfoService) GetPublic(ctx context.Context) (*domain.PersonalInfo, error) {
	return s.infoRepo.GetPublic(ctx)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonalInfo is the singleton profile row: at most one per owner,
// written only through the upsert path.
type PersonalInfo struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"-"`
	Name         *string   `json:"name"`
	Tagline      *string   `json:"tagline"`
	LongBio      *string   `json:"long_bio"`
	PhotoURL     *string   `json:"photo_url"`
	ContactEmail *string   `json:"contact_email"`
	LinkedinURL  *string   `json:"linkedin_url"`
	GithubURL    *string   `json:"github_url"`
	ResumeURL    *string   `json:"resume_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is exposed publicly under the "achievements" routes.
type Certificate struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"-"`
	Title         string    `json:"title"`
	Issuer        *string   `json:"issuer"`
	Date          time.Time `json:"date"`
	CredentialURL *string   `json:"credential_url"`
	ImageURL      *string   `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

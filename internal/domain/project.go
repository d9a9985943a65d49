package domain

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"-"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"image_url"`
	Technologies []string  `json:"technologies"`
	GithubURL    *string   `json:"github_url"`
	LiveURL      *string   `json:"live_url"`
	IsFeatured   bool      `json:"is_featured"`
	Priority     int       `json:"priority"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

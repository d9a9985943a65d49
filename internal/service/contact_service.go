package service

import (
	"context"
	"fmt"

	"github.com/dkovac/folio/internal/mail"
)

type ContactService struct {
	mailer mail.Mailer
	to     string
}

func NewContactService(mailer mail.Mailer, to string) *ContactService {
	return &ContactService{mailer: mailer, to: to}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s *ContactService) Send(ctx context.Context, input ContactInput) error {
	msg := mail.Message{
		To:      s.to,
		ReplyTo: input.Email,
		Subject: fmt.Sprintf("New contact form message from %s", input.Name),
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", input.Name, input.Email, input.Message),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending contact message: %w", err)
	}
	return nil
}

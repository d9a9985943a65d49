package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovac/folio/internal/mail"
)

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestContactService_Send(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{}
	svc := NewContactService(mailer, "owner@example.com")

	err := svc.Send(context.Background(), ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "hello there",
	})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "owner@example.com", msg.To)
	assert.Equal(t, "visitor@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "Visitor")
	assert.Contains(t, msg.Body, "hello there")
}

func TestContactService_Send_MailerFailure(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewContactService(mailer, "owner@example.com")

	err := svc.Send(context.Background(), ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "hello",
	})
	assert.Error(t, err)
}

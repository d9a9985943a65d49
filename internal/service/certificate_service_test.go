package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovac/folio/internal/repository/memory"
)

func TestCertificateService_Create_InvalidDate(t *testing.T) {
	t.Parallel()

	svc := NewCertificateService(memory.NewCertificateRepo())

	_, err := svc.Create(context.Background(), uuid.New(), CreateCertificateInput{
		Title: "CKA",
		Date:  "last tuesday",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCertificateService_Update_Partial(t *testing.T) {
	t.Parallel()

	svc := NewCertificateService(memory.NewCertificateRepo())
	ctx := context.Background()
	owner := uuid.New()

	id, err := svc.Create(ctx, owner, CreateCertificateInput{
		Title:         "CKA",
		Issuer:        strPtr("CNCF"),
		Date:          "2024-03-01",
		CredentialURL: strPtr("https://example.com/cka"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, owner, id, UpdateCertificateInput{Title: strPtr("CKA v2")}))

	c, err := svc.GetByID(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, "CKA v2", c.Title)
	assert.Equal(t, "CNCF", *c.Issuer)
	assert.Equal(t, "https://example.com/cka", *c.CredentialURL)
	assert.Nil(t, c.ImageURL)
}

func TestCertificateService_Update_InvalidDate(t *testing.T) {
	t.Parallel()

	svc := NewCertificateService(memory.NewCertificateRepo())
	ctx := context.Background()
	owner := uuid.New()

	id, err := svc.Create(ctx, owner, CreateCertificateInput{Title: "CKA", Date: "2024-03-01"})
	require.NoError(t, err)

	err = svc.Update(ctx, owner, id, UpdateCertificateInput{Date: strPtr("03/01/2024")})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCertificateService_OwnerIsolation(t *testing.T) {
	t.Parallel()

	svc := NewCertificateService(memory.NewCertificateRepo())
	ctx := context.Background()
	ownerA := uuid.New()
	ownerB := uuid.New()

	id, err := svc.Create(ctx, ownerA, CreateCertificateInput{Title: "CKA", Date: "2024-03-01"})
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, ownerB, id)
	assert.ErrorIs(t, err, ErrCertificateNotFound)

	err = svc.Update(ctx, ownerB, id, UpdateCertificateInput{Title: strPtr("stolen")})
	assert.ErrorIs(t, err, ErrCertificateNotFound)

	err = svc.Delete(ctx, ownerB, id)
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}

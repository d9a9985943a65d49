package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovac/folio/internal/repository/memory"
)

func TestInfoService_Upsert_InsertThenUpdate(t *testing.T) {
	t.Parallel()

	svc := NewInfoService(memory.NewInfoRepo())
	ctx := context.Background()
	owner := uuid.New()

	inserted, err := svc.Upsert(ctx, owner, UpsertInfoInput{Name: strPtr("Dario")})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = svc.Upsert(ctx, owner, UpsertInfoInput{Tagline: strPtr("backend engineer")})
	require.NoError(t, err)
	assert.False(t, inserted)

	info, err := svc.GetPublic(ctx)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Dario", *info.Name)
	assert.Equal(t, "backend engineer", *info.Tagline)
}

func TestInfoService_Upsert_NoFields(t *testing.T) {
	t.Parallel()

	svc := NewInfoService(memory.NewInfoRepo())

	_, err := svc.Upsert(context.Background(), uuid.New(), UpsertInfoInput{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestInfoService_GetPublic_Empty(t *testing.T) {
	t.Parallel()

	svc := NewInfoService(memory.NewInfoRepo())

	info, err := svc.GetPublic(context.Background())
	require.NoError(t, err)
	assert.Nil(t, info)
}

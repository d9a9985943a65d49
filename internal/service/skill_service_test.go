package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovac/folio/internal/repository/memory"
)

func TestSkillService_CreateAndGet(t *testing.T) {
	t.Parallel()

	svc := NewSkillService(memory.NewSkillRepo())
	ctx := context.Background()
	owner := uuid.New()

	id, err := svc.Create(ctx, owner, CreateSkillInput{SkillName: "Go", Category: strPtr("backend"), Priority: 1})
	require.NoError(t, err)

	skill, err := svc.GetByID(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, "Go", skill.SkillName)
	assert.Equal(t, "backend", *skill.Category)
}

func TestSkillService_Delete_Nonexistent(t *testing.T) {
	t.Parallel()

	svc := NewSkillService(memory.NewSkillRepo())

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestSkillService_Delete_Idempotent(t *testing.T) {
	t.Parallel()

	svc := NewSkillService(memory.NewSkillRepo())
	ctx := context.Background()
	owner := uuid.New()

	id, err := svc.Create(ctx, owner, CreateSkillInput{SkillName: "Go"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, id))

	// The row is already gone; every later delete observes the same thing.
	err = svc.Delete(ctx, owner, id)
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestSkillService_OwnerIsolation(t *testing.T) {
	t.Parallel()

	svc := NewSkillService(memory.NewSkillRepo())
	ctx := context.Background()
	ownerA := uuid.New()
	ownerB := uuid.New()

	id, err := svc.Create(ctx, ownerA, CreateSkillInput{SkillName: "Go"})
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, ownerB, id)
	assert.ErrorIs(t, err, ErrSkillNotFound)

	err = svc.Delete(ctx, ownerB, id)
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestSkillService_Update_NoFields(t *testing.T) {
	t.Parallel()

	svc := NewSkillService(memory.NewSkillRepo())

	err := svc.Update(context.Background(), uuid.New(), uuid.New(), UpdateSkillInput{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestSkillService_Update_Partial(t *testing.T) {
	t.Parallel()

	svc := NewSkillService(memory.NewSkillRepo())
	ctx := context.Background()
	owner := uuid.New()

	id, err := svc.Create(ctx, owner, CreateSkillInput{SkillName: "Go", Category: strPtr("backend"), Priority: 2})
	require.NoError(t, err)

	priority := 5
	require.NoError(t, svc.Update(ctx, owner, id, UpdateSkillInput{Priority: &priority}))

	skill, err := svc.GetByID(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, "Go", skill.SkillName)
	assert.Equal(t, "backend", *skill.Category)
	assert.Equal(t, 5, skill.Priority)
}

package commands

import (
	"context"
	"errors"
	"testing"

	"backoffice/models"
	"backoffice/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCommand struct{ err error }

func (f failingCommand) Name() string                    { return "fail" }
func (f failingCommand) Execute(context.Context) error { return f.err }

func TestBatchRunsInOrder(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore(nil)
	a, err := store.RecipeLines.Insert(ctx, models.RecipeLine{RecipeID: "r1"})
	require.NoError(t, err)
	b, err := store.RecipeLines.Insert(ctx, models.RecipeLine{RecipeID: "r1"})
	require.NoError(t, err)

	batch := NewBatch().Add(
		NewDeleteCommand(store.RecipeLines, a.ID),
		NewDeleteCommand(store.RecipeLines, b.ID),
		NewDeleteCommand(store.RecipeLines, "already-gone"),
	)
	assert.Equal(t, 3, batch.Len())
	require.NoError(t, batch.Execute(ctx))

	rows, err := store.RecipeLines.Scan(ctx, repository.Query[models.RecipeLine]{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBatchStopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore(nil)
	a, err := store.RecipeLines.Insert(ctx, models.RecipeLine{RecipeID: "r1"})
	require.NoError(t, err)
	b, err := store.RecipeLines.Insert(ctx, models.RecipeLine{RecipeID: "r1"})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = NewBatch().Add(
		NewDeleteCommand(store.RecipeLines, a.ID),
		failingCommand{err: boom},
		NewDeleteCommand(store.RecipeLines, b.ID),
	).Execute(ctx)

	var pf *PartialFailure
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, 1, pf.Completed)
	assert.Equal(t, 3, pf.Total)
	assert.Equal(t, "fail", pf.Failed)
	assert.ErrorIs(t, err, boom)

	_, err = store.RecipeLines.Get(ctx, b.ID)
	assert.NoError(t, err)
}

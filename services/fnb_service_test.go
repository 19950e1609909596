package services

import (
	"context"
	stderrors "errors"
	"testing"

	"backoffice/dto"
	"backoffice/errors"
	"backoffice/models"
	"backoffice/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeFixture(t *testing.T) (*fixture, string, string, string) {
	f := newFixture(t)
	p := f.property("A")
	menu := created(t, f.svc.CreateFnbMenuItem(f.ctx, dto.CreateFnbMenuItemRequest{PropertyID: p, Name: "Pancakes", Price: 9}))
	recipe := created(t, f.svc.CreateRecipe(f.ctx, dto.CreateRecipeRequest{MenuItemID: menu, Name: "Pancakes", Yield: 4}))
	return f, p, menu, recipe
}

func TestOneRecipePerMenuItem(t *testing.T) {
	f, _, menu, _ := recipeFixture(t)

	res := f.svc.CreateRecipe(f.ctx, dto.CreateRecipeRequest{MenuItemID: menu, Name: "Other"})
	assert.Equal(t, "menu item already has a recipe", failed(t, res, errors.ErrCodeConflict))

	assert.Contains(t, failed(t, f.svc.DeleteFnbMenuItem(f.ctx, menu), errors.ErrCodeReference), "a recipe")
}

func TestRecipeLineItemMustShareProperty(t *testing.T) {
	f, _, _, recipe := recipeFixture(t)
	other := f.property("B")
	foreign := f.item(other, "FLOUR", 10, 1)

	res := f.svc.CreateRecipeLine(f.ctx, dto.CreateRecipeLineRequest{RecipeID: recipe, InventoryItemID: foreign, Quantity: 0.2})
	assert.Equal(t, "inventory item belongs to another property", failed(t, res, errors.ErrCodeReference))
}

func TestDeleteRecipeCascadesToLines(t *testing.T) {
	f, p, menu, recipe := recipeFixture(t)
	flour := f.item(p, "FLOUR", 10, 1)
	eggs := f.item(p, "EGGS", 30, 6)
	created(t, f.svc.CreateRecipeLine(f.ctx, dto.CreateRecipeLineRequest{RecipeID: recipe, InventoryItemID: flour, Quantity: 0.25, Unit: "kg"}))
	created(t, f.svc.CreateRecipeLine(f.ctx, dto.CreateRecipeLineRequest{RecipeID: recipe, InventoryItemID: eggs, Quantity: 2}))

	view := succeeded(t, f.svc.GetRecipe(f.ctx, recipe))
	require.NotNil(t, view)
	require.Len(t, view.Lines, 2)
	require.NotNil(t, view.MenuItem)
	assert.Equal(t, "Pancakes", view.MenuItem.Name)

	assert.Contains(t, failed(t, f.svc.DeleteInventoryItem(f.ctx, flour), errors.ErrCodeReference), "recipe lines")

	require.True(t, f.svc.DeleteRecipe(f.ctx, recipe).Success)

	lines := succeeded(t, f.svc.ListRecipeLines(f.ctx, recipe, dto.PageRequest{}))
	assert.Empty(t, lines.Items)
	assert.Nil(t, succeeded(t, f.svc.GetRecipe(f.ctx, recipe)))
	assert.True(t, f.svc.DeleteInventoryItem(f.ctx, flour).Success)
	assert.True(t, f.svc.DeleteFnbMenuItem(f.ctx, menu).Success)
}

// flakyTable fails Delete after allow successful calls.
type flakyTable[T any] struct {
	repository.Table[T]
	allow *int
}

func (f flakyTable[T]) Delete(ctx context.Context, id string) error {
	if *f.allow <= 0 {
		return stderrors.New("connection reset")
	}
	*f.allow--
	return f.Table.Delete(ctx, id)
}

func TestInterruptedRecipeDeleteIsReportedAndRepaired(t *testing.T) {
	f, p, _, recipe := recipeFixture(t)
	item := f.item(p, "FLOUR", 10, 1)
	for i := 0; i < 3; i++ {
		created(t, f.svc.CreateRecipeLine(f.ctx, dto.CreateRecipeLineRequest{RecipeID: recipe, InventoryItemID: item, Quantity: 1}))
	}

	lines := f.store.RecipeLines
	allow := 1
	f.store.RecipeLines = flakyTable[models.RecipeLine]{Table: lines, allow: &allow}

	res := f.svc.DeleteRecipe(f.ctx, recipe)
	assert.Equal(t, "recipe was only partially deleted; retry the delete", failed(t, res, errors.ErrCodeDBError))
	assert.NotNil(t, succeeded(t, f.svc.GetRecipe(f.ctx, recipe)))

	f.store.RecipeLines = lines
	require.True(t, f.svc.DeleteRecipe(f.ctx, recipe).Success)
	remaining, err := lines.Scan(f.ctx, repository.Query[models.RecipeLine]{})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestRepairOrphanRecipeLines(t *testing.T) {
	f, p, _, recipe := recipeFixture(t)
	item := f.item(p, "FLOUR", 10, 1)
	kept := created(t, f.svc.CreateRecipeLine(f.ctx, dto.CreateRecipeLineRequest{RecipeID: recipe, InventoryItemID: item, Quantity: 1}))

	// Lines left behind by a recipe that is already gone.
	orphanA, err := f.store.RecipeLines.Insert(f.ctx, models.RecipeLine{RecipeID: "gone", InventoryItemID: item, Quantity: 1})
	require.NoError(t, err)
	orphanB, err := f.store.RecipeLines.Insert(f.ctx, models.RecipeLine{RecipeID: "gone", InventoryItemID: item, Quantity: 2})
	require.NoError(t, err)

	report := succeeded(t, f.svc.RepairOrphanRecipeLines(f.ctx))
	assert.Equal(t, 3, report.Scanned)
	assert.ElementsMatch(t, []string{orphanA.ID, orphanB.ID}, report.Removed)

	assert.NotNil(t, succeeded(t, f.svc.GetRecipeLine(f.ctx, kept)))
	assert.Nil(t, succeeded(t, f.svc.GetRecipeLine(f.ctx, orphanA.ID)))

	report = succeeded(t, f.svc.RepairOrphanRecipeLines(f.ctx))
	assert.Empty(t, report.Removed)
}

package repositories

import (
	"context"
	"testing"

	"github.com/recipeshare/server/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIngredientRepository(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	recipes := NewRecipeWriteRepository(db)
	repo := NewIngredientRepository(db)

	recipeID, err := recipes.Create(ctx, models.RecipeInput{
		Email: "john@example.com",
		Title: "Chocolate Cake",
	})
	assert.NoError(t, err)

	t.Run("serial insert and ordered list", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, recipeID, models.IngredientInput{Text: "flour", Amount: 2, Unit: "cup"}))
		assert.NoError(t, repo.Save(ctx, recipeID, models.IngredientInput{Text: "cocoa", Amount: 1, Unit: "cup"}))

		got, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "flour", got[0].Text)
		assert.Equal(t, "cocoa", got[1].Text)
	})

	t.Run("explicit id insert is idempotent", func(t *testing.T) {
		existing, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)
		id := existing[0].ID

		resubmitted := models.IngredientInput{ID: &id, Text: "changed", Amount: 99, Unit: "kg"}
		assert.NoError(t, repo.Save(ctx, recipeID, resubmitted))

		got, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "flour", got[0].Text)
	})

	t.Run("explicit id does not break later serial inserts", func(t *testing.T) {
		existing, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)

		ahead := existing[len(existing)-1].ID + 10
		assert.NoError(t, repo.Save(ctx, recipeID, models.IngredientInput{ID: &ahead, Text: "sugar", Amount: 1, Unit: "cup"}))

		assert.NoError(t, repo.Save(ctx, recipeID, models.IngredientInput{Text: "butter", Amount: 1, Unit: "cup"}))

		got, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Len(t, got, 4)
		assert.Equal(t, "butter", got[3].Text)
		assert.Greater(t, got[3].ID, ahead)
	})

	t.Run("delete by ids", func(t *testing.T) {
		existing, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)

		assert.NoError(t, repo.DeleteByIDs(ctx, []int64{existing[0].ID}))

		got, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Equal(t, "cocoa", got[0].Text)
	})

	t.Run("delete with empty id list is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.DeleteByIDs(ctx, nil))
	})
}

func TestInstructionRepository(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	recipes := NewRecipeWriteRepository(db)
	repo := NewInstructionRepository(db)

	recipeID, err := recipes.Create(ctx, models.RecipeInput{
		Email: "john@example.com",
		Title: "Chocolate Cake",
	})
	assert.NoError(t, err)

	t.Run("insertion order is step order", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, recipeID, models.InstructionInput{Text: "mix"}))
		assert.NoError(t, repo.Save(ctx, recipeID, models.InstructionInput{Text: "bake"}))
		assert.NoError(t, repo.Save(ctx, recipeID, models.InstructionInput{Text: "cool"}))

		got, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Equal(t, "mix", got[0].Text)
		assert.Equal(t, "bake", got[1].Text)
		assert.Equal(t, "cool", got[2].Text)
	})

	t.Run("explicit id does not break later serial inserts", func(t *testing.T) {
		existing, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)

		ahead := existing[len(existing)-1].ID + 10
		assert.NoError(t, repo.Save(ctx, recipeID, models.InstructionInput{ID: &ahead, Text: "serve"}))

		assert.NoError(t, repo.Save(ctx, recipeID, models.InstructionInput{Text: "store leftovers"}))

		got, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Len(t, got, 5)
		assert.Equal(t, "store leftovers", got[4].Text)
		assert.Greater(t, got[4].ID, ahead)
	})

	t.Run("delete by ids", func(t *testing.T) {
		existing, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)

		assert.NoError(t, repo.DeleteByIDs(ctx, []int64{existing[1].ID}))

		got, err := repo.ListByRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Len(t, got, 4)
		assert.Equal(t, "mix", got[0].Text)
		assert.Equal(t, "cool", got[1].Text)
	})
}

package repositories

import (
	"context"
	"testing"

	"github.com/recipeshare/server/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestImageRepository(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	recipes := NewRecipeWriteRepository(db)
	repo := NewImageRepository(db)

	recipeID, err := recipes.Create(ctx, models.RecipeInput{
		Email: "john@example.com",
		Title: "Chocolate Cake",
	})
	assert.NoError(t, err)

	otherID, err := recipes.Create(ctx, models.RecipeInput{
		Email: "john@example.com",
		Title: "Lentil Soup",
	})
	assert.NoError(t, err)

	t.Run("save and list", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, recipeID, "123_a.jpg"))
		assert.NoError(t, repo.Save(ctx, recipeID, "124_b.jpg"))
		assert.NoError(t, repo.Save(ctx, otherID, "125_c.jpg"))

		urls, err := repo.ListURLsByRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Equal(t, []string{"123_a.jpg", "124_b.jpg"}, urls)
	})

	t.Run("batched list by recipe ids", func(t *testing.T) {
		images, err := repo.ListByRecipeIDs(ctx, []int64{recipeID, otherID})
		assert.NoError(t, err)
		assert.Len(t, images, 3)

		images, err = repo.ListByRecipeIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Nil(t, images)
	})

	t.Run("delete missing returns removed urls", func(t *testing.T) {
		removed, err := repo.DeleteMissing(ctx, recipeID, []string{"124_b.jpg"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"123_a.jpg"}, removed)

		urls, err := repo.ListURLsByRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Equal(t, []string{"124_b.jpg"}, urls)

		// other recipe untouched
		urls, err = repo.ListURLsByRecipe(ctx, otherID)
		assert.NoError(t, err)
		assert.Equal(t, []string{"125_c.jpg"}, urls)
	})

	t.Run("empty keep list removes everything", func(t *testing.T) {
		removed, err := repo.DeleteMissing(ctx, recipeID, nil)
		assert.NoError(t, err)
		assert.Equal(t, []string{"124_b.jpg"}, removed)

		urls, err := repo.ListURLsByRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Empty(t, urls)
	})
}

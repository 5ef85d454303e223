package repositories

import (
	"context"
	"testing"

	"github.com/recipeshare/server/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTaxonomyRepository(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	repo := NewTaxonomyRepository(db)
	recipes := NewRecipeWriteRepository(db)

	t.Run("seeded lookup lists", func(t *testing.T) {
		diets, err := repo.ListDietTitles(ctx)
		assert.NoError(t, err)
		assert.Contains(t, diets, "Vegan")
		assert.Contains(t, diets, "Vegetarian")

		categories, err := repo.ListCategoryTitles(ctx)
		assert.NoError(t, err)
		assert.Contains(t, categories, "Dessert")

		units, err := repo.ListMeasuringUnits(ctx)
		assert.NoError(t, err)
		assert.Contains(t, units, "cup")
	})

	t.Run("resolve known titles", func(t *testing.T) {
		ids, err := repo.ResolveDietIDs(ctx, []string{"Vegan", "Keto"})
		assert.NoError(t, err)
		assert.Len(t, ids, 2)
	})

	t.Run("unknown title rejected", func(t *testing.T) {
		_, err := repo.ResolveDietIDs(ctx, []string{"Carnivore"})
		assert.ErrorIs(t, err, ErrUnknownDiet)
		assert.Contains(t, err.Error(), "Carnivore")

		_, err = repo.ResolveCategoryIDs(ctx, []string{"Midnight Snack"})
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("replace links wholesale", func(t *testing.T) {
		recipeID, err := recipes.Create(ctx, models.RecipeInput{
			Email: "john@example.com",
			Title: "Chocolate Cake",
		})
		assert.NoError(t, err)

		ids, err := repo.ResolveDietIDs(ctx, []string{"Vegan", "Gluten Free"})
		assert.NoError(t, err)
		assert.NoError(t, repo.ReplaceRecipeDiets(ctx, recipeID, ids))

		titles, err := repo.DietTitlesForRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"Vegan", "Gluten Free"}, titles)

		ids, err = repo.ResolveDietIDs(ctx, []string{"Keto"})
		assert.NoError(t, err)
		assert.NoError(t, repo.ReplaceRecipeDiets(ctx, recipeID, ids))

		titles, err = repo.DietTitlesForRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Keto"}, titles)

		categoryIDs, err := repo.ResolveCategoryIDs(ctx, []string{"Dessert"})
		assert.NoError(t, err)
		assert.NoError(t, repo.ReplaceRecipeCategories(ctx, recipeID, categoryIDs))

		categories, err := repo.CategoryTitlesForRecipe(ctx, recipeID)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Dessert"}, categories)
	})
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
)

var (
	// ErrUnknownDiet is returned when a submitted diet title has no lookup row.
	ErrUnknownDiet = errors.New("unknown diet")
	// ErrUnknownCategory is returned when a submitted category title has no lookup row.
	ErrUnknownCategory = errors.New("unknown category")
)

// TaxonomyRepository serves the diet, category and measuring-unit lookup
// tables and the recipe link tables built on them.
type TaxonomyRepository struct {
	db *sqlx.DB
}

func NewTaxonomyRepository(db *sqlx.DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// ListDietTitles returns all diet titles.
func (r *TaxonomyRepository) ListDietTitles(ctx context.Context) ([]string, error) {
	var titles []string
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &titles, `SELECT title FROM diets ORDER BY id`)
	return titles, err
}

// ListCategoryTitles returns all category titles.
func (r *TaxonomyRepository) ListCategoryTitles(ctx context.Context) ([]string, error) {
	var titles []string
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &titles, `SELECT title FROM categories ORDER BY id`)
	return titles, err
}

// ListMeasuringUnits returns all measuring-unit titles.
func (r *TaxonomyRepository) ListMeasuringUnits(ctx context.Context) ([]string, error) {
	var titles []string
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &titles, `SELECT title FROM measuring_units ORDER BY id`)
	return titles, err
}

// DietTitlesForRecipe returns the diet titles linked to a recipe.
func (r *TaxonomyRepository) DietTitlesForRecipe(ctx context.Context, recipeID int64) ([]string, error) {
	const query = `
		SELECT d.title
		FROM diets d
		JOIN recipes_diets rd ON rd.diet_id = d.id
		WHERE rd.recipe_id = $1
		ORDER BY d.id
	`

	var titles []string
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &titles, query, recipeID)
	return titles, err
}

// CategoryTitlesForRecipe returns the category titles linked to a recipe.
func (r *TaxonomyRepository) CategoryTitlesForRecipe(ctx context.Context, recipeID int64) ([]string, error) {
	const query = `
		SELECT c.title
		FROM categories c
		JOIN recipes_categories rc ON rc.category_id = c.id
		WHERE rc.recipe_id = $1
		ORDER BY c.id
	`

	var titles []string
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &titles, query, recipeID)
	return titles, err
}

// ResolveDietIDs maps diet titles to ids, rejecting unknown titles.
func (r *TaxonomyRepository) ResolveDietIDs(ctx context.Context, titles []string) ([]int64, error) {
	return r.resolve(ctx, `SELECT id, title FROM diets`, titles, ErrUnknownDiet)
}

// ResolveCategoryIDs maps category titles to ids, rejecting unknown titles.
func (r *TaxonomyRepository) ResolveCategoryIDs(ctx context.Context, titles []string) ([]int64, error) {
	return r.resolve(ctx, `SELECT id, title FROM categories`, titles, ErrUnknownCategory)
}

// resolve fetches the lookup table once and matches the submitted titles
// exactly. An unmatched title fails the whole resolution instead of
// producing a dangling foreign key.
func (r *TaxonomyRepository) resolve(ctx context.Context, query string, titles []string, unknown error) ([]int64, error) {
	if len(titles) == 0 {
		return nil, nil
	}

	var rows []models.TaxonomyDB
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query); err != nil {
		return nil, err
	}

	byTitle := make(map[string]int64, len(rows))
	for _, row := range rows {
		byTitle[row.Title] = row.ID
	}

	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		id, ok := byTitle[title]
		if !ok {
			return nil, fmt.Errorf("%w: %s", unknown, title)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ReplaceRecipeDiets replaces the recipe's diet links with the given set.
func (r *TaxonomyRepository) ReplaceRecipeDiets(ctx context.Context, recipeID int64, dietIDs []int64) error {
	e := ext(ctx, r.db)

	if _, err := e.ExecContext(ctx, `DELETE FROM recipes_diets WHERE recipe_id = $1`, recipeID); err != nil {
		logger.Log.Errorw("failed to clear recipe diets", "recipe_id", recipeID, "error", err)
		return err
	}

	for _, dietID := range dietIDs {
		_, err := e.ExecContext(ctx,
			`INSERT INTO recipes_diets (recipe_id, diet_id) VALUES ($1, $2)`,
			recipeID, dietID)
		if err != nil {
			logger.Log.Errorw("failed to link diet", "recipe_id", recipeID, "diet_id", dietID, "error", err)
			return err
		}
	}

	return nil
}

// ReplaceRecipeCategories replaces the recipe's category links with the given set.
func (r *TaxonomyRepository) ReplaceRecipeCategories(ctx context.Context, recipeID int64, categoryIDs []int64) error {
	e := ext(ctx, r.db)

	if _, err := e.ExecContext(ctx, `DELETE FROM recipes_categories WHERE recipe_id = $1`, recipeID); err != nil {
		logger.Log.Errorw("failed to clear recipe categories", "recipe_id", recipeID, "error", err)
		return err
	}

	for _, categoryID := range categoryIDs {
		_, err := e.ExecContext(ctx,
			`INSERT INTO recipes_categories (recipe_id, category_id) VALUES ($1, $2)`,
			recipeID, categoryID)
		if err != nil {
			logger.Log.Errorw("failed to link category", "recipe_id", recipeID, "category_id", categoryID, "error", err)
			return err
		}
	}

	return nil
}

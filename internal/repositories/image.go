package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
)

type ImageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// ListURLsByRecipe returns the image URLs of a recipe ordered by id.
func (r *ImageRepository) ListURLsByRecipe(ctx context.Context, recipeID int64) ([]string, error) {
	var urls []string
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &urls,
		`SELECT url FROM images WHERE recipe_id = $1 ORDER BY id`, recipeID)
	return urls, err
}

// ListByRecipeIDs returns the image rows of the given recipes.
func (r *ImageRepository) ListByRecipeIDs(ctx context.Context, recipeIDs []int64) ([]models.ImageDB, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT id, recipe_id, url FROM images WHERE recipe_id IN (?) ORDER BY id`, recipeIDs)
	if err != nil {
		return nil, err
	}

	e := ext(ctx, r.db)
	var images []models.ImageDB
	err = sqlx.SelectContext(ctx, e, &images, e.Rebind(query), args...)
	return images, err
}

// Save inserts an image row for a recipe.
func (r *ImageRepository) Save(ctx context.Context, recipeID int64, url string) error {
	_, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO images (recipe_id, url) VALUES ($1, $2)`, recipeID, url)
	if err != nil {
		logger.Log.Errorw("failed to save image", "recipe_id", recipeID, "url", url, "error", err)
	}
	return err
}

// DeleteMissing removes the recipe's image rows whose URL is not in keep
// and returns the removed URLs so the caller can clean up the media store.
// An empty keep list removes every image of the recipe.
func (r *ImageRepository) DeleteMissing(ctx context.Context, recipeID int64, keep []string) ([]string, error) {
	e := ext(ctx, r.db)

	var existing []models.ImageDB
	err := sqlx.SelectContext(ctx, e, &existing,
		`SELECT id, recipe_id, url FROM images WHERE recipe_id = $1 ORDER BY id`, recipeID)
	if err != nil {
		return nil, err
	}

	keepSet := make(map[string]struct{}, len(keep))
	for _, url := range keep {
		keepSet[url] = struct{}{}
	}

	var removed []string
	for _, image := range existing {
		if _, ok := keepSet[image.URL]; ok {
			continue
		}
		if _, err := e.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, image.ID); err != nil {
			logger.Log.Errorw("failed to delete image", "image_id", image.ID, "error", err)
			return nil, err
		}
		removed = append(removed, image.URL)
	}

	return removed, nil
}

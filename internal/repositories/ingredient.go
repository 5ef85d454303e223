package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
)

type IngredientRepository struct {
	db *sqlx.DB
}

func NewIngredientRepository(db *sqlx.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// ListByRecipe returns the recipe's ingredients ordered by id.
func (r *IngredientRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]models.IngredientDB, error) {
	const query = `
		SELECT id, recipe_id, text, amount, unit
		FROM ingredients
		WHERE recipe_id = $1
		ORDER BY id
	`

	var ingredients []models.IngredientDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &ingredients, query, recipeID)
	return ingredients, err
}

// Save inserts an ingredient. When the client supplies an id the insert is
// idempotent: an existing row with that id is left untouched. Explicit ids
// bypass the serial sequence, so it is re-synced to keep later serial
// inserts from colliding with a preserved id.
func (r *IngredientRepository) Save(ctx context.Context, recipeID int64, in models.IngredientInput) error {
	e := ext(ctx, r.db)

	if in.ID != nil {
		const query = `
			INSERT INTO ingredients (id, recipe_id, text, amount, unit)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`
		if _, err := e.ExecContext(ctx, query, *in.ID, recipeID, in.Text, in.Amount, in.Unit); err != nil {
			logger.Log.Errorw("failed to save ingredient", "recipe_id", recipeID, "error", err)
			return err
		}

		const syncSequence = `
			SELECT setval(pg_get_serial_sequence('ingredients', 'id'),
				(SELECT GREATEST(MAX(id), 1) FROM ingredients))
		`
		if _, err := e.ExecContext(ctx, syncSequence); err != nil {
			logger.Log.Errorw("failed to sync ingredients sequence", "error", err)
			return err
		}
		return nil
	}

	const query = `
		INSERT INTO ingredients (recipe_id, text, amount, unit)
		VALUES ($1, $2, $3, $4)
	`
	_, err := e.ExecContext(ctx, query, recipeID, in.Text, in.Amount, in.Unit)
	if err != nil {
		logger.Log.Errorw("failed to save ingredient", "recipe_id", recipeID, "error", err)
	}
	return err
}

// DeleteByIDs removes the ingredients with the given ids.
func (r *IngredientRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`DELETE FROM ingredients WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}

	e := ext(ctx, r.db)
	_, err = e.ExecContext(ctx, e.Rebind(query), args...)
	if err != nil {
		logger.Log.Errorw("failed to delete ingredients", "ids", ids, "error", err)
	}
	return err
}

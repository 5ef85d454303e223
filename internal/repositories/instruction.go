package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
)

type InstructionRepository struct {
	db *sqlx.DB
}

func NewInstructionRepository(db *sqlx.DB) *InstructionRepository {
	return &InstructionRepository{db: db}
}

// ListByRecipe returns the recipe's instructions in step order.
func (r *InstructionRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]models.InstructionDB, error) {
	const query = `
		SELECT id, recipe_id, text
		FROM instructions
		WHERE recipe_id = $1
		ORDER BY id
	`

	var instructions []models.InstructionDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &instructions, query, recipeID)
	return instructions, err
}

// Save inserts an instruction step, idempotent on a client-supplied id.
// Explicit ids bypass the serial sequence, so it is re-synced to keep
// later serial inserts from colliding with a preserved id.
func (r *InstructionRepository) Save(ctx context.Context, recipeID int64, in models.InstructionInput) error {
	e := ext(ctx, r.db)

	if in.ID != nil {
		const query = `
			INSERT INTO instructions (id, recipe_id, text)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING
		`
		if _, err := e.ExecContext(ctx, query, *in.ID, recipeID, in.Text); err != nil {
			logger.Log.Errorw("failed to save instruction", "recipe_id", recipeID, "error", err)
			return err
		}

		const syncSequence = `
			SELECT setval(pg_get_serial_sequence('instructions', 'id'),
				(SELECT GREATEST(MAX(id), 1) FROM instructions))
		`
		if _, err := e.ExecContext(ctx, syncSequence); err != nil {
			logger.Log.Errorw("failed to sync instructions sequence", "error", err)
			return err
		}
		return nil
	}

	const query = `
		INSERT INTO instructions (recipe_id, text)
		VALUES ($1, $2)
	`
	_, err := e.ExecContext(ctx, query, recipeID, in.Text)
	if err != nil {
		logger.Log.Errorw("failed to save instruction", "recipe_id", recipeID, "error", err)
	}
	return err
}

// DeleteByIDs removes the instructions with the given ids.
func (r *InstructionRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`DELETE FROM instructions WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}

	e := ext(ctx, r.db)
	_, err = e.ExecContext(ctx, e.Rebind(query), args...)
	if err != nil {
		logger.Log.Errorw("failed to delete instructions", "ids", ids, "error", err)
	}
	return err
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
)

type RecipeReadRepository struct {
	db *sqlx.DB
}

func NewRecipeReadRepository(db *sqlx.DB) *RecipeReadRepository {
	return &RecipeReadRepository{db: db}
}

const recipeColumns = `id, email, title, description, source, source_url, servings, cook, created_at, updated_at`

// List returns all recipes, newest last.
func (r *RecipeReadRepository) List(ctx context.Context) ([]models.RecipeDB, error) {
	const query = `SELECT ` + recipeColumns + ` FROM recipes ORDER BY id`

	var recipes []models.RecipeDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &recipes, query)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(recipes),
		"error", err,
	)

	return recipes, err
}

// Search returns recipes whose title contains q, with exact-prefix matches
// ranked before other substring matches.
func (r *RecipeReadRepository) Search(ctx context.Context, q string) ([]models.RecipeDB, error) {
	const query = `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY CASE WHEN title ILIKE $1 || '%' THEN 1 ELSE 2 END, title
	`

	var recipes []models.RecipeDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &recipes, query, q)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{q},
		"rows", len(recipes),
		"error", err,
	)

	return recipes, err
}

// GetByID returns the recipe row, or nil when absent.
func (r *RecipeReadRepository) GetByID(ctx context.Context, recipeID int64) (*models.RecipeDB, error) {
	const query = `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`

	var recipe models.RecipeDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &recipe, query, recipeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

// ListByEmail returns the recipes owned by the given email.
func (r *RecipeReadRepository) ListByEmail(ctx context.Context, email string) ([]models.RecipeDB, error) {
	const query = `SELECT ` + recipeColumns + ` FROM recipes WHERE email = $1 ORDER BY id`

	var recipes []models.RecipeDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &recipes, query, email)
	return recipes, err
}

type RecipeWriteRepository struct {
	db *sqlx.DB
}

func NewRecipeWriteRepository(db *sqlx.DB) *RecipeWriteRepository {
	return &RecipeWriteRepository{db: db}
}

// Create inserts a recipe row and returns the generated id.
func (r *RecipeWriteRepository) Create(ctx context.Context, in models.RecipeInput) (int64, error) {
	const query = `
		INSERT INTO recipes (email, title, description, source, source_url, servings, cook, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`
	args := []any{in.Email, in.Title, in.Description, in.Source, in.SourceURL, in.Servings, in.Cook}

	var recipeID int64
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &recipeID, query, args...)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", recipeID,
		"error", err,
	)

	return recipeID, err
}

// Update overwrites the scalar fields of a recipe. Returns the number of
// rows affected so callers can detect a missing recipe.
func (r *RecipeWriteRepository) Update(ctx context.Context, in models.RecipeUpdateInput) (int64, error) {
	const query = `
		UPDATE recipes
		SET title = $2, description = $3, source = $4, source_url = $5, servings = $6, cook = $7, updated_at = NOW()
		WHERE id = $1
	`
	args := []any{in.ID, in.Title, in.Description, in.Source, in.SourceURL, in.Servings, in.Cook}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Log.Errorw("failed to update recipe", "recipe_id", in.ID, "error", err)
		return 0, err
	}

	return res.RowsAffected()
}

// Delete removes the recipe row; child rows go with it via FK cascade.
// Returns the number of rows affected.
func (r *RecipeWriteRepository) Delete(ctx context.Context, recipeID int64) (int64, error) {
	const query = `DELETE FROM recipes WHERE id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to delete recipe", "recipe_id", recipeID, "error", err)
		return 0, err
	}

	return res.RowsAffected()
}

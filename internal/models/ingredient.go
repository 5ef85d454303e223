package models

// IngredientDB represents an ingredient row belonging to a recipe.
type IngredientDB struct {
	ID       int64   `json:"id" db:"id"`
	RecipeID int64   `json:"recipe_id" db:"recipe_id"`
	Text     string  `json:"text" db:"text"`
	Amount   float64 `json:"amount" db:"amount"`
	Unit     string  `json:"unit" db:"unit"`
}

// IngredientInput is a client-supplied ingredient. ID is set when the
// client re-submits an existing row; inserts are idempotent on it.
type IngredientInput struct {
	ID     *int64  `json:"id"`
	Text   string  `json:"text"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

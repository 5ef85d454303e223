package models

// InstructionDB represents an instruction step belonging to a recipe.
// Step order is the insertion order of the rows.
type InstructionDB struct {
	ID       int64  `json:"id" db:"id"`
	RecipeID int64  `json:"recipe_id" db:"recipe_id"`
	Text     string `json:"text" db:"text"`
}

// InstructionInput is a client-supplied instruction step.
type InstructionInput struct {
	ID   *int64 `json:"id"`
	Text string `json:"text"`
}

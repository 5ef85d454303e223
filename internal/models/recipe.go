package models

import "time"

// RecipeDB represents a recipe row in the database.
type RecipeDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	Email       string    `json:"email" db:"email"`             // Owning user's email
	Title       string    `json:"title" db:"title"`             // Recipe title
	Description string    `json:"description" db:"description"` // Free-text description
	Source      *string   `json:"source" db:"source"`           // Optional source name
	SourceURL   *string   `json:"source_url" db:"source_url"`   // Optional source link
	Servings    *int      `json:"servings" db:"servings"`       // Optional servings count
	Cook        *int      `json:"cook" db:"cook"`               // Optional cook time, minutes
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// RecipeSummary is a recipe row together with its image URLs,
// used by list views.
type RecipeSummary struct {
	RecipeDB
	URLs []string `json:"urls"`
}

// RecipeAggregate is a recipe with its full child set.
type RecipeAggregate struct {
	RecipeDB
	Ingredients        []IngredientDB  `json:"ingredients"`
	Instructions       []InstructionDB `json:"instructions"`
	DietsSelected      []string        `json:"dietsSelected"`
	CategoriesSelected []string        `json:"categoriesSelected"`
	Images             []string        `json:"images"`
}

// RecipeInput is the payload for creating a recipe.
type RecipeInput struct {
	Email              string             `json:"email"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Source             *string            `json:"source"`
	SourceURL          *string            `json:"source_url"`
	Servings           *int               `json:"servings"`
	Cook               *int               `json:"cook"`
	DietsSelected      []string           `json:"dietsSelected"`
	CategoriesSelected []string           `json:"categoriesSelected"`
	Ingredients        []IngredientInput  `json:"ingredients"`
	Instructions       []InstructionInput `json:"instructions"`
}

// RecipeUpdateInput is the payload for editing an existing recipe.
// Images holds the URLs the client wants to keep; existing rows not
// listed there are removed and their objects deleted from the media store.
type RecipeUpdateInput struct {
	RecipeInput
	ID                  int64    `json:"id"`
	IngredientsDeleted  []int64  `json:"ingredientsDeleted"`
	InstructionsDeleted []int64  `json:"instructionsDeleted"`
	Images              []string `json:"images"`
}

package services

import (
	"context"
	"errors"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
)

// ErrRecipeNotFound is returned when the requested recipe does not exist.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeReader defines read operations on recipe rows.
type RecipeReader interface {
	List(ctx context.Context) ([]models.RecipeDB, error)
	Search(ctx context.Context, q string) ([]models.RecipeDB, error)
	GetByID(ctx context.Context, recipeID int64) (*models.RecipeDB, error)
	ListByEmail(ctx context.Context, email string) ([]models.RecipeDB, error)
}

// IngredientLister lists a recipe's ingredients.
type IngredientLister interface {
	ListByRecipe(ctx context.Context, recipeID int64) ([]models.IngredientDB, error)
}

// InstructionLister lists a recipe's instruction steps.
type InstructionLister interface {
	ListByRecipe(ctx context.Context, recipeID int64) ([]models.InstructionDB, error)
}

// TaxonomyReader serves lookup lists and per-recipe tag titles.
type TaxonomyReader interface {
	ListDietTitles(ctx context.Context) ([]string, error)
	ListCategoryTitles(ctx context.Context) ([]string, error)
	ListMeasuringUnits(ctx context.Context) ([]string, error)
	DietTitlesForRecipe(ctx context.Context, recipeID int64) ([]string, error)
	CategoryTitlesForRecipe(ctx context.Context, recipeID int64) ([]string, error)
}

// ImageReader lists image rows and URLs.
type ImageReader interface {
	ListURLsByRecipe(ctx context.Context, recipeID int64) ([]string, error)
	ListByRecipeIDs(ctx context.Context, recipeIDs []int64) ([]models.ImageDB, error)
}

// OptionsCache caches the editor lookup lists.
type OptionsCache interface {
	Get(ctx context.Context) (*models.Options, error)
	Set(ctx context.Context, options models.Options) error
}

// RecipeReadService assembles recipe views from independent fetches.
type RecipeReadService struct {
	recipes      RecipeReader
	ingredients  IngredientLister
	instructions InstructionLister
	taxonomy     TaxonomyReader
	images       ImageReader
	cache        OptionsCache
}

// NewRecipeReadService creates a new RecipeReadService instance.
func NewRecipeReadService(
	recipes RecipeReader,
	ingredients IngredientLister,
	instructions InstructionLister,
	taxonomy TaxonomyReader,
	images ImageReader,
	cache OptionsCache,
) *RecipeReadService {
	return &RecipeReadService{
		recipes:      recipes,
		ingredients:  ingredients,
		instructions: instructions,
		taxonomy:     taxonomy,
		images:       images,
		cache:        cache,
	}
}

// Get assembles the full recipe aggregate for one recipe id.
func (svc *RecipeReadService) Get(ctx context.Context, recipeID int64) (*models.RecipeAggregate, error) {
	recipe, err := svc.recipes.GetByID(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipe_id", recipeID, "err", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	ingredients, err := svc.ingredients.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	instructions, err := svc.instructions.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	diets, err := svc.taxonomy.DietTitlesForRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	categories, err := svc.taxonomy.CategoryTitlesForRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	images, err := svc.images.ListURLsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	return &models.RecipeAggregate{
		RecipeDB:           *recipe,
		Ingredients:        ingredients,
		Instructions:       instructions,
		DietsSelected:      diets,
		CategoriesSelected: categories,
		Images:             images,
	}, nil
}

// List returns all recipes with their image URLs.
func (svc *RecipeReadService) List(ctx context.Context) ([]models.RecipeSummary, error) {
	recipes, err := svc.recipes.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list recipes", "err", err)
		return nil, err
	}

	return svc.withImageURLs(ctx, recipes)
}

// Search returns recipes whose title matches q, prefix matches first.
func (svc *RecipeReadService) Search(ctx context.Context, q string) ([]models.RecipeDB, error) {
	recipes, err := svc.recipes.Search(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to search recipes", "q", q, "err", err)
		return nil, err
	}
	return recipes, nil
}

// MyRecipes returns the recipes owned by an email, with image URLs.
func (svc *RecipeReadService) MyRecipes(ctx context.Context, email string) ([]models.RecipeSummary, error) {
	recipes, err := svc.recipes.ListByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to list recipes by owner", "email", email, "err", err)
		return nil, err
	}

	return svc.withImageURLs(ctx, recipes)
}

// Options returns the editor lookup lists, served from cache when warm.
// Cache failures fall through to the database.
func (svc *RecipeReadService) Options(ctx context.Context) (*models.Options, error) {
	if svc.cache != nil {
		if cached, err := svc.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	diets, err := svc.taxonomy.ListDietTitles(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := svc.taxonomy.ListCategoryTitles(ctx)
	if err != nil {
		return nil, err
	}
	units, err := svc.taxonomy.ListMeasuringUnits(ctx)
	if err != nil {
		return nil, err
	}

	options := models.Options{
		Diets:          diets,
		Categories:     categories,
		MeasuringUnits: units,
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, options); err != nil {
			logger.Log.Warnw("failed to cache options", "err", err)
		}
	}

	return &options, nil
}

// withImageURLs joins recipes with their image URLs in one batched fetch.
func (svc *RecipeReadService) withImageURLs(ctx context.Context, recipes []models.RecipeDB) ([]models.RecipeSummary, error) {
	ids := make([]int64, 0, len(recipes))
	for _, recipe := range recipes {
		ids = append(ids, recipe.ID)
	}

	images, err := svc.images.ListByRecipeIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to list images", "err", err)
		return nil, err
	}

	urlsByRecipe := make(map[int64][]string, len(recipes))
	for _, image := range images {
		urlsByRecipe[image.RecipeID] = append(urlsByRecipe[image.RecipeID], image.URL)
	}

	summaries := make([]models.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, models.RecipeSummary{
			RecipeDB: recipe,
			URLs:     urlsByRecipe[recipe.ID],
		})
	}

	return summaries, nil
}

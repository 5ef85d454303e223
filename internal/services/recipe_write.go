package services

import (
	"context"
	"io"
	"time"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/middlewares"
	"github.com/recipeshare/server/internal/models"
)

// RecipeWriter defines write operations on recipe rows.
type RecipeWriter interface {
	Create(ctx context.Context, in models.RecipeInput) (int64, error)
	Update(ctx context.Context, in models.RecipeUpdateInput) (int64, error)
	Delete(ctx context.Context, recipeID int64) (int64, error)
}

// IngredientWriter writes a recipe's ingredients.
type IngredientWriter interface {
	Save(ctx context.Context, recipeID int64, in models.IngredientInput) error
	DeleteByIDs(ctx context.Context, ids []int64) error
}

// InstructionWriter writes a recipe's instruction steps.
type InstructionWriter interface {
	Save(ctx context.Context, recipeID int64, in models.InstructionInput) error
	DeleteByIDs(ctx context.Context, ids []int64) error
}

// TaxonomyWriter resolves tag titles and maintains the link tables.
type TaxonomyWriter interface {
	ResolveDietIDs(ctx context.Context, titles []string) ([]int64, error)
	ResolveCategoryIDs(ctx context.Context, titles []string) ([]int64, error)
	ReplaceRecipeDiets(ctx context.Context, recipeID int64, dietIDs []int64) error
	ReplaceRecipeCategories(ctx context.Context, recipeID int64, categoryIDs []int64) error
}

// ImageWriter maintains image rows.
type ImageWriter interface {
	ListURLsByRecipe(ctx context.Context, recipeID int64) ([]string, error)
	Save(ctx context.Context, recipeID int64, url string) error
	DeleteMissing(ctx context.Context, recipeID int64, keep []string) ([]string, error)
}

// MediaStore is the object storage holding image binaries.
type MediaStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
}

// RecipeWriteService orchestrates the multi-table write sequence for a
// recipe and its children. All relational writes of one operation join
// the request transaction, so any child failure rolls back the whole
// aggregate. Media-store calls stay outside that contract: a failed
// upload produces no image row, a failed delete is logged and published.
// Object deletions are held back until the transaction commits, so a
// rollback never leaves image rows pointing at removed objects.
type RecipeWriteService struct {
	recipes      RecipeWriter
	ingredients  IngredientWriter
	instructions InstructionWriter
	taxonomy     TaxonomyWriter
	images       ImageWriter
	media        MediaStore
	events       EventPublisher
}

// NewRecipeWriteService creates a new RecipeWriteService instance.
func NewRecipeWriteService(
	recipes RecipeWriter,
	ingredients IngredientWriter,
	instructions InstructionWriter,
	taxonomy TaxonomyWriter,
	images ImageWriter,
	media MediaStore,
	events EventPublisher,
) *RecipeWriteService {
	return &RecipeWriteService{
		recipes:      recipes,
		ingredients:  ingredients,
		instructions: instructions,
		taxonomy:     taxonomy,
		images:       images,
		media:        media,
		events:       events,
	}
}

// Create inserts a recipe with its full child set and returns the new id.
func (svc *RecipeWriteService) Create(ctx context.Context, in models.RecipeInput, uploads []models.ImageUpload) (int64, error) {
	dietIDs, err := svc.taxonomy.ResolveDietIDs(ctx, in.DietsSelected)
	if err != nil {
		logger.Log.Errorw("failed to resolve diets", "err", err)
		return 0, err
	}

	categoryIDs, err := svc.taxonomy.ResolveCategoryIDs(ctx, in.CategoriesSelected)
	if err != nil {
		logger.Log.Errorw("failed to resolve categories", "err", err)
		return 0, err
	}

	recipeID, err := svc.recipes.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create recipe", "err", err)
		return 0, err
	}

	for _, ingredient := range in.Ingredients {
		if err := svc.ingredients.Save(ctx, recipeID, ingredient); err != nil {
			return 0, err
		}
	}

	for _, instruction := range in.Instructions {
		if err := svc.instructions.Save(ctx, recipeID, instruction); err != nil {
			return 0, err
		}
	}

	if err := svc.taxonomy.ReplaceRecipeDiets(ctx, recipeID, dietIDs); err != nil {
		return 0, err
	}

	if err := svc.taxonomy.ReplaceRecipeCategories(ctx, recipeID, categoryIDs); err != nil {
		return 0, err
	}

	if err := svc.storeUploads(ctx, recipeID, uploads); err != nil {
		return 0, err
	}

	if svc.events != nil {
		svc.events.Publish(ctx, models.RecipeEvent{
			Type:      models.EventRecipeCreated,
			RecipeID:  recipeID,
			Title:     in.Title,
			Timestamp: time.Now().Unix(),
		})
	}

	return recipeID, nil
}

// Update overwrites a recipe's scalar fields and reconciles its children.
func (svc *RecipeWriteService) Update(ctx context.Context, in models.RecipeUpdateInput, uploads []models.ImageUpload) error {
	dietIDs, err := svc.taxonomy.ResolveDietIDs(ctx, in.DietsSelected)
	if err != nil {
		logger.Log.Errorw("failed to resolve diets", "err", err)
		return err
	}

	categoryIDs, err := svc.taxonomy.ResolveCategoryIDs(ctx, in.CategoriesSelected)
	if err != nil {
		logger.Log.Errorw("failed to resolve categories", "err", err)
		return err
	}

	affected, err := svc.recipes.Update(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to update recipe", "recipe_id", in.ID, "err", err)
		return err
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	if err := svc.ingredients.DeleteByIDs(ctx, in.IngredientsDeleted); err != nil {
		return err
	}
	for _, ingredient := range in.Ingredients {
		if err := svc.ingredients.Save(ctx, in.ID, ingredient); err != nil {
			return err
		}
	}

	if err := svc.instructions.DeleteByIDs(ctx, in.InstructionsDeleted); err != nil {
		return err
	}
	for _, instruction := range in.Instructions {
		if err := svc.instructions.Save(ctx, in.ID, instruction); err != nil {
			return err
		}
	}

	if err := svc.taxonomy.ReplaceRecipeDiets(ctx, in.ID, dietIDs); err != nil {
		return err
	}
	if err := svc.taxonomy.ReplaceRecipeCategories(ctx, in.ID, categoryIDs); err != nil {
		return err
	}

	removed, err := svc.images.DeleteMissing(ctx, in.ID, in.Images)
	if err != nil {
		return err
	}
	middlewares.RunAfterCommit(ctx, func() {
		svc.deleteObjects(ctx, in.ID, removed)
	})

	if err := svc.storeUploads(ctx, in.ID, uploads); err != nil {
		return err
	}

	if svc.events != nil {
		svc.events.Publish(ctx, models.RecipeEvent{
			Type:      models.EventRecipeUpdated,
			RecipeID:  in.ID,
			Title:     in.Title,
			Timestamp: time.Now().Unix(),
		})
	}

	return nil
}

// Delete removes a recipe with its children and cleans up its objects.
func (svc *RecipeWriteService) Delete(ctx context.Context, recipeID int64) error {
	urls, err := svc.images.ListURLsByRecipe(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to list recipe images", "recipe_id", recipeID, "err", err)
		return err
	}

	affected, err := svc.recipes.Delete(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to delete recipe", "recipe_id", recipeID, "err", err)
		return err
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	middlewares.RunAfterCommit(ctx, func() {
		svc.deleteObjects(ctx, recipeID, urls)
	})

	if svc.events != nil {
		svc.events.Publish(ctx, models.RecipeEvent{
			Type:      models.EventRecipeDeleted,
			RecipeID:  recipeID,
			Timestamp: time.Now().Unix(),
		})
	}

	return nil
}

// storeUploads pushes files to the media store and records a row for each
// successful upload. A failed upload is logged and skipped; only a failed
// relational insert fails the operation.
func (svc *RecipeWriteService) storeUploads(ctx context.Context, recipeID int64, uploads []models.ImageUpload) error {
	for _, upload := range uploads {
		if err := svc.media.Upload(ctx, upload.Key, upload.Body, upload.ContentType); err != nil {
			logger.Log.Errorw("failed to upload image", "recipe_id", recipeID, "key", upload.Key, "err", err)
			continue
		}
		if err := svc.images.Save(ctx, recipeID, upload.Key); err != nil {
			logger.Log.Errorw("failed to record image", "recipe_id", recipeID, "key", upload.Key, "err", err)
			return err
		}
	}
	return nil
}

// deleteObjects removes objects from the media store, best-effort.
// Callers schedule it through RunAfterCommit so the objects survive a
// rollback. Failures stay visible: logged and published as events.
func (svc *RecipeWriteService) deleteObjects(ctx context.Context, recipeID int64, urls []string) {
	for _, url := range urls {
		if err := svc.media.Delete(ctx, url); err != nil {
			logger.Log.Errorw("failed to delete image object", "recipe_id", recipeID, "url", url, "err", err)
			if svc.events != nil {
				svc.events.Publish(ctx, models.RecipeEvent{
					Type:      models.EventImageDeleteError,
					RecipeID:  recipeID,
					ImageURL:  url,
					Timestamp: time.Now().Unix(),
				})
			}
		}
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/recipeshare/server/internal/facades"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/validation"
)

// Upload limits matching the original client contract: images only,
// 5 MiB per file.
const (
	maxImageSize   = 5 << 20
	maxRequestSize = 64 << 20
)

// recipeForm is the multipart field set of the recipe editor. Every
// field arrives as a string; structured ones are JSON-encoded.
type recipeForm struct {
	ID                  int64    `json:"id"`
	Email               string   `json:"email"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Source              *string  `json:"source"`
	SourceURL           *string  `json:"source_url"`
	Servings            *int     `json:"servings"`
	Cook                *int     `json:"cook"`
	DietsSelected       []string `json:"dietsSelected"`
	CategoriesSelected  []string `json:"categoriesSelected"`
	Ingredients         []models.IngredientInput  `json:"ingredients"`
	Instructions        []models.InstructionInput `json:"instructions"`
	IngredientsDeleted  []int64  `json:"ingredientsDeleted"`
	InstructionsDeleted []int64  `json:"instructionsDeleted"`
	Images              []string `json:"images"`
}

// parseRecipeForm reads the multipart request into the form struct and
// collects accepted image uploads. Each text field is JSON-decoded;
// a field that is not valid JSON is taken as a plain string. Files that
// are not images or exceed the size limit are skipped.
func parseRecipeForm(r *http.Request) (*recipeForm, []models.ImageUpload, error) {
	if err := r.ParseMultipartForm(maxRequestSize); err != nil {
		return nil, nil, err
	}

	fields := make(map[string]json.RawMessage, len(r.MultipartForm.Value))
	for name, values := range r.MultipartForm.Value {
		if len(values) == 0 {
			continue
		}
		raw := values[0]
		if json.Valid([]byte(raw)) {
			fields[name] = json.RawMessage(raw)
		} else {
			quoted, _ := json.Marshal(raw)
			fields[name] = json.RawMessage(quoted)
		}
	}

	blob, err := json.Marshal(fields)
	if err != nil {
		return nil, nil, err
	}

	var form recipeForm
	if err := json.Unmarshal(blob, &form); err != nil {
		return nil, nil, err
	}

	var uploads []models.ImageUpload
	for _, header := range r.MultipartForm.File["images"] {
		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") || header.Size > maxImageSize {
			continue
		}

		file, err := header.Open()
		if err != nil {
			closeUploads(uploads)
			return nil, nil, err
		}

		uploads = append(uploads, models.ImageUpload{
			Key:         facades.StorageKey(header.Filename),
			ContentType: contentType,
			Size:        header.Size,
			Body:        file,
		})
	}

	return &form, uploads, nil
}

// closeUploads releases the file handles behind the parsed uploads.
func closeUploads(uploads []models.ImageUpload) {
	for _, upload := range uploads {
		upload.Body.Close()
	}
}

// recipeInput maps the parsed form onto the service input.
func (f *recipeForm) recipeInput() models.RecipeInput {
	return models.RecipeInput{
		Email:              f.Email,
		Title:              f.Title,
		Description:        f.Description,
		Source:             f.Source,
		SourceURL:          f.SourceURL,
		Servings:           f.Servings,
		Cook:               f.Cook,
		DietsSelected:      f.DietsSelected,
		CategoriesSelected: f.CategoriesSelected,
		Ingredients:        f.Ingredients,
		Instructions:       f.Instructions,
	}
}

// validate runs the rule subset matching the present fields and stops
// at the first failure.
func (f *recipeForm) validate() error {
	if err := validation.Email(f.Email); err != nil {
		return err
	}
	if err := validation.Title(f.Title); err != nil {
		return err
	}
	if err := validation.Ingredients(f.Ingredients); err != nil {
		return err
	}
	if err := validation.Instructions(f.Instructions); err != nil {
		return err
	}
	if f.SourceURL != nil && *f.SourceURL != "" {
		if err := validation.SourceURL(*f.SourceURL); err != nil {
			return err
		}
	}
	if f.Servings != nil {
		if err := validation.Servings(*f.Servings); err != nil {
			return err
		}
	}
	if f.Cook != nil {
		if err := validation.CookTime(*f.Cook); err != nil {
			return err
		}
	}
	for _, image := range f.Images {
		if err := validation.ImageURL(image); err != nil {
			return err
		}
	}
	return nil
}

package validation_test

import (
	"testing"

	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantMsg string
	}{
		{"valid", "john@example.com", ""},
		{"valid with dots", "john.doe@mail.example.org", ""},
		{"empty", "", "Email is required"},
		{"missing at", "johnexample.com", "Invalid Email"},
		{"missing tld", "john@example", "Invalid Email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Email(tt.email)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantMsg  string
	}{
		{"valid", "johndoe", ""},
		{"valid max length", "abcdefghijklmnopqrst", ""},
		{"empty", "", "Username is required"},
		{"too short", "john", "Username too short! Minimum 5 chars"},
		{"too long", "abcdefghijklmnopqrstu", "Username too long! Maximum 20 chars"},
		{"digit lead", "1johnny", "Invalid username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Username(tt.username)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"valid", "abc123", ""},
		{"no digit", "abcdef", "Invalid password. Must contain numbers and letters"},
		{"too short", "12345", "Password length must be at least six chars"},
		{"no letter", "123456", "Invalid password. Must contain numbers and letters"},
		{"empty", "", "Password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Password(tt.password)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestConfirmPassword(t *testing.T) {
	assert.NoError(t, validation.ConfirmPassword("abc123", "abc123"))
	assert.EqualError(t, validation.ConfirmPassword("abc124", "abc123"), "Passwords do not match")
	assert.EqualError(t, validation.ConfirmPassword("", "abc123"), "Confirm password is required")
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantMsg string
	}{
		{"valid", "Chocolate Cake", ""},
		{"min length", "Stew", ""},
		{"empty", "", "Title is required"},
		{"too short", "Pie", "Title must be at least four chars"},
		{"too long", "A very very very very very long recipe titleX", ""},
		{"over max", "A very very very very very very long recipe title", "Title is too long! Maximum 45 chars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Title(tt.title)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestServings(t *testing.T) {
	assert.NoError(t, validation.Servings(0))
	assert.NoError(t, validation.Servings(10))
	assert.EqualError(t, validation.Servings(-1), "Servings must be between 1-10")
	assert.EqualError(t, validation.Servings(11), "Servings must be between 1-10")
}

func TestCookTime(t *testing.T) {
	assert.NoError(t, validation.CookTime(0))
	assert.NoError(t, validation.CookTime(45))
	assert.EqualError(t, validation.CookTime(-5), "Invalid cook time")
}

func TestSourceURL(t *testing.T) {
	assert.NoError(t, validation.SourceURL("https://www.example.com/recipes/1"))
	assert.NoError(t, validation.SourceURL("example.com"))
	assert.EqualError(t, validation.SourceURL("not a url"), "Invalid source url")
}

func TestImageURL(t *testing.T) {
	assert.NoError(t, validation.ImageURL("https://cdn.example.com/pic.png"))
	assert.NoError(t, validation.ImageURL("http://cdn.example.com/pic.jpeg"))
	assert.EqualError(t, validation.ImageURL("https://cdn.example.com/pic.bmp"), "Invalid image url")
}

func TestIngredients(t *testing.T) {
	valid := []models.IngredientInput{{Text: "flour", Amount: 2, Unit: "cup"}}
	assert.NoError(t, validation.Ingredients(valid))

	assert.EqualError(t, validation.Ingredients(nil), "Ingredients are required")
	assert.EqualError(t,
		validation.Ingredients([]models.IngredientInput{{Text: "", Amount: 2}}),
		"Invalid ingredient")
	assert.EqualError(t,
		validation.Ingredients([]models.IngredientInput{{Text: "flour", Amount: 0}}),
		"Invalid ingredient")
}

func TestInstructions(t *testing.T) {
	valid := []models.InstructionInput{{Text: "Mix everything"}}
	assert.NoError(t, validation.Instructions(valid))

	assert.EqualError(t, validation.Instructions(nil), "Instructions are required")
	assert.EqualError(t,
		validation.Instructions([]models.InstructionInput{{Text: ""}}),
		"Invalid instruction")
}

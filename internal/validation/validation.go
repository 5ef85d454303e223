package validation

import (
	"fmt"
	"regexp"

	"github.com/recipeshare/server/internal/models"
)

// Error is a field-level validation failure whose message is safe to
// surface verbatim to the client.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

var (
	emailRe     = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	usernameRe  = regexp.MustCompile(`^[a-zA-Z]\S{4,19}$`)
	hasLetterRe = regexp.MustCompile(`[a-zA-Z]`)
	hasDigitRe  = regexp.MustCompile(`[0-9]`)
	urlRe       = regexp.MustCompile(`^(https?://)?(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)
	imageURLRe  = regexp.MustCompile(`^https?://.*\.(?:jpe?g|gif|png)`)
)

// Required fails when value is empty. Name is used in the message.
func Required(name, value string) error {
	if value == "" {
		return newError("%s is required", name)
	}
	return nil
}

// Email checks an RFC-light email shape.
func Email(email string) error {
	if err := Required("Email", email); err != nil {
		return err
	}
	if !emailRe.MatchString(email) {
		return newError("Invalid Email")
	}
	return nil
}

// Username requires an alphabetic first character and length 5-20.
func Username(username string) error {
	if err := Required("Username", username); err != nil {
		return err
	}
	if len(username) < 5 {
		return newError("Username too short! Minimum 5 chars")
	}
	if len(username) > 20 {
		return newError("Username too long! Maximum 20 chars")
	}
	if !usernameRe.MatchString(username) {
		return newError("Invalid username")
	}
	return nil
}

// Password requires at least six characters containing both letters and digits.
func Password(password string) error {
	if err := Required("Password", password); err != nil {
		return err
	}
	if len(password) < 6 {
		return newError("Password length must be at least six chars")
	}
	if !hasLetterRe.MatchString(password) || !hasDigitRe.MatchString(password) {
		return newError("Invalid password. Must contain numbers and letters")
	}
	return nil
}

// ConfirmPassword checks that the confirmation matches a valid password.
func ConfirmPassword(confirmPassword, password string) error {
	if err := Required("Confirm password", confirmPassword); err != nil {
		return err
	}
	if err := Password(password); err != nil {
		return err
	}
	if confirmPassword != password {
		return newError("Passwords do not match")
	}
	return nil
}

// Title bounds the recipe title to [4,45] characters.
func Title(title string) error {
	if err := Required("Title", title); err != nil {
		return err
	}
	if len(title) < 4 {
		return newError("Title must be at least four chars")
	}
	if len(title) > 45 {
		return newError("Title is too long! Maximum 45 chars")
	}
	return nil
}

// SourceURL checks a URL-shaped source link.
func SourceURL(sourceURL string) error {
	if !urlRe.MatchString(sourceURL) {
		return newError("Invalid source url")
	}
	return nil
}

// Servings bounds servings to [0,10].
func Servings(n int) error {
	if n < 0 || n > 10 {
		return newError("Servings must be between 1-10")
	}
	return nil
}

// CookTime rejects negative cook times.
func CookTime(n int) error {
	if n < 0 {
		return newError("Invalid cook time")
	}
	return nil
}

// ImageURL checks an http(s) link to a jpg, jpeg, gif or png.
func ImageURL(image string) error {
	if !imageURLRe.MatchString(image) {
		return newError("Invalid image url")
	}
	return nil
}

// Ingredients requires a non-empty list where every item has text and a
// positive amount.
func Ingredients(ingredients []models.IngredientInput) error {
	if len(ingredients) == 0 {
		return newError("Ingredients are required")
	}
	for _, ingredient := range ingredients {
		if ingredient.Text == "" || ingredient.Amount <= 0 {
			return newError("Invalid ingredient")
		}
	}
	return nil
}

// Instructions requires a non-empty list of non-empty steps.
func Instructions(instructions []models.InstructionInput) error {
	if len(instructions) == 0 {
		return newError("Instructions are required")
	}
	for _, instruction := range instructions {
		if instruction.Text == "" {
			return newError("Invalid instruction")
		}
	}
	return nil
}

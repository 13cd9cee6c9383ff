// Package word normalizes and validates the word tokens accepted by every route.
package word

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"dictko/internal/domain"

	"github.com/go-playground/validator/v10"
)

// MaxLength matches the width of the persisted word column
const MaxLength = 100

// Validation failures. Both wrap domain.ErrValidation.
var (
	ErrEmpty   = fmt.Errorf("%w: word is empty", domain.ErrValidation)
	ErrInvalid = fmt.Errorf("%w: word contains unsupported characters", domain.ErrValidation)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("wordtoken", isWordToken); err != nil {
		panic(err)
	}
	return v
}

// isWordToken accepts letters plus hyphen and apostrophe, with at least one letter
func isWordToken(fl validator.FieldLevel) bool {
	hasLetter := false
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == '-' || r == '\'':
		default:
			return false
		}
	}
	return hasLetter
}

// Normalize trims surrounding whitespace and lowercases the token
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Parse normalizes raw input and validates it as a WordQuery
func Parse(raw string) (string, error) {
	w := Normalize(raw)
	if err := Validate(w); err != nil {
		return "", err
	}
	return w, nil
}

// Validate checks an already normalized token
func Validate(w string) error {
	err := validate.Var(w, fmt.Sprintf("required,max=%d,wordtoken", MaxLength))
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
		return ErrEmpty
	}
	return ErrInvalid
}

// curated is the pool served by the random word endpoint
var curated = []string{
	"serendipity", "eloquent", "ephemeral", "ubiquitous", "magnificent",
	"resilient", "innovative", "fascinating", "extraordinary", "remarkable",
	"sophisticated", "contemporary", "fundamental", "substantial", "impressive",
	"significant", "exceptional", "revolutionary", "unprecedented", "influential",
	"ambitious", "mysterious", "brilliant", "creative", "dynamic",
	"authentic", "versatile", "comprehensive", "distinctive", "memorable",
}

// Random returns a word from the curated list
func Random() string {
	return curated[rand.IntN(len(curated))]
}

// Curated returns a copy of the curated word list
func Curated() []string {
	out := make([]string, len(curated))
	copy(out, curated)
	return out
}

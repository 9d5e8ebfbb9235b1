package validator

import (
	"fmt"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after Trim.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return Trim(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        MessageRequired,
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLenString validates that value has at least min characters.
// Characters are Unicode code points, not bytes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("This field must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// PrimaryPassword validates the length of the password a user chooses at
// sign-up, as opposed to its confirmation field.
func PrimaryPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= PrimaryPasswordMinLength
		},
		Error: ValidationError{
			Field:          field,
			Message:        MessagePasswordTooShort,
			TranslationKey: "validation.password_min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   PrimaryPasswordMinLength,
			},
		},
	}
}

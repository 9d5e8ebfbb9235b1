package validator

import "regexp"

// emailRegex accepts "local@domain.tld" where no part contains whitespace or
// another "@". It is intentionally looser than RFC 5322.
var emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// EmailFormat validates that value looks like an email address.
func EmailFormat(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        MessageInvalidEmail,
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

package validator

import (
	"strings"
	"unicode"
)

// PrimaryPasswordMinLength is the minimum length of a primary password.
const PrimaryPasswordMinLength = 8

// FieldKind is the semantic category of a form input.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindPassword FieldKind = "password"
	KindGeneric  FieldKind = "generic"
)

// KindFromInputType maps an HTML input type attribute to a FieldKind.
// Unknown types, including textarea and select, are Generic.
func KindFromInputType(inputType string) FieldKind {
	switch strings.ToLower(strings.TrimSpace(inputType)) {
	case "text":
		return KindText
	case "email":
		return KindEmail
	case "password":
		return KindPassword
	default:
		return KindGeneric
	}
}

// FieldRule describes the constraints of a single form field.
type FieldRule struct {
	Name      string
	Kind      FieldKind
	Required  bool
	MinLength int  // 0 disables the check
	Primary   bool // primary password role; only meaningful for KindPassword
}

// Result is the verdict for one field value. Message is empty when Valid.
type Result struct {
	Valid   bool
	Message string
}

// Validate checks raw against rule. Rules are evaluated in a fixed order and
// the first failure wins:
//
//  1. email format (non-empty email fields)
//  2. required
//  3. primary password length (non-empty primary password fields)
//  4. minimum length (non-empty values, when MinLength > 0)
//
// The value is trimmed first, so whitespace-only input counts as empty.
// Validate is pure and never fails.
func Validate(rule FieldRule, raw string) Result {
	err := ExtractValidationErrors(First(rule.Rules(raw)...))
	if err.IsEmpty() {
		return Result{Valid: true}
	}
	return Result{Message: err[0].Message}
}

// ValidateField is Validate for callers holding loose parameters. A password
// passed here is treated as the primary password.
func ValidateField(kind FieldKind, required bool, minLength int, raw string) Result {
	return Validate(FieldRule{
		Kind:      kind,
		Required:  required,
		MinLength: minLength,
		Primary:   kind == KindPassword,
	}, raw)
}

// Rules returns the ordered rules that apply to raw.
func (r FieldRule) Rules(raw string) []Rule {
	value := Trim(raw)
	rules := make([]Rule, 0, 4)

	if value != "" && r.Kind == KindEmail {
		rules = append(rules, EmailFormat(r.Name, value))
	}
	if r.Required {
		rules = append(rules, RequiredString(r.Name, value))
	}
	if value != "" && r.Kind == KindPassword && r.Primary {
		rules = append(rules, PrimaryPassword(r.Name, value))
	}
	if value != "" && r.MinLength > 0 {
		rules = append(rules, MinLenString(r.Name, value, r.MinLength))
	}

	return rules
}

// Trim removes leading and trailing whitespace, including the byte order
// mark. NEL (U+0085) is not whitespace here and is kept.
func Trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
	})
}

package forms

import "errors"

var (
	ErrUnknownField   = errors.New("forms: unknown field")
	ErrDuplicateField = errors.New("forms: duplicate field name")
	ErrEmptyFieldName = errors.New("forms: field name must not be empty")
)

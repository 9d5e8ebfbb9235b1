// Package validator decides whether a form field value is acceptable and
// produces the single human-readable message to show next to it.
//
// The package is built from small Rule values that pair a boolean Check with
// translation-friendly error metadata. Apply evaluates every rule and collects
// all failures; First stops at the first failure. Field-level validation is
// layered on top: a FieldRule describes a field (its kind, whether it is
// required, an optional minimum length and the primary-password role) and
// Validate returns a Result with at most one message.
//
// # Precedence
//
// Validate trims the value and evaluates, in order:
//
//  1. email format, for non-empty Email fields
//  2. required, for Required fields
//  3. primary password length (8 characters), for non-empty primary passwords
//  4. minimum length, for non-empty values when MinLength is set
//
// The format check skips empty values, so an empty required email field
// reports "This field is required" and an empty optional email field passes.
//
// # Usage
//
//	res := validator.Validate(validator.FieldRule{
//		Name:     "email",
//		Kind:     validator.KindFromInputType("email"),
//		Required: true,
//	}, input)
//	if !res.Valid {
//		surface.ShowError("email", res.Message)
//	}
//
// Rules can also be combined directly:
//
//	err := validator.Apply(
//		validator.RequiredString("full_name", name),
//		validator.EmailFormat("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// iterate over field-level messages or translate them
//	}
//
// # Error Handling
//
// Validate never fails: every input yields a well-formed Result.
// ValidationErrors implements error so Apply and First results work with
// errors.As.
//
// All functions are pure and safe for concurrent use.
package validator

package validator

// User-facing messages shown next to an invalid form field.
const (
	MessageInvalidEmail     = "Please enter a valid email address"
	MessageRequired         = "This field is required"
	MessagePasswordTooShort = "Password must be at least 8 characters long"
)

package theme

import "errors"

var (
	// ErrNotFound is returned by a Store that holds no preference yet.
	ErrNotFound = errors.New("theme preference not found")

	ErrInvalidTheme = errors.New("invalid theme")
	ErrUnknownStore = errors.New("unknown theme store")
	ErrLoadFailed   = errors.New("failed to load theme preference")
	ErrSaveFailed   = errors.New("failed to save theme preference")
	ErrNilCallback  = errors.New("theme change callback must not be nil")
)

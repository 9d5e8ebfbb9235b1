package theme

import (
	"fmt"
	"strings"
)

// Theme is the colour scheme applied to the document root.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	Default = Light
)

// Valid reports whether t is Light or Dark.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Next is the theme a toggle switches to: Light becomes Dark, anything else
// becomes Light.
func (t Theme) Next() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string { return string(t) }

// Parse accepts "light" or "dark" in any case.
func Parse(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
	return t, nil
}

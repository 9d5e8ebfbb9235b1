// Package forms adds client-side behaviour to HTML forms: inline validation
// when a field loses focus, error clearing while the user types, and a submit
// lock that disables the button and shows "Processing...".
//
// Validation is delegated to the validator package. Display goes through the
// ErrorSurface and Button interfaces so the same Form drives a browser
// bridge, the CLI, or a MemorySurface in tests.
package forms

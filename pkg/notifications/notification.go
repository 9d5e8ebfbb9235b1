package notifications

import (
	"strings"
	"time"
)

// Type is the notification severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// ParseType returns the Type named by s. Unknown names are TypeInfo.
func ParseType(s string) Type {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeSuccess, TypeWarning, TypeError:
		return t
	default:
		return TypeInfo
	}
}

// Class returns the colour classes for a toast of type t. Info and unknown
// types are blue.
func Class(t Type) string {
	switch t {
	case TypeSuccess:
		return "bg-green-100 text-green-800 border border-green-300"
	case TypeError:
		return "bg-red-100 text-red-800 border border-red-300"
	case TypeWarning:
		return "bg-yellow-100 text-yellow-800 border border-yellow-300"
	default:
		return "bg-blue-100 text-blue-800 border border-blue-300"
	}
}

// AlertClass returns the class attribute of a floating alert box.
func AlertClass(t Type) string {
	return "alert alert-" + string(t) + " fixed top-4 right-4 z-50 max-w-sm fade-in"
}

// Notification is a transient message shown in the top right corner.
type Notification struct {
	ID        string
	Type      Type
	Message   string
	CreatedAt time.Time
	// Fading is set once the notification started its fade-out.
	Fading bool
}

// Class is shorthand for Class(n.Type).
func (n Notification) Class() string {
	return Class(n.Type)
}

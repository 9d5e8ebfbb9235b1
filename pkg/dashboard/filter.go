package dashboard

import (
	"strings"

	"golang.org/x/text/cases"
)

// Card is a resume card: its heading is the resume title, the line below it
// the owner's name.
type Card struct {
	ID    string
	Title string
	Name  string
}

// Filter reports, for each card, whether its title or name contains query
// ignoring case. An empty query matches every card.
func Filter(cards []Card, query string) []bool {
	fold := cases.Fold()
	q := fold.String(query)

	visible := make([]bool, len(cards))
	for i, c := range cards {
		visible[i] = strings.Contains(fold.String(c.Title), q) ||
			strings.Contains(fold.String(c.Name), q)
	}
	return visible
}

// HoverTransform is the CSS transform of a card while hovered or at rest.
func HoverTransform(hovered bool) string {
	if hovered {
		return "translateY(-2px)"
	}
	return "translateY(0)"
}

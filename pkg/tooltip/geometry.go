package tooltip

// Gap is the vertical distance in pixels between a tooltip and its anchor.
const Gap = 8.0

// Rect is an element's bounding box in viewport pixels.
type Rect struct {
	Left, Top, Width, Height float64
}

// Size is the rendered size of a tooltip.
type Size struct {
	Width, Height float64
}

// Point is the top-left corner of a positioned tooltip.
type Point struct {
	Left, Top float64
}

// Position centres the tooltip horizontally over anchor and places it Gap
// pixels above it. The result may be negative near the viewport edge.
func Position(anchor Rect, tip Size) Point {
	return Point{
		Left: anchor.Left + anchor.Width/2 - tip.Width/2,
		Top:  anchor.Top - tip.Height - Gap,
	}
}

package tooltip

import "unicode/utf8"

// Box metrics of the default tooltip style: 12px font, 8px by 12px padding.
const (
	fontSize   = 12.0
	charWidth  = fontSize * 0.6
	lineHeight = fontSize * 1.2
	paddingX   = 12.0
	paddingY   = 8.0
)

// EstimateSize approximates the rendered size of a single-line tooltip.
func EstimateSize(text string) Size {
	return Size{
		Width:  float64(utf8.RuneCountInString(text))*charWidth + 2*paddingX,
		Height: lineHeight + 2*paddingY,
	}
}

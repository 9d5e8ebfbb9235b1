// Package tooltip positions hover hints for elements carrying a
// data-tooltip attribute.
//
// Position centres a tooltip above its anchor with an 8px gap. Manager
// tracks the single tooltip each target may have, and Bind drives it from
// mouseenter and mouseleave events.
package tooltip

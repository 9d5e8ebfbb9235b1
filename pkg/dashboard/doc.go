// Package dashboard implements the resume overview page behaviour.
//
// Filter matches resume cards against a search query with Unicode case
// folding. A Dashboard debounces search input so filtering runs once typing
// pauses, keeps the grid/list ViewToggle, and lifts hovered cards with
// HoverTransform.
package dashboard

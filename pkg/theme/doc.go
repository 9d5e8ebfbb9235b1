// Package theme persists and applies the light or dark colour scheme.
//
// A Manager loads the preference from a Store, falls back to Light when
// nothing (or something unrecognised) is stored, and hands every change to an
// Applier that sets the document's data-theme attribute. Toggle flips Light
// to Dark and every other value to Light.
//
// Three stores are provided:
//
//   - MemoryStore keeps the value for the life of the process.
//   - FileStore writes a YAML file and can Watch it for edits made by other
//     processes; bursts of file events are debounced.
//   - RedisStore shares the value through a Redis key.
//
// NewStore picks one from Config, which is loaded from THEME_* variables.
package theme

// Package notifications shows transient toast messages.
//
// A Center renders each notification through a Renderer, dismisses it after
// Config.DismissAfter (5s by default), lets it fade for Config.FadeDuration
// (300ms) and then removes it. A close button dismisses early; Bind wires
// close-button clicks published on an events.Bus.
//
//	center := notifications.NewCenter(renderer, notifications.WithConfig(cfg))
//	defer center.Close()
//
//	n, err := center.Show(ctx, "Resume saved", notifications.TypeSuccess)
//
// Class and AlertClass return the CSS classes for each Type. Unknown types
// render as info.
//
// # Configuration
//
// Config is loaded with the config package from NOTIFICATION_DISMISS_AFTER
// and NOTIFICATION_FADE_DURATION.
package notifications

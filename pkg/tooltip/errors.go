package tooltip

import "errors"

// ErrNoText is returned by Show when the target has no tooltip text.
var ErrNoText = errors.New("tooltip: target has no text")

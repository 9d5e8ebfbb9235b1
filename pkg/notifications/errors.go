package notifications

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrCenterClosed         = errors.New("notification center is closed")
	ErrEmptyMessage         = errors.New("notification message is empty")
	ErrRenderFailed         = errors.New("failed to render notification")
)

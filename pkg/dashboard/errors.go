package dashboard

import "errors"

var (
	ErrUnknownView   = errors.New("dashboard: unknown view")
	ErrDuplicateCard = errors.New("dashboard: duplicate card id")
)

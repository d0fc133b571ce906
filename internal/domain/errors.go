package domain

import "errors"

var (
	ErrCoachNotFound         = errors.New("coach not found")
	ErrClientNotFound        = errors.New("client not found")
	ErrAllSourcesUnavailable = errors.New("all client signal sources unavailable")
)

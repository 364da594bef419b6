package service

import "errors"

var (
	// ErrInvalidInput is returned before any computation when the plan is
	// rejected. The wrapping error carries the offending field.
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrScheduleDrift means the month counter did not reach zero at the end
	// of the last tier.
	ErrScheduleDrift = errors.New("el calendario no cerró en cero meses")
)

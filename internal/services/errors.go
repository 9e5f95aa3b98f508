package services

import "errors"

// Sentinel errors for the service layer. Controllers translate these into
// HTTP 400 / 404; everything else maps to 500.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Package service implements the application services behind the web
// controllers: accounts, scan intake, the result ledger, feedback,
// contact and the CSV audit mirrors.
package service

import "errors"

// Sentinel errors mapped to HTTP responses by the controllers.
var (
	ErrMissingFields    = errors.New("all fields are required")
	ErrEmailTaken       = errors.New("email already registered")
	ErrUnsupportedMedia = errors.New("file type not allowed")
	ErrImageProcessing  = errors.New("error processing the image")
	ErrResultNotFound   = errors.New("result not found")
)

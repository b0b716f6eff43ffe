package domain

import "errors"

var (
	ErrPermissionDenied    = errors.New("location permission not granted")
	ErrSpotNotFound        = errors.New("spot not found")
	ErrUnknownFlag         = errors.New("unknown flag")
	ErrUnknownFilter       = errors.New("unknown list filter")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

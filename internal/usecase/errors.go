package usecase

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	ErrJobNotFound            = errors.New("job not found")
	ErrNoPostingsFound        = errors.New("no postings found")
	ErrPreferenceProfileEmpty = errors.New("preference profile empty")
	ErrAlreadyApplied         = errors.New("already applied")
)

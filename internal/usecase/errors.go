package usecase

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRequestNotFound  = errors.New("mentorship request not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrGenerationFailed = errors.New("question generation failed")
	ErrValidation       = errors.New("validation failed")
	ErrInternal         = errors.New("internal error")
)

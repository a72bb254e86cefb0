package domain

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrDuplicateSubmission = errors.New("answer already submitted for this question")
	ErrUnauthorized        = errors.New("caller lacks the required capability")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrInternal            = errors.New("internal server error")
)

package domain

import "errors"

var (
	// ErrMissingSessionID is returned when a submission carries no session identifier.
	ErrMissingSessionID = errors.New("missing session id")
	// ErrMalformedHistory indicates the answer history is absent or not a well-formed list.
	ErrMalformedHistory = errors.New("answer history is not a well-formed list")
	// ErrUnknownQuiz indicates a quiz kind outside crime/status.
	ErrUnknownQuiz = errors.New("unknown quiz")
	// ErrEmptyHistory is returned by scoring functions that are undefined for zero answers.
	ErrEmptyHistory = errors.New("empty answer history")
)

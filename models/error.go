package models

import "govex/enums"

// ParsedError is the classified form of a failed extraction. It is
// derived purely from the tool's diagnostic text and discarded after
// being surfaced or used to decide a retry.
type ParsedError struct {
	Kind         enums.ErrorKind `json:"kind"`
	Message      string          `json:"message"`
	Retryable    bool            `json:"retryable"`
	Suggestions  []string        `json:"suggestions"`
	OriginalText string          `json:"-"`
}

func (e *ParsedError) Error() string {
	return e.Message
}

package classify

import (
	"strings"

	"govex/enums"
	"govex/models"
	"govex/util"
)

const excerptLimit = 200

// Classify maps raw diagnostic output from the extraction tool to a
// closed error taxonomy. It is a pure function over the lower-cased
// concatenated text and never panics; empty input yields an unknown
// error with an empty excerpt.
func Classify(rawStderr, rawStdout string) *models.ParsedError {
	original := strings.TrimSpace(rawStderr)
	if rawStdout != "" {
		original = strings.TrimSpace(original + "\n" + rawStdout)
	}
	text := strings.ToLower(original)

	if matched, ok := matchRule(text); ok {
		return &models.ParsedError{
			Kind:         matched.kind,
			Message:      matched.message,
			Retryable:    matched.retryable,
			Suggestions:  Suggestions(matched.kind),
			OriginalText: original,
		}
	}

	message := "extraction failed"
	if excerpt := util.Truncate(original, excerptLimit); excerpt != "" {
		message = "extraction failed: " + excerpt
	}
	return &models.ParsedError{
		Kind:         enums.ErrorKindUnknown,
		Message:      message,
		Retryable:    true,
		Suggestions:  Suggestions(enums.ErrorKindUnknown),
		OriginalText: original,
	}
}

// FromError classifies a Go-level error (spawn failure, transport
// failure) the same way tool output is classified.
func FromError(err error) *models.ParsedError {
	if err == nil {
		return Classify("", "")
	}
	// classify the root cause so wrap prefixes cannot mask a phrase
	return Classify(err.Error()+"\n"+util.GetLastError(err).Error(), "")
}

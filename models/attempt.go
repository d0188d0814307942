package models

import (
	"time"

	"govex/enums"

	"github.com/google/uuid"
)

// ExtractionAttempt fully determines one invocation of the extraction
// tool. It is never mutated; retries build a fresh one with an
// incremented RetryAttempt.
type ExtractionAttempt struct {
	ID           string
	URL          string
	Platform     enums.Platform
	Provider     enums.ProviderKind
	UserAgent    string
	Headers      map[string]string
	CookiesFile  string
	ProxyURL     string
	Timeout      time.Duration
	RetryAttempt int
}

func NewExtractionAttempt(
	url string,
	platform enums.Platform,
	provider enums.ProviderKind,
) *ExtractionAttempt {
	return &ExtractionAttempt{
		ID:       uuid.NewString(),
		URL:      url,
		Platform: platform,
		Provider: provider,
	}
}

// WithRetry returns a copy of the attempt for the next retry. The
// original is left untouched.
func (a *ExtractionAttempt) WithRetry(retryAttempt int) *ExtractionAttempt {
	next := *a
	next.ID = uuid.NewString()
	next.RetryAttempt = retryAttempt
	return &next
}

// PlayerClient returns the player client presented to the source
// platform for this attempt, cycling through the rotation order so
// consecutive retries never repeat the same failing fingerprint.
func (a *ExtractionAttempt) PlayerClient() enums.PlayerClient {
	order := enums.PlayerClientOrder
	return order[a.RetryAttempt%len(order)]
}

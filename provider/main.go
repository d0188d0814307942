package provider

import (
	"context"

	"govex/enums"
	"govex/models"
)

// Provider is one extraction backend. Extract returns either a full
// result or an error; classified failures come back as
// *models.ParsedError so the manager can decide retryability.
type Provider interface {
	Name() string
	Kind() enums.ProviderKind

	// Available reports whether the backend is configured and
	// reachable. An unavailable provider is skipped silently; it is
	// "not deployed", not "this video failed".
	Available(ctx context.Context) bool

	Extract(ctx context.Context, url string, retryAttempt int) (*models.ExtractResult, error)
}

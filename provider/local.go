package provider

import (
	"context"

	"govex/engine"
	"govex/enums"
	"govex/models"
	"govex/normalize"
	"govex/platform"
)

// Local runs the extraction tool as a subprocess on this host.
type Local struct {
	engine     *engine.Engine
	normalizer *normalize.Normalizer
}

func NewLocal(e *engine.Engine) *Local {
	return &Local{
		engine:     e,
		normalizer: normalize.New(enums.ProviderKindLocal),
	}
}

func (l *Local) Name() string             { return "yt-dlp" }
func (l *Local) Kind() enums.ProviderKind { return enums.ProviderKindLocal }

// Available is always true: a missing binary must surface as a
// network/setup error with install suggestions, not vanish silently.
func (l *Local) Available(context.Context) bool { return true }

func (l *Local) Extract(ctx context.Context, url string, retryAttempt int) (*models.ExtractResult, error) {
	p := platform.Detect(url)
	attempt := models.NewExtractionAttempt(url, p, enums.ProviderKindLocal)
	attempt.RetryAttempt = retryAttempt
	l.engine.Compose(attempt)

	data, parsedErr := l.engine.Run(ctx, attempt)
	if parsedErr != nil {
		return nil, parsedErr
	}
	return l.normalizer.Normalize(data, p, url)
}

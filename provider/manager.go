package provider

import (
	"context"
	"time"

	"govex/enums"
	"govex/models"
	"govex/util"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	baseBackoff = 500 * time.Millisecond
	maxBackoff  = 2 * time.Second
)

// Manager orchestrates the configured providers in order, retrying
// each on transient failures before falling through to the next.
type Manager struct {
	providers  []Provider
	maxRetries int
	sleep      func(ctx context.Context, d time.Duration) error
}

type ManagerOption func(*Manager)

// WithSleep injects the backoff sleeper, for deterministic tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) ManagerOption {
	return func(m *Manager) {
		m.sleep = sleep
	}
}

func NewManager(providers []Provider, maxRetries int, opts ...ManagerOption) *Manager {
	if maxRetries < 0 {
		maxRetries = 0
	}
	m := &Manager{
		providers:  providers,
		maxRetries: maxRetries,
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Extract runs the full orchestration for one URL: first provider
// success wins; when every provider is exhausted the per-provider
// outcomes are merged into a single aggregated error.
func (m *Manager) Extract(ctx context.Context, url string) (*models.ExtractResult, error) {
	var outcomes []outcome

	for _, p := range m.providers {
		if !p.Available(ctx) {
			zap.S().Debugf("provider %s unavailable, skipping", p.Name())
			continue
		}
		result, err := m.runProvider(ctx, p, url)
		if err == nil {
			result.Provider = p.Name()
			return result, nil
		}
		if errors.Is(err, util.ErrProviderUnavailable) {
			// not deployed, not a user-facing failure
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		outcomes = append(outcomes, outcome{provider: p.Name(), err: err})
	}

	return nil, aggregate(outcomes)
}

// runProvider drives the per-provider retry state machine: attempt,
// back off and retry on transient failures, bail out on content-
// definitive ones or when the same bot wall comes back twice.
func (m *Manager) runProvider(ctx context.Context, p Provider, url string) (*models.ExtractResult, error) {
	var lastErr error
	botHits := 0

	for attempt := 0; ; attempt++ {
		result, err := p.Extract(ctx, url, attempt)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if errors.Is(err, util.ErrProviderUnavailable) {
			return nil, err
		}
		if errors.Is(err, util.ErrNoFormats) {
			// a property of the video, retrying cannot change it
			return nil, err
		}

		var parsed *models.ParsedError
		if errors.As(err, &parsed) {
			if !parsed.Retryable {
				zap.S().Debugf("provider %s: %s is not retryable", p.Name(), parsed.Kind)
				return nil, err
			}
			if parsed.Kind == enums.ErrorKindBotDetection {
				botHits++
				if botHits >= 2 {
					// the platform keeps serving the same wall, a
					// third identity will not get through
					zap.S().Debugf("provider %s: recurring bot detection", p.Name())
					return nil, err
				}
			}
		}

		if attempt >= m.maxRetries {
			return nil, lastErr
		}
		delay := backoffDelay(attempt)
		zap.S().Debugf("provider %s attempt %d failed, retrying in %s: %v",
			p.Name(), attempt, delay, err)
		if sleepErr := m.sleep(ctx, delay); sleepErr != nil {
			return nil, lastErr
		}
	}
}

// backoffDelay doubles from 500ms per attempt, capped at 2s.
func backoffDelay(attempt int) time.Duration {
	delay := baseBackoff << attempt
	if delay > maxBackoff || delay <= 0 {
		return maxBackoff
	}
	return delay
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package engine

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"govex/classify"
	"govex/config"
	"govex/cookies"
	"govex/enums"
	"govex/fingerprint"
	"govex/models"
	"govex/proxy"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Engine builds and executes yt-dlp invocations. Both execution modes
// run the process under a hard deadline that kills it on expiry; a
// leaked process would eat worker slots under load.
type Engine struct {
	binPath       string
	rotator       *fingerprint.Rotator
	cookieStore   *cookies.Store
	proxies       *proxy.Pool
	forceIPv4     bool
	timeout       time.Duration
	streamTimeout time.Duration
}

func New(
	binPath string,
	rotator *fingerprint.Rotator,
	cookieStore *cookies.Store,
	proxies *proxy.Pool,
	forceIPv4 bool,
	timeout time.Duration,
	streamTimeout time.Duration,
) *Engine {
	return &Engine{
		binPath:       binPath,
		rotator:       rotator,
		cookieStore:   cookieStore,
		proxies:       proxies,
		forceIPv4:     forceIPv4,
		timeout:       timeout,
		streamTimeout: streamTimeout,
	}
}

func NewFromEnv(
	rotator *fingerprint.Rotator,
	cookieStore *cookies.Store,
	proxies *proxy.Pool,
) *Engine {
	return New(
		config.Env.YtdlpPath,
		rotator,
		cookieStore,
		proxies,
		config.Env.ForceIPv4,
		config.Env.RequestTimeout,
		config.Env.StreamTimeout,
	)
}

// Compose fills the attempt with a fresh browser identity, coherent
// headers, a resolved cookie file and a proxy picked from the pool.
// An attempt is composed exactly once; retries compose a new one so
// consecutive tries present different fingerprints.
func (e *Engine) Compose(attempt *models.ExtractionAttempt) {
	identity := e.rotator.Pick(nil)
	attempt.UserAgent = identity.UserAgent
	attempt.Headers = fingerprint.GenerateHeaders(identity, attempt.Platform, attempt.URL, "", "")
	attempt.CookiesFile = e.cookieStore.Resolve(attempt.Platform)
	attempt.ProxyURL = e.proxies.PickRandom()
	if attempt.Timeout == 0 {
		attempt.Timeout = e.timeout
	}
}

// Run executes the attempt in buffered mode: wait for the full
// output, hand back the raw JSON document, or classify the failure.
func (e *Engine) Run(ctx context.Context, attempt *models.ExtractionAttempt) ([]byte, *models.ParsedError) {
	timeout := attempt.Timeout
	if timeout == 0 {
		timeout = e.timeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := e.BuildArgs(attempt, false)
	zap.S().Debugf("attempt %s: %s %v", attempt.ID, e.binPath, args)

	cmd := exec.CommandContext(runCtx, e.binPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// short grace period before the process is killed outright
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	if err != nil {
		parsed := e.classifyRunError(runCtx, err, stderr.String(), stdout.String())
		e.reportProxyOutcome(attempt, parsed)
		return nil, parsed
	}
	e.reportProxyOutcome(attempt, nil)

	data := stdout.Bytes()
	if !gjson.ValidBytes(data) {
		zap.S().Warnf("attempt %s produced invalid JSON (%d bytes)", attempt.ID, len(data))
		return nil, classify.Classify("failed to parse tool output as JSON", stdout.String())
	}
	return data, nil
}

func (e *Engine) classifyRunError(
	runCtx context.Context,
	err error,
	rawStderr string,
	rawStdout string,
) *models.ParsedError {
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return timeoutError()
	}
	if isSpawnError(err) {
		return &models.ParsedError{
			Kind:      enums.ErrorKindNetworkError,
			Message:   "extraction tool could not be started",
			Retryable: true,
			Suggestions: []string{
				"install yt-dlp and make sure it is on PATH",
				"set YTDLP_PATH to the binary location",
			},
			OriginalText: err.Error(),
		}
	}
	return classify.Classify(rawStderr, rawStdout)
}

func timeoutError() *models.ParsedError {
	parsed := classify.Classify("extraction timed out", "")
	parsed.Kind = enums.ErrorKindTimeout
	return parsed
}

// isSpawnError distinguishes "the tool never ran" from "the tool ran
// and failed", so misconfiguration surfaces as a network/setup error
// rather than a content error.
func isSpawnError(err error) bool {
	var execErr *exec.Error
	return errors.Is(err, exec.ErrNotFound) || errors.As(err, &execErr)
}

// reportProxyOutcome blames the proxy only for transport-level
// failures. A private or removed video says nothing about the proxy
// that carried the request.
func (e *Engine) reportProxyOutcome(attempt *models.ExtractionAttempt, parsed *models.ParsedError) {
	if attempt.ProxyURL == "" {
		return
	}
	if parsed == nil {
		e.proxies.ReportOutcome(attempt.ProxyURL, true, nil)
		return
	}
	switch parsed.Kind {
	case enums.ErrorKindNetworkError, enums.ErrorKindTimeout:
		e.proxies.ReportOutcome(attempt.ProxyURL, false, parsed)
	}
}

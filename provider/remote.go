package provider

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"govex/classify"
	"govex/enums"
	"govex/models"
	"govex/normalize"
	"govex/platform"
	"govex/util"
	"govex/util/networking"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const healthTimeout = 5 * time.Second

// Remote talks to a deployed yt-dlp sidecar service over HTTP.
// Connectivity failures are deliberately treated as "provider not
// deployed" and skipped, while errors the service reports about the
// target video are surfaced; unifying the two would turn every
// un-deployed sidecar into a user-facing failure.
type Remote struct {
	baseURL    string
	client     *http.Client
	normalizer *normalize.Normalizer
}

func NewRemote(baseURL string, client *http.Client) *Remote {
	if client == nil {
		client = networking.GetDefaultHTTPClient()
	}
	return &Remote{
		baseURL:    baseURL,
		client:     client,
		normalizer: normalize.New(enums.ProviderKindRemote),
	}
}

func (r *Remote) Name() string             { return "yt-dlp-service" }
func (r *Remote) Kind() enums.ProviderKind { return enums.ProviderKindRemote }

func (r *Remote) Available(ctx context.Context) bool {
	if r.baseURL == "" {
		return false
	}
	healthCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(healthCtx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		zap.S().Debugf("extraction service unreachable: %v", err)
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false
	}
	return gjson.GetBytes(body, "ytdlp_available").Bool()
}

type extractRequest struct {
	URL string `json:"url"`
}

func (r *Remote) Extract(ctx context.Context, url string, retryAttempt int) (*models.ExtractResult, error) {
	payload, err := sonic.ConfigFastest.Marshal(&extractRequest{URL: url})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode extract request")
	}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		r.baseURL+"/extract",
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build extract request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		if isConnectivityError(err) {
			// service configured but not deployed: skip, don't surface
			zap.S().Warnf("extraction service unreachable, skipping: %v", err)
			return nil, util.ErrProviderUnavailable
		}
		return nil, classify.FromError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify.FromError(err)
	}
	if resp.StatusCode != http.StatusOK {
		detail := gjson.GetBytes(body, "detail").String()
		if detail == "" {
			detail = string(body)
		}
		return nil, classify.Classify(detail, "")
	}
	return r.normalizer.Normalize(body, platform.Detect(url), url)
}

// isConnectivityError matches transport-level failures that mean the
// service itself is absent, as opposed to failures the service
// produced while extracting.
func isConnectivityError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

package proxy

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync"
	"time"

	"govex/util/networking"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// failures tolerated before a proxy is pulled out of rotation
const unhealthyThreshold = 3

const probeTimeout = 5 * time.Second

type Status struct {
	URL          string    `json:"url"`
	Healthy      bool      `json:"healthy"`
	FailureCount int       `json:"failure_count"`
	LastChecked  time.Time `json:"last_checked,omitzero"`
	LastError    string    `json:"last_error,omitempty"`
}

// Pool tracks a fixed set of proxy endpoints with failure
// bookkeeping. Membership is set once at construction; only health
// state mutates afterwards.
type Pool struct {
	mu      sync.Mutex
	members []*Status
	randFn  func(n int) int
}

func NewPool(proxyURLs []string) *Pool {
	pool := &Pool{
		randFn: rand.IntN,
	}
	for _, raw := range proxyURLs {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Host == "" {
			zap.S().Warnf("skipping malformed proxy URL: %s", raw)
			continue
		}
		pool.members = append(pool.members, &Status{
			URL:     raw,
			Healthy: true,
		})
	}
	return pool
}

// PickRandom returns a healthy proxy chosen uniformly at random, or
// an empty string when none is available. Callers treat an empty
// result as "proceed without a proxy", never as an error.
func (p *Pool) PickRandom() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	healthy := lo.Filter(p.members, func(m *Status, _ int) bool {
		return m.Healthy
	})
	if len(healthy) == 0 {
		return ""
	}
	return healthy[p.randFn(len(healthy))].URL
}

// ReportOutcome records the result of one extraction attempt through
// the given proxy. A success zeroes the failure count; the third
// consecutive failure marks the proxy unhealthy.
func (p *Pool) ReportOutcome(proxyURL string, success bool, attemptErr error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	member, ok := lo.Find(p.members, func(m *Status) bool {
		return m.URL == proxyURL
	})
	if !ok {
		return
	}
	member.LastChecked = time.Now()
	if success {
		member.FailureCount = 0
		member.Healthy = true
		member.LastError = ""
		return
	}
	member.FailureCount++
	if attemptErr != nil {
		member.LastError = attemptErr.Error()
	}
	if member.FailureCount >= unhealthyThreshold && member.Healthy {
		member.Healthy = false
		zap.S().Warnf("proxy %s marked unhealthy after %d failures", proxyURL, member.FailureCount)
	}
}

// ResetAll returns every member to the healthy state.
func (p *Pool) ResetAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, member := range p.members {
		member.Healthy = true
		member.FailureCount = 0
		member.LastError = ""
	}
}

func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.members)
}

// Snapshot returns a copy of the pool state for the health surface.
func (p *Pool) Snapshot() []Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	snapshot := make([]Status, 0, len(p.members))
	for _, member := range p.members {
		snapshot = append(snapshot, *member)
	}
	return snapshot
}

// Probe checks every member against the given URL in the background.
// Best effort only: results feed the same outcome bookkeeping, and a
// probe failure never panics or blocks the caller.
func (p *Pool) Probe(ctx context.Context, targetURL string) {
	p.mu.Lock()
	urls := lo.Map(p.members, func(m *Status, _ int) string { return m.URL })
	p.mu.Unlock()

	for _, proxyURL := range urls {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					zap.S().Errorf("proxy probe panic for %s: %v", proxyURL, r)
				}
			}()
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			defer cancel()

			client := networking.NewProxyClient(proxyURL, probeTimeout)
			req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, targetURL, nil)
			if err != nil {
				return
			}
			resp, err := client.Do(req)
			if err != nil {
				p.ReportOutcome(proxyURL, false, err)
				return
			}
			resp.Body.Close()
			p.ReportOutcome(proxyURL, true, nil)
		}()
	}
}

package networking

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	defaultClient     *http.Client
	defaultClientOnce sync.Once
)

func GetDefaultHTTPClient() *http.Client {
	defaultClientOnce.Do(func() {
		defaultClient = &http.Client{
			Transport: GetBaseTransport(false),
			Timeout:   60 * time.Second,
		}
	})
	return defaultClient
}

func GetBaseTransport(forceIPv4 bool) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	dialContext := dialer.DialContext
	if forceIPv4 {
		dialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if network == "tcp" {
				network = "tcp4"
			}
			return dialer.DialContext(ctx, network, addr)
		}
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   100,
		ResponseHeaderTimeout: 10 * time.Second,
	}
}

// NewProxyClient returns a client routing all traffic through the
// given proxy URL. An unparsable proxy falls back to the default
// client so a bad pool entry never breaks a request outright.
func NewProxyClient(proxyURL string, timeout time.Duration) *http.Client {
	parsed, err := url.Parse(proxyURL)
	if err != nil || parsed.Host == "" {
		zap.S().Warnf("invalid proxy URL %q: %v", proxyURL, err)
		return GetDefaultHTTPClient()
	}
	transport := GetBaseTransport(false)
	transport.Proxy = http.ProxyURL(parsed)
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"govex/models"

	"go.uber.org/zap"
)

var Env = GetDefaultConfig()

func LoadEnv() {
	if value := os.Getenv("YTDLP_PATH"); value != "" {
		Env.YtdlpPath = value
	}
	if value := os.Getenv("COOKIES_DIR"); value != "" {
		Env.CookiesDir = value
	}
	if value := os.Getenv("YTDLP_COOKIES_FILE"); value != "" {
		Env.GlobalCookies = value
	}
	if value := os.Getenv("YTDLP_SERVICE_URL"); value != "" {
		Env.ServiceBaseURL = strings.TrimSuffix(value, "/")
	}
	if value := os.Getenv("THIRDPARTY_API_URL"); value != "" {
		Env.ThirdPartyAPIURL = value
	}
	if value := os.Getenv("THIRDPARTY_API_KEY"); value != "" {
		Env.ThirdPartyAPIKey = value
	}
	if value := os.Getenv("REQUEST_TIMEOUT_MS"); value != "" {
		if ms, err := strconv.Atoi(value); err == nil {
			Env.RequestTimeout = time.Duration(ms) * time.Millisecond
		} else {
			zap.S().Fatal("REQUEST_TIMEOUT_MS env is not a valid integer")
		}
	}
	if value := os.Getenv("STREAM_TIMEOUT_MS"); value != "" {
		if ms, err := strconv.Atoi(value); err == nil {
			Env.StreamTimeout = time.Duration(ms) * time.Millisecond
		} else {
			zap.S().Fatal("STREAM_TIMEOUT_MS env is not a valid integer")
		}
	}
	if value := os.Getenv("MAX_RETRIES"); value != "" {
		if retries, err := strconv.Atoi(value); err == nil {
			Env.MaxRetries = retries
		} else {
			zap.S().Fatal("MAX_RETRIES env is not a valid integer")
		}
	}
	if value := os.Getenv("PROXY_LIST"); value != "" {
		Env.ProxyList = parseProxyList(value)
	}
	if value := os.Getenv("FORCE_IPV4"); value != "" {
		if forceIPv4, err := strconv.ParseBool(value); err == nil {
			Env.ForceIPv4 = forceIPv4
		} else {
			zap.S().Fatal("FORCE_IPV4 env is not a valid boolean")
		}
	}
	if value := os.Getenv("PORT"); value != "" {
		if port, err := strconv.Atoi(value); err == nil {
			Env.Port = port
		} else {
			zap.S().Fatal("PORT env is not a valid integer")
		}
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		Env.LogLevel = value
	}
}

// PlatformCookiesEnv returns the per-platform cookie file override,
// e.g. COOKIES_FILE_YOUTUBE.
func PlatformCookiesEnv(platform string) string {
	return os.Getenv("COOKIES_FILE_" + strings.ToUpper(platform))
}

func parseProxyList(value string) []string {
	var proxies []string
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		proxies = append(proxies, entry)
	}
	return proxies
}

func GetDefaultConfig() *models.EnvConfig {
	return &models.EnvConfig{
		YtdlpPath:  "yt-dlp",
		CookiesDir: "cookies",

		RequestTimeout: 60 * time.Second,
		StreamTimeout:  120 * time.Second,
		MaxRetries:     3,

		Port:     8080,
		LogLevel: "info",
	}
}

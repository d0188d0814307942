package models

import "time"

type EnvConfig struct {
	YtdlpPath      string
	CookiesDir     string
	GlobalCookies  string
	ServiceBaseURL string

	ThirdPartyAPIURL string
	ThirdPartyAPIKey string

	RequestTimeout time.Duration
	StreamTimeout  time.Duration
	MaxRetries     int

	ProxyList []string
	ForceIPv4 bool

	Port     int
	LogLevel string
}

type PlatformConfig struct {
	CookiesFile string `yaml:"cookies_file"`
	Referer     string `yaml:"referer"`
	Origin      string `yaml:"origin"`
	HTTPProxy   string `yaml:"http_proxy"`
	IsDisabled  bool   `yaml:"disabled"`
}

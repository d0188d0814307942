package platform

import (
	"net/url"
	"strings"

	"govex/enums"

	"golang.org/x/net/publicsuffix"
)

var hostPlatforms = map[string]enums.Platform{
	"youtube":   enums.PlatformYouTube,
	"youtu":     enums.PlatformYouTube,
	"tiktok":    enums.PlatformTikTok,
	"instagram": enums.PlatformInstagram,
	"twitter":   enums.PlatformTwitter,
	"x":         enums.PlatformTwitter,
	"facebook":  enums.PlatformFacebook,
	"fb":        enums.PlatformFacebook,
}

// Detect maps a video URL to the platform it belongs to, falling back
// to the generic platform for anything unrecognized.
func Detect(rawURL string) enums.Platform {
	base, err := extractBaseHost(rawURL)
	if err != nil {
		return enums.PlatformGeneric
	}
	if p, ok := hostPlatforms[base]; ok {
		return p
	}
	return enums.PlatformGeneric
}

func extractBaseHost(rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	host := parsedURL.Hostname()
	etld, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// bare hosts like localhost have no eTLD+1
		etld = host
	}
	parts := strings.Split(etld, ".")
	return parts[0], nil
}

type refererOrigin struct {
	Referer string
	Origin  string
}

var defaultReferers = map[enums.Platform]refererOrigin{
	enums.PlatformYouTube:   {"https://www.youtube.com/", "https://www.youtube.com"},
	enums.PlatformTikTok:    {"https://www.tiktok.com/", "https://www.tiktok.com"},
	enums.PlatformInstagram: {"https://www.instagram.com/", "https://www.instagram.com"},
	enums.PlatformTwitter:   {"https://x.com/", "https://x.com"},
	enums.PlatformFacebook:  {"https://www.facebook.com/", "https://www.facebook.com"},
}

// DefaultReferer returns the platform's default Referer and Origin
// pair, or empty strings for platforms without one.
func DefaultReferer(p enums.Platform) (string, string) {
	if ro, ok := defaultReferers[p]; ok {
		return ro.Referer, ro.Origin
	}
	return "", ""
}

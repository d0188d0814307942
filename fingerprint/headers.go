package fingerprint

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"

	"govex/enums"
	"govex/platform"
)

var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9,es;q=0.8",
	"en-US,en;q=0.8,de;q=0.6",
}

// GenerateHeaders builds a browser-coherent header set for the given
// identity and platform. Chromium identities get Client Hints; every
// identity gets a top-level-navigation Sec-Fetch set. Referer and
// Origin fall back to the platform defaults when not supplied.
func GenerateHeaders(
	identity Identity,
	p enums.Platform,
	rawURL string,
	referer string,
	origin string,
) map[string]string {
	headers := map[string]string{
		"User-Agent":      identity.UserAgent,
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		"Accept-Language": acceptLanguages[rand.IntN(len(acceptLanguages))],
		"Accept-Encoding": "gzip, deflate, br",
	}

	if isChromium(identity) {
		mobileHint := "?0"
		uaPlatform := identity.OS
		if identity.Mobile {
			mobileHint = "?1"
		}
		headers["Sec-Ch-Ua"] = clientHintBrands(identity)
		headers["Sec-Ch-Ua-Mobile"] = mobileHint
		headers["Sec-Ch-Ua-Platform"] = fmt.Sprintf("%q", uaPlatform)
		headers["Sec-Fetch-Dest"] = "document"
		headers["Sec-Fetch-Mode"] = "navigate"
		headers["Sec-Fetch-Site"] = "none"
		headers["Sec-Fetch-User"] = "?1"
		headers["Upgrade-Insecure-Requests"] = "1"
	}

	defaultReferer, defaultOrigin := platform.DefaultReferer(p)
	if defaultReferer == "" && rawURL != "" {
		// unrecognized platforms fall back to the target's own origin
		if parsed, err := url.Parse(rawURL); err == nil && parsed.Host != "" {
			defaultOrigin = parsed.Scheme + "://" + parsed.Host
			defaultReferer = defaultOrigin + "/"
		}
	}
	if referer == "" {
		referer = defaultReferer
	}
	if origin == "" {
		origin = defaultOrigin
	}
	if referer != "" {
		headers["Referer"] = referer
	}
	if origin != "" {
		headers["Origin"] = origin
	}
	return headers
}

func isChromium(identity Identity) bool {
	switch identity.Browser {
	case "chrome", "edge", "samsung":
		return true
	}
	return strings.Contains(identity.UserAgent, "Chrome/")
}

func clientHintBrands(identity Identity) string {
	switch identity.Browser {
	case "edge":
		return fmt.Sprintf(`"Microsoft Edge";v="%s", "Chromium";v="%s", "Not_A Brand";v="24"`,
			identity.Version, identity.Version)
	default:
		return fmt.Sprintf(`"Google Chrome";v="%s", "Chromium";v="%s", "Not_A Brand";v="24"`,
			identity.Version, identity.Version)
	}
}

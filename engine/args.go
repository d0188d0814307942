package engine

import (
	"fmt"
	"net/url"
	"sort"

	"govex/enums"
	"govex/models"
)

var baseArgs = []string{
	"--dump-json",
	"--no-warnings",
	"--no-playlist",
}

var streamBaseArgs = []string{
	"--output", "-",
	"--quiet",
	"--no-warnings",
	"--no-playlist",
}

// BuildArgs assembles the yt-dlp argument vector for one attempt.
// Header, cookie and proxy args are only emitted when the attempt
// actually carries them, and the proxy is dropped unless it parses as
// a well-formed URL.
func (e *Engine) BuildArgs(attempt *models.ExtractionAttempt, streaming bool) []string {
	args := make([]string, 0, 32)
	if streaming {
		args = append(args, streamBaseArgs...)
	} else {
		args = append(args, baseArgs...)
	}

	if attempt.UserAgent != "" {
		args = append(args, "--user-agent", attempt.UserAgent)
	}
	args = append(args, headerArgs(attempt.Headers)...)

	if attempt.CookiesFile != "" {
		args = append(args, "--cookies", attempt.CookiesFile)
	}
	if attempt.ProxyURL != "" && isWellFormedProxy(attempt.ProxyURL) {
		args = append(args, "--proxy", attempt.ProxyURL)
	}
	if e.forceIPv4 {
		args = append(args, "--force-ipv4")
	}

	if attempt.Platform == enums.PlatformYouTube {
		args = append(args, youtubeArgs(attempt)...)
	}

	args = append(args, attempt.URL)
	return args
}

// youtubeArgs selects the player client for this retry and adds the
// extractor tweaks that keep Shorts and regular videos extractable.
func youtubeArgs(attempt *models.ExtractionAttempt) []string {
	client := attempt.PlayerClient()
	return []string{
		"--extractor-args", fmt.Sprintf("youtube:player_client=%s", client),
		"--extractor-args", "youtube:player_params=8AEB",
		"--extractor-args", "youtube:include_live_chat=false",
		"--extractor-args", "youtube:skip=dash,translated_subs",
	}
}

func headerArgs(headers map[string]string) []string {
	if len(headers) == 0 {
		return nil
	}
	names := make([]string, 0, len(headers))
	for name := range headers {
		// yt-dlp gets the user agent through its own flag
		if name == "User-Agent" {
			continue
		}
		names = append(names, name)
	}
	// stable order keeps the invocation reproducible in logs
	sort.Strings(names)

	args := make([]string, 0, len(names)*2)
	for _, name := range names {
		args = append(args, "--add-header", name+":"+headers[name])
	}
	return args
}

func isWellFormedProxy(proxyURL string) bool {
	parsed, err := url.Parse(proxyURL)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

package classify

import (
	"strings"

	"govex/enums"
)

// rule is one ordered pattern check. Rules are evaluated top to
// bottom and the first match wins; order matters because trigger
// phrases overlap (a private video behind a captcha must classify as
// bot detection, not private).
type rule struct {
	kind      enums.ErrorKind
	phrases   []string
	retryable bool
	message   string
}

var rules = []rule{
	{
		kind: enums.ErrorKindBotDetection,
		phrases: []string{
			"sign in to confirm",
			"not a bot",
			"captcha",
			"challenge",
			"unusual traffic",
		},
		retryable: true,
		message:   "the platform flagged this request as automated",
	},
	{
		kind: enums.ErrorKindGeoBlock,
		phrases: []string{
			"not available in your country",
			"geo-blocked",
			"geo restricted",
			"region locked",
			"blocked in your region",
		},
		retryable: true,
		message:   "this video is not available from the current region",
	},
	{
		kind: enums.ErrorKindLoginRequired,
		phrases: []string{
			"private video",
			"sign in to view",
			"login required",
			"authentication required",
			"logged-in",
		},
		retryable: true,
		message:   "this video requires a signed-in account",
	},
	{
		kind: enums.ErrorKindRateLimit,
		phrases: []string{
			"429",
			"too many requests",
			"rate limit",
			"quota exceeded",
		},
		retryable: true,
		message:   "the platform is rate limiting extraction requests",
	},
	{
		kind: enums.ErrorKindVideoNotFound,
		phrases: []string{
			"video unavailable",
			"404",
			"video not found",
			"has been removed",
			"removed",
			"does not exist",
			"no longer available",
		},
		retryable: false,
		message:   "this video does not exist or has been removed",
	},
	{
		kind: enums.ErrorKindPrivateVideo,
		phrases: []string{
			"private",
			"unlisted",
			"members only",
			"members-only",
		},
		retryable: false,
		message:   "this video is private",
	},
	{
		kind: enums.ErrorKindAgeRestricted,
		phrases: []string{
			"age restricted",
			"age-restricted",
			"age verification",
			"confirm your age",
		},
		retryable: true,
		message:   "this video is age restricted",
	},
	{
		kind: enums.ErrorKindTimeout,
		phrases: []string{
			"timeout",
			"timed out",
		},
		retryable: true,
		message:   "the extraction attempt timed out",
	},
	{
		kind: enums.ErrorKindNetworkError,
		phrases: []string{
			"network",
			"connection",
			"dns",
			"econnrefused",
			"econnreset",
			"unreachable",
		},
		retryable: true,
		message:   "a network error occurred while reaching the platform",
	},
}

func matchRule(text string) (rule, bool) {
	for _, r := range rules {
		for _, phrase := range r.phrases {
			if strings.Contains(text, phrase) {
				return r, true
			}
		}
	}
	return rule{}, false
}

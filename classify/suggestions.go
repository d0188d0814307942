package classify

import "govex/enums"

var suggestions = map[enums.ErrorKind][]string{
	enums.ErrorKindBotDetection: {
		"wait a few minutes before retrying",
		"provide a cookies file exported from a signed-in browser session",
		"rotate to a different proxy or IP address",
	},
	enums.ErrorKindGeoBlock: {
		"use a proxy located in a region where the video is available",
		"check whether the uploader restricted the video to specific countries",
	},
	enums.ErrorKindLoginRequired: {
		"provide a cookies file exported from an account that can view this video",
		"verify the account has access to this content",
	},
	enums.ErrorKindRateLimit: {
		"wait before sending more extraction requests",
		"spread requests across multiple proxies",
	},
	enums.ErrorKindVideoNotFound: {
		"double-check the video URL",
		"the video may have been deleted by the uploader or the platform",
	},
	enums.ErrorKindPrivateVideo: {
		"private videos can only be extracted with cookies from an authorized account",
	},
	enums.ErrorKindAgeRestricted: {
		"provide cookies from an age-verified account",
	},
	enums.ErrorKindTimeout: {
		"retry the extraction",
		"increase the request timeout if the platform is consistently slow",
	},
	enums.ErrorKindNetworkError: {
		"check the network connection and DNS resolution",
		"verify the proxy endpoint is reachable",
		"retry the extraction",
	},
	enums.ErrorKindUnknown: {
		"retry the extraction",
		"check the diagnostic excerpt for platform-specific hints",
	},
}

// Suggestions returns the fixed remediation list for a kind. The
// returned slice is shared; callers must not mutate it.
func Suggestions(kind enums.ErrorKind) []string {
	return suggestions[kind]
}

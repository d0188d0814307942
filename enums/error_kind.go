package enums

type ErrorKind string

const (
	ErrorKindBotDetection  ErrorKind = "bot_detection"
	ErrorKindGeoBlock      ErrorKind = "geo_block"
	ErrorKindLoginRequired ErrorKind = "login_required"
	ErrorKindRateLimit     ErrorKind = "rate_limit"
	ErrorKindVideoNotFound ErrorKind = "video_not_found"
	ErrorKindPrivateVideo  ErrorKind = "private_video"
	ErrorKindAgeRestricted ErrorKind = "age_restricted"
	ErrorKindTimeout       ErrorKind = "timeout"
	ErrorKindNetworkError  ErrorKind = "network_error"
	ErrorKindUnknown       ErrorKind = "unknown"
)

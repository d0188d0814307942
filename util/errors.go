package util

type Error struct {
	Message string
}

func (err *Error) Error() string {
	return err.Message
}

var (
	ErrNoFormats           = &Error{Message: "no downloadable formats found for this video"}
	ErrProviderUnavailable = &Error{Message: "extraction provider is not configured or unreachable"}
	ErrUnsupportedShape    = &Error{Message: "unrecognized extraction tool output"}
	ErrToolNotFound        = &Error{Message: "yt-dlp binary not found in PATH"}
	ErrStreamClosed        = &Error{Message: "stream already closed"}
)

package normalize

import (
	"strings"

	"govex/enums"
)

func parseVideoCodec(codecs string) enums.MediaCodec {
	codecs = strings.ToLower(codecs)
	switch {
	case codecs == "", codecs == "none":
		return ""
	case strings.Contains(codecs, "avc"), strings.Contains(codecs, "h264"):
		return enums.MediaCodecAVC
	case strings.Contains(codecs, "hvc"), strings.Contains(codecs, "hev"),
		strings.Contains(codecs, "h265"):
		return enums.MediaCodecHEVC
	case strings.Contains(codecs, "av01"), strings.Contains(codecs, "av1"):
		return enums.MediaCodecAV1
	case strings.Contains(codecs, "vp9"), strings.Contains(codecs, "vp09"):
		return enums.MediaCodecVP9
	case strings.Contains(codecs, "vp8"):
		return enums.MediaCodecVP8
	default:
		// an unrecognized but present vcodec still means video
		return enums.MediaCodec(codecs)
	}
}

func parseAudioCodec(codecs string) enums.MediaCodec {
	codecs = strings.ToLower(codecs)
	switch {
	case codecs == "", codecs == "none":
		return ""
	case strings.Contains(codecs, "mp4a"), strings.Contains(codecs, "aac"):
		return enums.MediaCodecAAC
	case strings.Contains(codecs, "opus"):
		return enums.MediaCodecOpus
	case strings.Contains(codecs, "vorbis"):
		return enums.MediaCodecVorbis
	case strings.Contains(codecs, "mp3"):
		return enums.MediaCodecMP3
	case strings.Contains(codecs, "flac"):
		return enums.MediaCodecFLAC
	default:
		return enums.MediaCodec(codecs)
	}
}

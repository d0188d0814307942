package normalize

import (
	"strings"

	"govex/enums"
	"govex/models"
	"govex/util"

	"github.com/guregu/null/v6/zero"
	"github.com/tidwall/gjson"
)

// candidate is a raw format entry before filtering and ranking.
type candidate struct {
	url       string
	ext       string
	mimeType  string
	protocol  string
	vcodec    enums.MediaCodec
	acodec    enums.MediaCodec
	height    int64
	label     string
	sizeBytes int64
	audioOnly bool
}

// shapeDetector recognizes one documented raw-output variant. The
// detectors are tried in order and the first match wins, so the most
// specific shapes come first.
type shapeDetector struct {
	name    string
	matches func(root gjson.Result) bool
	parse   func(root gjson.Result, p enums.Platform, requestedURL string) (*models.VideoInfo, []candidate)
}

var detectors []shapeDetector

// populated here rather than in the var declaration: the wrapped
// detector recurses through detectShape, which reads this slice.
func init() {
	detectors = []shapeDetector{
		{
			name:    "wrapped",
			matches: func(root gjson.Result) bool { return root.Get("data").IsObject() },
			parse:   parseWrapped,
		},
		{
			name:    "medias",
			matches: func(root gjson.Result) bool { return root.Get("medias").IsArray() },
			parse:   parseMedias,
		},
		{
			name: "flat",
			matches: func(root gjson.Result) bool {
				return root.Get("url").Exists() || root.Get("formats").IsArray()
			},
			parse: parseFlat,
		},
	}
}

func detectShape(root gjson.Result) (shapeDetector, bool) {
	for _, detector := range detectors {
		if detector.matches(root) {
			return detector, true
		}
	}
	return shapeDetector{}, false
}

// parseWrapped unwraps a data.* envelope and re-runs detection on the
// inner document.
func parseWrapped(root gjson.Result, p enums.Platform, requestedURL string) (*models.VideoInfo, []candidate) {
	inner := root.Get("data")
	if detector, ok := detectShape(inner); ok {
		return detector.parse(inner, p, requestedURL)
	}
	return parseFlat(inner, p, requestedURL)
}

// parseFlat handles native yt-dlp --dump-json output: one merged
// top-level format plus an optional formats array of alternates.
func parseFlat(root gjson.Result, p enums.Platform, requestedURL string) (*models.VideoInfo, []candidate) {
	info := &models.VideoInfo{
		Title:     firstString(root, "title", "fulltitle"),
		Thumbnail: flatThumbnail(root),
		Duration:  root.Get("duration").Int(),
		Author:    firstString(root, "uploader", "channel", "creator", "uploader_id"),
		Platform:  p,
		URL:       util.FixURL(firstString(root, "webpage_url", "original_url")),

		Description: zero.StringFrom(root.Get("description").String()),
		ViewCount:   zero.IntFrom(root.Get("view_count").Int()),
	}
	if info.URL == "" {
		info.URL = requestedURL
	}

	var candidates []candidate
	if root.Get("url").Exists() {
		candidates = append(candidates, flatCandidate(root))
	}
	root.Get("formats").ForEach(func(_, entry gjson.Result) bool {
		candidates = append(candidates, flatCandidate(entry))
		return true
	})
	return info, candidates
}

func flatCandidate(entry gjson.Result) candidate {
	return candidate{
		url:       util.FixURL(entry.Get("url").String()),
		ext:       entry.Get("ext").String(),
		protocol:  entry.Get("protocol").String(),
		vcodec:    parseVideoCodec(entry.Get("vcodec").String()),
		acodec:    parseAudioCodec(entry.Get("acodec").String()),
		height:    entry.Get("height").Int(),
		label:     firstString(entry, "resolution", "format_note", "format"),
		sizeBytes: firstInt(entry, "filesize", "filesize_approx"),
	}
}

func flatThumbnail(root gjson.Result) string {
	if thumb := root.Get("thumbnail").String(); thumb != "" {
		return thumb
	}
	thumbnails := root.Get("thumbnails").Array()
	if len(thumbnails) > 0 {
		// last entry is the largest in yt-dlp output
		return thumbnails[len(thumbnails)-1].Get("url").String()
	}
	return ""
}

// parseMedias handles the third-party API shape: a medias array with
// heterogeneous field names per entry.
func parseMedias(root gjson.Result, p enums.Platform, requestedURL string) (*models.VideoInfo, []candidate) {
	info := &models.VideoInfo{
		Title:     firstString(root, "title", "text", "caption"),
		Thumbnail: firstString(root, "thumbnail", "thumbnail_url", "cover"),
		Duration:  root.Get("duration").Int(),
		Author:    firstString(root, "author", "unique_id", "username", "channel"),
		Platform:  p,
		URL:       util.FixURL(firstString(root, "url", "source_url")),

		Description: zero.StringFrom(firstString(root, "description", "text")),
		ViewCount:   zero.IntFrom(root.Get("view_count").Int()),
	}
	if info.URL == "" {
		info.URL = requestedURL
	}

	var candidates []candidate
	root.Get("medias").ForEach(func(_, entry gjson.Result) bool {
		label := firstString(entry, "quality", "label", "resolution")
		mediaKind := strings.ToLower(firstString(entry, "type", "media_type"))
		c := candidate{
			url:       util.FixURL(firstString(entry, "url", "link", "download_url")),
			ext:       strings.ToLower(firstString(entry, "extension", "ext", "format")),
			mimeType:  strings.ToLower(firstString(entry, "mime_type", "mimeType")),
			height:    firstInt(entry, "height"),
			label:     label,
			sizeBytes: firstInt(entry, "size", "data_size", "filesize"),
			audioOnly: mediaKind == "audio" || entry.Get("is_audio").Bool(),
		}
		if !c.audioOnly {
			// the medias shape rarely carries codecs; a video entry is
			// assumed merged since these APIs return playable files
			c.vcodec = enums.MediaCodecAVC
			c.acodec = enums.MediaCodecAAC
		}
		candidates = append(candidates, c)
		return true
	})
	return info, candidates
}

func firstString(root gjson.Result, paths ...string) string {
	for _, path := range paths {
		if value := root.Get(path); value.Exists() && value.String() != "" {
			return value.String()
		}
	}
	return ""
}

func firstInt(root gjson.Result, paths ...string) int64 {
	for _, path := range paths {
		if value := root.Get(path); value.Exists() && value.Int() > 0 {
			return value.Int()
		}
	}
	return 0
}

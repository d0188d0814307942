package normalize

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"govex/enums"
	"govex/models"
	"govex/util"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	toolLinkTTL       = 6 * time.Hour
	thirdPartyLinkTTL = 24 * time.Hour
)

// Normalizer converts raw, schema-variable tool output into the
// canonical video-info plus ranked format list.
type Normalizer struct {
	linkTTL time.Duration
	now     func() time.Time
}

// New builds a normalizer for output produced by the given provider
// kind. Third-party API links live longer than tool-sourced ones.
func New(kind enums.ProviderKind) *Normalizer {
	ttl := toolLinkTTL
	if kind == enums.ProviderKindThirdParty {
		ttl = thirdPartyLinkTTL
	}
	return &Normalizer{
		linkTTL: ttl,
		now:     time.Now,
	}
}

// Normalize parses one raw output document. It returns
// util.ErrNoFormats when no directly downloadable format survives
// filtering; that is a content property of the video, not a transient
// fault, so callers must not retry it.
func (n *Normalizer) Normalize(
	raw []byte,
	p enums.Platform,
	requestedURL string,
) (*models.ExtractResult, error) {
	root := gjson.ParseBytes(raw)
	detector, ok := detectShape(root)
	if !ok {
		return nil, util.ErrUnsupportedShape
	}
	info, candidates := detector.parse(root, p, requestedURL)
	zap.S().Debugf("shape %q: %d raw format candidates", detector.name, len(candidates))

	if info.Title == "" {
		info.Title = models.UnknownTitle
	}

	kept := lo.Filter(candidates, func(c candidate, _ int) bool {
		return c.url != "" && !isManifest(c) && !isAudioOnly(c)
	})

	// prefer merged entries; fall back to video-only when none exist
	merged := lo.Filter(kept, func(c candidate, _ int) bool {
		return c.acodec != ""
	})
	if len(merged) > 0 {
		kept = merged
	}

	formats := n.buildFormats(kept, info.URL)
	if len(formats) == 0 {
		return nil, util.ErrNoFormats
	}

	return &models.ExtractResult{
		VideoInfo: info,
		Formats:   formats,
	}, nil
}

func (n *Normalizer) buildFormats(kept []candidate, webpageURL string) []*models.FormatOption {
	referer := originOf(webpageURL)
	expiresAt := n.now().Add(n.linkTTL)

	formats := make([]*models.FormatOption, 0, len(kept))
	for _, c := range kept {
		option := &models.FormatOption{
			Quality:       resolveTier(c.height, c.label),
			Format:        containerOf(c),
			FileSizeBytes: c.sizeBytes,
			URL:           c.url,
			ExpiresAt:     expiresAt,
			Referer:       referer,
			VideoCodec:    c.vcodec,
			AudioCodec:    c.acodec,
		}
		zap.S().Debugf("format %s/%s %s", option.Quality, option.Format,
			humanize.Bytes(uint64(option.FileSizeBytes)))
		formats = append(formats, option)
	}

	// dedupe by (quality, container), keeping the first occurrence
	type dedupeKey struct {
		quality enums.QualityTier
		format  string
	}
	formats = lo.UniqBy(formats, func(f *models.FormatOption) dedupeKey {
		return dedupeKey{f.Quality, f.Format}
	})

	sort.SliceStable(formats, func(i, j int) bool {
		a, b := formats[i], formats[j]
		if a.HasVideo() != b.HasVideo() {
			return a.HasVideo()
		}
		return a.Quality.Rank() > b.Quality.Rank()
	})
	return formats
}

// isManifest rejects adaptive-streaming indexes. A playlist is not a
// downloadable media file, so it never appears in the final list even
// when nothing else survives.
func isManifest(c candidate) bool {
	lowered := strings.ToLower(c.url)
	if strings.Contains(lowered, ".m3u8") || strings.Contains(lowered, ".mpd") {
		return true
	}
	if strings.Contains(c.mimeType, "mpegurl") || strings.Contains(c.mimeType, "dash+xml") {
		return true
	}
	protocol := strings.ToLower(c.protocol)
	return strings.Contains(protocol, "m3u8") ||
		strings.Contains(protocol, "dash") ||
		strings.Contains(protocol, "hls")
}

func isAudioOnly(c candidate) bool {
	if c.audioOnly {
		return true
	}
	if strings.HasPrefix(c.mimeType, "audio/") {
		return true
	}
	return c.vcodec == "" && c.acodec != ""
}

func containerOf(c candidate) string {
	if c.ext != "" {
		return strings.ToLower(c.ext)
	}
	if idx := strings.Index(c.mimeType, "/"); idx >= 0 {
		suffix := c.mimeType[idx+1:]
		if semi := strings.Index(suffix, ";"); semi >= 0 {
			suffix = suffix[:semi]
		}
		return strings.TrimSpace(suffix)
	}
	return "mp4"
}

// originOf derives the Referer downstream consumers must replay when
// fetching the media URL.
func originOf(webpageURL string) string {
	parsed, err := url.Parse(webpageURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host
}

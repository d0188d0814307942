package models

import (
	"time"

	"govex/enums"

	"github.com/guregu/null/v6/zero"
)

const UnknownTitle = "Untitled Video"

type VideoInfo struct {
	Title     string         `json:"title"`
	Thumbnail string         `json:"thumbnail"`
	Duration  int64          `json:"duration"`
	Author    string         `json:"author"`
	Platform  enums.Platform `json:"platform"`
	URL       string         `json:"url"`

	Description zero.String `json:"description"`
	ViewCount   zero.Int    `json:"view_count"`
}

type FormatOption struct {
	Quality       enums.QualityTier `json:"quality"`
	Format        string            `json:"format"`
	FileSizeBytes int64             `json:"file_size_bytes"`
	URL           string            `json:"url"`
	ExpiresAt     time.Time         `json:"expires_at,omitzero"`
	Referer       string            `json:"referer,omitempty"`

	// kept for merged-preference filtering, not part of the response
	VideoCodec enums.MediaCodec `json:"-"`
	AudioCodec enums.MediaCodec `json:"-"`
}

// HasVideo reports whether the entry carries a video track.
func (f *FormatOption) HasVideo() bool {
	return f.VideoCodec != ""
}

// IsMerged reports whether the entry carries both tracks in one URL,
// so no muxing step is needed after download.
func (f *FormatOption) IsMerged() bool {
	return f.VideoCodec != "" && f.AudioCodec != ""
}

type ExtractResult struct {
	VideoInfo *VideoInfo      `json:"video_info"`
	Formats   []*FormatOption `json:"formats"`
	Provider  string          `json:"provider,omitempty"`
}

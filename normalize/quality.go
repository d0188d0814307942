package normalize

import (
	"strings"

	"govex/enums"
)

// defaultTier is the policy fallback when an entry carries no usable
// resolution signal at all. 720p is a guess, kept in one place so the
// policy stays visible.
const defaultTier = enums.Quality720p

// TierFromHeight buckets a pixel height into a discrete quality tier.
func TierFromHeight(height int64) enums.QualityTier {
	switch {
	case height >= 2160:
		return enums.Quality4K
	case height >= 1440:
		return enums.Quality1440p
	case height >= 1080:
		return enums.Quality1080p
	case height >= 720:
		return enums.Quality720p
	case height >= 480:
		return enums.Quality480p
	default:
		return enums.Quality360p
	}
}

// TierFromLabel pattern-matches resolution strings like "1080p",
// "2160p60", "hd" or "fullhd". Used as the secondary signal when the
// entry has no numeric height.
func TierFromLabel(label string) (enums.QualityTier, bool) {
	label = strings.ToLower(label)
	switch {
	case strings.Contains(label, "2160"), strings.Contains(label, "4k"):
		return enums.Quality4K, true
	case strings.Contains(label, "1440"), strings.Contains(label, "2k"):
		return enums.Quality1440p, true
	case strings.Contains(label, "1080"), strings.Contains(label, "fhd"),
		strings.Contains(label, "fullhd"), strings.Contains(label, "full hd"):
		return enums.Quality1080p, true
	case strings.Contains(label, "720"):
		return enums.Quality720p, true
	case strings.Contains(label, "480"), strings.Contains(label, "sd"):
		return enums.Quality480p, true
	case strings.Contains(label, "360"), strings.Contains(label, "240"),
		strings.Contains(label, "144"):
		return enums.Quality360p, true
	case strings.Contains(label, "hd"):
		return enums.Quality720p, true
	default:
		return "", false
	}
}

// resolveTier combines the numeric and label signals for a candidate.
func resolveTier(height int64, label string) enums.QualityTier {
	if height > 0 {
		return TierFromHeight(height)
	}
	if tier, ok := TierFromLabel(label); ok {
		return tier
	}
	return defaultTier
}

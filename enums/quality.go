package enums

type QualityTier string

const (
	Quality360p  QualityTier = "360p"
	Quality480p  QualityTier = "480p"
	Quality720p  QualityTier = "720p"
	Quality1080p QualityTier = "1080p"
	Quality1440p QualityTier = "1440p"
	Quality4K    QualityTier = "4k"
)

// Rank returns the sort priority of the tier, higher is better.
// Unknown tiers rank below every known one.
func (q QualityTier) Rank() int {
	switch q {
	case Quality4K:
		return 6
	case Quality1440p:
		return 5
	case Quality1080p:
		return 4
	case Quality720p:
		return 3
	case Quality480p:
		return 2
	case Quality360p:
		return 1
	default:
		return 0
	}
}

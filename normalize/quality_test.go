package normalize

import (
	"testing"

	"govex/enums"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTierFromHeight(t *testing.T) {
	Convey("TierFromHeight", t, func() {
		cases := map[int64]enums.QualityTier{
			2160: enums.Quality4K,
			1440: enums.Quality1440p,
			1080: enums.Quality1080p,
			720:  enums.Quality720p,
			480:  enums.Quality480p,
			360:  enums.Quality360p,
			144:  enums.Quality360p,
		}
		for height, want := range cases {
			So(TierFromHeight(height), ShouldEqual, want)
		}
	})
}

func TestTierFromLabel(t *testing.T) {
	Convey("TierFromLabel", t, func() {
		Convey("Should recognize common labels", func() {
			cases := map[string]enums.QualityTier{
				"2160p60":        enums.Quality4K,
				"4K":             enums.Quality4K,
				"1440p":          enums.Quality1440p,
				"1080p (fullhd)": enums.Quality1080p,
				"720p":           enums.Quality720p,
				"hd":             enums.Quality720p,
				"480p":           enums.Quality480p,
				"360p":           enums.Quality360p,
			}
			for label, want := range cases {
				tier, ok := TierFromLabel(label)
				So(ok, ShouldBeTrue)
				So(tier, ShouldEqual, want)
			}
		})
		Convey("Should report no match for noise", func() {
			_, ok := TierFromLabel("audio only")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestResolveTierDefault(t *testing.T) {
	Convey("resolveTier with no signal at all", t, func() {
		// policy default, not a measurement
		So(resolveTier(0, ""), ShouldEqual, enums.Quality720p)
	})
}

package fingerprint

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPickWeightedDistribution(t *testing.T) {
	Convey("Pick over many draws", t, func() {
		rotator := NewRotator()

		const draws = 20000
		counts := make(map[string]int)
		for range draws {
			counts[rotator.Pick(nil).UserAgent]++
		}

		var totalWeight float64
		for _, entry := range catalog {
			totalWeight += entry.Weight
		}

		Convey("Should track each entry's weight share", func() {
			for _, entry := range catalog {
				expected := entry.Weight / totalWeight
				observed := float64(counts[entry.UserAgent]) / draws
				So(math.Abs(observed-expected), ShouldBeLessThan, 0.03)
			}
		})
	})
}

func TestPickFilter(t *testing.T) {
	Convey("Pick with a mobile filter", t, func() {
		rotator := NewRotator()

		Convey("Should never return a desktop identity", func() {
			mobile := true
			for range 500 {
				So(rotator.Pick(&Filter{Mobile: &mobile}).Mobile, ShouldBeTrue)
			}
		})
		Convey("Should never return a mobile identity for desktop", func() {
			mobile := false
			for range 500 {
				So(rotator.Pick(&Filter{Mobile: &mobile}).Mobile, ShouldBeFalse)
			}
		})
	})
}

func TestPickEdgeCases(t *testing.T) {
	Convey("Pick", t, func() {
		Convey("Should always return a non-empty identity", func() {
			rotator := NewRotator()
			So(rotator.Pick(nil).UserAgent, ShouldNotBeEmpty)
		})
		Convey("Should still terminate on a draw of exactly 1.0", func() {
			rotator := NewRotator(WithRand(func() float64 { return 1.0 }))
			So(rotator.Pick(nil).UserAgent, ShouldNotBeEmpty)
		})
		Convey("Should pick the first entry when the draw is zero", func() {
			rotator := NewRotator(WithRand(func() float64 { return 0 }))
			So(rotator.Pick(nil).UserAgent, ShouldEqual, catalog[0].UserAgent)
		})
	})
}

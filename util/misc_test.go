package util

import (
	"strings"
	"testing"
	"unicode/utf8"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTruncate(t *testing.T) {
	Convey("Truncate", t, func() {
		Convey("Should pass short strings through untouched", func() {
			So(Truncate("short", 100), ShouldEqual, "short")
		})

		Convey("Should cut long strings and mark the cut", func() {
			out := Truncate(strings.Repeat("x", 50), 10)
			So(out, ShouldEqual, "xxxxxxx...")
			So(len(out), ShouldEqual, 10)
		})

		Convey("Should never split a multi-byte rune", func() {
			// each 世 is three bytes, so a byte limit of 10 lands
			// mid-rune without the boundary backoff
			s := strings.Repeat("世", 20)
			out := Truncate(s, 10)
			So(utf8.ValidString(out), ShouldBeTrue)
			So(len(out), ShouldBeLessThanOrEqualTo, 10)
			So(strings.HasSuffix(out, "..."), ShouldBeTrue)
		})

		Convey("Should stay valid at tiny limits too", func() {
			out := Truncate("日本語", 2)
			So(utf8.ValidString(out), ShouldBeTrue)
			So(len(out), ShouldBeLessThanOrEqualTo, 2)
		})
	})
}

func TestFirstLines(t *testing.T) {
	Convey("FirstLines", t, func() {
		Convey("Should keep the first non-empty lines", func() {
			in := "one\n\n  \ntwo\nthree\nfour"
			So(FirstLines(in, 2), ShouldEqual, "one\ntwo")
		})

		Convey("Should return everything when there are fewer lines", func() {
			So(FirstLines("only", 3), ShouldEqual, "only")
		})
	})
}

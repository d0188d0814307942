package classify

import (
	"strings"
	"testing"

	"govex/enums"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassifyKinds(t *testing.T) {
	Convey("Classify", t, func() {
		cases := []struct {
			stderr    string
			kind      enums.ErrorKind
			retryable bool
		}{
			{"ERROR: Sign in to confirm you're not a bot", enums.ErrorKindBotDetection, true},
			{"ERROR: This video is not available in your country", enums.ErrorKindGeoBlock, true},
			{"ERROR: Private video. Sign in to view this video", enums.ErrorKindLoginRequired, true},
			{"HTTP Error 429: Too Many Requests", enums.ErrorKindRateLimit, true},
			{"ERROR: Video unavailable", enums.ErrorKindVideoNotFound, false},
			{"This video has been removed by the uploader", enums.ErrorKindVideoNotFound, false},
			{"this is a members only release", enums.ErrorKindPrivateVideo, false},
			{"Sign up to confirm your age. This video may be age restricted", enums.ErrorKindAgeRestricted, true},
			{"read tcp: i/o timeout", enums.ErrorKindTimeout, true},
			{"dial tcp 127.0.0.1:443: econnrefused", enums.ErrorKindNetworkError, true},
			{"something entirely unexpected happened", enums.ErrorKindUnknown, true},
		}
		for _, c := range cases {
			Convey("Should classify "+string(c.kind)+" from "+c.stderr, func() {
				parsed := Classify(c.stderr, "")
				So(parsed.Kind, ShouldEqual, c.kind)
				So(parsed.Retryable, ShouldEqual, c.retryable)
				So(len(parsed.Suggestions), ShouldBeGreaterThan, 0)
			})
		}
	})
}

func TestClassifyPriority(t *testing.T) {
	Convey("Classify with overlapping phrases", t, func() {
		Convey("Bot detection should win over private video", func() {
			parsed := Classify("ERROR: Private video. Sign in to confirm you're not a bot", "")
			So(parsed.Kind, ShouldEqual, enums.ErrorKindBotDetection)
			So(parsed.Retryable, ShouldBeTrue)
		})
		Convey("Rate limit should win over not-found for a 429 page", func() {
			parsed := Classify("HTTP Error 429: too many requests for this video", "")
			So(parsed.Kind, ShouldEqual, enums.ErrorKindRateLimit)
		})
		Convey("A missing format should stay retryable, not become not-found", func() {
			parsed := Classify("ERROR: requested format not found", "")
			So(parsed.Kind, ShouldEqual, enums.ErrorKindUnknown)
			So(parsed.Retryable, ShouldBeTrue)
		})
	})
}

func TestClassifyBotSuggestions(t *testing.T) {
	Convey("A bot-detection error", t, func() {
		parsed := Classify("ERROR: Sign in to confirm you're not a bot", "")

		Convey("Should carry at least one cookie-related suggestion", func() {
			found := false
			for _, s := range parsed.Suggestions {
				if strings.Contains(s, "cookies") {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})
	})
}

func TestClassifyIsPure(t *testing.T) {
	Convey("Classify called twice on identical input", t, func() {
		first := Classify("ERROR: Video unavailable", "some stdout")
		second := Classify("ERROR: Video unavailable", "some stdout")
		So(first.Kind, ShouldEqual, second.Kind)
		So(first.Message, ShouldEqual, second.Message)
		So(first.Retryable, ShouldEqual, second.Retryable)
	})
}

func TestClassifyEmptyInput(t *testing.T) {
	Convey("Classify with no diagnostic text at all", t, func() {
		parsed := Classify("", "")
		So(parsed.Kind, ShouldEqual, enums.ErrorKindUnknown)
		So(parsed.OriginalText, ShouldBeEmpty)
		So(parsed.Retryable, ShouldBeTrue)
		So(len(parsed.Suggestions), ShouldBeGreaterThan, 0)
	})
}

func TestClassifyUnknownExcerpt(t *testing.T) {
	Convey("An unknown error with a huge diagnostic", t, func() {
		long := strings.Repeat("x", 1000)
		parsed := Classify(long, "")

		Convey("Should embed a truncated excerpt in the message", func() {
			So(parsed.Kind, ShouldEqual, enums.ErrorKindUnknown)
			So(len(parsed.Message), ShouldBeLessThanOrEqualTo, len("extraction failed: ")+200)
			So(parsed.Message, ShouldContainSubstring, "xxx")
		})
	})
}

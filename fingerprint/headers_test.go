package fingerprint

import (
	"strings"
	"testing"

	"govex/enums"

	. "github.com/smartystreets/goconvey/convey"
)

func identityByBrowser(browser string, mobile bool) Identity {
	for _, entry := range catalog {
		if entry.Browser == browser && entry.Mobile == mobile {
			return entry
		}
	}
	return catalog[0]
}

func TestGenerateHeaders(t *testing.T) {
	Convey("GenerateHeaders", t, func() {
		Convey("Should always emit the baseline headers", func() {
			identity := identityByBrowser("firefox", false)
			headers := GenerateHeaders(identity, enums.PlatformYouTube, "", "", "")
			So(headers["User-Agent"], ShouldEqual, identity.UserAgent)
			So(headers["Accept"], ShouldNotBeEmpty)
			So(headers["Accept-Language"], ShouldNotBeEmpty)
			So(headers["Accept-Encoding"], ShouldNotBeEmpty)
		})

		Convey("Should emit Client Hints only for Chromium browsers", func() {
			chrome := GenerateHeaders(identityByBrowser("chrome", false), enums.PlatformYouTube, "", "", "")
			So(chrome["Sec-Ch-Ua"], ShouldContainSubstring, "Chromium")
			So(chrome["Sec-Fetch-Mode"], ShouldEqual, "navigate")

			firefox := GenerateHeaders(identityByBrowser("firefox", false), enums.PlatformYouTube, "", "", "")
			So(firefox, ShouldNotContainKey, "Sec-Ch-Ua")
			So(firefox, ShouldNotContainKey, "Sec-Fetch-Mode")
		})

		Convey("Should keep the mobile hint coherent with the user agent", func() {
			mobile := GenerateHeaders(identityByBrowser("chrome", true), enums.PlatformYouTube, "", "", "")
			So(mobile["Sec-Ch-Ua-Mobile"], ShouldEqual, "?1")
			So(strings.Contains(mobile["User-Agent"], "Mobile"), ShouldBeTrue)

			desktop := GenerateHeaders(identityByBrowser("chrome", false), enums.PlatformYouTube, "", "", "")
			So(desktop["Sec-Ch-Ua-Mobile"], ShouldEqual, "?0")
			So(strings.Contains(desktop["User-Agent"], "Mobile"), ShouldBeFalse)
		})

		Convey("Should apply platform default referer and origin", func() {
			headers := GenerateHeaders(identityByBrowser("chrome", false), enums.PlatformYouTube, "", "", "")
			So(headers["Referer"], ShouldEqual, "https://www.youtube.com/")
			So(headers["Origin"], ShouldEqual, "https://www.youtube.com")
		})

		Convey("Should prefer an explicitly supplied referer", func() {
			headers := GenerateHeaders(
				identityByBrowser("chrome", false),
				enums.PlatformYouTube,
				"",
				"https://example.com/page",
				"https://example.com",
			)
			So(headers["Referer"], ShouldEqual, "https://example.com/page")
			So(headers["Origin"], ShouldEqual, "https://example.com")
		})

		Convey("Should derive referer from the target URL for unknown platforms", func() {
			headers := GenerateHeaders(
				identityByBrowser("chrome", false),
				enums.PlatformGeneric,
				"https://videos.example.org/watch/123",
				"",
				"",
			)
			So(headers["Referer"], ShouldEqual, "https://videos.example.org/")
			So(headers["Origin"], ShouldEqual, "https://videos.example.org")
		})
	})
}

package fingerprint

// Identity is the browser fingerprint presented to a source platform
// for one extraction attempt. Immutable once picked.
type Identity struct {
	UserAgent string
	Browser   string
	Version   string
	OS        string
	Mobile    bool
	Weight    float64
}

// catalog holds realistic browser identities. Weights roughly follow
// observed market share so rotation blends into normal traffic.
var catalog = []Identity{
	{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
		Browser:   "chrome",
		Version:   "131",
		OS:        "Windows",
		Weight:    30,
	},
	{
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
		Browser:   "chrome",
		Version:   "131",
		OS:        "macOS",
		Weight:    15,
	},
	{
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
		Browser:   "chrome",
		Version:   "131",
		OS:        "Linux",
		Weight:    5,
	},
	{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:133.0) Gecko/20100101 Firefox/133.0",
		Browser:   "firefox",
		Version:   "133",
		OS:        "Windows",
		Weight:    8,
	},
	{
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.1 Safari/605.1.15",
		Browser:   "safari",
		Version:   "18",
		OS:        "macOS",
		Weight:    10,
	},
	{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36 Edg/131.0.0.0",
		Browser:   "edge",
		Version:   "131",
		OS:        "Windows",
		Weight:    7,
	},
	{
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 18_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.1 Mobile/15E148 Safari/604.1",
		Browser:   "safari",
		Version:   "18",
		OS:        "iOS",
		Mobile:    true,
		Weight:    12,
	},
	{
		UserAgent: "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Mobile Safari/537.36",
		Browser:   "chrome",
		Version:   "131",
		OS:        "Android",
		Mobile:    true,
		Weight:    10,
	},
	{
		UserAgent: "Mozilla/5.0 (Linux; Android 14; SM-S928B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/27.0 Chrome/125.0.0.0 Mobile Safari/537.36",
		Browser:   "samsung",
		Version:   "27",
		OS:        "Android",
		Mobile:    true,
		Weight:    3,
	},
}

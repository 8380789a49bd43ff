package platform

import (
	"regexp"

	"github.com/ytget/multi-downloader/internal/model"
)

// platformRules binds a platform to the URL patterns that identify it
type platformRules struct {
	platform model.Platform
	patterns []*regexp.Regexp
}

// rules is checked in order; the first platform with a matching pattern wins.
// New platforms are added here and nowhere else.
var rules = []platformRules{
	{model.PlatformYouTube, compile(
		`youtube\.com/watch\?v=`,
		`youtu\.be/`,
		`youtube\.com/playlist\?list=`,
		`youtube\.com/shorts/`,
	)},
	{model.PlatformInstagram, compile(
		`instagram\.com/(p|reel|tv|stories)/`,
	)},
	{model.PlatformTikTok, compile(
		`tiktok\.com/@[\w.-]+/video/`,
		`vm\.tiktok\.com/`,
		`tiktok\.com/t/`,
	)},
	{model.PlatformTwitter, compile(
		`(twitter|x)\.com/\w+/status/`,
	)},
	{model.PlatformFacebook, compile(
		`facebook\.com/(watch|[\w.-]+/videos/)`,
		`fb\.watch/`,
	)},
	{model.PlatformReddit, compile(
		`reddit\.com/r/\w+/comments/`,
	)},
	{model.PlatformTwitch, compile(
		`twitch\.tv/videos/`,
		`clips\.twitch\.tv/`,
	)},
}

func compile(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		patterns[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return patterns
}

// DetectPlatform returns the platform the URL belongs to, or PlatformUnknown
func DetectPlatform(url string) model.Platform {
	for _, r := range rules {
		for _, p := range r.patterns {
			if p.MatchString(url) {
				return r.platform
			}
		}
	}
	return model.PlatformUnknown
}

// IsSupported reports whether the URL belongs to any known platform
func IsSupported(url string) bool {
	return DetectPlatform(url) != model.PlatformUnknown
}

// SupportedPlatforms lists known platforms in detection order
func SupportedPlatforms() []model.Platform {
	platforms := make([]model.Platform, len(rules))
	for i, r := range rules {
		platforms[i] = r.platform
	}
	return platforms
}

package model

// Platform identifies the site a URL belongs to
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformTwitter   Platform = "Twitter/X"
	PlatformFacebook  Platform = "Facebook"
	PlatformReddit    Platform = "Reddit"
	PlatformTwitch    Platform = "Twitch"
	PlatformUnknown   Platform = "Unknown"
)

// Filename prefixes for platforms that reuse generic titles
const (
	PrefixInstagram = "IG"
	PrefixTikTok    = "TT"
	PrefixTwitter   = "X"
)

// String returns the display name of the platform
func (p Platform) String() string {
	return string(p)
}

// IsKnown returns true for every platform except Unknown
func (p Platform) IsKnown() bool {
	return p != PlatformUnknown && p != ""
}

// SupportsClipping reports whether a time range may be requested
func (p Platform) SupportsClipping() bool {
	return p == PlatformYouTube
}

// SupportsGPU reports whether GPU re-encode is offered for the platform
func (p Platform) SupportsGPU() bool {
	return p == PlatformYouTube
}

// UsesMuxedStream returns true for platforms without reliable separate
// video/audio streams; these always get the best combined stream.
func (p Platform) UsesMuxedStream() bool {
	switch p {
	case PlatformTikTok, PlatformTwitter, PlatformInstagram:
		return true
	}
	return false
}

// FilenamePrefix returns the short tag prepended to output filenames, or ""
func (p Platform) FilenamePrefix() string {
	switch p {
	case PlatformInstagram:
		return PrefixInstagram
	case PlatformTikTok:
		return PrefixTikTok
	case PlatformTwitter:
		return PrefixTwitter
	}
	return ""
}

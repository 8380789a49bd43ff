package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatform_Capabilities(t *testing.T) {
	tests := []struct {
		platform Platform
		known    bool
		clipping bool
		muxed    bool
		prefix   string
	}{
		{PlatformYouTube, true, true, false, ""},
		{PlatformInstagram, true, false, true, "IG"},
		{PlatformTikTok, true, false, true, "TT"},
		{PlatformTwitter, true, false, true, "X"},
		{PlatformFacebook, true, false, false, ""},
		{PlatformReddit, true, false, false, ""},
		{PlatformTwitch, true, false, false, ""},
		{PlatformUnknown, false, false, false, ""},
	}

	for _, test := range tests {
		t.Run(test.platform.String(), func(t *testing.T) {
			assert.Equal(t, test.known, test.platform.IsKnown())
			assert.Equal(t, test.clipping, test.platform.SupportsClipping())
			assert.Equal(t, test.clipping, test.platform.SupportsGPU())
			assert.Equal(t, test.muxed, test.platform.UsesMuxedStream())
			assert.Equal(t, test.prefix, test.platform.FilenamePrefix())
		})
	}
}

func TestQualityLabels(t *testing.T) {
	labels := QualityLabels()
	assert.Len(t, labels, 7)
	assert.Equal(t, QualityBest, labels[0])
	assert.Equal(t, Quality15360p, labels[6])

	heights := []int{0, 720, 1080, 1440, 2160, 4320, 15360}
	for i, l := range labels {
		assert.True(t, l.IsValid())
		assert.Equal(t, heights[i], l.Height(), "height of %s", l)
	}

	assert.False(t, QualityLabel("480p").IsValid())
	assert.Equal(t, "2160p (4K)", QualityOptions()[4])
}

func TestDownloadRequest_IsCopied(t *testing.T) {
	clip := &Clip{Start: 105, End: 115}
	req := NewDownloadRequest("https://youtu.be/x", PlatformYouTube, false, Quality720p, clip, true)

	clip.Start = 0

	got, ok := req.Clip()
	assert.True(t, ok)
	assert.Equal(t, Clip{Start: 105, End: 115}, got)
	assert.Equal(t, "*105-115", got.Section())
	assert.Equal(t, 10, got.Duration())
	assert.True(t, req.GPURequested())
	assert.Equal(t, PlatformYouTube, req.Platform())
}

func TestParseQuality(t *testing.T) {
	assert.Equal(t, QualityBest, ParseQuality("best"))
	assert.Equal(t, QualityBest, ParseQuality("Best Available"))
	assert.Equal(t, Quality2160p, ParseQuality("2160P"))
	assert.Equal(t, Quality1080p, ParseQuality(" 1080p "))
	assert.Equal(t, QualityLabel("480p"), ParseQuality("480p"))
	assert.False(t, ParseQuality("480p").IsValid())
}

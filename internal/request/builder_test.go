package request

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/multi-downloader/internal/model"
)

const (
	youTubeURL = "https://www.youtube.com/watch?v=abc123"
	tikTokURL  = "https://www.tiktok.com/@user/video/7123"
)

func TestBuild_Success(t *testing.T) {
	req, err := Build(Input{
		URL:     "  " + youTubeURL + "  ",
		Quality: model.Quality1080p,
		GPU:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, youTubeURL, req.URL())
	assert.Equal(t, model.PlatformYouTube, req.Platform())
	assert.Equal(t, model.Quality1080p, req.Quality())
	assert.False(t, req.AudioOnly())
	assert.True(t, req.GPURequested())
	assert.False(t, req.HasClip())
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		expected error
	}{
		{"empty url", Input{URL: "   ", Quality: model.Quality720p}, ErrEmptyURL},
		{"empty url beats range", Input{URL: "", Range: "1 2"}, ErrEmptyURL},
		{"unknown platform", Input{URL: "https://example.com/video/1", Quality: model.Quality720p}, ErrUnsupportedPlatform},
		{"clip on tiktok", Input{URL: tikTokURL, Range: "1:45 1:55", Quality: model.Quality720p}, ErrClippingUnsupported},
		{"invalid clip on tiktok", Input{URL: tikTokURL, Range: "garbage", Quality: model.Quality720p}, ErrClippingUnsupported},
		{"one token", Input{URL: youTubeURL, Range: "1:45", Quality: model.Quality720p}, ErrMalformedRange},
		{"three tokens", Input{URL: youTubeURL, Range: "1 2 3", Quality: model.Quality720p}, ErrMalformedRange},
		{"bad duration", Input{URL: youTubeURL, Range: "1:45 x", Quality: model.Quality720p}, ErrMalformedDuration},
		{"too many parts", Input{URL: youTubeURL, Range: "1:2:3:4 5", Quality: model.Quality720p}, ErrMalformedDuration},
		{"overflowing duration", Input{URL: youTubeURL, Range: "0 153722867280912931:0:0", Quality: model.Quality720p}, ErrMalformedDuration},
		{"equal bounds", Input{URL: youTubeURL, Range: "1:30 1:30", Quality: model.Quality720p}, ErrDegenerateRange},
		{"equal bounds different notation", Input{URL: youTubeURL, Range: "90 1:30", Quality: model.Quality720p}, ErrDegenerateRange},
		{"unknown quality", Input{URL: youTubeURL, Quality: "480p"}, ErrUnknownQuality},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Build(test.input)
			assert.ErrorIs(t, err, test.expected)
		})
	}
}

func TestBuild_ClippingErrorCarriesPlatform(t *testing.T) {
	_, err := Build(Input{URL: "https://x.com/user/status/1", Range: "1 2", Quality: model.Quality720p})

	var clipErr *ClippingUnsupportedError
	require.True(t, errors.As(err, &clipErr))
	assert.Equal(t, model.PlatformTwitter, clipErr.Platform)
}

func TestBuild_ClipSwapped(t *testing.T) {
	req, err := Build(Input{URL: youTubeURL, Range: "1:55 1:45", Quality: model.Quality720p})
	require.NoError(t, err)

	clip, ok := req.Clip()
	require.True(t, ok)
	assert.Equal(t, model.Clip{Start: 105, End: 115}, clip)
}

func TestBuild_ClipAscending(t *testing.T) {
	req, err := Build(Input{URL: "https://youtu.be/abc", Range: "  0:10\t1:00:00 ", Quality: model.QualityBest})
	require.NoError(t, err)

	clip, ok := req.Clip()
	require.True(t, ok)
	assert.Equal(t, model.Clip{Start: 10, End: 3600}, clip)
}

func TestBuild_AudioOnlyIgnoresQuality(t *testing.T) {
	req, err := Build(Input{URL: tikTokURL, AudioOnly: true, Quality: "whatever"})
	require.NoError(t, err)
	assert.True(t, req.AudioOnly())
}

func TestRequireDestination(t *testing.T) {
	assert.ErrorIs(t, RequireDestination(""), ErrNoDestination)
	assert.ErrorIs(t, RequireDestination("  "), ErrNoDestination)
	assert.NoError(t, RequireDestination("/tmp"))
}

func TestMessage(t *testing.T) {
	_, err := Build(Input{URL: "https://www.reddit.com/r/golang/comments/abc", Range: "1 2"})
	title, text := Message(err)
	assert.Equal(t, "Clipping Not Supported", title)
	assert.Equal(t, "Video clipping is only supported for YouTube, not Reddit.", text)

	title, _ = Message(ErrNoDestination)
	assert.Equal(t, "No folder", title)

	title, text = Message(nil)
	assert.Empty(t, title)
	assert.Empty(t, text)

	title, text = Message(errors.New("boom"))
	assert.Equal(t, "Error", title)
	assert.Equal(t, "boom", text)
}

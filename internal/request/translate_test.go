package request

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/multi-downloader/internal/model"
)

type stubProbe struct {
	available bool
	calls     int
}

func (s *stubProbe) HasHWEncoder(context.Context) bool {
	s.calls++
	return s.available
}

func mustBuild(t *testing.T, in Input) model.DownloadRequest {
	t.Helper()
	req, err := Build(in)
	require.NoError(t, err)
	return req
}

func TestFormatSelector(t *testing.T) {
	tests := []struct {
		label    model.QualityLabel
		expected string
	}{
		{model.QualityBest, "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"},
		{model.Quality720p, "bv*[height<=720][ext=mp4]+ba[ext=m4a]/b[height<=720][ext=mp4]/best"},
		{model.Quality1080p, "bv*[height<=1080][ext=mp4]+ba[ext=m4a]/b[height<=1080][ext=mp4]/best"},
		{model.Quality2160p, "bv*[height<=2160][ext=mp4]+ba[ext=m4a]/b[height<=2160][ext=mp4]/best"},
		{model.Quality15360p, "bv*[height<=15360][ext=mp4]+ba[ext=m4a]/b[height<=15360][ext=mp4]/best"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, FormatSelector(test.label), string(test.label))
	}
}

func TestOutputTemplate(t *testing.T) {
	dir := filepath.Join("home", "me", "Videos")

	assert.Equal(t, filepath.Join(dir, "%(title)s.%(ext)s"), OutputTemplate(dir, model.PlatformYouTube))
	assert.Equal(t, filepath.Join(dir, "%(title)s.%(ext)s"), OutputTemplate(dir, model.PlatformReddit))
	assert.Equal(t, filepath.Join(dir, "IG_%(uploader)s_%(title)s.%(ext)s"), OutputTemplate(dir, model.PlatformInstagram))
	assert.Equal(t, filepath.Join(dir, "TT_%(uploader)s_%(title)s.%(ext)s"), OutputTemplate(dir, model.PlatformTikTok))
	assert.Equal(t, filepath.Join(dir, "X_%(uploader)s_%(title)s.%(ext)s"), OutputTemplate(dir, model.PlatformTwitter))
}

func TestTranslate_TikTokAlwaysMuxed(t *testing.T) {
	tr := NewTranslator(&stubProbe{})
	for _, q := range model.QualityLabels() {
		req := mustBuild(t, Input{URL: tikTokURL, Quality: q})
		spec := tr.Translate(context.Background(), req, "/dl")
		assert.Equal(t, MuxedFormatSelector, spec.FormatSelector, string(q))
	}
}

func TestTranslate_AudioOnly(t *testing.T) {
	probe := &stubProbe{available: true}
	tr := NewTranslator(probe)
	req := mustBuild(t, Input{URL: youTubeURL, AudioOnly: true, GPU: true})

	spec := tr.Translate(context.Background(), req, "/dl")

	assert.Equal(t, AudioFormatSelector, spec.FormatSelector)
	assert.True(t, spec.AudioOnly)
	assert.Empty(t, spec.TranscodeArgs)
	assert.Zero(t, probe.calls)
}

func TestTranslate_QualityLookup(t *testing.T) {
	tr := NewTranslator(nil)
	req := mustBuild(t, Input{URL: "https://www.facebook.com/watch?v=1", Quality: model.Quality1440p})

	spec := tr.Translate(context.Background(), req, "/dl")

	assert.Equal(t, FormatSelector(model.Quality1440p), spec.FormatSelector)
	assert.Nil(t, spec.Clip)
	assert.Empty(t, spec.Notices)
}

func TestTranslate_GPUWithEncoder(t *testing.T) {
	tr := NewTranslator(&stubProbe{available: true})
	req := mustBuild(t, Input{URL: youTubeURL, Quality: model.Quality1080p, GPU: true})

	spec := tr.Translate(context.Background(), req, "/dl")

	assert.Equal(t, []string{"-c:v", "h264_nvenc", "-preset", "fast", "-crf", "23"}, spec.TranscodeArgs)
	assert.True(t, spec.HasTranscode())
	assert.Empty(t, spec.Notices)
}

func TestTranslate_GPUWithoutEncoder(t *testing.T) {
	tr := NewTranslator(&stubProbe{available: false})
	req := mustBuild(t, Input{URL: youTubeURL, Quality: model.Quality1080p, GPU: true})

	spec := tr.Translate(context.Background(), req, "/dl")

	assert.Empty(t, spec.TranscodeArgs)
	assert.Equal(t, []string{NoticeNoHWEncoder}, spec.Notices)
}

func TestTranslate_GPUOnlyForYouTube(t *testing.T) {
	probe := &stubProbe{available: true}
	tr := NewTranslator(probe)
	req := mustBuild(t, Input{URL: "https://www.twitch.tv/videos/1", Quality: model.Quality1080p, GPU: true})

	spec := tr.Translate(context.Background(), req, "/dl")

	assert.Empty(t, spec.TranscodeArgs)
	assert.Equal(t, []string{NoticeGPUPlatform}, spec.Notices)
	assert.Zero(t, probe.calls)
}

func TestTranslate_NoGPURequested(t *testing.T) {
	probe := &stubProbe{available: true}
	tr := NewTranslator(probe)
	req := mustBuild(t, Input{URL: youTubeURL, Quality: model.Quality1080p})

	spec := tr.Translate(context.Background(), req, "/dl")

	assert.Empty(t, spec.TranscodeArgs)
	assert.Empty(t, spec.Notices)
	assert.Zero(t, probe.calls)
}

func TestTranslate_ClipPassedThrough(t *testing.T) {
	tr := NewTranslator(nil)
	req := mustBuild(t, Input{URL: youTubeURL, Range: "1:55 1:45", Quality: model.Quality720p})

	spec := tr.Translate(context.Background(), req, "/dl")

	require.NotNil(t, spec.Clip)
	assert.Equal(t, model.Clip{Start: 105, End: 115}, *spec.Clip)
}

package request

import (
	"context"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/ytget/multi-downloader/internal/model"
	"github.com/ytget/multi-downloader/internal/transcode"
)

// Format selectors and output naming
const (
	AudioFormatSelector = "bestaudio[ext=m4a]/bestaudio/best"
	MuxedFormatSelector = "best[ext=mp4]/best"
	BestFormatSelector  = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
	cappedFormat        = "bv*[height<=%d][ext=mp4]+ba[ext=m4a]/b[height<=%d][ext=mp4]/best"

	TitleTemplate    = "%(title)s.%(ext)s"
	UploaderTemplate = "%s_%%(uploader)s_%%(title)s.%%(ext)s"
)

// Informational notices attached to a spec
const (
	NoticeNoHWEncoder = "NVENC not found, CPU encode"
	NoticeGPUPlatform = "GPU re-encode is YouTube only"
)

// EncoderProbe reports hardware encoder availability
type EncoderProbe interface {
	HasHWEncoder(ctx context.Context) bool
}

// Translator turns validated requests into yt-dlp download specs
type Translator struct {
	probe EncoderProbe
}

// NewTranslator creates a translator. A nil probe means no hardware encoder.
func NewTranslator(probe EncoderProbe) *Translator {
	return &Translator{probe: probe}
}

// FormatSelector returns the yt-dlp selector for a quality label. Unknown
// labels fall back to the best available streams.
func FormatSelector(label model.QualityLabel) string {
	height := label.Height()
	if height == 0 {
		return BestFormatSelector
	}
	return fmt.Sprintf(cappedFormat, height, height)
}

// OutputTemplate returns the yt-dlp output template for a platform under dir
func OutputTemplate(dir string, p model.Platform) string {
	name := TitleTemplate
	if prefix := p.FilenamePrefix(); prefix != "" {
		name = fmt.Sprintf(UploaderTemplate, prefix)
	}
	return filepath.Join(dir, name)
}

// Translate derives the download spec for req with files written to dir
func (t *Translator) Translate(ctx context.Context, req model.DownloadRequest, dir string) model.ExternalDownloadSpec {
	p := req.Platform()
	spec := model.ExternalDownloadSpec{
		OutputTemplate: OutputTemplate(dir, p),
		AudioOnly:      req.AudioOnly(),
	}

	switch {
	case req.AudioOnly():
		spec.FormatSelector = AudioFormatSelector
	case p.UsesMuxedStream():
		spec.FormatSelector = MuxedFormatSelector
	default:
		spec.FormatSelector = FormatSelector(req.Quality())
	}

	if clip, ok := req.Clip(); ok {
		spec.Clip = &clip
	}

	if req.GPURequested() && !req.AudioOnly() {
		switch {
		case !p.SupportsGPU():
			spec.Notices = append(spec.Notices, NoticeGPUPlatform)
		case t.hasHWEncoder(ctx):
			spec.TranscodeArgs = transcode.GPUArgs()
		default:
			spec.Notices = append(spec.Notices, NoticeNoHWEncoder)
		}
	}

	log.WithFields(log.Fields{
		"platform":  p,
		"format":    spec.FormatSelector,
		"output":    spec.OutputTemplate,
		"transcode": spec.HasTranscode(),
	}).Debug("Translated download request")

	return spec
}

func (t *Translator) hasHWEncoder(ctx context.Context) bool {
	if t.probe == nil {
		return false
	}
	return t.probe.HasHWEncoder(ctx)
}

package download

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/multi-downloader/internal/model"
)

func TestYTDLPExecutor_Command(t *testing.T) {
	exec := NewYTDLPExecutor("/opt/ffmpeg/ffmpeg")

	specs := []model.ExternalDownloadSpec{
		{FormatSelector: "best[ext=mp4]/best", OutputTemplate: "/dl/TT_%(uploader)s_%(title)s.%(ext)s"},
		{FormatSelector: "bestaudio[ext=m4a]/bestaudio/best", OutputTemplate: "/dl/%(title)s.%(ext)s", AudioOnly: true},
		{
			FormatSelector: "bv*[height<=1080][ext=mp4]+ba[ext=m4a]/b[height<=1080][ext=mp4]/best",
			OutputTemplate: "/dl/%(title)s.%(ext)s",
			TranscodeArgs:  []string{"-c:v", "h264_nvenc", "-preset", "fast", "-crf", "23"},
			Clip:           &model.Clip{Start: 105, End: 115},
		},
	}

	for _, spec := range specs {
		assert.NotNil(t, exec.Command(spec))
	}
}

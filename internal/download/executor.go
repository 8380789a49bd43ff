package download

import (
	"context"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/multi-downloader/internal/model"
	"github.com/ytget/multi-downloader/internal/transcode"
)

// ProgressInterval is how often yt-dlp progress is sampled
const ProgressInterval = 500 * time.Millisecond

// Phase is the coarse state reported by the extractor
type Phase int

const (
	PhaseStarting Phase = iota
	PhaseDownloading
	PhaseProcessing
	PhaseFinished
)

// Progress is one progress sample from the extractor
type Progress struct {
	Phase           Phase
	DownloadedBytes int64
	TotalBytes      int64 // 0 when unknown
	Started         time.Time
	Title           string
}

// Executor performs one download for one URL
type Executor interface {
	Run(ctx context.Context, url string, spec model.ExternalDownloadSpec, onProgress func(Progress)) (outputPath string, err error)
}

// YTDLPExecutor runs downloads through the yt-dlp binary
type YTDLPExecutor struct {
	ffmpegPath string
}

// NewYTDLPExecutor creates an executor using ffmpegPath for post-processing.
// An empty path lets yt-dlp find ffmpeg itself.
func NewYTDLPExecutor(ffmpegPath string) *YTDLPExecutor {
	return &YTDLPExecutor{ffmpegPath: ffmpegPath}
}

// Command builds the yt-dlp command for spec. Playlist expansion and .part
// files are disabled; existing files are overwritten.
func (e *YTDLPExecutor) Command(spec model.ExternalDownloadSpec) *ytdlp.Command {
	dl := ytdlp.New().
		Format(spec.FormatSelector).
		Output(spec.OutputTemplate).
		NoPlaylist().
		NoPart().
		ForceOverwrites().
		MergeOutputFormat(transcode.VideoContainer)

	if e.ffmpegPath != "" {
		dl.FFmpegLocation(e.ffmpegPath)
	}

	if spec.AudioOnly {
		dl.ExtractAudio().
			AudioFormat(transcode.AudioCodec).
			AudioQuality(transcode.AudioQuality)
	} else {
		dl.RecodeVideo(transcode.VideoContainer)
	}

	if spec.HasTranscode() {
		dl.PostProcessorArgs(transcode.PostprocessorArgs(spec.TranscodeArgs))
	}

	if spec.Clip != nil {
		dl.DownloadSections(spec.Clip.Section())
	}

	return dl
}

// Run downloads url and returns the path of the produced file when yt-dlp reports it
func (e *YTDLPExecutor) Run(ctx context.Context, url string, spec model.ExternalDownloadSpec, onProgress func(Progress)) (string, error) {
	dl := e.Command(spec)

	if onProgress != nil {
		dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
			onProgress(convertProgress(update))
		})
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		return "", err
	}

	if result != nil {
		info, err := result.GetExtractedInfo()
		if err == nil && len(info) > 0 && info[0].Filename != nil {
			return *info[0].Filename, nil
		}
	}
	return "", nil
}

func convertProgress(update ytdlp.ProgressUpdate) Progress {
	p := Progress{
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		Started:         update.Started,
	}

	switch update.Status {
	case ytdlp.ProgressStatusStarting:
		p.Phase = PhaseStarting
	case ytdlp.ProgressStatusPostProcessing:
		p.Phase = PhaseProcessing
	case ytdlp.ProgressStatusFinished:
		p.Phase = PhaseFinished
	default:
		p.Phase = PhaseDownloading
	}

	if update.Info != nil && update.Info.Title != nil {
		p.Title = *update.Info.Title
	}
	return p
}

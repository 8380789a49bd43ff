package transcode

import "strings"

// FFmpeg constants for post-processing
const (
	FFmpegCommand = "ffmpeg"

	// GPU re-encode settings
	HWEncoder = "h264_nvenc"
	GPUPreset = "fast"
	GPUCRF    = "23"

	// Container and audio targets
	VideoContainer = "mp4"
	AudioCodec     = "mp3"
	AudioQuality   = "320K"

	// Post-processor name understood by yt-dlp
	PostprocessorName = "ffmpeg"
)

// GPUArgs returns the ffmpeg arguments selecting the hardware H.264 encoder
func GPUArgs() []string {
	return []string{
		"-c:v", HWEncoder,
		"-preset", GPUPreset,
		"-crf", GPUCRF,
	}
}

// PostprocessorArgs renders ffmpeg arguments in yt-dlp's NAME:ARGS form.
// Empty args render as "".
func PostprocessorArgs(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return PostprocessorName + ":" + strings.Join(args, " ")
}

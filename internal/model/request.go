package model

import "fmt"

// Clip is a download window in whole seconds, Start < End
type Clip struct {
	Start int
	End   int
}

// Section renders the clip in yt-dlp's --download-sections syntax
func (c Clip) Section() string {
	return fmt.Sprintf("*%d-%d", c.Start, c.End)
}

// Duration returns the clip length in seconds
func (c Clip) Duration() int {
	return c.End - c.Start
}

// DownloadRequest is a validated user request. Values are only produced by
// the request builder and are not changed afterwards.
type DownloadRequest struct {
	url          string
	platform     Platform
	audioOnly    bool
	quality      QualityLabel
	clip         *Clip
	gpuRequested bool
}

// NewDownloadRequest assembles a request from already validated parts
func NewDownloadRequest(url string, platform Platform, audioOnly bool, quality QualityLabel, clip *Clip, gpu bool) DownloadRequest {
	var c *Clip
	if clip != nil {
		copied := *clip
		c = &copied
	}
	return DownloadRequest{
		url:          url,
		platform:     platform,
		audioOnly:    audioOnly,
		quality:      quality,
		clip:         c,
		gpuRequested: gpu,
	}
}

func (r DownloadRequest) URL() string { return r.url }
func (r DownloadRequest) Platform() Platform { return r.platform }
func (r DownloadRequest) AudioOnly() bool { return r.audioOnly }
func (r DownloadRequest) Quality() QualityLabel { return r.quality }
func (r DownloadRequest) GPURequested() bool { return r.gpuRequested }
func (r DownloadRequest) HasClip() bool { return r.clip != nil }

// Clip returns a copy of the clip window, if any
func (r DownloadRequest) Clip() (Clip, bool) {
	if r.clip == nil {
		return Clip{}, false
	}
	return *r.clip, true
}

// ExternalDownloadSpec is what gets handed to yt-dlp for one URL
type ExternalDownloadSpec struct {
	FormatSelector string
	OutputTemplate string
	// TranscodeArgs are ffmpeg arguments for the post-processor, empty when unused
	TranscodeArgs []string
	Clip          *Clip
	AudioOnly     bool
	// Notices are informational, non-fatal messages for the user
	Notices []string
}

// HasTranscode reports whether GPU re-encode arguments are attached
func (s ExternalDownloadSpec) HasTranscode() bool {
	return len(s.TranscodeArgs) > 0
}

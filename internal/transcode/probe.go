package transcode

import (
	"context"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Probe constants
const (
	ProbeTimeout    = 10 * time.Second
	HideBannerFlag  = "-hide_banner"
	ListEncodersArg = "-encoders"
)

// EncoderProbe reports whether ffmpeg exposes the hardware H.264 encoder.
// The answer is computed once and kept until Reset; failures count as
// "not available".
type EncoderProbe struct {
	runner     Runner
	ffmpegPath string

	mu        sync.Mutex
	done      bool
	available bool
}

// NewEncoderProbe creates a probe for the given ffmpeg binary
func NewEncoderProbe(runner Runner, ffmpegPath string) *EncoderProbe {
	if runner == nil {
		runner = NewCommandRunner()
	}
	if ffmpegPath == "" {
		ffmpegPath = FFmpegCommand
	}
	return &EncoderProbe{
		runner:     runner,
		ffmpegPath: ffmpegPath,
	}
}

// HasHWEncoder runs `ffmpeg -encoders` on first use and caches the result.
// Concurrent callers wait for the first probe and share its answer.
func (p *EncoderProbe) HasHWEncoder(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return p.available
	}

	p.available = p.probe(ctx)
	p.done = true
	return p.available
}

// Reset forgets the cached answer
func (p *EncoderProbe) Reset() {
	p.mu.Lock()
	p.done = false
	p.available = false
	p.mu.Unlock()
}

// FFmpegPath returns the binary the probe runs
func (p *EncoderProbe) FFmpegPath() string {
	return p.ffmpegPath
}

func (p *EncoderProbe) probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	out, err := p.runner.Run(ctx, p.ffmpegPath, HideBannerFlag, ListEncodersArg)
	if err != nil {
		log.WithError(err).Debugf("Encoder probe failed for %s, assuming no %s", p.ffmpegPath, HWEncoder)
		return false
	}

	found := strings.Contains(string(out), HWEncoder)
	log.Debugf("Encoder probe: %s available=%v", HWEncoder, found)
	return found
}

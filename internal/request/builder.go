package request

import (
	"fmt"
	"strings"

	"github.com/ytget/multi-downloader/internal/model"
	"github.com/ytget/multi-downloader/internal/platform"
)

// Input is the raw form state at submit time
type Input struct {
	URL       string
	AudioOnly bool
	Quality   model.QualityLabel
	Range     string
	GPU       bool
}

// Build validates raw input and returns an immutable request. Checks run in
// a fixed order and the first failure is returned.
func Build(in Input) (model.DownloadRequest, error) {
	url := strings.TrimSpace(in.URL)
	if url == "" {
		return model.DownloadRequest{}, ErrEmptyURL
	}

	p := platform.DetectPlatform(url)
	if !p.IsKnown() {
		return model.DownloadRequest{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, url)
	}

	rangeText := strings.TrimSpace(in.Range)
	var clip *model.Clip
	if rangeText != "" {
		if !p.SupportsClipping() {
			return model.DownloadRequest{}, &ClippingUnsupportedError{Platform: p}
		}
		c, err := ParseRange(rangeText)
		if err != nil {
			return model.DownloadRequest{}, err
		}
		clip = &c
	}

	if !in.AudioOnly && !in.Quality.IsValid() {
		return model.DownloadRequest{}, fmt.Errorf("%w: %q", ErrUnknownQuality, in.Quality)
	}

	return model.NewDownloadRequest(url, p, in.AudioOnly, in.Quality, clip, in.GPU), nil
}

// ParseRange parses "<start> <end>" into an ascending clip window
func ParseRange(text string) (model.Clip, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return model.Clip{}, fmt.Errorf("%w: want 2 times, got %d", ErrMalformedRange, len(fields))
	}

	start, err := ParseDuration(fields[0])
	if err != nil {
		return model.Clip{}, err
	}
	end, err := ParseDuration(fields[1])
	if err != nil {
		return model.Clip{}, err
	}

	if start == end {
		return model.Clip{}, fmt.Errorf("%w: %ds", ErrDegenerateRange, start)
	}
	if start > end {
		start, end = end, start
	}
	return model.Clip{Start: start, End: end}, nil
}

// RequireDestination fails with ErrNoDestination for an empty directory
func RequireDestination(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return ErrNoDestination
	}
	return nil
}

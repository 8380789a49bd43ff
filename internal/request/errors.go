package request

import (
	"errors"
	"fmt"

	"github.com/ytget/multi-downloader/internal/model"
)

// Validation errors. All of them are raised before a download starts.
var (
	ErrEmptyURL            = errors.New("empty url")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrClippingUnsupported = errors.New("clipping unsupported for platform")
	ErrMalformedRange      = errors.New("malformed clip range")
	ErrDegenerateRange     = errors.New("clip start equals end")
	ErrMalformedDuration   = errors.New("malformed duration")
	ErrUnknownQuality      = errors.New("unknown quality label")
	ErrNoDestination       = errors.New("no destination selected")
)

// ClippingUnsupportedError carries the platform that rejected a clip range
type ClippingUnsupportedError struct {
	Platform model.Platform
}

func (e *ClippingUnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrClippingUnsupported, e.Platform)
}

// Is lets errors.Is match ErrClippingUnsupported
func (e *ClippingUnsupportedError) Is(target error) bool {
	return target == ErrClippingUnsupported
}

// Message returns a user-facing title and text for a validation error
func Message(err error) (title, text string) {
	var clipErr *ClippingUnsupportedError
	switch {
	case errors.Is(err, ErrEmptyURL):
		return "No URL", "Paste a video URL from any supported platform."
	case errors.Is(err, ErrUnsupportedPlatform):
		return "Unsupported URL", "This platform is not supported. Check the supported platforms list."
	case errors.As(err, &clipErr):
		return "Clipping Not Supported", fmt.Sprintf("Video clipping is only supported for YouTube, not %s.", clipErr.Platform)
	case errors.Is(err, ErrMalformedRange):
		return "Range", "Use: start end (space-separated)."
	case errors.Is(err, ErrDegenerateRange):
		return "Range", "Start and end times cannot be the same."
	case errors.Is(err, ErrMalformedDuration):
		return "Range", "Invalid time format. Use seconds or MM:SS or HH:MM:SS."
	case errors.Is(err, ErrUnknownQuality):
		return "Quality", "Pick one of the listed qualities."
	case errors.Is(err, ErrNoDestination):
		return "No folder", "Pick a save folder."
	case err == nil:
		return "", ""
	default:
		return "Error", err.Error()
	}
}

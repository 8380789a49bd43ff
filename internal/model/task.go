package model

import (
	"fmt"
	"strings"
	"time"
)

// PercentIndeterminate marks progress whose total size is not known
const PercentIndeterminate = -1

// DownloadTask represents the single in-flight download
type DownloadTask struct {
	ID         string
	URL        string
	Platform   Platform
	Request    DownloadRequest
	Spec       ExternalDownloadSpec
	Status     TaskStatus
	Percent    int       // 0 to 100, or PercentIndeterminate
	Speed      string    // human readable speed (e.g., "1.2 MB/s")
	ETASec     int       // ETA in seconds, -1 if unknown
	StatusText string    // last status line shown to the user
	LastError  string    // last error message if any
	OutputPath string    // path to downloaded file
	StartedAt  time.Time // when download started
	FinishedAt time.Time // when download finished
	Title      string    // video title
}

// ProgressUpdate is one message from the download worker to the presentation layer
type ProgressUpdate struct {
	TaskID  string
	Percent int // 0 to 100, or PercentIndeterminate
	Status  string
	// Final is set on the single terminal update of a task
	Final bool
	Err   error
}

// Indeterminate reports whether the update carries no percentage
func (u ProgressUpdate) Indeterminate() bool {
	return u.Percent < 0
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (dt *DownloadTask) GetETAString() string {
	if dt.ETASec <= 0 {
		return "—"
	}

	hours := dt.ETASec / 3600
	minutes := (dt.ETASec % 3600) / 60
	seconds := dt.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if dt.OutputPath != "" {
		// support both / and \ separators
		parts := strings.FieldsFunc(dt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return dt.URL
}

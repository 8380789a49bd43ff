package download

import (
	"context"

	"github.com/ytget/multi-downloader/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	// Start launches the download; ErrBusy while another one runs
	Start(ctx context.Context, req model.DownloadRequest, spec model.ExternalDownloadSpec) (*Relay, error)
	Busy() bool
	Current() (model.DownloadTask, bool)
}

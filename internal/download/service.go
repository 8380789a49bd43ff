package download

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/multi-downloader/internal/model"
)

// Retry defaults
const (
	DefaultMaxRetries = 1
	DefaultRetryDelay = 2 * time.Second
)

// Status text
const (
	StatusStarting       = "Starting..."
	StatusClippingFormat = "Clipping %ds -> %ds"
	StatusFromFormat     = "Downloading from %s..."
	StatusPercentFormat  = "Downloading... %.1f%%"
	StatusSpeedFormat    = "Downloading... %.1f%% • %.1f MB/s • ETA %s"
	StatusStartDownload  = "Starting download..."
	StatusProcessing     = "Processing..."
	StatusDone           = "Done"
	StatusErrorPrefix    = "Error: "
)

const (
	TaskIDPrefix     = "task-"
	bytesPerMegabyte = 1024 * 1024
	percentComplete  = 100
)

// ErrBusy is returned by Start while a download is in flight
var ErrBusy = errors.New("a download is already running")

// Service runs at most one download at a time
type Service struct {
	executor   Executor
	maxRetries int
	retryDelay time.Duration

	mu      sync.Mutex
	current *model.DownloadTask
}

// NewService creates a new download service
func NewService(executor Executor) *Service {
	return &Service{
		executor:   executor,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
}

// SetRetryPolicy configures how often and how late a failed download is retried
func (s *Service) SetRetryPolicy(maxRetries int, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if maxRetries < 0 {
		maxRetries = 0
	}
	s.maxRetries = maxRetries
	s.retryDelay = delay
}

// Busy reports whether a download is in flight
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busyLocked()
}

// busyLocked reports whether the latest task is unfinished; s.mu must be held
func (s *Service) busyLocked() bool {
	return s.current != nil && !s.current.Status.IsFinished()
}

// Current returns a snapshot of the latest task, if any
func (s *Service) Current() (model.DownloadTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.DownloadTask{}, false
	}
	return *s.current, true
}

// Start launches the download in the background and returns its relay.
// The relay always receives exactly one terminal update.
func (s *Service) Start(ctx context.Context, req model.DownloadRequest, spec model.ExternalDownloadSpec) (*Relay, error) {
	s.mu.Lock()
	if s.busyLocked() {
		s.mu.Unlock()
		return nil, ErrBusy
	}

	task := &model.DownloadTask{
		ID:         generateTaskID(),
		URL:        req.URL(),
		Platform:   req.Platform(),
		Request:    req,
		Spec:       spec,
		Status:     model.TaskStatusPending,
		Percent:    model.PercentIndeterminate,
		ETASec:     -1,
		StatusText: StatusStarting,
		StartedAt:  time.Now(),
	}
	s.current = task
	s.mu.Unlock()

	relay := NewRelay(task.ID)
	go s.run(ctx, task, relay)

	return relay, nil
}

// run performs the download and always ends with relay.Finish
func (s *Service) run(ctx context.Context, task *model.DownloadTask, relay *Relay) {
	logger := log.WithFields(log.Fields{"task": task.ID, "platform": task.Platform})

	var outputPath string
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("download panicked: %v", r)
		}
		s.finish(task, relay, outputPath, err, logger)
	}()

	s.setStatus(task, relay, model.TaskStatusStarting, model.PercentIndeterminate, StatusStarting)

	if task.Spec.Clip != nil {
		s.setStatus(task, relay, model.TaskStatusStarting, model.PercentIndeterminate,
			fmt.Sprintf(StatusClippingFormat, task.Spec.Clip.Start, task.Spec.Clip.End))
	}
	for _, notice := range task.Spec.Notices {
		s.setStatus(task, relay, model.TaskStatusStarting, model.PercentIndeterminate, notice)
	}

	s.setStatus(task, relay, model.TaskStatusDownloading, model.PercentIndeterminate,
		fmt.Sprintf(StatusFromFormat, task.Platform))

	outputPath, err = s.downloadWithRetry(ctx, task, relay, logger)
}

// downloadWithRetry attempts download with retry logic
func (s *Service) downloadWithRetry(ctx context.Context, task *model.DownloadTask, relay *Relay, logger *log.Entry) (string, error) {
	s.mu.Lock()
	maxRetries, delay := s.maxRetries, s.retryDelay
	s.mu.Unlock()

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			logger.Infof("Retrying download, attempt %d", attempt+1)
		}

		path, err := s.executor.Run(ctx, task.URL, task.Spec, func(p Progress) {
			s.updateProgress(task, relay, p)
		})
		if err == nil {
			return path, nil
		}

		lastErr = err
		logger.WithError(err).Warnf("Download attempt %d failed", attempt+1)

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	return "", lastErr
}

// updateProgress turns an extractor sample into task state and a relay update
func (s *Service) updateProgress(task *model.DownloadTask, relay *Relay, p Progress) {
	s.mu.Lock()
	// samples arriving outside the download phases are stale
	if !task.Status.IsActive() {
		s.mu.Unlock()
		return
	}
	if p.Title != "" && task.Title == "" {
		task.Title = p.Title
	}

	switch p.Phase {
	case PhaseProcessing, PhaseFinished:
		task.Status = model.TaskStatusProcessing
		task.StatusText = StatusProcessing
	default:
		task.Status = model.TaskStatusDownloading
		if p.TotalBytes > 0 {
			percent := float64(p.DownloadedBytes) / float64(p.TotalBytes) * 100
			if percent > percentComplete {
				percent = percentComplete
			}
			task.Percent = int(percent)

			if speed := bytesPerSecond(p); speed > 0 {
				task.Speed = fmt.Sprintf("%.1f MB/s", speed/bytesPerMegabyte)
				task.ETASec = int(float64(p.TotalBytes-p.DownloadedBytes) / speed)
				task.StatusText = fmt.Sprintf(StatusSpeedFormat, percent, speed/bytesPerMegabyte, task.GetETAString())
			} else {
				task.StatusText = fmt.Sprintf(StatusPercentFormat, percent)
			}
		} else {
			task.Percent = model.PercentIndeterminate
			task.StatusText = StatusStartDownload
		}
	}

	update := model.ProgressUpdate{Percent: task.Percent, Status: task.StatusText}
	s.mu.Unlock()

	relay.Publish(update)
}

// finish records the outcome, frees the service and sends the terminal update
func (s *Service) finish(task *model.DownloadTask, relay *Relay, outputPath string, err error, logger *log.Entry) {
	s.mu.Lock()
	task.Percent = percentComplete
	task.FinishedAt = time.Now()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		task.StatusText = StatusErrorPrefix + err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.OutputPath = outputPath
		task.StatusText = StatusDone
	}
	update := model.ProgressUpdate{Percent: percentComplete, Status: task.StatusText, Err: err}
	s.mu.Unlock()

	if err != nil {
		logger.WithError(err).Error("Download failed")
	} else {
		logger.WithField("output", outputPath).Info("Download completed")
	}

	relay.Finish(update)
}

// setStatus updates task state and publishes it
func (s *Service) setStatus(task *model.DownloadTask, relay *Relay, status model.TaskStatus, percent int, text string) {
	s.mu.Lock()
	task.Status = status
	task.Percent = percent
	task.StatusText = text
	s.mu.Unlock()

	relay.Publish(model.ProgressUpdate{Percent: percent, Status: text})
}

// bytesPerSecond averages throughput since the download started
func bytesPerSecond(p Progress) float64 {
	if p.Started.IsZero() {
		return 0
	}
	elapsed := time.Since(p.Started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(p.DownloadedBytes) / elapsed
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}

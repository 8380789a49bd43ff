package download

import (
	"sync"

	"github.com/ytget/multi-downloader/internal/model"
)

// Relay carries progress from the download goroutine to one consumer.
// Intermediate updates are coalesced: a publish replaces an update the
// consumer has not read yet. The terminal update travels on its own channel
// and is delivered exactly once.
type Relay struct {
	taskID  string
	updates chan model.ProgressUpdate
	done    chan model.ProgressUpdate
	once    sync.Once
}

// NewRelay creates a relay for a task
func NewRelay(taskID string) *Relay {
	return &Relay{
		taskID:  taskID,
		updates: make(chan model.ProgressUpdate, 1),
		done:    make(chan model.ProgressUpdate, 1),
	}
}

// TaskID returns the task the relay belongs to
func (r *Relay) TaskID() string {
	return r.taskID
}

// Publish offers an intermediate update without blocking. Only the producer
// goroutine may call it.
func (r *Relay) Publish(update model.ProgressUpdate) {
	update.TaskID = r.taskID
	update.Final = false
	for {
		select {
		case r.updates <- update:
			return
		default:
		}
		// drop the stale update and try again
		select {
		case <-r.updates:
		default:
		}
	}
}

// Finish delivers the terminal update. Calls after the first are ignored.
func (r *Relay) Finish(update model.ProgressUpdate) bool {
	sent := false
	r.once.Do(func() {
		update.TaskID = r.taskID
		update.Final = true
		r.done <- update
		sent = true
	})
	return sent
}

// Updates returns the coalesced intermediate updates
func (r *Relay) Updates() <-chan model.ProgressUpdate {
	return r.updates
}

// Done returns the channel carrying the terminal update
func (r *Relay) Done() <-chan model.ProgressUpdate {
	return r.done
}

// Consume calls onUpdate for intermediate updates until the terminal update
// arrives, then calls onDone once and returns it.
func (r *Relay) Consume(onUpdate, onDone func(model.ProgressUpdate)) model.ProgressUpdate {
	for {
		select {
		case u := <-r.updates:
			if onUpdate != nil {
				onUpdate(u)
			}
		case u := <-r.done:
			if onDone != nil {
				onDone(u)
			}
			return u
		}
	}
}

package viewmodel

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadStatus is the per-item upload state. Success and Error are
// terminal; an item transitions exactly once.
type UploadStatus string

const (
	UploadUploading UploadStatus = "Uploading"
	UploadSuccess   UploadStatus = "Success"
	UploadError     UploadStatus = "Error"
)

// UploadFailedMessage is the fixed message carried by failed items.
const UploadFailedMessage = "Failed to process file"

// DefaultUploadDelay matches the reference 2-second simulated upload.
const DefaultUploadDelay = 2 * time.Second

// UploadItem is one file in the batch list.
type UploadItem struct {
	ID     string
	Name   string
	Status UploadStatus
	Error  string
}

// UploadEvent reports an item reaching its terminal state.
type UploadEvent struct {
	Index  int
	ID     string
	Status UploadStatus
	Error  string
}

// OutcomeFunc decides an item's terminal outcome; true means success.
// The default is random (~80% success), which is useless in tests, so the
// simulator takes the function as a dependency.
type OutcomeFunc func(item UploadItem) bool

func defaultOutcome(UploadItem) bool {
	return rand.Float64() > 0.2
}

// Uploader simulates a batch upload: every submitted file is appended as
// Uploading and independently flips to Success or Error after a fixed
// delay. The item list is append-only and insertion-ordered; no item's
// outcome depends on a sibling. It performs no real I/O; its contract
// (submit, then eventual per-item terminal status) is what a real upload
// client would satisfy.
//
// Timers fire on their own goroutines, so unlike the other view-models
// the uploader locks around its state.
type Uploader struct {
	mu      sync.Mutex
	delay   time.Duration
	outcome OutcomeFunc
	log     *zap.Logger

	items      []UploadItem
	timers     []*time.Timer
	events     chan UploadEvent
	dragActive bool
	closed     bool
}

// NewUploader builds a simulator. A nil outcome selects the random
// default; delay values < 1 fall back to DefaultUploadDelay.
func NewUploader(delay time.Duration, outcome OutcomeFunc, log *zap.Logger) *Uploader {
	if delay < 1 {
		delay = DefaultUploadDelay
	}
	if outcome == nil {
		outcome = defaultOutcome
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Uploader{
		delay:   delay,
		outcome: outcome,
		log:     log.Named("upload"),
		events:  make(chan UploadEvent, 64),
	}
}

// Submit appends one Uploading item per filename, preserving input order,
// and schedules each item's completion independently. It returns the
// appended items.
func (u *Uploader) Submit(names []string) []UploadItem {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return nil
	}

	appended := make([]UploadItem, 0, len(names))
	for _, name := range names {
		item := UploadItem{
			ID:     uuid.NewString(),
			Name:   name,
			Status: UploadUploading,
		}
		u.items = append(u.items, item)
		appended = append(appended, item)

		id := item.ID
		t := time.AfterFunc(u.delay, func() { u.complete(id) })
		u.timers = append(u.timers, t)
	}
	u.log.Info("files submitted", zap.Int("count", len(names)))
	return appended
}

// complete flips one item to its terminal state. A second completion for
// the same item is a no-op: terminal states are immutable.
func (u *Uploader) complete(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return
	}
	for i := range u.items {
		if u.items[i].ID != id {
			continue
		}
		if u.items[i].Status != UploadUploading {
			return
		}
		if u.outcome(u.items[i]) {
			u.items[i].Status = UploadSuccess
		} else {
			u.items[i].Status = UploadError
			u.items[i].Error = UploadFailedMessage
		}
		ev := UploadEvent{
			Index:  i,
			ID:     id,
			Status: u.items[i].Status,
			Error:  u.items[i].Error,
		}
		select {
		case u.events <- ev:
		default:
			u.log.Warn("upload event dropped, consumer not draining", zap.String("id", id))
		}
		return
	}
}

// Events exposes item completions for the UI to wait on.
func (u *Uploader) Events() <-chan UploadEvent {
	return u.events
}

// Items returns a snapshot of the batch list in insertion order.
func (u *Uploader) Items() []UploadItem {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]UploadItem, len(u.items))
	copy(out, u.items)
	return out
}

// Pending reports how many items have not reached a terminal state.
func (u *Uploader) Pending() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for _, it := range u.items {
		if it.Status == UploadUploading {
			n++
		}
	}
	return n
}

// SetDragActive toggles the transient drop-target flag. It has no effect
// on processing outcomes.
func (u *Uploader) SetDragActive(active bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.dragActive = active
}

// DragActive reports the drop-target flag.
func (u *Uploader) DragActive() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.dragActive
}

// Close stops all pending timers. Items still Uploading stay Uploading;
// nothing transitions after Close.
func (u *Uploader) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return
	}
	u.closed = true
	for _, t := range u.timers {
		t.Stop()
	}
	u.timers = nil
}

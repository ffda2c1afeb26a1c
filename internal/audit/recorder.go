package audit

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"fileproc/pkg/logger"
)

const DefaultQueueSize = 1024

// AsyncRecorder queues entries on a bounded channel and fans them out to its
// sinks from one goroutine. When the queue is full new entries are dropped
// and counted rather than blocking the session.
type AsyncRecorder struct {
	entries chan Entry
	sinks   []Sink
	logger  *logger.Logger
	now     func() time.Time

	mu      sync.RWMutex
	closed  bool
	started bool
	done    chan struct{}

	dropped atomic.Uint64
	written atomic.Uint64
}

var _ Recorder = (*AsyncRecorder)(nil)

func NewAsyncRecorder(queueSize int, log *logger.Logger, sinks ...Sink) *AsyncRecorder {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &AsyncRecorder{
		entries: make(chan Entry, queueSize),
		sinks:   sinks,
		logger:  log.WithField("component", "audit"),
		now:     time.Now,
		done:    make(chan struct{}),
	}
}

// Start launches the writer goroutine. It is a no-op after the first call.
func (r *AsyncRecorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started || r.closed {
		return
	}
	r.started = true
	go r.loop()
}

func (r *AsyncRecorder) Record(level Level, operation, fileName, message string) {
	entry := Entry{
		Time:      r.now(),
		Level:     level,
		Operation: operation,
		FileName:  fileName,
		Message:   message,
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.dropped.Add(1)
		return
	}

	select {
	case r.entries <- entry:
	default:
		if r.dropped.Add(1)%100 == 1 {
			r.logger.Warn("audit queue full, dropping entries", "dropped", r.dropped.Load())
		}
	}
}

// Close stops accepting entries, drains the queue and closes every sink.
func (r *AsyncRecorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.entries)
	started := r.started
	r.mu.Unlock()

	if started {
		<-r.done
	} else {
		r.drain()
	}

	var errs []error
	for _, sink := range r.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *AsyncRecorder) Dropped() uint64 {
	return r.dropped.Load()
}

func (r *AsyncRecorder) Written() uint64 {
	return r.written.Load()
}

func (r *AsyncRecorder) loop() {
	defer close(r.done)
	r.drain()
}

func (r *AsyncRecorder) drain() {
	for entry := range r.entries {
		for _, sink := range r.sinks {
			if err := sink.Write(entry); err != nil {
				r.logger.Warn("audit sink write failed", "sink", sink.Name(), "error", err)
			}
		}
		r.written.Add(1)
	}
}

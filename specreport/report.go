package specreport

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Event is one recorded specialization outcome. Fresh marks the first build
// for a signature; reused events carry an empty span.
type Event struct {
	Signature uint64
	Fresh     bool
	Span      timespan.TimeSpan
}

// Registry accumulates specialization events for one process-wide scope.
// It replaces implicit module-global accumulation with explicit state:
// create it with NewRegistry, hand it to the caches that should report into
// it, and Close it when the scope ends.
type Registry struct {
	id     uuid.UUID
	logger *zap.Logger

	mu     sync.Mutex
	events []Event
	closed bool
}

// NewRegistry returns an open registry. A nil logger is replaced with a nop
// logger.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		id:     uuid.New(),
		logger: logger,
	}
}

// Record appends one event. Records after Close are dropped.
func (r *Registry) Record(sig uint64, fresh bool, span timespan.TimeSpan) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.events = append(r.events, Event{Signature: sig, Fresh: fresh, Span: span})
	r.logger.Debug("specialization recorded",
		zap.String("registry_id", r.id.String()),
		zap.Uint64("signature", sig),
		zap.Bool("fresh", fresh),
		zap.Any("span", span),
	)
}

// Snapshot copies the events recorded so far.
func (r *Registry) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset discards all recorded events but keeps the registry open.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Close logs a summary and stops accepting records. Closing twice is a no-op.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	fresh := 0
	for _, e := range r.events {
		if e.Fresh {
			fresh++
		}
	}
	r.logger.Info("specialization registry closed",
		zap.String("registry_id", r.id.String()),
		zap.Int("fresh", fresh),
		zap.Int("reused", len(r.events)-fresh),
	)
}

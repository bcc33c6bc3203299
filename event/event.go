// Package event implements the per-canvas event queue and callback
// registry of spec §4.9: a synchronous two-pass dispatcher plus an
// asynchronous, overload-shedding background loop. The background loop is
// grounded on fifo.Deq/fifo.Proc: the queue's events live in a single
// named logical queue ("events") dispatched by one Proc, whose WaitDelay
// ticker is exactly spec §4.8's "proc wait callback [that] runs every 1ms
// while the async input queue blocks" — here driving the queue's
// input.TimerSet forward and emitting any TIMER_TICK events that fall due.
package event

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dvzkit/dvz/fifo"
	"github.com/dvzkit/dvz/input"
)

// Type tags an Event's payload kind (spec §3 Event tagged union).
type Type int

const (
	TypeNone Type = iota // sentinel: closes the async consumer
	TypeInit
	TypeRefill
	TypeFrame
	TypeTimer
	TypeMouseButton
	TypeMouseMove
	TypeMouseWheel
	TypeMouseDrag
	TypeMouseClick
	TypeMouseDoubleClick
	TypeKey
	TypeResize
	TypeScreencast
	TypePreSend
	TypePostSend
	TypeDestroy
	TypeImgui
	TypeRequests // carries a Requester (present package's request-router handle)
)

// Event is the tagged union dispatched through the queue. Mods carries the
// originating modifier keys for mouse events; UserData is opaque
// callback-supplied context; Payload carries the type-specific body
// (MouseButton, MouseMove, KeyEvent, ResizeEvent, ScreencastFrame, ...).
type Event struct {
	Type     Type
	Param    int // caller-supplied value; dispatch order comes from Callback.Param
	Mods     uint8
	UserData any
	Payload  any
}

// ScreencastFrame is the payload of a TypeScreencast event. Consumers own
// RGBA: the producer hands off the buffer and does not reuse or free it
// (spec §6, resolved Open Question: screencast buffer ownership transfers
// to the consumer on dispatch).
type ScreencastFrame struct {
	Index    uint64
	Time     time.Time
	Interval time.Duration
	Width    int
	Height   int
	RGBA     []byte
}

// Callback is a registered event handler. Sync handlers run on the
// producing goroutine inline; async handlers run on the background loop.
type Callback struct {
	Type  Type
	Async bool
	Param int // dispatch pass: 0 runs before >0 (spec §4.9)
	Fn    func(Event)
}

var logger = slog.Default()

// SetLogger configures the logger used for queue diagnostics (overload
// shedding, dropped-callback panics). Pass nil to silence it.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.New(slog.NewTextHandler(discard{}, nil))
		return
	}
	logger = l
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// maxEventDuration bounds how long the overload-shedding loop tolerates a
// growing queue before trimming it (spec §4.9).
const maxEventDuration = 50 * time.Millisecond

// timerTickInterval is the proc wait-callback period of spec §4.8 ("runs
// every 1 ms while the async input queue blocks").
const timerTickInterval = time.Millisecond

// eventsQueueName is the single logical fifo.Deq queue this package uses;
// Deq supports several, but the event queue has no need for more than one.
const eventsQueueName = "events"

// Queue is a per-canvas event dispatcher: a synchronous two-pass callback
// run plus a background async loop with overload shedding, driven by a
// fifo.Proc over a single logical queue.
type Queue struct {
	mu        sync.Mutex
	callbacks []*Callback

	canvasLock sync.Mutex // serializes dispatch when the canvas opts in
	serialized bool

	deq       *fifo.Deq
	proc      *fifo.Proc
	capacity  int
	closed    bool
	closeOnce sync.Once

	timers *input.TimerSet

	// totalDur/samples are touched only from the proc's own dispatch
	// goroutine (dispatchItem and tick both run there), so they need no
	// lock of their own.
	totalDur time.Duration
	samples  int
}

// NewQueue creates a queue with the given async buffer capacity (the
// overload-shedding trim ceiling).
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 64
	}
	q := &Queue{
		deq:      fifo.NewDeq(),
		capacity: capacity,
		timers:   input.NewTimerSet(),
	}
	proc := q.deq.NewProc(eventsQueueName)
	proc.WaitDelay = timerTickInterval
	proc.OnWait = q.tick
	proc.Post = q.dispatchItem
	q.proc = proc
	return q
}

// Timers returns the queue's timer set (spec §4.8): callers create, pause,
// and resume timers here; the proc's 1ms wait callback advances them and
// dispatches any due TIMER_TICK events automatically, with no further
// action required from the caller.
func (q *Queue) Timers() *input.TimerSet { return q.timers }

// SetSerialized toggles the canvas-level lock that serializes callback
// dispatch, preventing concurrent mutation of shared GPU state (spec
// §4.9 "Locking").
func (q *Queue) SetSerialized(v bool) {
	q.mu.Lock()
	q.serialized = v
	q.mu.Unlock()
}

// On registers a callback for typ. async=false dispatches synchronously
// on Send's goroutine; async=true posts through the background loop.
// param controls sync two-pass ordering (0 runs before >0).
func (q *Queue) On(typ Type, async bool, param int, fn func(Event)) *Callback {
	cb := &Callback{Type: typ, Async: async, Param: param, Fn: fn}
	q.mu.Lock()
	q.callbacks = append(q.callbacks, cb)
	q.mu.Unlock()
	return cb
}

// Off removes a previously registered callback.
func (q *Queue) Off(cb *Callback) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, c := range q.callbacks {
		if c == cb {
			q.callbacks = append(q.callbacks[:i], q.callbacks[i+1:]...)
			return
		}
	}
}

// Send dispatches ev: synchronous callbacks run immediately in two passes
// (param=0 before param>0, spec §4.9); async callbacks matching ev.Type
// are posted to the background loop.
func (q *Queue) Send(ev Event) {
	if q.serialized {
		q.canvasLock.Lock()
		defer q.canvasLock.Unlock()
	}

	q.mu.Lock()
	matching := make([]*Callback, 0, len(q.callbacks))
	for _, c := range q.callbacks {
		if c.Type == ev.Type {
			matching = append(matching, c)
		}
	}
	q.mu.Unlock()

	for _, c := range matching {
		if !c.Async && c.Param == 0 {
			c.Fn(ev)
		}
	}
	for _, c := range matching {
		if !c.Async && c.Param > 0 {
			c.Fn(ev)
		}
	}

	hasAsync := false
	for _, c := range matching {
		if c.Async {
			hasAsync = true
			break
		}
	}
	if hasAsync {
		q.Post(ev)
	}
}

// Post enqueues ev for the background loop without running any sync
// callback. Posting a TypeNone event closes the consumer (spec §4.9
// "Closing").
func (q *Queue) Post(ev Event) {
	q.mu.Lock()
	closed := q.closed
	q.mu.Unlock()
	if closed {
		return
	}
	q.deq.Enqueue(eventsQueueName, ev)
}

// Reset drains every pending async event without dispatching it.
func (q *Queue) Reset() {
	q.deq.Reset(eventsQueueName)
}

// Run starts the background consumer loop; it returns once Close is
// called (from any goroutine, including in response to a posted TypeNone
// event) or ctx is done.
func (q *Queue) Run(ctx context.Context) {
	q.proc.Start()
	select {
	case <-ctx.Done():
	case <-q.proc.Done():
	}
	q.Close()
}

// dispatchItem is the proc's Post hook: it runs once per dequeued event,
// in order, on the proc's dispatch goroutine.
func (q *Queue) dispatchItem(item fifo.Item) {
	ev, ok := item.Value.(Event)
	if !ok {
		return
	}
	if ev.Type == TypeNone {
		// Close blocks waiting for the proc's dispatch loop to exit, so it
		// cannot run synchronously from inside that same loop.
		go q.Close()
		return
	}
	q.dispatchTimed(ev)
}

// tick is the proc's wait callback (spec §4.8): it runs once every
// timerTickInterval while the queue has nothing else to dispatch,
// advancing the shared timer set's clock and dispatching any TIMER_TICK
// events that consequently fall due.
func (q *Queue) tick() {
	for _, te := range q.timers.Tick() {
		q.dispatchTimed(Event{Type: TypeTimer, Payload: te})
	}
}

// dispatchTimed runs ev's async callbacks, tracks the rolling average
// callback duration, and trims the queue to the overload-shedding target
// computed from it (spec §4.9).
func (q *Queue) dispatchTimed(ev Event) {
	start := time.Now()
	q.dispatchAsync(ev)
	q.totalDur += time.Since(start)
	q.samples++
	q.deq.Discard(eventsQueueName, q.eventsToKeep(q.totalDur, q.samples))
}

func (q *Queue) dispatchAsync(ev Event) {
	q.mu.Lock()
	matching := make([]*Callback, 0, len(q.callbacks))
	for _, c := range q.callbacks {
		if c.Type == ev.Type && c.Async {
			matching = append(matching, c)
		}
	}
	q.mu.Unlock()

	for _, c := range matching {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("event callback panicked", "type", ev.Type, "recover", r)
				}
			}()
			c.Fn(ev)
		}()
	}
}

// eventsToKeep computes the overload-shedding trim target: clip(
// MAX_EVENT_DURATION / avg, 1, capacity), treated as unbounded once it
// reaches capacity (spec §4.9).
func (q *Queue) eventsToKeep(totalDur time.Duration, samples int) int {
	if samples == 0 {
		return q.capacity
	}
	avg := totalDur / time.Duration(samples)
	if avg <= 0 {
		return q.capacity
	}
	keep := int(maxEventDuration / avg)
	if keep < 1 {
		keep = 1
	}
	if keep >= q.capacity {
		return q.capacity
	}
	return keep
}

// Close stops the background loop: it is safe to call more than once and
// from any goroutine, and blocks until the dispatch loop has exited.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()

		q.deq.Close(eventsQueueName)
		q.proc.Stop()
	})
}

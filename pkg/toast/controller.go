package toast

import (
	"log/slog"
	"sync"
	"time"
)

const (
	// ThrottleWindow is the minimum interval between two consecutive
	// immediate admissions. Requests inside the window are queued, not
	// displayed, so rapid-fire duplicates (repeated button taps) cannot
	// visually stack.
	ThrottleWindow = 300 * time.Millisecond

	// MaxQueueSize bounds the pending queue. Requests beyond it are
	// silently dropped.
	MaxQueueSize = 2
)

// Controller decides, for a stream of show-requests arriving from
// arbitrary call sites, which request is displayed now, which are queued,
// and which are dropped. A single visible toast's lifecycle runs to
// completion before the next queued request starts.
//
// All state transitions happen on discrete events - Request calls, dismiss
// completions, driver registration - serialized by an internal mutex.
// Driver callbacks may arrive on any goroutine.
type Controller struct {
	mu           sync.Mutex
	driver       Driver
	busy         bool
	lastAdmitted time.Time
	pending      *queue
	waiters      []func()

	throttle time.Duration
	now      func() time.Time
	logger   *slog.Logger
	observer Observer
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithObserver sets the admission-outcome observer. Default: NopObserver.
func WithObserver(obs Observer) ControllerOption {
	return func(c *Controller) {
		c.observer = obs
	}
}

// WithThrottleWindow overrides the admission throttle window.
func WithThrottleWindow(d time.Duration) ControllerOption {
	return func(c *Controller) {
		c.throttle = d
	}
}

// WithQueueCapacity overrides the pending-queue capacity.
func WithQueueCapacity(n int) ControllerOption {
	return func(c *Controller) {
		if n >= 0 {
			c.pending = newQueue(n)
		}
	}
}

// WithClock overrides the time source. Used in tests to exercise the
// throttle window deterministically.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates a Controller with no driver registered. Requests
// issued before a driver mounts are queued (subject to capacity) and
// drained once SetDriver is called.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		pending:  newQueue(MaxQueueSize),
		throttle: ThrottleWindow,
		now:      time.Now,
		logger:   slog.Default(),
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "toast")
	return c
}

// admission outcomes, decided under the lock and acted on outside it.
type outcome int

const (
	outcomeAdmitted outcome = iota
	outcomeQueued
	outcomeDropped
)

// Request asks for a toast to be shown. Blank messages are discarded.
// Exactly one of admit-now, enqueue, or drop happens per call; the caller
// is never told which, and nothing is ever raised back to it.
func (c *Controller) Request(message string, kind Kind, opts Options) {
	req, ok := NewRequest(message, kind, opts)
	if !ok {
		c.logger.Debug("discarding blank toast request")
		c.observer.ToastDropped(Request{Kind: kind.normalize()}, DropBlankMessage)
		return
	}

	c.mu.Lock()
	now := c.now()
	var (
		decision outcome
		driver   Driver
		depth    int
	)
	switch {
	case c.busy || now.Sub(c.lastAdmitted) < c.throttle:
		// A toast is on screen or one was just admitted: park the
		// request behind it.
		if c.pending.push(req) {
			decision = outcomeQueued
		} else {
			decision = outcomeDropped
		}
		depth = c.pending.len()

	case c.driver == nil:
		// Idle but nothing mounted yet. Queue and wait for a driver;
		// SetDriver drains the queue on registration.
		if c.pending.push(req) {
			decision = outcomeQueued
		} else {
			decision = outcomeDropped
		}
		depth = c.pending.len()

	default:
		c.busy = true
		c.lastAdmitted = now
		driver = c.driver
		decision = outcomeAdmitted
		depth = c.pending.len()
	}
	c.mu.Unlock()

	switch decision {
	case outcomeAdmitted:
		c.logger.Debug("toast admitted", "kind", req.Kind)
		c.observer.ToastAdmitted(req, depth)
		driver.Display(req)
	case outcomeQueued:
		c.logger.Debug("toast queued", "kind", req.Kind, "depth", depth)
		c.observer.ToastQueued(req, depth)
	case outcomeDropped:
		c.logger.Debug("toast dropped", "kind", req.Kind, "reason", DropQueueFull)
		c.observer.ToastDropped(req, DropQueueFull)
	}
}

// Info shows an info toast with default timings.
func (c *Controller) Info(message string) {
	c.Request(message, KindInfo, Options{})
}

// Success shows a success toast with default timings.
func (c *Controller) Success(message string) {
	c.Request(message, KindSuccess, Options{})
}

// Error shows an error toast with default timings.
func (c *Controller) Error(message string) {
	c.Request(message, KindError, Options{})
}

// SetDriver registers the active display driver. Passing nil unregisters:
// the controller then queues or drops incoming requests until a driver
// mounts again. On registration, readiness waiters are notified once and
// cleared, then the pending queue drains. Last writer wins.
func (c *Controller) SetDriver(d Driver) {
	c.mu.Lock()
	c.driver = d
	var waiters []func()
	if d != nil {
		waiters = c.waiters
		c.waiters = nil
	}
	c.mu.Unlock()

	if d == nil {
		c.logger.Debug("driver unregistered")
		return
	}
	c.logger.Debug("driver registered", "waiters", len(waiters))
	for _, fn := range waiters {
		fn()
	}
	c.drain()
}

// OnReady registers fn to run once, when a driver registers. If a driver
// is already registered, fn runs immediately.
func (c *Controller) OnReady(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	ready := c.driver != nil
	if !ready {
		c.waiters = append(c.waiters, fn)
	}
	c.mu.Unlock()
	if ready {
		fn()
	}
}

// SetBusy reports a presentation-side animation state change. Marking the
// controller idle triggers a drain of the pending queue.
func (c *Controller) SetBusy(busy bool) {
	c.mu.Lock()
	c.busy = busy
	c.mu.Unlock()
	if !busy {
		c.drain()
	}
}

// Dismiss retracts the active toast through the driver. When the exit
// transition completes the controller becomes idle, done (if non-nil) is
// invoked, and the next queued request - if any - is displayed. With no
// driver registered there is nothing to retract: the controller clears
// its own busy state so a later registration can drain, and done still
// fires exactly once. The dismissal observer callback fires only when a
// toast was actually visible or animating.
func (c *Controller) Dismiss(done func()) {
	c.mu.Lock()
	driver := c.driver
	wasBusy := c.busy
	if driver == nil {
		c.busy = false
		c.mu.Unlock()
		if wasBusy {
			c.observer.ToastDismissed()
		}
		if done != nil {
			done()
		}
		return
	}
	c.mu.Unlock()

	var once sync.Once
	driver.Retract(func() {
		once.Do(func() {
			c.mu.Lock()
			c.busy = false
			c.mu.Unlock()
			if wasBusy {
				c.observer.ToastDismissed()
			}
			if done != nil {
				done()
			}
			c.drain()
		})
	})
}

// drain pops the oldest pending request and displays it, if the controller
// is idle and a driver is registered. Entries with a blank message should
// never exist (queue invariant); they are skipped if they somehow do.
func (c *Controller) drain() {
	for {
		c.mu.Lock()
		if c.busy || c.driver == nil || c.pending.len() == 0 {
			c.mu.Unlock()
			return
		}
		req, ok := c.pending.pop()
		if !ok || req.Message == "" {
			c.mu.Unlock()
			continue
		}
		c.busy = true
		c.lastAdmitted = c.now()
		driver := c.driver
		depth := c.pending.len()
		c.mu.Unlock()

		c.logger.Debug("toast drained", "kind", req.Kind, "remaining", depth)
		c.observer.ToastAdmitted(req, depth)
		driver.Display(req)
		return
	}
}

// QueueDepth returns the number of pending requests. Intended for tests
// and diagnostics.
func (c *Controller) QueueDepth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending.len()
}

// Busy reports whether a toast is currently visible or animating.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

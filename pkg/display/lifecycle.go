package display

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/glazeui/glaze/pkg/toast"
)

// Default geometry for the toast container, in logical pixels.
const (
	DefaultCollapsedWidth = 48.0
	DefaultTextPadding    = 24.0
	DefaultScreenMargin   = 32.0

	// DefaultTextStagger is the delay between the width expansion starting
	// and the text beginning to fade in.
	DefaultTextStagger = 80 * time.Millisecond
)

// Lifecycle drives one visible toast end to end on a Surface. It
// implements toast.Driver.
//
// Display and Retract, and every internal step completion, cancel or
// outlive each other through a generation counter: bumping the generation
// invalidates all callbacks scheduled under the previous one.
type Lifecycle struct {
	mu       sync.Mutex
	surface  Surface
	phase    Phase
	gen      uint64
	cancels  []func()
	current  toast.Request
	complete func()

	autoDismiss func()
	onPhase     func(Phase)
	logger      *slog.Logger

	collapsedWidth float64
	textPadding    float64
	screenMargin   float64
	textStagger    time.Duration
}

// LifecycleOption configures a Lifecycle.
type LifecycleOption func(*Lifecycle)

// WithAutoDismiss sets the function invoked when a toast's display
// duration elapses. Wire this to Controller.Dismiss at the composition
// root so queued toasts advance; without it the lifecycle retracts itself.
func WithAutoDismiss(fn func()) LifecycleOption {
	return func(l *Lifecycle) {
		l.autoDismiss = fn
	}
}

// WithPhaseListener sets a listener notified after every phase change.
// Observational only; it must not call back into the Lifecycle.
func WithPhaseListener(fn func(Phase)) LifecycleOption {
	return func(l *Lifecycle) {
		l.onPhase = fn
	}
}

// WithLifecycleLogger sets the logger. Default: slog.Default().
func WithLifecycleLogger(logger *slog.Logger) LifecycleOption {
	return func(l *Lifecycle) {
		l.logger = logger
	}
}

// WithGeometry overrides the container geometry.
func WithGeometry(collapsedWidth, textPadding, screenMargin float64) LifecycleOption {
	return func(l *Lifecycle) {
		l.collapsedWidth = collapsedWidth
		l.textPadding = textPadding
		l.screenMargin = screenMargin
	}
}

// WithTextStagger overrides the delay before the text fade-in starts.
func WithTextStagger(d time.Duration) LifecycleOption {
	return func(l *Lifecycle) {
		l.textStagger = d
	}
}

// New creates a Lifecycle over surface, initially Hidden. surface must be
// non-nil.
func New(surface Surface, opts ...LifecycleOption) *Lifecycle {
	l := &Lifecycle{
		surface:        surface,
		phase:          PhaseHidden,
		logger:         slog.Default(),
		collapsedWidth: DefaultCollapsedWidth,
		textPadding:    DefaultTextPadding,
		screenMargin:   DefaultScreenMargin,
		textStagger:    DefaultTextStagger,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With("component", "display")
	return l
}

// Phase returns the current lifecycle phase.
func (l *Lifecycle) Phase() Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase
}

// Display begins presenting req: the surface is reset to the collapsed
// baseline, the entry transition starts, and the auto-dismiss timer is
// armed for the display duration measured from entry begin. Any in-flight
// timers and transitions from a previous toast are cancelled first.
func (l *Lifecycle) Display(req toast.Request) {
	if req.Message == "" {
		return
	}
	req.Options = normalizedOptions(req.Options)

	l.mu.Lock()
	l.cancelAllLocked()
	l.gen++
	gen := l.gen
	l.current = req
	l.complete = nil
	l.phase = PhaseEntering

	l.surface.Prepare(req)
	td := req.Options.TransitionDuration
	l.trackLocked(l.surface.Transition(PropOffset, OffsetOnScreen, td, func() {
		l.entryDone(gen)
	}))
	l.scheduleLocked(req.Options.DisplayDuration, gen, l.displayElapsed)
	l.mu.Unlock()

	l.notifyPhase(PhaseEntering)
}

// Retract starts the staged exit sequence: text fades out over half the
// transition duration, the container collapses over the other half, then
// the toast slides off screen over the full duration. onComplete fires
// exactly once when the final transition ends. Retracting while Hidden
// invokes onComplete immediately.
func (l *Lifecycle) Retract(onComplete func()) {
	l.mu.Lock()
	if l.phase == PhaseHidden {
		l.mu.Unlock()
		if onComplete != nil {
			onComplete()
		}
		return
	}
	l.cancelAllLocked()
	l.gen++
	gen := l.gen
	l.phase = PhaseExiting
	l.complete = onComplete

	td := normalizedOptions(l.current.Options).TransitionDuration
	l.trackLocked(l.surface.Transition(PropTextOpacity, 0, td/2, func() {
		l.collapseStage(gen)
	}))
	l.mu.Unlock()

	l.notifyPhase(PhaseExiting)
}

// entryDone runs when the entry transition completes: the toast is now
// Visible and the container expands toward the measured text width, with
// the text fading in shortly after the expansion starts.
func (l *Lifecycle) entryDone(gen uint64) {
	l.mu.Lock()
	if gen != l.gen || l.phase != PhaseEntering {
		l.mu.Unlock()
		return
	}
	l.phase = PhaseVisible
	td := l.current.Options.TransitionDuration
	l.trackLocked(l.surface.Transition(PropWidth, l.expandedWidthLocked(), td, nil))
	l.scheduleLocked(l.textStagger, gen, l.textFadeIn)
	l.mu.Unlock()

	l.notifyPhase(PhaseVisible)
}

func (l *Lifecycle) textFadeIn(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen || l.phase != PhaseVisible {
		return
	}
	td := l.current.Options.TransitionDuration
	l.trackLocked(l.surface.Transition(PropTextOpacity, 1, td/2, nil))
}

// displayElapsed runs when the auto-dismiss timer fires.
func (l *Lifecycle) displayElapsed(gen uint64) {
	l.mu.Lock()
	stale := gen != l.gen || (l.phase != PhaseEntering && l.phase != PhaseVisible)
	dismiss := l.autoDismiss
	l.mu.Unlock()
	if stale {
		return
	}
	l.logger.Debug("display duration elapsed")
	if dismiss != nil {
		dismiss()
		return
	}
	l.Retract(nil)
}

func (l *Lifecycle) collapseStage(gen uint64) {
	l.mu.Lock()
	if gen != l.gen || l.phase != PhaseExiting {
		l.mu.Unlock()
		return
	}
	td := normalizedOptions(l.current.Options).TransitionDuration
	l.trackLocked(l.surface.Transition(PropWidth, l.collapsedWidth, td/2, func() {
		l.slideOutStage(gen)
	}))
	l.mu.Unlock()
}

func (l *Lifecycle) slideOutStage(gen uint64) {
	l.mu.Lock()
	if gen != l.gen || l.phase != PhaseExiting {
		l.mu.Unlock()
		return
	}
	td := normalizedOptions(l.current.Options).TransitionDuration
	l.trackLocked(l.surface.Transition(PropOffset, OffsetOffScreen, td, func() {
		l.finish(gen)
	}))
	l.mu.Unlock()
}

// finish completes the retraction: state resets to Hidden and the pending
// completion callback fires exactly once.
func (l *Lifecycle) finish(gen uint64) {
	l.mu.Lock()
	if gen != l.gen || l.phase != PhaseExiting {
		l.mu.Unlock()
		return
	}
	l.phase = PhaseHidden
	done := l.complete
	l.complete = nil
	l.cancelAllLocked()
	l.mu.Unlock()

	l.notifyPhase(PhaseHidden)
	if done != nil {
		done()
	}
}

// expandedWidthLocked computes the target container width: collapsed
// baseline plus text plus padding, capped at the screen width minus the
// margin.
func (l *Lifecycle) expandedWidthLocked() float64 {
	w := l.collapsedWidth + l.surface.TextWidth() + l.textPadding
	if max := l.surface.ScreenWidth() - l.screenMargin; w > max {
		w = max
	}
	if w < l.collapsedWidth {
		w = l.collapsedWidth
	}
	return w
}

// scheduleLocked arms a one-shot timer whose callback carries the
// generation it was armed under. Cancellation stops the timer and
// suppresses a concurrent fire.
func (l *Lifecycle) scheduleLocked(d time.Duration, gen uint64, fn func(uint64)) {
	var fired atomic.Bool
	t := time.AfterFunc(d, func() {
		if fired.CompareAndSwap(false, true) {
			fn(gen)
		}
	})
	l.cancels = append(l.cancels, func() {
		fired.Store(true)
		t.Stop()
	})
}

func (l *Lifecycle) trackLocked(cancel func()) {
	if cancel != nil {
		l.cancels = append(l.cancels, cancel)
	}
}

func (l *Lifecycle) cancelAllLocked() {
	for _, cancel := range l.cancels {
		cancel()
	}
	l.cancels = l.cancels[:0]
}

func (l *Lifecycle) notifyPhase(p Phase) {
	if l.onPhase != nil {
		l.onPhase(p)
	}
}

func normalizedOptions(o toast.Options) toast.Options {
	if o.DisplayDuration <= 0 {
		o.DisplayDuration = toast.DefaultDisplayDuration
	}
	if o.TransitionDuration <= 0 {
		o.TransitionDuration = toast.DefaultTransitionDuration
	}
	return o
}

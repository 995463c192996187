package toast

import (
	"strings"
	"time"
)

// Kind represents the toast notification kind.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// normalize maps unknown kinds to KindInfo.
func (k Kind) normalize() Kind {
	switch k {
	case KindInfo, KindSuccess, KindError:
		return k
	default:
		return KindInfo
	}
}

// Default per-toast timings.
const (
	DefaultDisplayDuration    = 4 * time.Second
	DefaultTransitionDuration = 400 * time.Millisecond
)

// Options carries per-request presentation timings. The zero value means
// "use defaults".
type Options struct {
	// DisplayDuration is how long the toast stays on screen before it is
	// automatically dismissed, measured from the start of the entry
	// transition. Default: 4 seconds.
	DisplayDuration time.Duration

	// TransitionDuration is the length of the enter and exit transitions.
	// Default: 400 milliseconds.
	TransitionDuration time.Duration
}

// withDefaults returns a copy with zero fields backfilled.
func (o Options) withDefaults() Options {
	if o.DisplayDuration <= 0 {
		o.DisplayDuration = DefaultDisplayDuration
	}
	if o.TransitionDuration <= 0 {
		o.TransitionDuration = DefaultTransitionDuration
	}
	return o
}

// Request is one toast show-request. Immutable once created.
type Request struct {
	Message string
	Kind    Kind
	Options Options
}

// NewRequest builds a Request with the message trimmed, the kind
// normalized, and option defaults applied. The second return value is
// false when the message is blank; such requests must not be admitted,
// queued, or displayed.
func NewRequest(message string, kind Kind, opts Options) (Request, bool) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Request{}, false
	}
	return Request{
		Message: message,
		Kind:    kind.normalize(),
		Options: opts.withDefaults(),
	}, true
}

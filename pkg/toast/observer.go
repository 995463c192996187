package toast

// DropReason categorizes why a request was discarded.
type DropReason string

const (
	// DropBlankMessage marks a request rejected for an empty or
	// whitespace-only message.
	DropBlankMessage DropReason = "blank_message"

	// DropQueueFull marks a request discarded because the pending queue
	// was at capacity.
	DropQueueFull DropReason = "queue_full"
)

// Observer receives admission outcomes from a Controller. Implementations
// must be safe for concurrent use and must not call back into the
// Controller. Every Request call reports exactly one outcome.
type Observer interface {
	// ToastAdmitted is called when a request is handed to the driver.
	// queued is the pending-queue depth after admission.
	ToastAdmitted(req Request, queued int)

	// ToastQueued is called when a request is parked in the pending queue.
	// queued is the queue depth after insertion.
	ToastQueued(req Request, queued int)

	// ToastDropped is called when a request is discarded.
	ToastDropped(req Request, reason DropReason)

	// ToastDismissed is called when a retraction completes and the
	// controller becomes idle.
	ToastDismissed()
}

// NopObserver is an Observer that ignores everything. Embed it to implement
// only the callbacks you care about.
type NopObserver struct{}

func (NopObserver) ToastAdmitted(Request, int)       {}
func (NopObserver) ToastQueued(Request, int)         {}
func (NopObserver) ToastDropped(Request, DropReason) {}
func (NopObserver) ToastDismissed()                  {}

// Observers fans outcomes out to several observers in order.
func Observers(obs ...Observer) Observer {
	return multiObserver(obs)
}

type multiObserver []Observer

func (m multiObserver) ToastAdmitted(req Request, queued int) {
	for _, o := range m {
		o.ToastAdmitted(req, queued)
	}
}

func (m multiObserver) ToastQueued(req Request, queued int) {
	for _, o := range m {
		o.ToastQueued(req, queued)
	}
}

func (m multiObserver) ToastDropped(req Request, reason DropReason) {
	for _, o := range m {
		o.ToastDropped(req, reason)
	}
}

func (m multiObserver) ToastDismissed() {
	for _, o := range m {
		o.ToastDismissed()
	}
}

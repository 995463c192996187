package display

// Phase is the lifecycle state of the visible toast.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseEntering
	PhaseVisible
	PhaseExiting
)

func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

package window

// EventKind classifies a display event. The loop only acts on KindClose.
type EventKind uint8

const (
	KindOther EventKind = iota
	// KindClose means the user asked for the window to go away.
	KindClose
)

func (k EventKind) String() string {
	switch k {
	case KindClose:
		return "close"
	default:
		return "other"
	}
}

// Event is one input or window-system occurrence, already translated from the
// display library's own constants.
type Event struct {
	Kind EventKind
}

// CloseEvent returns an event asking the loop to stop.
func CloseEvent() Event { return Event{Kind: KindClose} }

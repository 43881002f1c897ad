package client

// State is the booking page's UI state. Renderers query it; only Next changes it.
type State int

const (
	Browsing State = iota
	Drafting
	AwaitingPaymentSelection
	Submitting
	Confirmed
	Failed
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case Drafting:
		return "drafting"
	case AwaitingPaymentSelection:
		return "awaiting_payment_selection"
	case Submitting:
		return "submitting"
	case Confirmed:
		return "confirmed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type Event int

const (
	// EventEdit is any change to a draft field.
	EventEdit Event = iota
	// EventFieldsComplete fires after an edit leaves all six required fields filled.
	EventFieldsComplete
	// EventSubmit fires once local checks pass and the request is about to be sent.
	EventSubmit
	EventSaved
	EventRejected
	EventReset
)

// Next is the transition table. Events that do not apply to s leave it unchanged.
func Next(s State, e Event) State {
	if e == EventReset {
		return Browsing
	}

	switch s {
	case Browsing:
		if e == EventEdit {
			return Drafting
		}
	case Drafting:
		if e == EventFieldsComplete {
			return AwaitingPaymentSelection
		}
	case AwaitingPaymentSelection:
		switch e {
		case EventEdit:
			return Drafting
		case EventSubmit:
			return Submitting
		}
	case Submitting:
		switch e {
		case EventSaved:
			return Confirmed
		case EventRejected:
			return Failed
		}
	case Failed:
		switch e {
		case EventEdit:
			return Drafting
		case EventSubmit:
			return Submitting
		}
	}
	return s
}

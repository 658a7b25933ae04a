package models

// SignalKind enumerates the load lifecycle states reported to the
// presentation boundary.
type SignalKind int

const (
	// SignalLoading is emitted before a live fetch begins.
	SignalLoading SignalKind = iota
	// SignalLoaded is emitted after data is available (fresh or from cache).
	SignalLoaded
	// SignalError is emitted when the fetch collaborator failed; Message
	// carries the user-facing description.
	SignalError
)

// String returns the lifecycle state name, mainly for logging.
func (k SignalKind) String() string {
	switch k {
	case SignalLoading:
		return "loading"
	case SignalLoaded:
		return "loaded"
	case SignalError:
		return "error"
	}
	return "unknown"
}

// Signal is the tagged lifecycle value the loader emits. OpID correlates the
// signals of a single load operation across log lines and observers. Events
// is set only for SignalLoaded; Message only for SignalError.
type Signal struct {
	Kind    SignalKind
	OpID    string
	Events  EventSet
	Message string
}

// LoadingSignal builds a SignalLoading value.
func LoadingSignal(opID string) Signal {
	return Signal{Kind: SignalLoading, OpID: opID}
}

// LoadedSignal builds a SignalLoaded value carrying the loaded set.
func LoadedSignal(opID string, events EventSet) Signal {
	return Signal{Kind: SignalLoaded, OpID: opID, Events: events}
}

// ErrorSignal builds a SignalError value carrying a user-facing message.
func ErrorSignal(opID, message string) Signal {
	return Signal{Kind: SignalError, OpID: opID, Message: message}
}

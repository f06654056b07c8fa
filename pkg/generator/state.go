package generator

type State int

const (
	// SuspendedStart is a generator whose body did not start yet.
	SuspendedStart State = iota
	// SuspendedYield is a generator paused at a yield.
	SuspendedYield
	// Closed is a generator that finished, either by returning or through Return.
	Closed
)

func (s State) String() string {
	switch s {
	case SuspendedStart, SuspendedYield:
		return "suspended"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

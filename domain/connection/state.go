package connection

// State is the lifecycle state of a connector.
type State int

const (
	Closed State = iota + 1
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "invalid"
	}
}

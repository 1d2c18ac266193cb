package vpk

// State is the position of one Assemble run in its lifecycle
type State int

const (
	StateIdle State = iota
	StateFileCreated
	StateWriting
	StateFinalized
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFileCreated:
		return "file_created"
	case StateWriting:
		return "writing"
	case StateFinalized:
		return "finalized"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

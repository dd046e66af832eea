package http

// State is the lifecycle stage of a connection.
type State uint8

const (
	Accepted State = iota
	Parsing
	Handling
	Responding
	Closed
	Failed
)

func (s State) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Parsing:
		return "parsing"
	case Handling:
		return "handling"
	case Responding:
		return "responding"
	case Closed:
		return "closed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

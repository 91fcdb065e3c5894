// Package launch provides the stateful views over launch data: the list of
// recent launches, a single launch's detail, and the saved launches.
package launch

// State is the lifecycle of a view's most recent fetch.
type State int

const (
	// Idle indicates nothing has been fetched yet.
	Idle State = iota
	// Pending indicates a fetch is in flight.
	Pending
	// Success indicates the most recent fetch succeeded.
	Success
	// Failure indicates the most recent fetch failed. See the view's Err.
	Failure
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

package satchel

type Status int

const (
	StatusPending Status = iota + 1
	StatusRunning
	StatusCompleted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Describe maps the closed status set to a human readable branch.
// It models dispatch only, there are no transitions.
func Describe(s Status) string {
	switch s {
	case StatusPending:
		return "Waiting..."
	case StatusRunning:
		return "In progress..."
	case StatusCompleted, StatusFailed:
		return "Done!"
	default:
		return "Unknown status"
	}
}

package models

// IssueStatus enum. An issue moves through exactly three phases.
type IssueStatus string

const (
	Pending    IssueStatus = "pending"
	InProgress IssueStatus = "in_progress"
	Resolved   IssueStatus = "resolved"
)

var issueTransitions = map[IssueStatus][]IssueStatus{
	Pending:    {InProgress},
	InProgress: {Resolved},
	Resolved:   {},
}

func (s IssueStatus) Valid() bool {
	_, ok := issueTransitions[s]
	return ok
}

// CanTransition reports whether an issue in status s may move to next.
// Re-saving the current status is allowed; skipping a phase or moving
// backwards is not.
func (s IssueStatus) CanTransition(next IssueStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range issueTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label is the name shown to citizens for each phase.
func (s IssueStatus) Label() string {
	switch s {
	case Pending:
		return "Reported"
	case InProgress:
		return "In Progress"
	case Resolved:
		return "Resolved"
	}
	return string(s)
}

package contract

type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusActive          Status = "active"
	StatusFinished        Status = "finished"
	StatusCancelled       Status = "cancelled"
)

var allowedTransitions = map[Status][]Status{
	StatusDraft:           {StatusPendingApproval, StatusCancelled},
	StatusPendingApproval: {StatusApproved, StatusDraft, StatusCancelled},
	StatusApproved:        {StatusActive, StatusCancelled},
	StatusActive:          {StatusFinished, StatusCancelled},
	StatusFinished:        {},
	StatusCancelled:       {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// IsReserving reports whether contracts in s hold their equipment.
func (s Status) IsReserving() bool {
	return s == StatusApproved || s == StatusActive
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) AllowedTargets() []Status {
	out := make([]Status, len(allowedTransitions[s]))
	copy(out, allowedTransitions[s])
	return out
}

func AllStatuses() []Status {
	return []Status{StatusDraft, StatusPendingApproval, StatusApproved, StatusActive, StatusFinished, StatusCancelled}
}

func ReservingStatuses() []Status {
	return []Status{StatusApproved, StatusActive}
}

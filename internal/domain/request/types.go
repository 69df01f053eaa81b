package request

type Status string

const (
	StatusPending   Status = "Pending"
	StatusNotified  Status = "Notified"
	StatusFulfilled Status = "Fulfilled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusNotified, StatusFulfilled:
		return true
	default:
		return false
	}
}

type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

func (u Urgency) String() string {
	return string(u)
}

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	default:
		return false
	}
}

// NewUrgency treats an empty value as the default urgency.
func NewUrgency(s string) (Urgency, error) {
	if s == "" {
		return UrgencyMedium, nil
	}
	u := Urgency(s)
	if !u.IsValid() {
		return "", ErrInvalidUrgency
	}
	return u, nil
}

package offer

type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

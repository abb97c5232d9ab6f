package car

type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusAvailable       Status = "available"
	StatusBooked          Status = "booked"
	StatusMaintenance     Status = "maintenance"
	StatusRejected        Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingApproval, StatusAvailable, StatusBooked, StatusMaintenance, StatusRejected:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

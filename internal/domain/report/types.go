package report

import "errors"

var (
	ErrInvalidTargetType = errors.New("invalid report target type")
	ErrInvalidStatus     = errors.New("invalid report status")
	ErrTargetMismatch    = errors.New("report target does not match its type")
	ErrAlreadyReviewed   = errors.New("report has already been reviewed")
)

type TargetType string

const (
	TargetUser TargetType = "user"
	TargetCar  TargetType = "car"
)

func NewTargetType(s string) (TargetType, error) {
	t := TargetType(s)
	if !t.IsValid() {
		return "", ErrInvalidTargetType
	}
	return t, nil
}

func (t TargetType) IsValid() bool {
	return t == TargetUser || t == TargetCar
}

func (t TargetType) String() string {
	return string(t)
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusResolved  Status = "resolved"
	StatusDismissed Status = "dismissed"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

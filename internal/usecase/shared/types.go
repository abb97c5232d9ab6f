package shared

import "time"

type CarImage struct {
	URL       string
	IsPrimary bool
}

type AvailabilityWindow struct {
	Start time.Time
	End   time.Time
}

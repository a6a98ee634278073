package slot

import "strings"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusUnavailable Status = "unavailable"
	StatusSelected    Status = "selected"
	// StatusPending marks a cell whose day has not been loaded yet.
	StatusPending Status = "pending"
	// StatusFailed marks a cell whose day failed to load; the day can be reloaded.
	StatusFailed Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusUnavailable, StatusSelected, StatusPending, StatusFailed:
		return true
	default:
		return false
	}
}

func (s Status) IsSelectable() bool {
	return s == StatusAvailable
}

// ParseListingStatus maps a status reported by the availability backend.
// Anything other than available or booked is treated as not offered.
func ParseListingStatus(raw string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusAvailable:
		return StatusAvailable
	case StatusBooked:
		return StatusBooked
	default:
		return StatusUnavailable
	}
}

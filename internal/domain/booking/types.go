package booking

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid booking status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// legacyCodes maps the numeric codes older backend builds still send.
var legacyCodes = map[string]Status{
	"1": StatusPending,
	"2": StatusConfirmed,
	"3": StatusCancelled,
	"4": StatusCompleted,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func ParseStatus(raw string) (Status, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if s, ok := legacyCodes[raw]; ok {
		return s, nil
	}
	if raw == "canceled" {
		return StatusCancelled, nil
	}
	s := Status(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// UnmarshalJSON accepts status names, legacy code strings and legacy code numbers.
func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	} else {
		raw = string(bytes.TrimSpace(b))
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
)

func (d Direction) IsValid() bool {
	return d == DirectionNext || d == DirectionPrevious
}

func (d Direction) days() int {
	if d == DirectionPrevious {
		return -7
	}
	return 7
}

package court

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCourtID     = errors.New("court id cannot be empty")
	ErrEmptyCourtName   = errors.New("court name cannot be empty")
	ErrCourtNameTooLong = errors.New("court name is too long (max 255 characters)")
	ErrInvalidStatus    = errors.New("invalid court status")
)

const (
	MaxCourtNameLength = 255
)

// Court is owned by the backend catalog; this service only reads it.
type Court struct {
	id          string
	name        string
	description string
	status      Status
}

func NewCourt(id, name, description string, status Status) (*Court, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyCourtID
	}
	if err := validateCourtName(name); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Court{
		id:          strings.TrimSpace(id),
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		status:      status,
	}, nil
}

func validateCourtName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCourtName
	}
	if len(name) > MaxCourtNameLength {
		return ErrCourtNameTooLong
	}
	return nil
}

func (c *Court) IsOperational() bool { return c.status.IsOperational() }

func (c *Court) ID() string          { return c.id }
func (c *Court) Name() string        { return c.name }
func (c *Court) Description() string { return c.description }
func (c *Court) Status() Status      { return c.status }

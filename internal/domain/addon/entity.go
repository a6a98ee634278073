package addon

import (
	"errors"
	"strings"

	"shuttlesync/internal/pkg/money"
)

var (
	ErrEmptyServiceID     = errors.New("service id cannot be empty")
	ErrEmptyServiceName   = errors.New("service name cannot be empty")
	ErrNegativeUnitPrice  = errors.New("service price cannot be negative")
	ErrServiceNotOffered  = errors.New("service is not offered")
	ErrInvalidServiceLine = errors.New("invalid service line")
)

// Service is an add-on sold with a booking, e.g. racket rental or drinks.
type Service struct {
	id          string
	name        string
	description string
	unitPrice   money.VND
	category    string
}

func NewService(id, name, description string, unitPrice money.VND, category string) (*Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyServiceID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyServiceName
	}
	if unitPrice < 0 {
		return nil, ErrNegativeUnitPrice
	}
	return &Service{
		id:          id,
		name:        name,
		description: description,
		unitPrice:   unitPrice,
		category:    strings.TrimSpace(category),
	}, nil
}

func (s *Service) ID() string           { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) Description() string  { return s.description }
func (s *Service) UnitPrice() money.VND { return s.unitPrice }
func (s *Service) Category() string     { return s.category }

// FindService looks a service up by id in a catalog.
func FindService(catalog []*Service, id string) (*Service, error) {
	for _, s := range catalog {
		if s.id == id {
			return s, nil
		}
	}
	return nil, ErrServiceNotOffered
}

// GroupByCategory keeps catalog order within each category.
func GroupByCategory(catalog []*Service) (categories []string, grouped map[string][]*Service) {
	grouped = make(map[string][]*Service)
	for _, s := range catalog {
		if _, seen := grouped[s.category]; !seen {
			categories = append(categories, s.category)
		}
		grouped[s.category] = append(grouped[s.category], s)
	}
	return categories, grouped
}

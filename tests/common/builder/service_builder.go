//go:build unit || e2e

package builder

import (
	"shuttlesync/internal/domain/addon"
	"shuttlesync/internal/pkg/money"
)

type ServiceBuilder struct {
	ID          string
	Name        string
	Description string
	UnitPrice   money.VND
	Category    string
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:          "svc-water",
		Name:        "Mineral water",
		Description: "500ml bottle",
		UnitPrice:   10000,
		Category:    "Drinks",
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) WithID(id string) *ServiceBuilder {
	s.ID = id
	return s
}

func (s *ServiceBuilder) WithPrice(price money.VND) *ServiceBuilder {
	s.UnitPrice = price
	return s
}

// Build methods
func (s *ServiceBuilder) BuildDomain() *addon.Service {
	svc, err := addon.NewService(s.ID, s.Name, s.Description, s.UnitPrice, s.Category)
	if err != nil {
		panic(err)
	}
	return svc
}

package addon

import (
	"errors"
	"fmt"

	"shuttlesync/internal/pkg/money"
)

// MaxQuantity caps a single service line.
const MaxQuantity = 99

var ErrQuantityLimit = errors.New("service quantity exceeds the per-booking limit")

// Line is a selected service with a quantity of at least one.
type Line struct {
	service  *Service
	quantity int
}

func (l Line) Service() *Service { return l.service }
func (l Line) Quantity() int     { return l.quantity }
func (l Line) Amount() money.VND { return l.service.unitPrice.Mul(l.quantity) }

// Cart holds the service lines of a draft in insertion order.
type Cart struct {
	lines []Line
}

func NewCart() *Cart {
	return &Cart{}
}

// AdjustQuantity adds delta to the service's quantity, flooring at zero.
// A line that reaches zero is removed. It returns the resulting quantity.
// An adjustment past MaxQuantity fails with ErrQuantityLimit and leaves the cart unchanged.
func (c *Cart) AdjustQuantity(svc *Service, delta int) (int, error) {
	for i, l := range c.lines {
		if l.service.id != svc.id {
			continue
		}
		if delta > MaxQuantity-l.quantity {
			return l.quantity, ErrQuantityLimit
		}
		qty := l.quantity + delta
		if qty <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return 0, nil
		}
		c.lines[i] = Line{service: svc, quantity: qty}
		return qty, nil
	}

	if delta <= 0 {
		return 0, nil
	}
	if delta > MaxQuantity {
		return 0, ErrQuantityLimit
	}
	c.lines = append(c.lines, Line{service: svc, quantity: delta})
	return delta, nil
}

func (c *Cart) Quantity(serviceID string) int {
	for _, l := range c.lines {
		if l.service.id == serviceID {
			return l.quantity
		}
	}
	return 0
}

func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// LineSnapshot is the persisted form of a Line.
type LineSnapshot struct {
	ServiceID   string    `json:"serviceId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	UnitPrice   money.VND `json:"unitPrice"`
	Category    string    `json:"category,omitempty"`
	Quantity    int       `json:"quantity"`
}

func (c *Cart) Snapshot() []LineSnapshot {
	snaps := make([]LineSnapshot, len(c.lines))
	for i, l := range c.lines {
		snaps[i] = LineSnapshot{
			ServiceID:   l.service.id,
			Name:        l.service.name,
			Description: l.service.description,
			UnitPrice:   l.service.unitPrice,
			Category:    l.service.category,
			Quantity:    l.quantity,
		}
	}
	return snaps
}

func RestoreCart(snaps []LineSnapshot) (*Cart, error) {
	c := NewCart()
	for _, s := range snaps {
		if s.Quantity < 1 || s.Quantity > MaxQuantity {
			return nil, fmt.Errorf("%w: %s has quantity %d", ErrInvalidServiceLine, s.ServiceID, s.Quantity)
		}
		if c.Quantity(s.ServiceID) > 0 {
			return nil, fmt.Errorf("%w: duplicate service %s", ErrInvalidServiceLine, s.ServiceID)
		}
		svc, err := NewService(s.ServiceID, s.Name, s.Description, s.UnitPrice, s.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidServiceLine, err)
		}
		c.lines = append(c.lines, Line{service: svc, quantity: s.Quantity})
	}
	return c, nil
}

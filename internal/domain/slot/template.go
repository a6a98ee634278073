package slot

import (
	"errors"
	"time"

	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/money"
)

var (
	ErrInvalidOperatingWindow = errors.New("close time must be after open time")
	ErrInvalidSlotLength      = errors.New("slot length must be a positive number of minutes")
	ErrNegativeBasePrice      = errors.New("base price cannot be negative")
	ErrNoTemplates            = errors.New("operating window is shorter than one slot")
)

// Template is a recurring daily slot, e.g. 09:00-11:00. It does not vary by date.
type Template struct {
	index     int
	start     calendar.TimeOfDay
	end       calendar.TimeOfDay
	basePrice money.VND
}

func NewTemplate(index int, start, end calendar.TimeOfDay, basePrice money.VND) (Template, error) {
	if !end.After(start) {
		return Template{}, ErrInvalidOperatingWindow
	}
	if basePrice < 0 {
		return Template{}, ErrNegativeBasePrice
	}
	return Template{index: index, start: start, end: end, basePrice: basePrice}, nil
}

// GenerateTemplates splits [open, close) into consecutive slots of the given length.
// A trailing remainder shorter than length is dropped.
func GenerateTemplates(open, close calendar.TimeOfDay, length time.Duration, basePrice money.VND) ([]Template, error) {
	if length < time.Minute || length%time.Minute != 0 {
		return nil, ErrInvalidSlotLength
	}
	if !close.After(open) {
		return nil, ErrInvalidOperatingWindow
	}
	if basePrice < 0 {
		return nil, ErrNegativeBasePrice
	}

	var templates []Template
	start := open
	for {
		end, ok := start.Add(length)
		if !ok || end.After(close) {
			break
		}
		templates = append(templates, Template{
			index:     len(templates),
			start:     start,
			end:       end,
			basePrice: basePrice,
		})
		start = end
	}

	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}
	return templates, nil
}

func (t Template) Index() int                { return t.index }
func (t Template) Start() calendar.TimeOfDay { return t.start }
func (t Template) End() calendar.TimeOfDay   { return t.end }
func (t Template) BasePrice() money.VND      { return t.basePrice }

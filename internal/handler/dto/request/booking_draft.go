package request

import (
	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/usecase/commands"
)

type OpenDraftRequest struct {
	CourtID       string  `json:"courtId" binding:"required"`
	ReferenceDate *string `json:"referenceDate" binding:"omitempty"`
}

type NavigateWeekRequest struct {
	Direction string `json:"direction" binding:"required,oneof=next previous"`
}

type SelectSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	SlotIndex *int   `json:"slotIndex" binding:"required,min=0"`
}

type AdjustServiceRequest struct {
	Delta *int `json:"delta" binding:"required,min=-99,max=99"`
}

type ApplyVoucherRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}

type SetNoteRequest struct {
	Note string `json:"note"`
}

func (r *OpenDraftRequest) ToCommand() (commands.OpenDraftRequest, error) {
	cmd := commands.OpenDraftRequest{CourtID: r.CourtID}
	if r.ReferenceDate != nil && *r.ReferenceDate != "" {
		d, err := calendar.ParseDate(*r.ReferenceDate)
		if err != nil {
			return commands.OpenDraftRequest{}, err
		}
		cmd.ReferenceDate = &d
	}
	return cmd, nil
}

func (r *NavigateWeekRequest) ToDomain() booking.Direction {
	return booking.Direction(r.Direction)
}

func (r *SelectSlotRequest) ToDomain() (calendar.Date, int, error) {
	d, err := calendar.ParseDate(r.Date)
	if err != nil {
		return calendar.Date{}, 0, err
	}
	return d, *r.SlotIndex, nil
}

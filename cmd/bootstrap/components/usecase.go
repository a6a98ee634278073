package components

import (
	"fmt"

	"shuttlesync/internal/domain/pricing"
	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/clock"
	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/pkg/money"
	"shuttlesync/internal/usecase"
	"shuttlesync/internal/usecase/commands"
	"shuttlesync/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	NewSlotTemplates,
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.Calculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAvailabilityLoader,
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDraftQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewClock runs in the venue's time zone so "today" matches the court calendar.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Schedule.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}

func NewSlotTemplates(cfg config.Config) ([]slot.Template, error) {
	open, err := calendar.ParseTimeOfDay(cfg.Schedule.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_OPEN_TIME %q: %w", cfg.Schedule.OpenTime, err)
	}
	closing, err := calendar.ParseTimeOfDay(cfg.Schedule.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_CLOSE_TIME %q: %w", cfg.Schedule.CloseTime, err)
	}
	return slot.GenerateTemplates(open, closing, cfg.Schedule.SlotLength, money.VND(cfg.Schedule.BaseSlotPrice))
}

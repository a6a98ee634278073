package bootstrap

import (
	"log/slog"

	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.AuthConfig { return cfg.Auth },
	),
	fx.Invoke(checkSchedule),
)

// checkSchedule fails startup on a time zone or operating window the grid cannot use.
func checkSchedule(cfg config.Config) error {
	if _, err := cfg.Schedule.Location(); err != nil {
		return err
	}
	if cfg.Schedule.SlotLength <= 0 {
		return errs.Newf("SCHEDULE_SLOT_LENGTH must be positive, got %s", cfg.Schedule.SlotLength)
	}
	slog.Info("booking schedule",
		"timezone", cfg.Schedule.TimeZone,
		"open", cfg.Schedule.OpenTime,
		"close", cfg.Schedule.CloseTime,
		"slot_length", cfg.Schedule.SlotLength,
		"backend", cfg.Backend.BaseURL)
	return nil
}

package components

import (
	"context"
	"log/slog"
	"time"

	"shuttlesync/internal/infra/repository"
	"shuttlesync/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const ledgerSweepInterval = time.Hour

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPool,
		repository.NewSubmissionRepository,
		NewSubmissionLedger,
	),
	fx.Invoke(registerLedgerSweeper),
)

func NewPool(pool *pgxpool.Pool) repository.Pool {
	return pool
}

func NewSubmissionLedger(repo *repository.SubmissionRepository) shared.SubmissionLedger {
	return repo
}

// registerLedgerSweeper deletes expired submission keys in the background.
func registerLedgerSweeper(lc fx.Lifecycle, repo *repository.SubmissionRepository) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(ledgerSweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						n, err := repo.DeleteExpired(ctx)
						if err != nil {
							slog.Warn("failed to sweep submission keys", "error", err)
							continue
						}
						if n > 0 {
							slog.Info("swept expired submission keys", "count", n)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

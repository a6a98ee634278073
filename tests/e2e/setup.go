//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"shuttlesync/cmd/bootstrap"
	"shuttlesync/cmd/bootstrap/components"
	"shuttlesync/internal/pkg/config"
	"shuttlesync/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite wires the real application against a private database and a fake backend.
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *pgxpool.Pool // 各テストで使う DB 接続
	Config  config.Config
	Backend *FakeBackend // 予約バックエンドの代替
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	server := startPostgres(t)
	pool, dbConfig := prepareDatabase(t, server)

	backend := NewFakeBackend()
	t.Cleanup(backend.Close)

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Backend.BaseURL = backend.URL()

	s.DB = pool
	s.Config = cfg
	s.Backend = backend
	s.Router = startApp(t, pool, cfg)

	slog.Info("E2E環境の準備が完了しました",
		"postgres", server.addr(),
		"database", dbConfig.DBName,
		"backend_url", backend.URL())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "DBのリセットに失敗")
	s.Backend.Reset()
}

// startApp runs the production fx graph with the test pool and config in place of
// ConfigModule and DBModule.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, cfg.Auth),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.DraftStoreModule,
		bootstrap.EventsModule,
		components.PersistenceModule,
		components.GatewayModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	require.NotNil(t, router, "Routerのセットアップに失敗")
	return router
}

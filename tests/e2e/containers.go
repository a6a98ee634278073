//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"shuttlesync/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

// Containers are shared by every suite of a test binary and reaped by ryuk when it exits.
var (
	postgresOnce sync.Once
	postgres     endpoint
	postgresErr  error

	redisOnce sync.Once
	redisEP   endpoint
	redisErr  error
)

type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) addr() string { return e.Host + ":" + e.Port.Port() }

func (e endpoint) postgresDSN(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pgUser, pgPassword, e.addr(), database)
}

// startPostgres boots the ledger database server once per test binary.
func startPostgres(t *testing.T) endpoint {
	t.Helper()
	postgresOnce.Do(func() {
		postgres, postgresErr = startContainer(testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			// データは RAM に置き、耐久性より速度を優先
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
			Cmd: []string{"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=100",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return endpoint{Host: host, Port: port}.postgresDSN("postgres")
			}).WithStartupTimeout(90 * time.Second),
			Labels: map[string]string{"purpose": "shuttlesync-e2e"},
		}, "5432/tcp")
	})
	require.NoError(t, postgresErr, "PostgreSQLコンテナの起動に失敗")
	return postgres
}

// StartRedis boots a throwaway Redis for the shared draft store.
func StartRedis(t *testing.T) config.RedisConfig {
	t.Helper()
	redisOnce.Do(func() {
		redisEP, redisErr = startContainer(testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"}, // 永続化無効
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "shuttlesync-e2e"},
		}, "6379/tcp")
	})
	require.NoError(t, redisErr, "Redisコンテナの起動に失敗")
	return config.RedisConfig{Addr: redisEP.addr()}
}

func startContainer(req testcontainers.ContainerRequest, port nat.Port) (endpoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return endpoint{}, fmt.Errorf("start %s: %w", req.Image, err)
	}

	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return endpoint{}, fmt.Errorf("map %s port %s: %w", req.Image, port, err)
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, fmt.Errorf("resolve %s host: %w", req.Image, err)
	}
	return endpoint{Host: host, Port: mapped}, nil
}

//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 15*time.Minute)
	token, err := service.GenerateToken(userID, "customer")
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, "customer")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

func (h *JWTHelper) CreateForeignToken(t *testing.T, userID string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret+"-other", 15*time.Minute)
	token, err := service.GenerateToken(userID, "customer")
	require.NoError(t, err)
	return token
}

//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/infra"
	"shuttlesync/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPool struct {
	mock.Mock
}

func (m *MockPool) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockPool) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockPool) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func (m *MockPool) Begin(ctx context.Context) (pgx.Tx, error) {
	mockArgs := m.Called(ctx)
	tx, _ := mockArgs.Get(0).(pgx.Tx)
	return tx, mockArgs.Error(1)
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestSubmissionRepository_Complete(t *testing.T) {
	key := uuid.New()
	result := booking.Confirmation{BookingID: "bk-1", Status: booking.StatusPending, TotalAmount: money.VND(200000)}

	tests := []struct {
		name     string
		tag      pgconn.CommandTag
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			tag:  pgconn.NewCommandTag("UPDATE 1"),
		},
		{
			name:     "key missing",
			tag:      pgconn.NewCommandTag("UPDATE 0"),
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			execErr:  errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockPool)
			db.On("Exec", mock.Anything, completeSubmissionKeySQL, mock.Anything).Return(tt.tag, tt.execErr)

			err := NewSubmissionRepository(db).Complete(context.Background(), key, "user-1", result)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestSubmissionRepository_Get(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		db := new(MockPool)
		db.On("QueryRow", mock.Anything, getSubmissionKeySQL, mock.Anything).Return(errRow{err: pgx.ErrNoRows})

		_, err := NewSubmissionRepository(db).Get(context.Background(), uuid.New(), "user-1")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("scan failure", func(t *testing.T) {
		db := new(MockPool)
		db.On("QueryRow", mock.Anything, getSubmissionKeySQL, mock.Anything).Return(errRow{err: errors.New("boom")})

		_, err := NewSubmissionRepository(db).Get(context.Background(), uuid.New(), "user-1")

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSubmissionRepository_TryInsert(t *testing.T) {
	t.Run("begin failure", func(t *testing.T) {
		db := new(MockPool)
		db.On("Begin", mock.Anything).Return(nil, errors.New("pool closed"))

		inserted, err := NewSubmissionRepository(db).TryInsert(context.Background(), uuid.New(), "user-1", uuid.New(), "hash", time.Now())

		assert.False(t, inserted)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSubmissionRepository_DeleteExpired(t *testing.T) {
	db := new(MockPool)
	db.On("Exec", mock.Anything, deleteExpiredSubmissionKeysSQL, mock.Anything).Return(pgconn.NewCommandTag("DELETE 3"), nil)

	n, err := NewSubmissionRepository(db).DeleteExpired(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

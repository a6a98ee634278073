package repository

import (
	"context"
	"time"

	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/infra"
	"shuttlesync/internal/pkg/money"
	"shuttlesync/internal/pkg/pgconv"
	"shuttlesync/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Pool is satisfied by *pgxpool.Pool.
type Pool interface {
	shared.DBTX
	shared.TxBeginner
}

const (
	deleteExpiredSubmissionKeySQL = `
DELETE FROM submission_keys
WHERE key = $1 AND user_id = $2 AND expires_at <= now()`

	insertSubmissionKeySQL = `
INSERT INTO submission_keys (key, user_id, draft_id, status, request_hash, expires_at)
VALUES ($1, $2, $3, 'processing', $4, $5)
ON CONFLICT (key, user_id) DO NOTHING`

	getSubmissionKeySQL = `
SELECT key, user_id, draft_id, status, request_hash, booking_id, booking_status, total_amount, expires_at
FROM submission_keys
WHERE key = $1 AND user_id = $2 AND expires_at > now()`

	completeSubmissionKeySQL = `
UPDATE submission_keys
SET status = 'completed', booking_id = $3, booking_status = $4, total_amount = $5, updated_at = now()
WHERE key = $1 AND user_id = $2`

	releaseSubmissionKeySQL = `
DELETE FROM submission_keys
WHERE key = $1 AND user_id = $2 AND status = 'processing'`

	deleteExpiredSubmissionKeysSQL = `
DELETE FROM submission_keys
WHERE expires_at <= now()`
)

type SubmissionRepository struct {
	db Pool
}

func NewSubmissionRepository(db Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// TryInsert claims key for userID. An expired row for the same key is removed first so
// the key can be reused; deadlocks between concurrent reclaims are retried.
func (r *SubmissionRepository) TryInsert(ctx context.Context, key uuid.UUID, userID string, draftID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	inserted, err := shared.WithDefaultRetry(ctx, r.db, func(tx shared.DBTX) (bool, error) {
		if _, err := tx.Exec(ctx, deleteExpiredSubmissionKeySQL, pgconv.UUIDToPgtype(key), userID); err != nil {
			return false, err
		}
		tag, err := tx.Exec(ctx, insertSubmissionKeySQL,
			pgconv.UUIDToPgtype(key),
			userID,
			pgconv.UUIDToPgtype(draftID),
			requestHash,
			pgconv.TimeToPgtype(expiresAt),
		)
		if err != nil {
			return false, err
		}
		return tag.RowsAffected() == 1, nil
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert submission key", err)
	}

	return inserted, nil
}

func (r *SubmissionRepository) Get(ctx context.Context, key uuid.UUID, userID string) (*shared.SubmissionRecord, error) {
	var (
		rowKey        pgtype.UUID
		rowUserID     string
		draftID       pgtype.UUID
		status        string
		requestHash   string
		bookingID     pgtype.Text
		bookingStatus pgtype.Text
		totalAmount   pgtype.Int8
		expiresAt     pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, getSubmissionKeySQL, pgconv.UUIDToPgtype(key), userID).Scan(
		&rowKey, &rowUserID, &draftID, &status, &requestHash, &bookingID, &bookingStatus, &totalAmount, &expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("submission key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get submission key", err)
	}

	rec := &shared.SubmissionRecord{
		Key:         pgconv.UUIDFromPgtype(rowKey),
		UserID:      rowUserID,
		DraftID:     pgconv.UUIDFromPgtype(draftID),
		Status:      status,
		RequestHash: requestHash,
		BookingID:   pgconv.StringPtrFromPgtype(bookingID),
		ExpiresAt:   pgconv.TimeFromPgtype(expiresAt),
	}

	if status == shared.SubmissionCompleted && rec.BookingID != nil {
		conf := booking.Confirmation{BookingID: *rec.BookingID}
		if s := pgconv.StringPtrFromPgtype(bookingStatus); s != nil {
			parsed, err := booking.ParseStatus(*s)
			if err != nil {
				return nil, infra.WrapRepoErr("invalid stored booking status", err)
			}
			conf.Status = parsed
		}
		if amount := pgconv.Int64PtrFromPgtype(totalAmount); amount != nil {
			conf.TotalAmount = money.VND(*amount)
		}
		rec.Result = &conf
	}

	return rec, nil
}

func (r *SubmissionRepository) Complete(ctx context.Context, key uuid.UUID, userID string, result booking.Confirmation) error {
	tag, err := r.db.Exec(ctx, completeSubmissionKeySQL,
		pgconv.UUIDToPgtype(key),
		userID,
		pgconv.StringToPgtype(result.BookingID),
		pgconv.StringToPgtype(result.Status.String()),
		pgconv.Int64ToPgtype(result.TotalAmount.Int64()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete submission key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("submission key not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *SubmissionRepository) Release(ctx context.Context, key uuid.UUID, userID string) error {
	if _, err := r.db.Exec(ctx, releaseSubmissionKeySQL, pgconv.UUIDToPgtype(key), userID); err != nil {
		return infra.WrapRepoErr("failed to release submission key", err)
	}

	return nil
}

func (r *SubmissionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredSubmissionKeysSQL)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired submission keys", err)
	}

	return tag.RowsAffected(), nil
}

package draftstore

import (
	"context"
	"errors"
	"time"

	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/infra"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	draftKeyPrefix   = "shuttlesync:draft:"
	maxUpdateRetries = 5
)

// RedisStore shares drafts between replicas. Update is an optimistic
// WATCH/MULTI transaction retried on concurrent writes.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func draftKey(id uuid.UUID) string {
	return draftKeyPrefix + id.String()
}

func (s *RedisStore) Create(ctx context.Context, d *booking.Draft) error {
	b, err := encode(d)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, draftKey(d.ID()), b, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save draft", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*booking.Draft, error) {
	b, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, notFound()
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load draft", err)
	}
	return decode(b)
}

func (s *RedisStore) Update(ctx context.Context, id uuid.UUID, fn func(d *booking.Draft) error) (*booking.Draft, error) {
	key := draftKey(id)

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		var (
			updated *booking.Draft
			fnErr   error
		)
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			b, err := tx.Get(ctx, key).Bytes()
			if err == redis.Nil {
				return notFound()
			}
			if err != nil {
				return infra.WrapRepoErr("failed to load draft", err)
			}

			d, err := decode(b)
			if err != nil {
				return err
			}
			if fnErr = fn(d); fnErr != nil {
				return fnErr
			}
			out, err := encode(d)
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, out, s.ttl)
				return nil
			})
			if err != nil {
				return err
			}
			updated = d
			return nil
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if fnErr != nil {
			return nil, fnErr
		}
		if err != nil {
			var repoErr infra.RepositoryError
			if errors.As(err, &repoErr) {
				return nil, err
			}
			return nil, infra.WrapRepoErr("failed to update draft", err)
		}
		return updated, nil
	}

	return nil, infra.WrapRepoErr("draft update contended", redis.TxFailedErr, infra.KindConflict)
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete draft", err)
	}
	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bierecode/backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// UpdateKeyPrefix is the key namespace for update records.
const UpdateKeyPrefix = "update:"

// RedisUpdateRepository stores update records as JSON blobs in Redis.
// There are no transactions and no secondary indexes: filtering happens
// by scanning every key under the prefix.
type RedisUpdateRepository struct {
	client *redis.Client
}

// NewRedisUpdateRepository creates a RedisUpdateRepository.
func NewRedisUpdateRepository(client *redis.Client) *RedisUpdateRepository {
	return &RedisUpdateRepository{client: client}
}

// Get fetches a single record by id. Returns ErrNotFound when the key
// is absent.
func (r *RedisUpdateRepository) Get(ctx context.Context, id string) (*model.Update, error) {
	value, err := r.client.Get(ctx, UpdateKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var u model.Update
	if err := json.Unmarshal([]byte(value), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Put writes a record under its deterministic key. Keys never expire.
func (r *RedisUpdateRepository) Put(ctx context.Context, u *model.Update) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, UpdateKeyPrefix+u.ID, data, 0).Err()
}

// Delete removes a record. Deleting an absent key is not an error; the
// caller reads the record first when existence matters.
func (r *RedisUpdateRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, UpdateKeyPrefix+id).Err()
}

// List scans all keys under the prefix and fetches each record. Records
// deleted between the scan and the fetch are skipped; any other store
// failure propagates to the caller.
func (r *RedisUpdateRepository) List(ctx context.Context) ([]*model.Update, error) {
	updates := []*model.Update{}
	iter := r.client.Scan(ctx, 0, UpdateKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		value, err := r.client.Get(ctx, iter.Val()).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var u model.Update
		if err := json.Unmarshal([]byte(value), &u); err != nil {
			continue
		}
		updates = append(updates, &u)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return updates, nil
}

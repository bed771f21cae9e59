package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bierecode/backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// DemoKeyPrefix is the key namespace for demo-day submissions. It lives
// in the same Redis database as update records.
const DemoKeyPrefix = "demo:"

// RedisDemoRepository stores demo submissions as JSON blobs in Redis.
type RedisDemoRepository struct {
	client *redis.Client
}

// NewRedisDemoRepository creates a RedisDemoRepository.
func NewRedisDemoRepository(client *redis.Client) *RedisDemoRepository {
	return &RedisDemoRepository{client: client}
}

// Put writes a submission under its deterministic key.
func (r *RedisDemoRepository) Put(ctx context.Context, d *model.DemoSubmission) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, DemoKeyPrefix+d.ID, data, 0).Err()
}

// List scans all submissions under the prefix. Order is unspecified.
func (r *RedisDemoRepository) List(ctx context.Context) ([]*model.DemoSubmission, error) {
	subs := []*model.DemoSubmission{}
	iter := r.client.Scan(ctx, 0, DemoKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		value, err := r.client.Get(ctx, iter.Val()).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var d model.DemoSubmission
		if err := json.Unmarshal([]byte(value), &d); err != nil {
			continue
		}
		subs = append(subs, &d)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}

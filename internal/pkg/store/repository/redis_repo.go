package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redismodel "flatfundpro/internal/pkg/store/models"

	"github.com/redis/go-redis/v9"
)

type RedisStoreAdapter struct {
	client      *redis.Client
	decisionTTL time.Duration
}

func NewRedisStoreAdapter(client *redis.Client, decisionTTL time.Duration) *RedisStoreAdapter {
	if decisionTTL <= 0 {
		decisionTTL = 10 * time.Minute
	}
	return &RedisStoreAdapter{client: client, decisionTTL: decisionTTL}
}

func (a *RedisStoreAdapter) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return a.client.Set(ctx, key, value, expiration).Err()
}

func (a *RedisStoreAdapter) Get(ctx context.Context, key string) (interface{}, error) {
	return a.client.Get(ctx, key).Bytes()
}

func (a *RedisStoreAdapter) Delete(ctx context.Context, key string) error {
	return a.client.Del(ctx, key).Err()
}

func (a *RedisStoreAdapter) Exists(ctx context.Context, key string) (bool, error) {
	val, err := a.client.Exists(ctx, key).Result()
	return val > 0, err
}

func (a *RedisStoreAdapter) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return a.client.Expire(ctx, key, expiration).Result()
}

func (a *RedisStoreAdapter) TTL(ctx context.Context, key string) (time.Duration, error) {
	return a.client.TTL(ctx, key).Result()
}

// SaveMismatchDecision stores the submitter's answer to a mobile mismatch
// under a short TTL so it cannot outlive the submission attempt it belongs to.
func (a *RedisStoreAdapter) SaveMismatchDecision(
	ctx context.Context,
	apartmentID, flatID string,
	entry redismodel.MismatchDecision,
) error {
	key := redismodel.MismatchDecisionKeyBuilder(apartmentID, flatID)

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal mismatch decision: %w", err)
	}

	return a.Set(ctx, key, data, a.decisionTTL)
}

// TakeMismatchDecision atomically reads and deletes the decision. Returns
// (nil, nil) when no decision is recorded, which makes a second take behave
// as if the decision never existed.
func (a *RedisStoreAdapter) TakeMismatchDecision(
	ctx context.Context,
	apartmentID, flatID string,
) (*redismodel.MismatchDecision, error) {
	key := redismodel.MismatchDecisionKeyBuilder(apartmentID, flatID)

	data, err := a.client.GetDel(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry redismodel.MismatchDecision
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mismatch decision: %w", err)
	}
	return &entry, nil
}

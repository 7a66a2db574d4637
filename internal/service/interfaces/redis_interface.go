package interfaces

import (
	"context"
	"time"

	redismodel "flatfundpro/internal/pkg/store/models"
)

type RedisStoreOperations interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (interface{}, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	SaveMismatchDecision(
		ctx context.Context,
		apartmentID, flatID string,
		entry redismodel.MismatchDecision,
	) error
	// TakeMismatchDecision reads and deletes the recorded decision in one
	// call. A second take behaves as if no decision was ever recorded.
	TakeMismatchDecision(
		ctx context.Context,
		apartmentID, flatID string,
	) (*redismodel.MismatchDecision, error)
}

package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	redismodel "flatfundpro/internal/pkg/store/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStoreAdapter(t *testing.T) {
	db, mock := redismock.NewClientMock()

	adapter := NewRedisStoreAdapter(db, 5*time.Minute)

	assert.NotNil(t, adapter)
	assert.Equal(t, db, adapter.client)
	assert.Equal(t, 5*time.Minute, adapter.decisionTTL)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRedisStoreAdapterDefaultTTL(t *testing.T) {
	db, _ := redismock.NewClientMock()

	adapter := NewRedisStoreAdapter(db, 0)

	assert.Equal(t, 10*time.Minute, adapter.decisionTTL)
}

func TestRedisStoreAdapter_Set(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()
		key := "test-key"
		value := "test-value"
		expiration := 5 * time.Minute

		mock.ExpectSet(key, value, expiration).SetVal("OK")

		err := adapter.Set(ctx, key, value, expiration)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()
		key := "test-key"
		value := "test-value"
		expiration := 5 * time.Minute

		mock.ExpectSet(key, value, expiration).SetErr(redis.Nil)

		err := adapter.Set(ctx, key, value, expiration)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()
		key := "test-key"
		expectedValue := []byte("test-value")

		mock.ExpectGet(key).SetVal(string(expectedValue))

		result, err := adapter.Get(ctx, key)

		assert.NoError(t, err)
		assert.Equal(t, expectedValue, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()
		key := "test-key"

		mock.ExpectGet(key).SetErr(redis.Nil)

		result, err := adapter.Get(ctx, key)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_SaveMismatchDecision(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisStoreAdapter(db, 10*time.Minute)
	ctx := context.Background()

	entry := redismodel.MismatchDecision{
		Decision:      "permanent",
		ClaimedMobile: "+919876543210",
		IssuedAt:      time.Date(2024, time.April, 12, 10, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(entry)
	require.NoError(t, err)

	key := redismodel.MismatchDecisionKeyBuilder("apt1", "flat1")
	mock.ExpectSet(key, data, 10*time.Minute).SetVal("OK")

	err = adapter.SaveMismatchDecision(ctx, "apt1", "flat1", entry)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreAdapter_TakeMismatchDecision(t *testing.T) {
	t.Run("NoDecisionRecorded", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()

		key := redismodel.MismatchDecisionKeyBuilder("apt1", "flat1")
		mock.ExpectGetDel(key).SetErr(redis.Nil)

		decision, err := adapter.TakeMismatchDecision(ctx, "apt1", "flat1")

		assert.NoError(t, err)
		assert.Nil(t, decision)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CorruptPayload", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()

		key := redismodel.MismatchDecisionKeyBuilder("apt1", "flat1")
		mock.ExpectGetDel(key).SetVal("{broken")

		decision, err := adapter.TakeMismatchDecision(ctx, "apt1", "flat1")

		assert.Error(t, err)
		assert.Nil(t, decision)
	})
}

// TestMismatchDecisionSingleUse drives the save/take pair against a real
// in-process server: the first take consumes the decision, the second finds
// nothing.
func TestMismatchDecisionSingleUse(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	adapter := NewRedisStoreAdapter(client, 10*time.Minute)
	ctx := context.Background()

	entry := redismodel.MismatchDecision{
		Decision:      "one-time",
		ClaimedMobile: "+919876543210",
		IssuedAt:      time.Now().UTC(),
	}

	require.NoError(t, adapter.SaveMismatchDecision(ctx, "apt1", "flat1", entry))

	first, err := adapter.TakeMismatchDecision(ctx, "apt1", "flat1")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "one-time", first.Decision)
	assert.Equal(t, "+919876543210", first.ClaimedMobile)

	second, err := adapter.TakeMismatchDecision(ctx, "apt1", "flat1")
	require.NoError(t, err)
	assert.Nil(t, second)
}

// TestMismatchDecisionExpires proves the TTL bounds the decision's life.
func TestMismatchDecisionExpires(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	adapter := NewRedisStoreAdapter(client, time.Minute)
	ctx := context.Background()

	entry := redismodel.MismatchDecision{Decision: "permanent"}
	require.NoError(t, adapter.SaveMismatchDecision(ctx, "apt1", "flat1", entry))

	server.FastForward(2 * time.Minute)

	decision, err := adapter.TakeMismatchDecision(ctx, "apt1", "flat1")
	require.NoError(t, err)
	assert.Nil(t, decision)
}

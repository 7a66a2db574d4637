package cleanup

import (
	"context"

	mongodb "flatfundpro/internal/pkg/db/mongo"
	redisdb "flatfundpro/internal/pkg/db/redis"
	"flatfundpro/internal/pkg/logger"
	"flatfundpro/internal/service/interfaces"
)

func CleanupResources(
	ctx context.Context,
	mongoClient *mongodb.MongoClient,
	redisClient *redisdb.RedisClient,
	publisher interfaces.PubSubPublisherInterface,
) {
	if mongoClient != nil && mongoClient.Client != nil {
		if err := mongodb.Disconnect(mongoClient.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from MongoDB", err)
		}
	}
	if redisClient != nil && redisClient.Client != nil {
		if err := redisdb.Disconnect(redisClient.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from Redis", err)
		}
	}
	if publisher != nil {
		publisher.Close()
	}
}

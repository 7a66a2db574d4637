package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"flatfundpro/internal/app/router"
	"flatfundpro/internal/pkg/cleanup"
	config "flatfundpro/internal/pkg/config"
	mongodb "flatfundpro/internal/pkg/db/mongo"
	redisdb "flatfundpro/internal/pkg/db/redis"
	"flatfundpro/internal/pkg/log_messages"
	"flatfundpro/internal/pkg/logger"
	"flatfundpro/internal/pkg/pubsub"

	gcppubsub "cloud.google.com/go/pubsub"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadFromConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Logging.LogLevel)

	// Connect to MongoDB
	mongoClient, err := mongodb.ConnectToMongoDB(ctx, cfg.Mongo, nil)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Connect to Redis
	redisClient, err := redisdb.ConnectToRedis(ctx, cfg.Redis, nil)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// pubsub publisher for receipt notifications
	pubsubclient, err := initPubSubClient(ctx, cfg.PubSub.ProjectID, cfg.PubSub.ReceiptTopic)
	if err != nil {
		log.Fatalf("Failed to create Pub/Sub client: %v", err)
	}

	defer cleanup.CleanupResources(ctx, mongoClient, redisClient, pubsubclient)

	server := router.SetupRouter(mongoClient, redisClient.Client, pubsubclient, cfg.Billing.DecisionTTLMinutes)

	if err := server.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.CtxError(ctx, "Failed to start server", err)
	}
}

func initPubSubClient(ctx context.Context, projectID, topic string) (*pubsub.PubSubClient, error) {
	client, err := pubsub.NewPubSubClient(ctx, projectID, topic, gcppubsub.NewClient)
	if err != nil {
		return nil, fmt.Errorf(log_messages.ErrorPubSubClientCreation, err)
	}

	logger.Info("successful pubsub client creation",
		slog.String("pubsub_topic", topic),
	)

	return client, nil
}

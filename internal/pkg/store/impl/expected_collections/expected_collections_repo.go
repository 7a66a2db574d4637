package expectedcollections

import (
	"context"
	"errors"
	"log/slog"

	"flatfundpro/internal/pkg/consts"
	mongodb "flatfundpro/internal/pkg/db/mongo"
	"flatfundpro/internal/pkg/logger"
	"flatfundpro/internal/pkg/store/models"
	"flatfundpro/internal/pkg/store/repository"
	"flatfundpro/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ExpectedCollectionsRepository struct {
	repo interfaces.ExpectedCollectionsStoreInterface
}

func NewExpectedCollectionsRepository(client *mongodb.MongoClient) *ExpectedCollectionsRepository {
	collection := client.Database.Collection(consts.ExpectedCollectionsCollection)
	repo := repository.NewMongoRepository[models.ExpectedCollections](collection)
	return &ExpectedCollectionsRepository{repo: repo}
}

func NewExpectedCollectionsRepositoryWithInterface(
	repo interfaces.ExpectedCollectionsStoreInterface,
) *ExpectedCollectionsRepository {
	return &ExpectedCollectionsRepository{repo: repo}
}

func (cr *ExpectedCollectionsRepository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*models.ExpectedCollections, error) {
	filter := bson.M{"_id": id}
	collection, err := cr.repo.FindOne(ctx, filter, options.FindOne())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "No expected collection found for id", slog.String("collectionId", id.Hex()))
			return nil, err
		}
		logger.CtxError(ctx, "Error finding expected collection by id", err, slog.String("collectionId", id.Hex()))
		return nil, err
	}
	return &collection, nil
}

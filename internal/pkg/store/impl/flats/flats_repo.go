package flats

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

type FlatsRepository struct {
	repo interfaces.FlatsStoreInterface
}

func NewFlatsRepository(client *mongodb.MongoClient) *FlatsRepository {
	collection := client.Database.Collection(consts.FlatsCollection)
	repo := repository.NewMongoRepository[models.Flats](collection)
	return &FlatsRepository{repo: repo}
}

func NewFlatsRepositoryWithInterface(repo interfaces.FlatsStoreInterface) *FlatsRepository {
	return &FlatsRepository{repo: repo}
}

func (fr *FlatsRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Flats, error) {
	filter := bson.M{"_id": id}
	flat, err := fr.repo.FindOne(ctx, filter, options.FindOne())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "No flat found for id", slog.String("flatId", id.Hex()))
			return nil, err
		}
		logger.CtxError(ctx, "Error finding flat by id", err, slog.String("flatId", id.Hex()))
		return nil, err
	}
	return &flat, nil
}

package apartments

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

type ApartmentsRepository struct {
	repo interfaces.ApartmentsStoreInterface
}

func NewApartmentsRepository(client *mongodb.MongoClient) *ApartmentsRepository {
	collection := client.Database.Collection(consts.ApartmentsCollection)
	repo := repository.NewMongoRepository[models.Apartments](collection)
	return &ApartmentsRepository{repo: repo}
}

func NewApartmentsRepositoryWithInterface(repo interfaces.ApartmentsStoreInterface) *ApartmentsRepository {
	return &ApartmentsRepository{repo: repo}
}

func (ar *ApartmentsRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Apartments, error) {
	filter := bson.M{"_id": id}
	apartment, err := ar.repo.FindOne(ctx, filter, options.FindOne())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "No apartment found for id", slog.String("apartmentId", id.Hex()))
			return nil, err
		}
		logger.CtxError(ctx, "Error finding apartment by id", err, slog.String("apartmentId", id.Hex()))
		return nil, err
	}
	return &apartment, nil
}

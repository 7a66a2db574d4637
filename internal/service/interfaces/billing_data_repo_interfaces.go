package interfaces

import (
	"context"

	"flatfundpro/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ApartmentsRepositoryInterface interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Apartments, error)
}

type FlatsRepositoryInterface interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Flats, error)
}

type ExpectedCollectionsRepositoryInterface interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ExpectedCollections, error)
}

type ApartmentsStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.Apartments, error)
}

type FlatsStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.Flats, error)
}

type ExpectedCollectionsStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.ExpectedCollections, error)
}

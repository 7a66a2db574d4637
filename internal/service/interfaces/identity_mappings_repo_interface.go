package interfaces

import (
	"context"

	"flatfundpro/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactUpdate struct {
	Mobile        *string
	Name          *string
	WhatsappOptIn *bool
}

type IdentityMappingsRepositoryInterface interface {
	GetByFlat(ctx context.Context, apartmentID, flatID primitive.ObjectID) (*models.IdentityMappings, error)
	Create(ctx context.Context, mapping *models.IdentityMappings) (primitive.ObjectID, error)
	UpdateContact(ctx context.Context, apartmentID, flatID primitive.ObjectID, update ContactUpdate) error
}

type IdentityMappingsStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.IdentityMappings, error)
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
}

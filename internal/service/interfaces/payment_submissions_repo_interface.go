package interfaces

import (
	"context"

	"flatfundpro/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentSubmissionsRepositoryInterface interface {
	// FindByDuplicateKey looks up a prior submission for the duplicate tuple
	// (blockID, flatID, collectionID). Payment date and amount are not part
	// of the key.
	FindByDuplicateKey(
		ctx context.Context,
		blockID, flatID, collectionID primitive.ObjectID,
	) (*models.PaymentSubmissions, error)
	Insert(ctx context.Context, submission *models.PaymentSubmissions) (primitive.ObjectID, error)
}

type PaymentSubmissionsStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.PaymentSubmissions, error)
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
}

package paymentsubmissions

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"flatfundpro/internal/pkg/consts"
	mongodb "flatfundpro/internal/pkg/db/mongo"
	"flatfundpro/internal/pkg/log_messages"
	"flatfundpro/internal/pkg/logger"
	"flatfundpro/internal/pkg/store/models"
	"flatfundpro/internal/pkg/store/repository"
	"flatfundpro/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentSubmissionsRepository struct {
	repo interfaces.PaymentSubmissionsStoreInterface
}

func NewPaymentSubmissionsRepository(client *mongodb.MongoClient) *PaymentSubmissionsRepository {
	collection := client.Database.Collection(consts.PaymentSubmissionsCollection)
	repo := repository.NewMongoRepository[models.PaymentSubmissions](collection)
	return &PaymentSubmissionsRepository{repo: repo}
}

func NewPaymentSubmissionsRepositoryWithInterface(
	repo interfaces.PaymentSubmissionsStoreInterface,
) *PaymentSubmissionsRepository {
	return &PaymentSubmissionsRepository{repo: repo}
}

// FindByDuplicateKey returns the earliest prior submission for the
// (block, flat, collection) tuple, or (nil, nil) when none exists.
func (pr *PaymentSubmissionsRepository) FindByDuplicateKey(
	ctx context.Context,
	blockID, flatID, collectionID primitive.ObjectID,
) (*models.PaymentSubmissions, error) {
	filter := bson.M{
		"blockId":              blockID,
		"flatId":               flatID,
		"expectedCollectionId": collectionID,
	}

	submission, err := pr.repo.FindOne(ctx, filter, options.FindOne().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.CtxError(ctx, "Error finding submission by duplicate key", err,
			slog.String("flatId", flatID.Hex()),
			slog.String("collectionId", collectionID.Hex()))
		return nil, err
	}
	return &submission, nil
}

func (pr *PaymentSubmissionsRepository) Insert(
	ctx context.Context,
	submission *models.PaymentSubmissions,
) (primitive.ObjectID, error) {
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}

	result, err := pr.repo.Create(ctx, submission)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingPaymentSubmission, err,
			slog.String("flatId", submission.FlatID.Hex()))
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type for payment submission")
	}
	return id, nil
}

package identitymappings

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

type IdentityMappingsRepository struct {
	repo interfaces.IdentityMappingsStoreInterface
}

func NewIdentityMappingsRepository(client *mongodb.MongoClient) *IdentityMappingsRepository {
	collection := client.Database.Collection(consts.IdentityMappingsCollection)
	repo := repository.NewMongoRepository[models.IdentityMappings](collection)
	return &IdentityMappingsRepository{repo: repo}
}

func NewIdentityMappingsRepositoryWithInterface(
	repo interfaces.IdentityMappingsStoreInterface,
) *IdentityMappingsRepository {
	return &IdentityMappingsRepository{repo: repo}
}

// GetByFlat returns the single mapping for a flat, or (nil, nil) when no
// mapping exists yet.
func (ir *IdentityMappingsRepository) GetByFlat(
	ctx context.Context,
	apartmentID, flatID primitive.ObjectID,
) (*models.IdentityMappings, error) {
	filter := bson.M{"apartmentId": apartmentID, "flatId": flatID}
	mapping, err := ir.repo.FindOne(ctx, filter, options.FindOne())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxInfo(ctx, "No identity mapping found for flat", slog.String("flatId", flatID.Hex()))
			return nil, nil
		}
		logger.CtxError(ctx, log_messages.ErrorFetchingIdentityMappingDoc, err, slog.String("flatId", flatID.Hex()))
		return nil, err
	}
	return &mapping, nil
}

func (ir *IdentityMappingsRepository) Create(
	ctx context.Context,
	mapping *models.IdentityMappings,
) (primitive.ObjectID, error) {
	if mapping.CreatedAt.IsZero() {
		mapping.CreatedAt = time.Now()
	}

	result, err := ir.repo.Create(ctx, mapping)
	if err != nil {
		logger.CtxError(ctx, "Error creating identity mapping", err, slog.String("flatId", mapping.FlatID.Hex()))
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type for identity mapping")
	}
	return id, nil
}

// UpdateContact mutates only the contact fields of an existing mapping.
// The email is the stable key and is deliberately not updatable here.
func (ir *IdentityMappingsRepository) UpdateContact(
	ctx context.Context,
	apartmentID, flatID primitive.ObjectID,
	update interfaces.ContactUpdate,
) error {
	fields := bson.M{"updatedAt": time.Now()}
	if update.Mobile != nil {
		fields["mobile"] = *update.Mobile
	}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.WhatsappOptIn != nil {
		fields["whatsappOptIn"] = *update.WhatsappOptIn
	}

	filter := bson.M{"apartmentId": apartmentID, "flatId": flatID}
	if err := ir.repo.UpdateOne(ctx, filter, fields); err != nil {
		logger.CtxError(ctx, "Error updating identity mapping contact", err, slog.String("flatId", flatID.Hex()))
		return err
	}
	return nil
}

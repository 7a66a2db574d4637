package expectedcollections

import (
	"context"
	"errors"
	"testing"

	"flatfundpro/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mockExpectedCollectionsStore struct {
	findOneFunc func(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.ExpectedCollections, error)
}

func (m *mockExpectedCollectionsStore) FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.ExpectedCollections, error) {
	if m.findOneFunc != nil {
		return m.findOneFunc(ctx, filter, opt)
	}
	return models.ExpectedCollections{}, errors.New("mock findOne not implemented")
}

func TestGetByIDFound(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	mockStore := &mockExpectedCollectionsStore{
		findOneFunc: func(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.ExpectedCollections, error) {
			f, ok := filter.(bson.M)
			if !ok {
				t.Fatalf("expected bson.M filter, got %T", filter)
			}
			if f["_id"] != id {
				t.Errorf("expected _id %v, got %v", id, f["_id"])
			}
			return models.ExpectedCollections{ID: id, Name: "Q1 Maintenance", IsActive: true}, nil
		},
	}

	repo := NewExpectedCollectionsRepositoryWithInterface(mockStore)
	collection, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if collection == nil || collection.Name != "Q1 Maintenance" {
		t.Errorf("unexpected collection: %+v", collection)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	ctx := context.Background()

	mockStore := &mockExpectedCollectionsStore{
		findOneFunc: func(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.ExpectedCollections, error) {
			return models.ExpectedCollections{}, mongo.ErrNoDocuments
		},
	}

	repo := NewExpectedCollectionsRepositoryWithInterface(mockStore)
	_, err := repo.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments, got: %v", err)
	}
}

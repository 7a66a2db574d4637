package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"flatfundpro/internal/pkg/models"
	storeModels "flatfundpro/internal/pkg/store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockSubmissionsRepo struct{ mock.Mock }

func (m *mockSubmissionsRepo) FindByDuplicateKey(ctx context.Context, blockID, flatID, collectionID primitive.ObjectID) (*storeModels.PaymentSubmissions, error) {
	args := m.Called(ctx, blockID, flatID, collectionID)
	if args.Get(0) != nil {
		return args.Get(0).(*storeModels.PaymentSubmissions), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubmissionsRepo) Insert(ctx context.Context, submission *storeModels.PaymentSubmissions) (primitive.ObjectID, error) {
	args := m.Called(ctx, submission)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func TestDuplicateGuardNoPriorSubmission(t *testing.T) {
	ctx := context.Background()
	blockID := primitive.NewObjectID()
	flatID := primitive.NewObjectID()
	collectionID := primitive.NewObjectID()

	repo := &mockSubmissionsRepo{}
	repo.On("FindByDuplicateKey", ctx, blockID, flatID, collectionID).Return(nil, nil)

	guard := NewDuplicateGuardService(repo)
	result := guard.Check(ctx, blockID, flatID, collectionID, "Q1 Maintenance")

	assert.False(t, result.IsDuplicate)
	assert.Nil(t, result.Existing)
	assert.Nil(t, result.Warning)
	repo.AssertExpectations(t)
}

func TestDuplicateGuardPriorSubmissionBlocks(t *testing.T) {
	ctx := context.Background()
	blockID := primitive.NewObjectID()
	flatID := primitive.NewObjectID()
	collectionID := primitive.NewObjectID()

	// A prior submission with a different date and amount is still a
	// duplicate: the key is only (block, flat, collection).
	paid := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	prior := &storeModels.PaymentSubmissions{
		BlockID:              blockID,
		FlatID:               flatID,
		ExpectedCollectionID: collectionID,
		PaymentAmount:        999,
		PaymentDate:          &paid,
		CreatedAt:            time.Date(2024, time.May, 21, 10, 0, 0, 0, time.UTC),
	}

	repo := &mockSubmissionsRepo{}
	repo.On("FindByDuplicateKey", ctx, blockID, flatID, collectionID).Return(prior, nil)

	guard := NewDuplicateGuardService(repo)
	result := guard.Check(ctx, blockID, flatID, collectionID, "Q1 Maintenance")

	assert.True(t, result.IsDuplicate)
	require.NotNil(t, result.Existing)
	assert.Equal(t, "Q1 Maintenance", result.Existing.CollectionName)
	assert.Equal(t, "Q1-2024", result.Existing.FiscalQuarter)
	require.NotNil(t, result.Existing.PaymentDate)
	assert.Equal(t, paid, *result.Existing.PaymentDate)
}

func TestDuplicateGuardQuarterFromCreatedAtWhenDateAbsent(t *testing.T) {
	ctx := context.Background()
	blockID := primitive.NewObjectID()
	flatID := primitive.NewObjectID()
	collectionID := primitive.NewObjectID()

	prior := &storeModels.PaymentSubmissions{
		CreatedAt: time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC),
	}

	repo := &mockSubmissionsRepo{}
	repo.On("FindByDuplicateKey", ctx, blockID, flatID, collectionID).Return(prior, nil)

	guard := NewDuplicateGuardService(repo)
	result := guard.Check(ctx, blockID, flatID, collectionID, "Annual Sinking Fund")

	assert.True(t, result.IsDuplicate)
	assert.Equal(t, "Q4-2024", result.Existing.FiscalQuarter)
	assert.Nil(t, result.Existing.PaymentDate)
}

func TestDuplicateGuardFailsOpenOnLookupError(t *testing.T) {
	ctx := context.Background()
	blockID := primitive.NewObjectID()
	flatID := primitive.NewObjectID()
	collectionID := primitive.NewObjectID()

	repo := &mockSubmissionsRepo{}
	repo.On("FindByDuplicateKey", ctx, blockID, flatID, collectionID).
		Return(nil, errors.New("server selection timeout"))

	guard := NewDuplicateGuardService(repo)
	result := guard.Check(ctx, blockID, flatID, collectionID, "Q1 Maintenance")

	assert.False(t, result.IsDuplicate)
	require.Error(t, result.Warning)

	var transient *models.TransientLookupFailure
	require.True(t, errors.As(result.Warning, &transient))
	assert.Equal(t, "duplicate lookup", transient.Op)
}

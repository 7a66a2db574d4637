package submission

import (
	"context"
	"log/slog"

	"flatfundpro/internal/pkg/logger"
	"flatfundpro/internal/pkg/models"
	storeModels "flatfundpro/internal/pkg/store/models"
	"flatfundpro/internal/service/interfaces"
	"flatfundpro/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DuplicateCheckResult is computed per submission attempt and discarded
// after the decision.
type DuplicateCheckResult struct {
	IsDuplicate bool
	Existing    *storeModels.ExistingSubmissionSummary
	// Warning is set when the lookup store was unreachable and the guard
	// failed open. The attempt proceeds, but the caller must surface it.
	Warning error
}

// DuplicateGuardService decides whether a submission attempt conflicts with
// a prior one. A duplicate is any accepted submission with the identical
// (block, flat, collection) tuple; payment date and amount play no part, so
// the same flat can pay distinct collections independently.
type DuplicateGuardService struct {
	submissionsRepo interfaces.PaymentSubmissionsRepositoryInterface
}

func NewDuplicateGuardService(
	submissionsRepo interfaces.PaymentSubmissionsRepositoryInterface,
) *DuplicateGuardService {
	return &DuplicateGuardService{submissionsRepo: submissionsRepo}
}

func (s *DuplicateGuardService) Check(
	ctx context.Context,
	blockID, flatID, collectionID primitive.ObjectID,
	collectionName string,
) DuplicateCheckResult {
	logger.CtxInfo(ctx, "Started DuplicateCheck...",
		slog.String("flatId", flatID.Hex()),
		slog.String("collectionId", collectionID.Hex()))

	existing, err := s.submissionsRepo.FindByDuplicateKey(ctx, blockID, flatID, collectionID)
	if err != nil {
		// Availability over strictness: an unreachable store must not block
		// a genuine payment. Fail open with an explicit warning; a human
		// reviewer can catch the rare double-count downstream.
		warn := &models.TransientLookupFailure{Op: "duplicate lookup", Err: err}
		logger.CtxWarn(ctx, "DuplicateCheck: lookup unavailable, failing open",
			slog.Any("warning", warn),
			slog.String("flatId", flatID.Hex()))
		return DuplicateCheckResult{IsDuplicate: false, Warning: warn}
	}

	if existing == nil {
		logger.CtxInfo(ctx, "DuplicateCheck: false", slog.String("flatId", flatID.Hex()))
		return DuplicateCheckResult{IsDuplicate: false}
	}

	quarterAt := existing.CreatedAt
	if existing.PaymentDate != nil {
		quarterAt = *existing.PaymentDate
	}

	summary := &storeModels.ExistingSubmissionSummary{
		CollectionName: collectionName,
		FiscalQuarter:  utils.FiscalQuarterOf(quarterAt),
		PaymentDate:    existing.PaymentDate,
	}

	logger.CtxInfo(ctx, "DuplicateCheck: true",
		slog.String("flatId", flatID.Hex()),
		slog.String("collection", collectionName),
		slog.String("quarter", summary.FiscalQuarter))

	return DuplicateCheckResult{IsDuplicate: true, Existing: summary}
}

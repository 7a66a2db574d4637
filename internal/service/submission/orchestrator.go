package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flatfundpro/internal/pkg/consts"
	"flatfundpro/internal/pkg/log_messages"
	"flatfundpro/internal/pkg/logger"
	"flatfundpro/internal/pkg/models"
	storeModels "flatfundpro/internal/pkg/store/models"
	pkgutils "flatfundpro/internal/pkg/utils"
	"flatfundpro/internal/service/billing"
	"flatfundpro/internal/service/identity"
	"flatfundpro/internal/service/interfaces"
	pubsubservice "flatfundpro/internal/service/pubsub"
	"flatfundpro/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrchestratorService sequences one submission attempt: reconcile identity,
// check for duplicates, compute the amount due, persist, then publish a
// receipt event. Each step short-circuits on failure. The identity mapping
// write in step 1 is deliberately durable independent of submission success.
type OrchestratorService struct {
	apartmentsRepo  interfaces.ApartmentsRepositoryInterface
	flatsRepo       interfaces.FlatsRepositoryInterface
	collectionsRepo interfaces.ExpectedCollectionsRepositoryInterface
	submissionsRepo interfaces.PaymentSubmissionsRepositoryInterface
	redisRepo       interfaces.RedisStoreOperations
	pubsub          interfaces.PubSubPublisherInterface

	reconciler *identity.ReconcilerService
	guard      *DuplicateGuardService
}

func NewOrchestratorService(
	apartmentsRepo interfaces.ApartmentsRepositoryInterface,
	flatsRepo interfaces.FlatsRepositoryInterface,
	collectionsRepo interfaces.ExpectedCollectionsRepositoryInterface,
	submissionsRepo interfaces.PaymentSubmissionsRepositoryInterface,
	redisRepo interfaces.RedisStoreOperations,
	pubsub interfaces.PubSubPublisherInterface,
	reconciler *identity.ReconcilerService,
	guard *DuplicateGuardService,
) *OrchestratorService {
	return &OrchestratorService{
		apartmentsRepo:  apartmentsRepo,
		flatsRepo:       flatsRepo,
		collectionsRepo: collectionsRepo,
		submissionsRepo: submissionsRepo,
		redisRepo:       redisRepo,
		pubsub:          pubsub,
		reconciler:      reconciler,
		guard:           guard,
	}
}

// nolint:funlen
func (s *OrchestratorService) ProcessSubmission(
	ctx context.Context,
	req *models.SubmissionRequest,
) (*models.SubmissionResponse, error) {

	ids, err := parseRequestIDs(req)
	if err != nil {
		return nil, err
	}

	paymentDate, err := parsePaymentDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	apartment, collection, flat, err := s.loadBillingData(ctx, ids)
	if err != nil {
		return nil, err
	}

	// A decision posted with this attempt is recorded before reconciling so
	// the reconciler can consume it exactly once.
	if req.MismatchDecision != "" {
		if err := s.recordMismatchDecision(ctx, ids, req); err != nil {
			return nil, err
		}
	}

	// Step 1: identity reconciliation.
	reconciled, err := s.reconciler.Reconcile(ctx, identity.ReconcileInput{
		ApartmentID:   ids.apartmentID,
		BlockID:       ids.blockID,
		FlatID:        ids.flatID,
		Email:         req.Email,
		OccupantType:  consts.OccupantType(req.OccupantType),
		Name:          req.Name,
		ClaimedMobile: req.Mobile,
		WhatsappOptIn: req.WhatsappOptIn,
	})
	if err != nil {
		logger.CtxError(ctx, "SubmissionHalted: identity reconciliation failed", err,
			slog.String("flatId", ids.flatID.Hex()))
		return nil, err
	}

	// Step 2: duplicate check. Fails open with a warning when the store is
	// unreachable; the warning is logged inside the guard.
	dup := s.guard.Check(ctx, ids.blockID, ids.flatID, ids.collectionID, collection.Name)
	warning := ""
	if dup.Warning != nil {
		warning = "duplicate check unavailable, submission accepted without verification"
	}
	if dup.IsDuplicate {
		existingDate := ""
		if dup.Existing.PaymentDate != nil {
			existingDate = dup.Existing.PaymentDate.Format(consts.PaymentDateFormat)
		}
		return nil, &models.DuplicateSubmissionError{
			CollectionName: dup.Existing.CollectionName,
			FiscalQuarter:  dup.Existing.FiscalQuarter,
			PaymentDate:    existingDate,
		}
	}

	// Step 3: amount computation. The computed figure is a default; a
	// human-entered override replaces it unvalidated.
	amount, err := billing.ComputeDueAmount(apartment, collection, flat, paymentDate)
	if err != nil {
		logger.CtxError(ctx, "SubmissionHalted: cannot compute due amount", err,
			slog.String("collectionId", ids.collectionID.Hex()))
		return nil, err
	}
	if req.AmountOverride != nil {
		logger.CtxInfo(ctx, "Computed amount overridden by submitter",
			slog.Float64("computed", amount),
			slog.Float64("override", *req.AmountOverride))
		amount = *req.AmountOverride
	}

	// Step 4: persist. Nothing before this step is rolled back; only the
	// identity mapping write was committed and it stays.
	record := &storeModels.PaymentSubmissions{
		ApartmentID:          ids.apartmentID,
		BlockID:              ids.blockID,
		FlatID:               ids.flatID,
		ExpectedCollectionID: ids.collectionID,
		Email:                req.Email,
		ContactNumber:        reconciled.ContactNumber,
		PaymentAmount:        amount,
		PaymentDate:          paymentDate,
		OccupantType:         consts.OccupantType(req.OccupantType),
		CreatedAt:            time.Now(),
	}

	submissionID, err := s.submissionsRepo.Insert(ctx, record)
	if err != nil {
		return nil, &models.PersistenceFailure{Err: err}
	}

	quarter := utils.FiscalQuarter(req.PaymentDate, record.CreatedAt)

	s.publishReceipt(ctx, submissionID, req, record, collection.Name, quarter)

	logger.CtxInfo(ctx, "Finished ProcessSubmission",
		slog.String("submissionId", submissionID.Hex()),
		slog.Float64("amountCharged", amount),
		slog.String("quarter", quarter))

	return &models.SubmissionResponse{
		SubmissionID:  submissionID.Hex(),
		AmountCharged: amount,
		FiscalQuarter: quarter,
		Warning:       warning,
	}, nil
}

type requestIDs struct {
	apartmentID  primitive.ObjectID
	blockID      primitive.ObjectID
	flatID       primitive.ObjectID
	collectionID primitive.ObjectID
}

func parseRequestIDs(req *models.SubmissionRequest) (requestIDs, error) {
	var ids requestIDs
	var err error

	if ids.apartmentID, err = primitive.ObjectIDFromHex(req.ApartmentID); err != nil {
		return ids, fmt.Errorf("invalid apartmentId: %w", err)
	}
	if ids.blockID, err = primitive.ObjectIDFromHex(req.BlockID); err != nil {
		return ids, fmt.Errorf("invalid blockId: %w", err)
	}
	if ids.flatID, err = primitive.ObjectIDFromHex(req.FlatID); err != nil {
		return ids, fmt.Errorf("invalid flatId: %w", err)
	}
	if ids.collectionID, err = primitive.ObjectIDFromHex(req.ExpectedCollectionID); err != nil {
		return ids, fmt.Errorf("invalid expectedCollectionId: %w", err)
	}
	return ids, nil
}

func parsePaymentDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(consts.PaymentDateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid paymentDate %q: %w", raw, err)
	}
	return &parsed, nil
}

func (s *OrchestratorService) loadBillingData(
	ctx context.Context,
	ids requestIDs,
) (*storeModels.Apartments, *storeModels.ExpectedCollections, *storeModels.Flats, error) {

	apartment, err := s.apartmentsRepo.GetByID(ctx, ids.apartmentID)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFetchingApartmentDoc, err,
			slog.String("apartmentId", ids.apartmentID.Hex()))
		return nil, nil, nil, &models.TransientLookupFailure{Op: "apartment read", Err: err}
	}

	collection, err := s.collectionsRepo.GetByID(ctx, ids.collectionID)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFetchingExpectedCollectionDoc, err,
			slog.String("collectionId", ids.collectionID.Hex()))
		return nil, nil, nil, &models.TransientLookupFailure{Op: "collection read", Err: err}
	}
	if !collection.IsActive {
		return nil, nil, nil, &models.ConfigurationError{
			Field:  "is_active",
			Reason: fmt.Sprintf("collection %q is not open for submissions", collection.Name),
		}
	}
	if err := pkgutils.ValidateFlatTypeRates(collection.FlatTypeRates); err != nil {
		return nil, nil, nil, &models.ConfigurationError{Field: "flat_type_rates", Reason: err.Error()}
	}

	flat, err := s.flatsRepo.GetByID(ctx, ids.flatID)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFetchingFlatDoc, err,
			slog.String("flatId", ids.flatID.Hex()))
		return nil, nil, nil, &models.TransientLookupFailure{Op: "flat read", Err: err}
	}

	return apartment, collection, flat, nil
}

func (s *OrchestratorService) recordMismatchDecision(
	ctx context.Context,
	ids requestIDs,
	req *models.SubmissionRequest,
) error {
	claimed := ""
	if req.Mobile != "" {
		claimed = utils.NormalizeMobile(req.Mobile).FullNumber
	}

	entry := storeModels.MismatchDecision{
		Decision:      req.MismatchDecision,
		ClaimedMobile: claimed,
		IssuedAt:      time.Now(),
	}

	if err := s.redisRepo.SaveMismatchDecision(ctx, ids.apartmentID.Hex(), ids.flatID.Hex(), entry); err != nil {
		logger.CtxError(ctx, log_messages.ErrorSavingMismatchDecision, err,
			slog.String("flatId", ids.flatID.Hex()))
		return &models.TransientLookupFailure{Op: "mismatch decision write", Err: err}
	}

	logger.CtxInfo(ctx, "Recorded mismatch decision for this attempt",
		slog.String("decision", req.MismatchDecision),
		slog.String("flatId", ids.flatID.Hex()))
	return nil
}

// publishReceipt is best-effort: a failed publish is logged, never surfaced,
// because the submission is already final.
func (s *OrchestratorService) publishReceipt(
	ctx context.Context,
	submissionID primitive.ObjectID,
	req *models.SubmissionRequest,
	record *storeModels.PaymentSubmissions,
	collectionName, quarter string,
) {
	maskedMobile := ""
	if record.ContactNumber != "" {
		maskedMobile = utils.MaskMobile(utils.NormalizeMobile(record.ContactNumber))
	}

	msg := models.ReceiptNotificationMessage{
		SubmissionID:   submissionID.Hex(),
		ApartmentID:    record.ApartmentID.Hex(),
		FlatID:         record.FlatID.Hex(),
		Email:          record.Email,
		MaskedMobile:   maskedMobile,
		CollectionName: collectionName,
		FiscalQuarter:  quarter,
		AmountCharged:  record.PaymentAmount,
		WhatsappOptIn:  req.WhatsappOptIn,
		SubmittedAt:    record.CreatedAt,
	}

	if _, err := pubsubservice.PubSubPublisher(ctx, s.pubsub, msg); err != nil {
		logger.CtxError(ctx, "Failed to publish receipt notification", err,
			slog.String("submissionId", submissionID.Hex()))
		return
	}

	logger.CtxInfo(ctx, "Published receipt notification",
		slog.String("submissionId", submissionID.Hex()))
}

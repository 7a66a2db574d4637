package identity

import (
	"context"
	"log/slog"

	"flatfundpro/internal/pkg/consts"
	"flatfundpro/internal/pkg/log_messages"
	"flatfundpro/internal/pkg/logger"
	"flatfundpro/internal/pkg/models"
	storeModels "flatfundpro/internal/pkg/store/models"
	"flatfundpro/internal/service/interfaces"
	"flatfundpro/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Outcomes of a reconciliation attempt that may proceed to submission.
const (
	OutcomeCreated = "CREATED"
	OutcomeProceed = "PROCEED"
)

type ReconcileInput struct {
	ApartmentID   primitive.ObjectID
	BlockID       primitive.ObjectID
	FlatID        primitive.ObjectID
	Email         string
	OccupantType  consts.OccupantType
	Name          string
	ClaimedMobile string
	WhatsappOptIn bool
}

type ReconcileResult struct {
	Outcome string
	// ContactNumber is the mobile to record on this submission: the claimed
	// number after normalization, or the stored one when nothing was claimed.
	ContactNumber string
}

// ReconcilerService validates or creates the authoritative flat -> contact
// binding. The stored email is never overwritten; a differing claimed email
// is terminal for the attempt. A differing claimed mobile is surfaced as
// MOBILE_MISMATCH unless the submitter has recorded a one-use decision for
// this attempt and the same claimed number, in which case the mismatch check
// is skipped exactly once.
type ReconcilerService struct {
	mappingsRepo interfaces.IdentityMappingsRepositoryInterface
	redisRepo    interfaces.RedisStoreOperations
}

func NewReconcilerService(
	mappingsRepo interfaces.IdentityMappingsRepositoryInterface,
	redisRepo interfaces.RedisStoreOperations,
) *ReconcilerService {
	return &ReconcilerService{
		mappingsRepo: mappingsRepo,
		redisRepo:    redisRepo,
	}
}

func (s *ReconcilerService) Reconcile(ctx context.Context, input ReconcileInput) (*ReconcileResult, error) {
	logger.CtxInfo(ctx, "Started IdentityReconciliation...",
		slog.String("flatId", input.FlatID.Hex()))

	var claimed *utils.MobileIdentity
	if input.ClaimedMobile != "" {
		identity := utils.NormalizeMobile(input.ClaimedMobile)
		if err := utils.ValidateMobile(identity); err != nil {
			logger.CtxError(ctx, log_messages.ErrorNormalizingClaimedMobileNumber, err,
				slog.String("flatId", input.FlatID.Hex()))
			return nil, err
		}
		claimed = &identity
	}

	mapping, err := s.mappingsRepo.GetByFlat(ctx, input.ApartmentID, input.FlatID)
	if err != nil {
		return nil, &models.TransientLookupFailure{Op: "identity mapping read", Err: err}
	}

	// First submission for the flat: create the mapping with the claimed
	// identity. No mismatch is possible on first write.
	if mapping == nil {
		return s.createMapping(ctx, input, claimed)
	}

	if mapping.Email != input.Email {
		logger.CtxWarn(ctx, "IdentityReconciliation: email mismatch",
			slog.String("flatId", input.FlatID.Hex()))
		return nil, &models.IdentityConflictError{Kind: models.ConflictEmailMismatch}
	}

	return s.reconcileMobile(ctx, input, mapping, claimed)
}

func (s *ReconcilerService) createMapping(
	ctx context.Context,
	input ReconcileInput,
	claimed *utils.MobileIdentity,
) (*ReconcileResult, error) {
	mapping := &storeModels.IdentityMappings{
		ApartmentID:   input.ApartmentID,
		BlockID:       input.BlockID,
		FlatID:        input.FlatID,
		Email:         input.Email,
		Name:          input.Name,
		OccupantType:  input.OccupantType,
		WhatsappOptIn: input.WhatsappOptIn,
	}

	contactNumber := ""
	if claimed != nil {
		mapping.Mobile = claimed.FullNumber
		contactNumber = claimed.FullNumber
	}

	if _, err := s.mappingsRepo.Create(ctx, mapping); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "IdentityReconciliation: mapping created",
		slog.String("flatId", input.FlatID.Hex()))

	return &ReconcileResult{Outcome: OutcomeCreated, ContactNumber: contactNumber}, nil
}

// nolint:funlen
func (s *ReconcilerService) reconcileMobile(
	ctx context.Context,
	input ReconcileInput,
	mapping *storeModels.IdentityMappings,
	claimed *utils.MobileIdentity,
) (*ReconcileResult, error) {

	// Nothing claimed: the stored contact stands.
	if claimed == nil {
		return &ReconcileResult{Outcome: OutcomeProceed, ContactNumber: mapping.Mobile}, nil
	}

	// No mobile on file yet: accept and store unconditionally.
	if mapping.Mobile == "" {
		mobile := claimed.FullNumber
		update := interfaces.ContactUpdate{Mobile: &mobile, WhatsappOptIn: &input.WhatsappOptIn}
		if input.Name != "" {
			update.Name = &input.Name
		}
		if err := s.mappingsRepo.UpdateContact(ctx, input.ApartmentID, input.FlatID, update); err != nil {
			return nil, err
		}
		logger.CtxInfo(ctx, "IdentityReconciliation: stored first mobile for flat",
			slog.String("flatId", input.FlatID.Hex()))
		return &ReconcileResult{Outcome: OutcomeProceed, ContactNumber: mobile}, nil
	}

	stored := utils.NormalizeMobile(mapping.Mobile)
	if stored.FullNumber == claimed.FullNumber {
		return &ReconcileResult{Outcome: OutcomeProceed, ContactNumber: stored.FullNumber}, nil
	}

	// Claimed mobile contradicts the stored one. The reconciler never
	// resolves this itself: it either consumes a previously recorded
	// decision or surfaces the mismatch.
	decision, err := s.redisRepo.TakeMismatchDecision(ctx, input.ApartmentID.Hex(), input.FlatID.Hex())
	if err != nil {
		return nil, &models.TransientLookupFailure{Op: "mismatch decision read", Err: err}
	}

	if decision == nil {
		logger.CtxWarn(ctx, "IdentityReconciliation: mobile mismatch, awaiting decision",
			slog.String("flatId", input.FlatID.Hex()),
			slog.String("stored", utils.MaskMobile(stored)),
			slog.String("claimed", utils.MaskMobile(*claimed)))
		return nil, &models.IdentityConflictError{
			Kind:          models.ConflictMobileMismatch,
			StoredMasked:  utils.MaskMobile(stored),
			ClaimedMasked: utils.MaskMobile(*claimed),
		}
	}

	// A decision only covers the number it was recorded for. A lingering
	// token from an attempt that claimed some other mobile must not
	// authorize this one.
	if decision.ClaimedMobile != claimed.FullNumber {
		logger.CtxWarn(ctx, "IdentityReconciliation: decision recorded for a different mobile, re-surfacing conflict",
			slog.String("flatId", input.FlatID.Hex()))
		return nil, &models.IdentityConflictError{
			Kind:          models.ConflictMobileMismatch,
			StoredMasked:  utils.MaskMobile(stored),
			ClaimedMasked: utils.MaskMobile(*claimed),
		}
	}

	switch decision.Decision {
	case consts.DecisionPermanent:
		mobile := claimed.FullNumber
		update := interfaces.ContactUpdate{Mobile: &mobile}
		if err := s.mappingsRepo.UpdateContact(ctx, input.ApartmentID, input.FlatID, update); err != nil {
			return nil, err
		}
		logger.CtxInfo(ctx, "IdentityReconciliation: stored mobile overwritten by decision",
			slog.String("flatId", input.FlatID.Hex()))
		return &ReconcileResult{Outcome: OutcomeProceed, ContactNumber: mobile}, nil

	case consts.DecisionOneTime:
		// Stored mobile stays; the claimed number is used only for this
		// submission's contact field.
		logger.CtxInfo(ctx, "IdentityReconciliation: one-time use of claimed mobile",
			slog.String("flatId", input.FlatID.Hex()))
		return &ReconcileResult{Outcome: OutcomeProceed, ContactNumber: claimed.FullNumber}, nil

	default:
		logger.CtxWarn(ctx, "IdentityReconciliation: unknown mismatch decision, re-surfacing conflict",
			slog.String("decision", decision.Decision))
		return nil, &models.IdentityConflictError{
			Kind:          models.ConflictMobileMismatch,
			StoredMasked:  utils.MaskMobile(stored),
			ClaimedMasked: utils.MaskMobile(*claimed),
		}
	}
}

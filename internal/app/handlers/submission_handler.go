package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"flatfundpro/internal/pkg/log_messages"
	"flatfundpro/internal/pkg/logger"
	"flatfundpro/internal/pkg/models"
	pkgutils "flatfundpro/internal/pkg/utils"
	"flatfundpro/internal/service/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubmissionHandler struct {
	orchestrator interfaces.SubmissionOrchestratorInterface
}

func NewSubmissionHandler(orchestrator interfaces.SubmissionOrchestratorInterface) *SubmissionHandler {
	return &SubmissionHandler{
		orchestrator: orchestrator,
	}
}

// SubmitPayment accepts one payment-proof submission. Identity conflicts and
// duplicates come back as 409 with a structured conflict payload; a
// MOBILE_MISMATCH is resolved by resubmitting the same payload with
// mismatchDecision set.
func (h *SubmissionHandler) SubmitPayment(c *gin.Context) {
	var req models.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	traceID := uuid.New().String()
	ctx := logger.WithTraceID(c.Request.Context(), traceID)

	logger.CtxInfo(ctx, "New submission request started",
		slog.String("trace_id", traceID),
		slog.String("flatId", req.FlatID),
		slog.String("collectionId", req.ExpectedCollectionID))

	if err := pkgutils.ValidateSubmissionRequest(&req); err != nil {
		logger.CtxWarn(ctx, log_messages.ErrorValidatingSubmissionRequest, slog.Any("reason", err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.orchestrator.ProcessSubmission(ctx, &req)
	if err != nil {
		logger.CtxError(ctx, "Submission attempt halted", err)
		writeSubmissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func writeSubmissionError(c *gin.Context, err error) {
	var conflict *models.IdentityConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, pkgutils.ConflictResponseFor(conflict))
		return
	}

	var duplicate *models.DuplicateSubmissionError
	if errors.As(err, &duplicate) {
		c.JSON(http.StatusConflict, models.ConflictResponse{
			Conflict:           "DUPLICATE",
			Message:            "a submission already exists for this flat and collection",
			ExistingCollection: duplicate.CollectionName,
			ExistingQuarter:    duplicate.FiscalQuarter,
			ExistingDate:       duplicate.PaymentDate,
		})
		return
	}

	var configErr *models.ConfigurationError
	if errors.As(err, &configErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": configErr.Error(),
			"field": configErr.Field,
		})
		return
	}

	var persistErr *models.PersistenceFailure
	if errors.As(err, &persistErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "SUBMIT_FAILED",
			"retry": true,
		})
		return
	}

	var lookupErr *models.TransientLookupFailure
	if errors.As(err, &lookupErr) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": lookupErr.Error()})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

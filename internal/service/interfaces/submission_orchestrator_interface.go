package interfaces

import (
	"context"

	"flatfundpro/internal/pkg/models"
)

type SubmissionOrchestratorInterface interface {
	ProcessSubmission(ctx context.Context, req *models.SubmissionRequest) (*models.SubmissionResponse, error)
}

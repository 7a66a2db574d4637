package utils

import (
	"fmt"

	"flatfundpro/internal/pkg/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateSubmissionRequest runs the struct-tag validation on an incoming
// submission payload.
func ValidateSubmissionRequest(req *models.SubmissionRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return nil
}

// ValidateFlatTypeRates rejects a flat-type rate table containing a negative
// rate. The table is a string-keyed map of numeric rates; anything
// non-numeric never reaches this point because decoding fails first.
func ValidateFlatTypeRates(rates map[string]float64) error {
	for flatType, rate := range rates {
		if rate < 0 {
			return fmt.Errorf("flat type %q has a negative rate %v", flatType, rate)
		}
	}
	return nil
}

// ConflictResponseFor builds the client-facing payload for a blocking
// identity conflict.
func ConflictResponseFor(conflict *models.IdentityConflictError) models.ConflictResponse {
	message := "submitted email does not match the one on record for this flat"
	if conflict.Kind == models.ConflictMobileMismatch {
		message = "submitted mobile differs from the one on record; choose permanent or one-time"
	}
	return models.ConflictResponse{
		Conflict:      conflict.Kind,
		Message:       message,
		StoredMasked:  conflict.StoredMasked,
		ClaimedMasked: conflict.ClaimedMasked,
	}
}

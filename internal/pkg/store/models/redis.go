package models

import (
	"fmt"
	"time"
)

// MismatchDecision is the short-lived record of a submitter's answer to a
// mobile mismatch, scoped to one submission attempt and consumed exactly once.
type MismatchDecision struct {
	Decision      string    `json:"decision"`
	ClaimedMobile string    `json:"claimedMobile"`
	IssuedAt      time.Time `json:"issuedAt"`
}

func MismatchDecisionKeyBuilder(apartmentID, flatID string) string {
	return fmt.Sprintf("flatfund:mismatch-decision:%s:%s", apartmentID, flatID)
}

package models

// SubmissionRequest is the payload a resident posts for one payment proof.
// AmountOverride, when present, replaces the computed default unvalidated;
// the engine treats the computed figure as a default, not an enforced value.
type SubmissionRequest struct {
	ApartmentID          string   `json:"apartmentId" validate:"required"`
	BlockID              string   `json:"blockId" validate:"required"`
	FlatID               string   `json:"flatId" validate:"required"`
	ExpectedCollectionID string   `json:"expectedCollectionId" validate:"required"`
	Email                string   `json:"email" validate:"required,email"`
	Mobile               string   `json:"mobile,omitempty"`
	Name                 string   `json:"name,omitempty"`
	OccupantType         string   `json:"occupantType" validate:"required,oneof=owner tenant"`
	WhatsappOptIn        bool     `json:"whatsappOptIn"`
	PaymentDate          string   `json:"paymentDate,omitempty"`
	AmountOverride       *float64 `json:"amountOverride,omitempty"`

	// MismatchDecision resolves an earlier MOBILE_MISMATCH response:
	// "permanent" or "one-time". Single-use, scoped to this attempt.
	MismatchDecision string `json:"mismatchDecision,omitempty" validate:"omitempty,oneof=permanent one-time"`
}

type SubmissionResponse struct {
	SubmissionID  string  `json:"submissionId"`
	AmountCharged float64 `json:"amountCharged"`
	FiscalQuarter string  `json:"fiscalQuarter"`

	// Warning is set when the duplicate check could not run and the engine
	// proceeded anyway (fail-open policy). The submission itself succeeded.
	Warning string `json:"warning,omitempty"`
}

// ConflictResponse surfaces EMAIL_MISMATCH / MOBILE_MISMATCH / DUPLICATE to
// the submitter with enough context to decide, contact numbers masked.
type ConflictResponse struct {
	Conflict      string `json:"conflict"`
	Message       string `json:"message"`
	StoredMasked  string `json:"storedMasked,omitempty"`
	ClaimedMasked string `json:"claimedMasked,omitempty"`

	ExistingCollection string `json:"existingCollection,omitempty"`
	ExistingQuarter    string `json:"existingQuarter,omitempty"`
	ExistingDate       string `json:"existingDate,omitempty"`
}

package models

import "time"

// ReceiptNotificationMessage is published after a submission is persisted so
// the notification service can confirm receipt to the resident. Contact
// numbers travel masked; delivery is out of scope for this engine.
type ReceiptNotificationMessage struct {
	SubmissionID   string    `json:"submissionId"`
	ApartmentID    string    `json:"apartmentId"`
	FlatID         string    `json:"flatId"`
	Email          string    `json:"email"`
	MaskedMobile   string    `json:"maskedMobile,omitempty"`
	CollectionName string    `json:"collectionName"`
	FiscalQuarter  string    `json:"fiscalQuarter"`
	AmountCharged  float64   `json:"amountCharged"`
	WhatsappOptIn  bool      `json:"whatsappOptIn"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

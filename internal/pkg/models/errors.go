package models

import "fmt"

// Conflict kinds surfaced by the identity reconciler.
const (
	ConflictEmailMismatch  = "EMAIL_MISMATCH"
	ConflictMobileMismatch = "MOBILE_MISMATCH"
)

type CustomError struct {
	Code    string
	Message string
}

func (e CustomError) Error() string {
	return e.Message
}

func (e CustomError) ErrorCode() string {
	return e.Code
}

// ConfigurationError means rate/area/type data needed to price a flat is
// missing. Attributable to a named field, recoverable only by an admin data
// fix; it blocks submission and is never coerced to a zero amount.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error on %s: %s", e.Field, e.Reason)
}

// IdentityConflictError is an email or mobile mismatch against the stored
// identity mapping. Recoverable only via an explicit submitter decision.
type IdentityConflictError struct {
	Kind          string
	StoredMasked  string
	ClaimedMasked string
}

func (e *IdentityConflictError) Error() string {
	return fmt.Sprintf("identity conflict %s (stored %s, claimed %s)",
		e.Kind, e.StoredMasked, e.ClaimedMasked)
}

// DuplicateSubmissionError is a blocking business rule, not a fault: a prior
// submission already exists for the same (block, flat, collection) tuple.
type DuplicateSubmissionError struct {
	CollectionName string
	FiscalQuarter  string
	PaymentDate    string
}

func (e *DuplicateSubmissionError) Error() string {
	return fmt.Sprintf("duplicate submission for %s (%s, paid %s)",
		e.CollectionName, e.FiscalQuarter, e.PaymentDate)
}

// TransientLookupFailure wraps a store error during identity or duplicate
// reads. For duplicate checks the policy is warn-and-allow-proceed.
type TransientLookupFailure struct {
	Op  string
	Err error
}

func (e *TransientLookupFailure) Error() string {
	return fmt.Sprintf("transient lookup failure during %s: %v", e.Op, e.Err)
}

func (e *TransientLookupFailure) Unwrap() error {
	return e.Err
}

// PersistenceFailure means the final submission write failed. Terminal for
// the attempt, fully retryable by resubmission.
type PersistenceFailure struct {
	Err error
}

func (e *PersistenceFailure) Error() string {
	return fmt.Sprintf("submission persistence failed: %v", e.Err)
}

func (e *PersistenceFailure) Unwrap() error {
	return e.Err
}

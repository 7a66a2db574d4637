package consts

type CollectionMode string

const (
	// A: every flat pays the same amount_due.
	CollectionModeFlat CollectionMode = "A"
	// B: rate_per_sqft multiplied by the flat's built-up area.
	CollectionModeArea CollectionMode = "B"
	// C: per flat-type rate looked up in flat_type_rates.
	CollectionModeFlatType CollectionMode = "C"
)

type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyOneTime   Frequency = "one-time"
)

type OccupantType string

const (
	OccupantOwner  OccupantType = "owner"
	OccupantTenant OccupantType = "tenant"
)

// Decisions the submitter may record for a mobile mismatch.
const (
	DecisionPermanent = "permanent"
	DecisionOneTime   = "one-time"
)

const (
	PaymentDateFormat      = "2006-01-02"
	DefaultCountryDialCode = "+91"
)

package consts

// MongoDB collection names.
const (
	ApartmentsCollection          = "apartments"
	BlocksCollection              = "blocks"
	FlatsCollection               = "flats"
	ExpectedCollectionsCollection = "expectedcollections"
	IdentityMappingsCollection    = "identitymappings"
	PaymentSubmissionsCollection  = "paymentsubmissions"
)

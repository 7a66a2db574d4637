package log_messages

const (
	ErrorMarshallingMessage             = "failed to marshal message: %v"
	ErrorInMessagePublishing            = "failed to publish message: %v"
	ErrorPubSubClientCreation           = "error creating pubsub client: %v"
	TopicDoesNotExists                  = "pubsub topic does not exist: %v"
	ErrorFetchingIdentityMappingDoc     = "error fetching document from identitymappings mongoDB: %v"
	ErrorFetchingExpectedCollectionDoc  = "error fetching document from expectedcollections mongoDB: %v"
	ErrorFetchingFlatDoc                = "error fetching document from flats mongoDB: %v"
	ErrorFetchingApartmentDoc           = "error fetching document from apartments mongoDB: %v"
	ErrorInsertingPaymentSubmission     = "error inserting paymentsubmissions document: %v"
	ErrorSavingMismatchDecision         = "failed to save mismatch decision: %v"
	ErrorValidatingSubmissionRequest    = "submission request validation failed: %v"
	ErrorNormalizingClaimedMobileNumber = "failed to validate claimed mobile number: %v"
	SuccessPubSubPublisher              = "pubsub message published"
)

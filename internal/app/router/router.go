package router

import (
	"time"

	"flatfundpro/internal/app/handlers"
	mongodb "flatfundpro/internal/pkg/db/mongo"
	"flatfundpro/internal/pkg/store/impl/apartments"
	expectedcollections "flatfundpro/internal/pkg/store/impl/expected_collections"
	"flatfundpro/internal/pkg/store/impl/flats"
	identitymappings "flatfundpro/internal/pkg/store/impl/identity_mappings"
	paymentsubmissions "flatfundpro/internal/pkg/store/impl/payment_submissions"
	"flatfundpro/internal/pkg/store/repository"
	"flatfundpro/internal/service/identity"
	"flatfundpro/internal/service/interfaces"
	"flatfundpro/internal/service/submission"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

// SetupRouter wires the store repositories into the submission engine and
// mounts the HTTP surface.
func SetupRouter(
	mongoClient *mongodb.MongoClient,
	redisClient *redis.Client,
	publisher interfaces.PubSubPublisherInterface,
	decisionTTL int,
) *gin.Engine {
	server := gin.Default()

	redisStore := repository.NewRedisStoreAdapter(redisClient, minutes(decisionTTL))

	mappingsRepo := identitymappings.NewIdentityMappingsRepository(mongoClient)
	submissionsRepo := paymentsubmissions.NewPaymentSubmissionsRepository(mongoClient)

	reconciler := identity.NewReconcilerService(mappingsRepo, redisStore)
	guard := submission.NewDuplicateGuardService(submissionsRepo)

	orchestrator := submission.NewOrchestratorService(
		apartments.NewApartmentsRepository(mongoClient),
		flats.NewFlatsRepository(mongoClient),
		expectedcollections.NewExpectedCollectionsRepository(mongoClient),
		submissionsRepo,
		redisStore,
		publisher,
		reconciler,
		guard,
	)

	submissionHandler := handlers.NewSubmissionHandler(orchestrator)
	server.POST("/IntegrationServices/FlatFund/PaymentSubmission", submissionHandler.SubmitPayment)

	healthCheckHandler := handlers.NewHealthCheckHandler()
	server.GET("/IntegrationServices/FlatFund/PaymentSubmission/HealthCheck", healthCheckHandler.HealthCheck)

	return server
}

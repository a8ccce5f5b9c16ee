// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/community/api/controller"
	"github.com/dev-mohitbeniwal/community/api/metrics"
	"github.com/dev-mohitbeniwal/community/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	tokens middleware.TokenParser,
	actors middleware.ActorLookup,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.ContextWithFallback = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Logger())

	controllers.Health.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	controllers.Auth.RegisterRoutes(api)

	secured := api.Group("")
	secured.Use(middleware.Authenticate(tokens, actors))
	controllers.User.RegisterRoutes(secured)
	controllers.Community.RegisterRoutes(secured)
	controllers.Binding.RegisterRoutes(secured)
	controllers.WorkOrder.RegisterRoutes(secured)
	controllers.Complaint.RegisterRoutes(secured)
	controllers.VisitorPass.RegisterRoutes(secured)
	controllers.Announcement.RegisterRoutes(secured)
	controllers.Notification.RegisterRoutes(secured)
	controllers.Merchant.RegisterRoutes(secured)
	controllers.Payment.RegisterRoutes(secured)
	controllers.Audit.RegisterRoutes(secured)

	return router
}

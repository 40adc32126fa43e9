package router

import (
	"adhub_backend/internal/feature/listing/transport/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP surface of the listing catalog. No route
// requires authentication: identity is asserted by the caller
// (owner_id in the body, userId in the path) and verified by the
// external identity collaborator, not here.
func NewRouter(ads *handler.AdsHandler) *gin.Engine {
	r := gin.Default()

	// The browser frontend runs on a different origin.
	r.Use(cors.Default())

	r.GET("/", handler.Root)
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		api.GET("/ads", ads.List)
		api.POST("/ads", ads.Create)
		api.GET("/ads/user/:userId", ads.ListByOwner)
		api.GET("/ads/:id", ads.Get)
		api.GET("/test-db", ads.TestDB)
	}

	return r
}

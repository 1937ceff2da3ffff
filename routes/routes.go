package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/slugline/blog-api/controllers"
	"github.com/slugline/blog-api/services"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	postController := controllers.NewPostController(services.NewPostService(db))
	tagController := controllers.NewTagController(services.NewTagService(db))
	healthController := controllers.NewHealthController()

	r.GET("/", healthController.Health)

	v1 := r.Group("/v1")
	{
		v1.GET("/health", healthController.Health)

		SetupPostRoutes(v1, postController)
		SetupTagRoutes(v1, tagController)
	}
}

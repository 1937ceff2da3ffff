package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/slugline/blog-api/controllers"
)

func SetupTagRoutes(v1 *gin.RouterGroup, tagController *controllers.TagController) {
	v1.GET("/tags", tagController.GetTags)
}

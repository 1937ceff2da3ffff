package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/slugline/blog-api/controllers"
)

func SetupPostRoutes(v1 *gin.RouterGroup, postController *controllers.PostController) {
	posts := v1.Group("/posts")
	{
		posts.GET("", postController.GetPosts)
		posts.GET("/random", postController.GetRandomPosts)
		posts.GET("/tag/:tag", postController.GetPostsByTag)
		posts.GET("/u/:username/:slug", postController.GetPostByUsernameAndSlug)
	}
}

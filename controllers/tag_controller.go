package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slugline/blog-api/services"
)

type TagController struct {
	Tags services.TagService
}

func NewTagController(tags services.TagService) *TagController {
	return &TagController{Tags: tags}
}

// GetTags godoc
// @Summary List all tags
// @Description Returns every tag ordered by name
// @Tags tags
// @Produce json
// @Success 200 {object} APIResponse
// @Router /v1/tags [get]
func (tc *TagController) GetTags(c *gin.Context) {
	tags, err := tc.Tags.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("list tags: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse("failed to fetch tags"))
		return
	}

	c.JSON(http.StatusOK, countedResponse(tags, int64(len(tags))))
}

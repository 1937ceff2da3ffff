package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slugline/blog-api/services"
)

type PostController struct {
	Posts services.PostService
}

func NewPostController(posts services.PostService) *PostController {
	return &PostController{Posts: posts}
}

type PostListQuery struct {
	Offset         int64  `form:"offset,default=0"`
	Limit          int64  `form:"limit,default=10"`
	Search         string `form:"search"`
	OrderBy        string `form:"orderBy"`
	OrderDirection string `form:"orderDirection"`
}

type RandomPostQuery struct {
	Limit int64 `form:"limit,default=6"`
}

func (q PostListQuery) listParams() services.ListParams {
	return services.ListParams{
		Offset:         q.Offset,
		Limit:          q.Limit,
		Search:         q.Search,
		OrderBy:        q.OrderBy,
		OrderDirection: services.ParseOrderDirection(q.OrderDirection),
	}
}

// GetPosts godoc
// @Summary List published posts
// @Description Returns a paginated page of published posts with optional search and ordering
// @Tags posts
// @Produce json
// @Param offset query integer false "Page offset (default: 0)"
// @Param limit query integer false "Page size (default: 10)"
// @Param search query string false "Substring match against title, body, and author username"
// @Param orderBy query string false "Sort field: id, title, created_at, updated_at, view_count, like_count"
// @Param orderDirection query string false "Sort direction: asc or desc (default: desc)"
// @Success 200 {object} APIResponse
// @Router /v1/posts [get]
func (pc *PostController) GetPosts(c *gin.Context) {
	var query PostListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	posts, total, err := pc.Posts.ListAll(c.Request.Context(), query.listParams())
	if err != nil {
		log.Printf("list posts: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse("failed to fetch posts"))
		return
	}

	c.JSON(http.StatusOK, pagedResponse(posts, total, query.Limit, query.Offset))
}

// GetRandomPosts godoc
// @Summary Sample random published posts
// @Description Returns up to limit published posts in random order
// @Tags posts
// @Produce json
// @Param limit query integer false "Sample size (default: 6)"
// @Success 200 {object} APIResponse
// @Router /v1/posts/random [get]
func (pc *PostController) GetRandomPosts(c *gin.Context) {
	var query RandomPostQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	posts, err := pc.Posts.RandomSample(c.Request.Context(), query.Limit)
	if err != nil {
		log.Printf("random posts: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse("failed to fetch posts"))
		return
	}

	c.JSON(http.StatusOK, pagedResponse(posts, int64(len(posts)), query.Limit, 0))
}

// GetPostsByTag godoc
// @Summary List published posts carrying a tag
// @Description As the plain listing, restricted to posts with the given tag name
// @Tags posts
// @Produce json
// @Param tag path string true "Tag name (exact match)"
// @Success 200 {object} APIResponse
// @Router /v1/posts/tag/{tag} [get]
func (pc *PostController) GetPostsByTag(c *gin.Context) {
	var query PostListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	posts, total, err := pc.Posts.ListByTag(c.Request.Context(), c.Param("tag"), query.listParams())
	if err != nil {
		log.Printf("list posts by tag: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse("failed to fetch posts"))
		return
	}

	c.JSON(http.StatusOK, pagedResponse(posts, total, query.Limit, query.Offset))
}

// GetPostByUsernameAndSlug godoc
// @Summary Resolve one post by author and slug
// @Description Returns the full post, body untruncated, with its tags
// @Tags posts
// @Produce json
// @Param username path string true "Author username"
// @Param slug path string true "Post slug"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIError
// @Router /v1/posts/u/{username}/{slug} [get]
func (pc *PostController) GetPostByUsernameAndSlug(c *gin.Context) {
	username := c.Param("username")
	slug := c.Param("slug")

	post, err := pc.Posts.GetByUsernameAndSlug(c.Request.Context(), username, slug)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse("Post not found: "+slug+" by "+username))
		return
	}
	if err != nil {
		log.Printf("get post %s/%s: %v", username, slug, err)
		c.JSON(http.StatusInternalServerError, errorResponse("failed to fetch post"))
		return
	}

	c.JSON(http.StatusOK, successResponse(post))
}

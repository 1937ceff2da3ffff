package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/slugline/blog-api/controllers"
	"github.com/slugline/blog-api/models"
	"github.com/slugline/blog-api/routes"
	"github.com/slugline/blog-api/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakePostService records the arguments each operation received and
// returns canned results, standing in for the Postgres-backed service.
type fakePostService struct {
	posts []models.Post
	total int64
	post  *models.Post
	err   error

	listParams services.ListParams
	tagName    string
	limit      int64
	username   string
	slug       string
}

func (f *fakePostService) ListAll(_ context.Context, params services.ListParams) ([]models.Post, int64, error) {
	f.listParams = params
	return f.posts, f.total, f.err
}

func (f *fakePostService) ListByTag(_ context.Context, tagName string, params services.ListParams) ([]models.Post, int64, error) {
	f.tagName = tagName
	f.listParams = params
	return f.posts, f.total, f.err
}

func (f *fakePostService) RandomSample(_ context.Context, limit int64) ([]models.Post, error) {
	f.limit = limit
	return f.posts, f.err
}

func (f *fakePostService) GetByUsernameAndSlug(_ context.Context, username, slug string) (*models.Post, error) {
	f.username = username
	f.slug = slug
	return f.post, f.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Meta    struct {
		Total  int64  `json:"total"`
		Limit  *int64 `json:"limit"`
		Offset *int64 `json:"offset"`
	} `json:"meta"`
}

func postRouter(fake *fakePostService) *gin.Engine {
	r := gin.New()
	routes.SetupPostRoutes(r.Group("/v1"), controllers.NewPostController(fake))
	return r
}

func doGet(t *testing.T, r *gin.Engine, url string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, body
}

func samplePost() models.Post {
	body := "hello world"
	return models.Post{
		ID:        uuid.New(),
		Title:     "Hello",
		Body:      &body,
		CreatedBy: uuid.New(),
		Slug:      "hello",
		Published: true,
		Creator:   models.User{ID: uuid.New(), Username: "alice"},
		Tags:      []models.Tag{},
	}
}

func TestGetPostsDefaults(t *testing.T) {
	c := qt.New(t)

	fake := &fakePostService{posts: []models.Post{samplePost()}, total: 42}
	w, body := doGet(t, postRouter(fake), "/v1/posts")

	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(body.Success, qt.IsTrue)
	c.Assert(body.Meta.Total, qt.Equals, int64(42))
	c.Assert(*body.Meta.Limit, qt.Equals, int64(10))
	c.Assert(*body.Meta.Offset, qt.Equals, int64(0))
	c.Assert(fake.listParams, qt.DeepEquals, services.ListParams{
		Offset:         0,
		Limit:          10,
		OrderDirection: services.Descending,
	})
}

func TestGetPostsPassesQuery(t *testing.T) {
	c := qt.New(t)

	fake := &fakePostService{}
	_, _ = doGet(t, postRouter(fake), "/v1/posts?offset=30&limit=5&search=go&orderBy=title&orderDirection=asc")

	c.Assert(fake.listParams, qt.DeepEquals, services.ListParams{
		Offset:         30,
		Limit:          5,
		Search:         "go",
		OrderBy:        "title",
		OrderDirection: services.Ascending,
	})
}

func TestGetPostsMalformedLimit(t *testing.T) {
	c := qt.New(t)

	w, body := doGet(t, postRouter(&fakePostService{}), "/v1/posts?limit=ten")

	c.Assert(w.Code, qt.Equals, http.StatusBadRequest)
	c.Assert(body.Success, qt.IsFalse)
	c.Assert(body.Error, qt.Not(qt.Equals), "")
}

func TestGetPostsServiceError(t *testing.T) {
	c := qt.New(t)

	fake := &fakePostService{err: errors.New("connection refused")}
	w, body := doGet(t, postRouter(fake), "/v1/posts")

	c.Assert(w.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(body.Success, qt.IsFalse)
	c.Assert(string(body.Data), qt.Equals, "null")
}

func TestGetPostsEmptyPageIsSuccess(t *testing.T) {
	c := qt.New(t)

	fake := &fakePostService{posts: []models.Post{}, total: 0}
	w, body := doGet(t, postRouter(fake), "/v1/posts/tag/nonexistent-tag")

	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(body.Success, qt.IsTrue)
	c.Assert(body.Meta.Total, qt.Equals, int64(0))
	c.Assert(string(body.Data), qt.Equals, "[]")
}

func TestGetRandomPosts(t *testing.T) {
	c := qt.New(t)

	fake := &fakePostService{posts: []models.Post{samplePost(), samplePost(), samplePost()}}
	w, body := doGet(t, postRouter(fake), "/v1/posts/random")

	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(fake.limit, qt.Equals, int64(6))
	// Total reflects what actually came back, not the requested size.
	c.Assert(body.Meta.Total, qt.Equals, int64(3))
	c.Assert(*body.Meta.Offset, qt.Equals, int64(0))
}

func TestGetPostsByTagPassesTag(t *testing.T) {
	c := qt.New(t)

	fake := &fakePostService{}
	_, _ = doGet(t, postRouter(fake), "/v1/posts/tag/rust?limit=3")

	c.Assert(fake.tagName, qt.Equals, "rust")
	c.Assert(fake.listParams.Limit, qt.Equals, int64(3))
}

func TestGetPostByUsernameAndSlug(t *testing.T) {
	c := qt.New(t)

	post := samplePost()
	fake := &fakePostService{post: &post}
	w, body := doGet(t, postRouter(fake), "/v1/posts/u/alice/hello")

	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(body.Success, qt.IsTrue)
	c.Assert(fake.username, qt.Equals, "alice")
	c.Assert(fake.slug, qt.Equals, "hello")

	var got models.Post
	c.Assert(json.Unmarshal(body.Data, &got), qt.IsNil)
	c.Assert(got.Slug, qt.Equals, "hello")
	c.Assert(got.Creator.Username, qt.Equals, "alice")
}

func TestGetPostByUsernameAndSlugNotFound(t *testing.T) {
	c := qt.New(t)

	fake := &fakePostService{err: services.ErrNotFound}
	w, body := doGet(t, postRouter(fake), "/v1/posts/u/alice/missing")

	c.Assert(w.Code, qt.Equals, http.StatusNotFound)
	c.Assert(body.Success, qt.IsFalse)
	c.Assert(body.Error, qt.Contains, "missing")
	c.Assert(string(body.Data), qt.Equals, "null")
}

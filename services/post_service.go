package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/slugline/blog-api/models"
	"gorm.io/gorm"
)

// PostService is the read side of the blog. Every operation returns
// published, non-deleted posts only, with the creator embedded and the
// tag set populated.
type PostService interface {
	ListAll(ctx context.Context, params ListParams) ([]models.Post, int64, error)
	ListByTag(ctx context.Context, tagName string, params ListParams) ([]models.Post, int64, error)
	RandomSample(ctx context.Context, limit int64) ([]models.Post, error)
	GetByUsernameAndSlug(ctx context.Context, username, slug string) (*models.Post, error)
}

type postService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) PostService {
	return &postService{db: db}
}

func (s *postService) ListAll(ctx context.Context, params ListParams) ([]models.Post, int64, error) {
	return s.runListQueries(ctx, buildListQueries(params))
}

func (s *postService) ListByTag(ctx context.Context, tagName string, params ListParams) ([]models.Post, int64, error) {
	return s.runListQueries(ctx, buildTagListQueries(tagName, params))
}

func (s *postService) RandomSample(ctx context.Context, limit int64) ([]models.Post, error) {
	if limit < 0 {
		limit = 0
	}

	var rows []postRow
	if err := s.db.WithContext(ctx).Raw(randomPostsSQL, limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch random posts: %w", err)
	}

	posts := mapPostRows(rows, true)
	if err := s.hydrateTags(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postService) GetByUsernameAndSlug(ctx context.Context, username, slug string) (*models.Post, error) {
	var rows []postRow
	if err := s.db.WithContext(ctx).Raw(postBySlugSQL, username, slug).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch post %s/%s: %w", username, slug, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	// Detail view keeps the full body.
	post := rows[0].toPost(false)

	var tagRows []postTagRow
	if err := s.db.WithContext(ctx).Raw(postTagsSQL, []uuid.UUID{post.ID}).Scan(&tagRows).Error; err != nil {
		return nil, fmt.Errorf("fetch tags for post %s: %w", post.ID, err)
	}
	post.Tags = make([]models.Tag, 0, len(tagRows))
	for _, r := range tagRows {
		post.Tags = append(post.Tags, r.tag())
	}

	return &post, nil
}

// runListQueries executes a count/data pair and hydrates tags for the
// returned page. The two round trips share no transaction; the total
// can lag the page under concurrent writes, which is fine for a
// reporting figure.
func (s *postService) runListQueries(ctx context.Context, q listQueries) ([]models.Post, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Raw(q.Count.SQL, q.Count.Args...).Scan(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	var rows []postRow
	if err := s.db.WithContext(ctx).Raw(q.Data.SQL, q.Data.Args...).Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("fetch posts: %w", err)
	}

	posts := mapPostRows(rows, true)
	if err := s.hydrateTags(ctx, posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// hydrateTags fills in the tag set for a page of posts with a single
// batched query instead of one query per post. A failure here fails
// the whole operation; callers never see a page with silently missing
// tags.
func (s *postService) hydrateTags(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(posts))
	seen := make(map[uuid.UUID]bool, len(posts))
	for _, p := range posts {
		if !seen[p.ID] {
			seen[p.ID] = true
			ids = append(ids, p.ID)
		}
	}

	var rows []postTagRow
	if err := s.db.WithContext(ctx).Raw(postTagsSQL, ids).Scan(&rows).Error; err != nil {
		return fmt.Errorf("fetch tags for posts: %w", err)
	}

	applyTags(posts, groupTagsByPost(rows))
	return nil
}

// postRow is the flat scan target for one joined post row. Columns
// bind by name, so a reordered SELECT cannot silently shift fields.
type postRow struct {
	ID              uuid.UUID
	Title           string
	Body            *string
	CreatedBy       uuid.UUID
	Slug            string
	PhotoURL        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
	Published       bool
	ViewCount       int64
	LikeCount       int64
	CreatorID       uuid.UUID
	CreatorUsername string
}

// bodyPreviewRunes is the list-view body cap, counted in runes.
const bodyPreviewRunes = 200

// toPost assembles the entity from a scanned row. With preview set the
// body is cut down for list views; tags start empty and are filled by
// hydration.
func (r postRow) toPost(preview bool) models.Post {
	body := r.Body
	if preview && body != nil {
		b := previewBody(*body)
		body = &b
	}

	return models.Post{
		ID:        r.ID,
		Title:     r.Title,
		Body:      body,
		CreatedBy: r.CreatedBy,
		Slug:      r.Slug,
		PhotoURL:  r.PhotoURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: r.DeletedAt,
		Published: r.Published,
		ViewCount: r.ViewCount,
		LikeCount: r.LikeCount,
		Creator: models.User{
			ID:       r.CreatorID,
			Username: r.CreatorUsername,
		},
		Tags: []models.Tag{},
	}
}

func mapPostRows(rows []postRow, preview bool) []models.Post {
	posts := make([]models.Post, len(rows))
	for i, row := range rows {
		posts[i] = row.toPost(preview)
	}
	return posts
}

// previewBody truncates to the first bodyPreviewRunes runes and marks
// the cut. Counting runes, not bytes, keeps multibyte text intact.
func previewBody(body string) string {
	runes := []rune(body)
	if len(runes) <= bodyPreviewRunes {
		return body
	}
	return string(runes[:bodyPreviewRunes]) + "..."
}

// postTagRow is one row of the batched tag query.
type postTagRow struct {
	PostID    uuid.UUID
	ID        int32
	Name      string
	CreatedAt *time.Time
}

func (r postTagRow) tag() models.Tag {
	return models.Tag{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}

func groupTagsByPost(rows []postTagRow) map[uuid.UUID][]models.Tag {
	byPost := make(map[uuid.UUID][]models.Tag)
	for _, r := range rows {
		byPost[r.PostID] = append(byPost[r.PostID], r.tag())
	}
	return byPost
}

// applyTags replaces each post's tag set from the mapping. Replacement
// rather than append keeps hydration idempotent; posts without tags
// get an empty, non-nil slice.
func applyTags(posts []models.Post, byPost map[uuid.UUID][]models.Tag) {
	for i := range posts {
		tags := byPost[posts[i].ID]
		if tags == nil {
			tags = []models.Tag{}
		}
		posts[i].Tags = tags
	}
}

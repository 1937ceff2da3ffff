package services

import (
	"context"
	"fmt"

	"github.com/slugline/blog-api/models"
	"gorm.io/gorm"
)

// TagService lists tags. Read only; tags are created elsewhere.
type TagService interface {
	ListAll(ctx context.Context) ([]models.Tag, error)
}

type tagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) TagService {
	return &tagService{db: db}
}

func (s *tagService) ListAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("fetch tags: %w", err)
	}
	return tags, nil
}

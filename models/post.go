package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string     `json:"title" gorm:"not null"`
	Body      *string    `json:"body" gorm:"type:text"`
	CreatedBy uuid.UUID  `json:"created_by" gorm:"type:uuid;not null;uniqueIndex:idx_posts_creator_slug"`
	Slug      string     `json:"slug" gorm:"not null;uniqueIndex:idx_posts_creator_slug"`
	PhotoURL  *string    `json:"photo_url"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
	Published bool       `json:"published" gorm:"not null;default:false"`
	ViewCount int64      `json:"view_count" gorm:"not null;default:0"`
	LikeCount int64      `json:"like_count" gorm:"not null;default:0"`
	Creator   User       `json:"creator" gorm:"foreignKey:CreatedBy"`
	Tags      []Tag      `json:"tags" gorm:"many2many:posts_to_tags"`
}

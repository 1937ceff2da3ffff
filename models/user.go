package models

import "github.com/google/uuid"

// User carries only what the post views embed. This service never
// fetches users on their own.
type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username string    `json:"username" gorm:"unique;not null"`
}

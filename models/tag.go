package models

import "time"

type Tag struct {
	ID        int32      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"unique;not null"`
	CreatedAt *time.Time `json:"created_at"`
}

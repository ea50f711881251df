package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserStats is the aggregate stats row, one per user, fully recomputed and
// upserted on every sync. The raw submission calendar is kept alongside so
// the dashboard can derive streak metrics without another judge call.
type UserStats struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	TotalSolved  int `json:"total_solved"`
	EasySolved   int `json:"easy_solved"`
	MediumSolved int `json:"medium_solved"`
	HardSolved   int `json:"hard_solved"`

	TotalAccuracy  float64 `json:"total_accuracy"`
	EasyAccuracy   float64 `json:"easy_accuracy"`
	MediumAccuracy float64 `json:"medium_accuracy"`
	HardAccuracy   float64 `json:"hard_accuracy"`

	SubmissionCalendar string            `gorm:"type:text" json:"submission_calendar"`
	TopicMastery       datatypes.JSONMap `gorm:"type:json" json:"topic_mastery"`
	TopicAccuracy      datatypes.JSONMap `gorm:"type:json" json:"topic_accuracy"`

	LastSynced time.Time `json:"last_synced"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

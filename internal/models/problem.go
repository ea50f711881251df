package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Problem is one entry of the scraped problem catalog. The scraper owns
// writes; this service only reads.
type Problem struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Slug       string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	Difficulty string         `gorm:"size:16" json:"difficulty"`
	Topics     datatypes.JSON `gorm:"type:json" json:"topics"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// TopicNames decodes the topic tag list. A missing or malformed column
// reads as no topics.
func (p Problem) TopicNames() []string {
	if len(p.Topics) == 0 {
		return nil
	}

	var topics []string
	if err := json.Unmarshal(p.Topics, &topics); err != nil {
		return nil
	}
	return topics
}

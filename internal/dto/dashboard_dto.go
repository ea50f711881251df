package dto

import (
	"time"

	"github.com/leetsync/leetsync-api/internal/stats"
	"github.com/leetsync/leetsync-api/pkg/ai"
)

// StatsBlock is the headline numbers section of the dashboard.
type StatsBlock struct {
	TotalSolved    int     `json:"total_solved"`
	EasySolved     int     `json:"easy_solved"`
	MediumSolved   int     `json:"medium_solved"`
	HardSolved     int     `json:"hard_solved"`
	TotalAccuracy  float64 `json:"total_accuracy"`
	EasyAccuracy   float64 `json:"easy_accuracy"`
	MediumAccuracy float64 `json:"medium_accuracy"`
	HardAccuracy   float64 `json:"hard_accuracy"`
}

// ActivityStats groups the calendar-derived metrics.
type ActivityStats struct {
	LongestStreak int     `json:"longestStreak"`
	AverageDaily  float64 `json:"averageDaily"`
	BestDayOfWeek string  `json:"bestDayOfWeek"`
	WeeklyTotal   int     `json:"weeklyTotal"`
}

// RecentProblem is one entry of the recent-activity list.
type RecentProblem struct {
	ProblemName      string    `json:"problem_name"`
	SubmissionStatus string    `json:"submission_status"`
	SolvedAt         time.Time `json:"solved_at"`
}

// DashboardResponse is the full dashboard payload.
type DashboardResponse struct {
	Stats           StatsBlock          `json:"stats"`
	TopicMastery    map[string]int      `json:"topicMastery"`
	TopicAccuracy   map[string]float64  `json:"topicAccuracy"`
	LeastMastery    map[string]int      `json:"leastMastery"`
	LeastAccuracy   map[string]float64  `json:"leastAccuracy"`
	StreakData      []stats.CalendarDay `json:"streakData"`
	ActivityStats   ActivityStats       `json:"activityStats"`
	Recommendations []ai.Recommendation `json:"recommendations"`
	RecentActivity  []RecentProblem     `json:"recentActivity"`
	LastSynced      *time.Time          `json:"lastSynced"`
}

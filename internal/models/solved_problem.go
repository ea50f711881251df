package models

import "time"

// SolvedProblem is one persisted judge submission. Rows are append-only;
// the sync pipeline deduplicates on (problem_id, solved_at) before
// inserting, so the table never sees the same event twice.
type SolvedProblem struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index:idx_solved_user" json:"user_id"`
	ProblemID        uint      `gorm:"not null" json:"problem_id"`
	ProblemName      string    `gorm:"size:255" json:"problem_name"`
	SolvedAt         time.Time `gorm:"not null" json:"solved_at"`
	SubmissionStatus string    `gorm:"size:32;not null" json:"submission_status"`
	CreatedAt        time.Time `json:"created_at"`
}

const (
	// SubmissionStatusAccepted marks a passing submission.
	SubmissionStatusAccepted = "Accepted"
	// SubmissionStatusNotAccepted marks any non-passing submission.
	SubmissionStatusNotAccepted = "Not Accepted"
)

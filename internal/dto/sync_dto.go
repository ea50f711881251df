package dto

// SyncSummary is returned to the caller after a sync run. The difficulty
// totals mirror the judge's own counters; the reconciliation counters
// describe what this run changed.
type SyncSummary struct {
	TotalSolved          int            `json:"totalSolved"`
	EasySolved           int            `json:"easySolved"`
	MediumSolved         int            `json:"mediumSolved"`
	HardSolved           int            `json:"hardSolved"`
	TopicMastery         map[string]int `json:"topicMastery"`
	SubmissionsProcessed int            `json:"submissionsProcessed"`
	NewSubmissions       int            `json:"newSubmissions"`
	DuplicatesSkipped    int            `json:"duplicatesSkipped"`
}

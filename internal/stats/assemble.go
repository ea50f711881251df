package stats

import (
	"time"

	"github.com/leetsync/leetsync-api/internal/leetcode"
)

// DifficultySummary carries the judge-sourced per-difficulty counters.
// Solve/attempt totals come from the judge's own submitStats block, never
// recomputed from the submission list.
type DifficultySummary struct {
	EasySolved   int
	MediumSolved int
	HardSolved   int

	EasyAccepted   int
	MediumAccepted int
	HardAccepted   int

	EasyAttempts   int
	MediumAttempts int
	HardAttempts   int
}

// TotalSolved sums the solved counts across difficulties.
func (d DifficultySummary) TotalSolved() int {
	return d.EasySolved + d.MediumSolved + d.HardSolved
}

// SummarizeDifficulty extracts the per-difficulty counters from the judge's
// submitStats payload. Missing difficulty rows read as zero.
func SummarizeDifficulty(submitStats leetcode.SubmitStats) DifficultySummary {
	ac := submitStats.ACSubmissionNum
	total := submitStats.TotalSubmissionNum

	return DifficultySummary{
		EasySolved:   leetcode.CountFor(ac, "Easy"),
		MediumSolved: leetcode.CountFor(ac, "Medium"),
		HardSolved:   leetcode.CountFor(ac, "Hard"),

		EasyAccepted:   leetcode.SubmissionsFor(ac, "Easy"),
		MediumAccepted: leetcode.SubmissionsFor(ac, "Medium"),
		HardAccepted:   leetcode.SubmissionsFor(ac, "Hard"),

		EasyAttempts:   leetcode.SubmissionsFor(total, "Easy"),
		MediumAttempts: leetcode.SubmissionsFor(total, "Medium"),
		HardAttempts:   leetcode.SubmissionsFor(total, "Hard"),
	}
}

// AggregateUserStats is the final output of one ingestion run. It is fully
// recomputed every run; only the submission write-set is incremental.
type AggregateUserStats struct {
	TotalSolved  int
	EasySolved   int
	MediumSolved int
	HardSolved   int

	TotalAccuracy  float64
	EasyAccuracy   float64
	MediumAccuracy float64
	HardAccuracy   float64

	TopicMastery  map[string]int
	TopicAccuracy map[string]float64

	LastSevenDays []CalendarDay
	LongestStreak int
	AverageDaily  float64
	BestWeekday   string
}

// AssembleUserStats composes the difficulty counters, the topic aggregation
// output and the streak metrics into one aggregate record. The accuracy
// formula (successes/attempts*100, 0 on a zero denominator) is applied
// uniformly across difficulty and topic buckets.
func AssembleUserStats(difficulty DifficultySummary, topics TopicAggregate, cal Calendar, today time.Time) AggregateUserStats {
	totalAccepted := difficulty.EasyAccepted + difficulty.MediumAccepted + difficulty.HardAccepted
	totalAttempts := difficulty.EasyAttempts + difficulty.MediumAttempts + difficulty.HardAttempts

	return AggregateUserStats{
		TotalSolved:  difficulty.TotalSolved(),
		EasySolved:   difficulty.EasySolved,
		MediumSolved: difficulty.MediumSolved,
		HardSolved:   difficulty.HardSolved,

		TotalAccuracy:  percentage(totalAccepted, totalAttempts),
		EasyAccuracy:   percentage(difficulty.EasyAccepted, difficulty.EasyAttempts),
		MediumAccuracy: percentage(difficulty.MediumAccepted, difficulty.MediumAttempts),
		HardAccuracy:   percentage(difficulty.HardAccepted, difficulty.HardAttempts),

		TopicMastery:  topics.Mastery,
		TopicAccuracy: topics.Accuracy,

		LastSevenDays: LastSevenDays(cal, today),
		LongestStreak: LongestStreak(cal),
		AverageDaily:  AverageDaily(cal),
		BestWeekday:   BestWeekday(cal),
	}
}

package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/leetsync/leetsync-api/internal/leetcode"
)

func TestSummarizeDifficulty(t *testing.T) {
	submitStats := leetcode.SubmitStats{
		ACSubmissionNum: []leetcode.DifficultyCount{
			{Difficulty: "All", Count: 15, Submissions: 20},
			{Difficulty: "Easy", Count: 10, Submissions: 12},
			{Difficulty: "Medium", Count: 4, Submissions: 6},
			{Difficulty: "Hard", Count: 1, Submissions: 2},
		},
		TotalSubmissionNum: []leetcode.DifficultyCount{
			{Difficulty: "Easy", Submissions: 16},
			{Difficulty: "Medium", Submissions: 12},
			{Difficulty: "Hard", Submissions: 8},
		},
	}

	summary := SummarizeDifficulty(submitStats)
	require.Equal(t, 10, summary.EasySolved)
	require.Equal(t, 4, summary.MediumSolved)
	require.Equal(t, 1, summary.HardSolved)
	require.Equal(t, 15, summary.TotalSolved())
	require.Equal(t, 12, summary.EasyAccepted)
	require.Equal(t, 16, summary.EasyAttempts)
}

func TestSummarizeDifficultyMissingRows(t *testing.T) {
	summary := SummarizeDifficulty(leetcode.SubmitStats{})
	require.Zero(t, summary.TotalSolved())
	require.Zero(t, summary.EasyAttempts)
}

func TestAssembleUserStatsAccuracy(t *testing.T) {
	difficulty := DifficultySummary{
		EasySolved: 10, MediumSolved: 4, HardSolved: 1,
		EasyAccepted: 12, MediumAccepted: 6, HardAccepted: 2,
		EasyAttempts: 16, MediumAttempts: 12, HardAttempts: 8,
	}
	topics := TopicAggregate{
		Mastery:  map[string]int{"Array": 3},
		Accuracy: map[string]float64{"Array": 75.0},
	}
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	aggregate := AssembleUserStats(difficulty, topics, Calendar{dayKey(9): 2}, today)
	require.Equal(t, 15, aggregate.TotalSolved)
	require.InDelta(t, 75.0, aggregate.EasyAccuracy, 1e-9)
	require.InDelta(t, 50.0, aggregate.MediumAccuracy, 1e-9)
	require.InDelta(t, 25.0, aggregate.HardAccuracy, 1e-9)
	// (12+6+2)/(16+12+8) = 20/36
	require.InDelta(t, 100.0*20.0/36.0, aggregate.TotalAccuracy, 1e-9)

	require.Equal(t, topics.Mastery, aggregate.TopicMastery)
	require.Equal(t, topics.Accuracy, aggregate.TopicAccuracy)
	require.Len(t, aggregate.LastSevenDays, 7)
	require.Equal(t, 2, aggregate.LastSevenDays[6].Count)
	require.Equal(t, 1, aggregate.LongestStreak)
	require.InDelta(t, 2.0, aggregate.AverageDaily, 1e-9)
}

func TestAssembleUserStatsZeroInputs(t *testing.T) {
	aggregate := AssembleUserStats(DifficultySummary{}, TopicAggregate{}, Calendar{}, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.Zero(t, aggregate.TotalSolved)
	require.Zero(t, aggregate.TotalAccuracy)
	require.Zero(t, aggregate.EasyAccuracy)
	require.Zero(t, aggregate.LongestStreak)
	require.Zero(t, aggregate.AverageDaily)
	require.Equal(t, DefaultWeekday, aggregate.BestWeekday)
	require.Len(t, aggregate.LastSevenDays, 7)
}

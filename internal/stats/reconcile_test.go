package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/leetsync/leetsync-api/internal/leetcode"
)

func TestNewSubmissionKeyFormat(t *testing.T) {
	solvedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, SubmissionKey("42_2024-01-01T00:00:00.000Z"), NewSubmissionKey(42, solvedAt))

	// Non-UTC instants normalize to the same key.
	jakarta := time.FixedZone("WIB", 7*3600)
	require.Equal(t,
		NewSubmissionKey(42, solvedAt),
		NewSubmissionKey(42, solvedAt.In(jakarta)))
}

func TestReconcileSkipsPersistedKeys(t *testing.T) {
	catalog := map[string]CatalogEntry{
		"two-sum": {ID: 42, Topics: []string{"Array"}},
	}
	day1 := leetcode.EpochMillis(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli())
	day2 := leetcode.EpochMillis(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).UnixMilli())
	submissions := []leetcode.RecentSubmission{
		{Title: "Two Sum", TitleSlug: "two-sum", Timestamp: day1, StatusDisplay: leetcode.StatusAccepted},
		{Title: "Two Sum", TitleSlug: "two-sum", Timestamp: day2, StatusDisplay: leetcode.StatusAccepted},
	}

	existing := KeySet{}
	existing.Add(SubmissionKey("42_2024-01-01T00:00:00.000Z"))

	result := Reconcile(7, submissions, catalog, existing)
	require.Len(t, result.Records, 1, "only the second-day solve is new")
	require.True(t, result.Records[0].SolvedAt.Equal(day2.Time()))
	require.Equal(t, 1, result.Duplicates)
	require.Zero(t, result.Unresolved)
}

func TestReconcileDeduplicatesWithinBatch(t *testing.T) {
	catalog := map[string]CatalogEntry{
		"two-sum": {ID: 42},
	}
	ts := leetcode.EpochMillis(time.Date(2024, 2, 3, 10, 30, 0, 0, time.UTC).UnixMilli())
	submission := leetcode.RecentSubmission{
		Title: "Two Sum", TitleSlug: "two-sum", Timestamp: ts, StatusDisplay: leetcode.StatusAccepted,
	}

	result := Reconcile(7, []leetcode.RecentSubmission{submission, submission}, catalog, KeySet{})
	require.Len(t, result.Records, 1)
	require.Equal(t, 1, result.Duplicates)
}

func TestReconcileIsIdempotent(t *testing.T) {
	catalog := map[string]CatalogEntry{
		"two-sum":       {ID: 42},
		"valid-anagram": {ID: 43},
	}
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	submissions := []leetcode.RecentSubmission{
		{Title: "Two Sum", TitleSlug: "two-sum", Timestamp: leetcode.EpochMillis(base.UnixMilli()), StatusDisplay: leetcode.StatusAccepted},
		{Title: "Valid Anagram", TitleSlug: "valid-anagram", Timestamp: leetcode.EpochMillis(base.Add(time.Hour).UnixMilli()), StatusDisplay: "Wrong Answer"},
	}

	existing := KeySet{}
	first := Reconcile(7, submissions, catalog, existing)
	require.Len(t, first.Records, 2)

	for _, record := range first.Records {
		existing.Add(NewSubmissionKey(record.ProblemID, record.SolvedAt))
	}

	second := Reconcile(7, submissions, catalog, existing)
	require.Empty(t, second.Records)
	require.Equal(t, 2, second.Duplicates)
}

func TestReconcileCountsUnresolved(t *testing.T) {
	catalog := map[string]CatalogEntry{
		"known": {ID: 1},
	}
	ts := leetcode.EpochMillis(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).UnixMilli())
	submissions := []leetcode.RecentSubmission{
		{TitleSlug: "known", Timestamp: ts, StatusDisplay: leetcode.StatusAccepted},
		{TitleSlug: "missing", Timestamp: ts, StatusDisplay: leetcode.StatusAccepted},
	}

	result := Reconcile(7, submissions, catalog, KeySet{})
	require.Len(t, result.Records, 1)
	require.Equal(t, 1, result.Unresolved)
	require.Zero(t, result.Duplicates)
}

func TestReconcileRecordFields(t *testing.T) {
	catalog := map[string]CatalogEntry{
		"two-sum": {ID: 42},
	}
	solvedAt := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	submissions := []leetcode.RecentSubmission{
		{Title: "Two Sum", TitleSlug: "two-sum", Timestamp: leetcode.EpochMillis(solvedAt.UnixMilli()), StatusDisplay: "Runtime Error"},
	}

	result := Reconcile(7, submissions, catalog, KeySet{})
	require.Len(t, result.Records, 1)

	record := result.Records[0]
	require.Equal(t, uint(7), record.UserID)
	require.Equal(t, uint(42), record.ProblemID)
	require.Equal(t, "Two Sum", record.ProblemName)
	require.Equal(t, "Not Accepted", record.Status)
	require.True(t, record.SolvedAt.Equal(solvedAt))
}

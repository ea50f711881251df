package stats

import (
	"fmt"
	"time"

	"github.com/leetsync/leetsync-api/internal/leetcode"
)

// isoInstantLayout matches the canonical instant form used for stored
// submission keys (millisecond precision, Z suffix).
const isoInstantLayout = "2006-01-02T15:04:05.000Z"

// SubmissionKey is the dedup identity of a persisted submission: problem ID
// plus the canonical ISO instant of the solve.
type SubmissionKey string

// NewSubmissionKey builds the composite key for a problem/instant pair.
func NewSubmissionKey(problemID uint, solvedAt time.Time) SubmissionKey {
	return SubmissionKey(fmt.Sprintf("%d_%s", problemID, solvedAt.UTC().Format(isoInstantLayout)))
}

// KeySet is the set of submission keys already persisted for a user.
type KeySet map[SubmissionKey]struct{}

// Add inserts a key into the set.
func (s KeySet) Add(key SubmissionKey) {
	s[key] = struct{}{}
}

// Contains reports whether the key is present.
func (s KeySet) Contains(key SubmissionKey) bool {
	_, ok := s[key]
	return ok
}

// ReconciledRecord is one new submission ready to be persisted.
type ReconciledRecord struct {
	UserID      uint
	ProblemID   uint
	ProblemName string
	SolvedAt    time.Time
	Status      string
}

// ReconcileResult is the incremental write-set plus its bookkeeping.
type ReconcileResult struct {
	// Records holds only submissions not already persisted.
	Records []ReconciledRecord
	// Duplicates counts submissions whose key was already present, either
	// in the existing set or earlier in the same batch.
	Duplicates int
	// Unresolved counts submissions dropped because their slug has no
	// catalog entry; they cannot be keyed without a problem ID.
	Unresolved int
}

// Reconcile computes the minimal incremental write-set for the new
// submissions against the user's already-persisted keys. The existing set
// is not mutated; a working copy guards against two identical submissions
// inside the same batch. Running Reconcile again with the emitted keys
// folded into the existing set yields an empty write-set.
func Reconcile(userID uint, submissions []leetcode.RecentSubmission, catalog map[string]CatalogEntry, existing KeySet) ReconcileResult {
	working := make(KeySet, len(existing)+len(submissions))
	for key := range existing {
		working.Add(key)
	}

	result := ReconcileResult{}
	for _, submission := range submissions {
		entry, ok := catalog[submission.TitleSlug]
		if !ok || entry.ID == 0 {
			result.Unresolved++
			continue
		}

		solvedAt := submission.Timestamp.Time()
		key := NewSubmissionKey(entry.ID, solvedAt)
		if working.Contains(key) {
			result.Duplicates++
			continue
		}
		working.Add(key)

		status := "Not Accepted"
		if submission.Accepted() {
			status = leetcode.StatusAccepted
		}

		result.Records = append(result.Records, ReconciledRecord{
			UserID:      userID,
			ProblemID:   entry.ID,
			ProblemName: submission.Title,
			SolvedAt:    solvedAt,
			Status:      status,
		})
	}

	return result
}

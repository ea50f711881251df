// Package stats implements the submission reconciliation and mastery
// aggregation pipeline: calendar parsing, streak analysis, per-topic
// aggregation, write-set reconciliation and final stats assembly. All
// functions are pure; external capabilities are injected.
package stats

import (
	"encoding/json"
	"strconv"

	"github.com/leetsync/leetsync-api/internal/leetcode"
)

// Calendar maps second-based epoch timestamps (string keys, as the judge
// serialises them) to submission counts for that day.
type Calendar map[string]int

// ParseSubmissionCalendar normalizes the judge's sparse activity calendar.
// An absent or malformed encoding yields an empty calendar rather than an
// error; downstream consumers treat "no data" and "bad data" identically
// and produce zeroed statistics.
func ParseSubmissionCalendar(raw string) Calendar {
	if raw == "" {
		return Calendar{}
	}

	var parsed Calendar
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Calendar{}
	}
	if parsed == nil {
		return Calendar{}
	}

	return parsed
}

// parseKey interprets a calendar key as a second-based epoch timestamp.
func parseKey(key string) (leetcode.EpochSeconds, bool) {
	value, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, false
	}
	return leetcode.EpochSeconds(value), true
}

package leetcode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// The judge mixes epoch units across its payload: the submission calendar
// keys are seconds, the recent submission list carries milliseconds. The
// two types below keep the unit attached to the value so a conversion is
// always explicit.

// EpochSeconds is a second-based unix timestamp.
type EpochSeconds int64

// Time converts the timestamp to UTC wall-clock time.
func (e EpochSeconds) Time() time.Time {
	return time.Unix(int64(e), 0).UTC()
}

// DayIndex returns the whole-day index since the unix epoch.
func (e EpochSeconds) DayIndex() int64 {
	return int64(e) / 86400
}

// EpochMillis is a millisecond-based unix timestamp.
type EpochMillis int64

// Time converts the timestamp to UTC wall-clock time.
func (e EpochMillis) Time() time.Time {
	return time.UnixMilli(int64(e)).UTC()
}

// UnmarshalJSON accepts both numeric and string-encoded timestamps; the
// judge serialises submission timestamps as strings.
func (e *EpochMillis) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*e = 0
		return nil
	}

	value, err := strconv.ParseInt(string(trimmed), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid epoch millis %q: %w", string(data), err)
	}

	*e = EpochMillis(value)
	return nil
}

// StatusAccepted is the judge's display status for an accepted submission.
const StatusAccepted = "Accepted"

// RecentSubmission is one entry of the judge's recent submission list.
type RecentSubmission struct {
	Title         string      `json:"title"`
	TitleSlug     string      `json:"titleSlug"`
	Timestamp     EpochMillis `json:"timestamp"`
	StatusDisplay string      `json:"statusDisplay"`
}

// Accepted reports whether the submission passed.
func (s RecentSubmission) Accepted() bool {
	return s.StatusDisplay == StatusAccepted
}

// DifficultyCount is one per-difficulty counter pair from submitStats.
type DifficultyCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

// SubmitStats holds the judge's own per-difficulty counters.
type SubmitStats struct {
	ACSubmissionNum    []DifficultyCount `json:"acSubmissionNum"`
	TotalSubmissionNum []DifficultyCount `json:"totalSubmissionNum"`
}

// MatchedUser is the profile fragment of the judge response.
type MatchedUser struct {
	SubmitStats        SubmitStats `json:"submitStats"`
	SubmissionCalendar string      `json:"submissionCalendar"`
}

// UserData bundles everything one sync run needs from the judge.
type UserData struct {
	MatchedUser          MatchedUser        `json:"matchedUser"`
	RecentSubmissionList []RecentSubmission `json:"recentSubmissionList"`
}

// CountFor returns the count field for the given difficulty, 0 when absent.
func CountFor(counts []DifficultyCount, difficulty string) int {
	for _, c := range counts {
		if c.Difficulty == difficulty {
			return c.Count
		}
	}
	return 0
}

// SubmissionsFor returns the submissions field for the given difficulty, 0 when absent.
func SubmissionsFor(counts []DifficultyCount, difficulty string) int {
	for _, c := range counts {
		if c.Difficulty == difficulty {
			return c.Submissions
		}
	}
	return 0
}

// decode helper shared by the client's GraphQL responses.
type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultEndpoint = "https://leetcode.com/graphql"

const profileQuery = `
query userCompleteData($username: String!) {
  matchedUser(username: $username) {
    submitStats {
      acSubmissionNum { difficulty count submissions }
      totalSubmissionNum { difficulty count submissions }
    }
    submissionCalendar
  }
}`

const submissionListQuery = `
query recentSubmissions($username: String!, $limit: Int!) {
  recentSubmissionList(username: $username, limit: $limit) {
    title
    titleSlug
    timestamp
    statusDisplay
  }
}`

// Fetcher is the capability the sync pipeline needs from the judge.
type Fetcher interface {
	FetchUserData(ctx context.Context, username, sessionCookie string) (UserData, error)
}

// Config customises the judge client.
type Config struct {
	Endpoint        string
	Timeout         time.Duration
	SubmissionLimit int
	Logger          zerolog.Logger
}

// Client talks to the judge's GraphQL endpoint.
type Client struct {
	endpoint        string
	submissionLimit int
	httpClient      *http.Client
	logger          zerolog.Logger
}

// NewClient builds a judge client with sane defaults.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.SubmissionLimit <= 0 {
		cfg.SubmissionLimit = 1000
	}

	return &Client{
		endpoint:        cfg.Endpoint,
		submissionLimit: cfg.SubmissionLimit,
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		logger:          cfg.Logger.With().Str("component", "leetcode_client").Logger(),
	}
}

// FetchUserData retrieves the profile counters, the submission calendar and
// the recent submission list for the given user. A failure on the submission
// list degrades to an empty list; a failure on the profile is an error
// because nothing downstream can be computed without it.
func (c *Client) FetchUserData(ctx context.Context, username, sessionCookie string) (UserData, error) {
	var profile struct {
		MatchedUser MatchedUser `json:"matchedUser"`
	}

	if err := c.query(ctx, sessionCookie, profileQuery, map[string]any{"username": username}, &profile); err != nil {
		return UserData{}, fmt.Errorf("fetch profile for %s: %w", username, err)
	}

	var submissions struct {
		RecentSubmissionList []RecentSubmission `json:"recentSubmissionList"`
	}

	variables := map[string]any{"username": username, "limit": c.submissionLimit}
	if err := c.query(ctx, sessionCookie, submissionListQuery, variables, &submissions); err != nil {
		c.logger.Warn().Err(err).Str("username", username).Msg("failed to fetch submission list, continuing with empty list")
		submissions.RecentSubmissionList = nil
	}

	return UserData{
		MatchedUser:          profile.MatchedUser,
		RecentSubmissionList: submissions.RecentSubmissionList,
	}, nil
}

func (c *Client) query(ctx context.Context, sessionCookie, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build graphql request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")
	if sessionCookie != "" {
		req.Header.Set("Cookie", fmt.Sprintf("LEETCODE_SESSION=%s", sessionCookie))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graphql request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graphql endpoint returned status %d", resp.StatusCode)
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/leetsync/leetsync-api/internal/dto"
	"github.com/leetsync/leetsync-api/internal/leetcode"
	"github.com/leetsync/leetsync-api/internal/models"
	"github.com/leetsync/leetsync-api/internal/observability"
	"github.com/leetsync/leetsync-api/internal/repository"
	"github.com/leetsync/leetsync-api/internal/stats"
)

var (
	// ErrProfileNotFound indicates the user has no profile row.
	ErrProfileNotFound = errors.New("user profile not found")
	// ErrNotLinked indicates the profile has no LeetCode username or session cookie.
	ErrNotLinked = errors.New("leetcode account not linked")
	// ErrJudgeUnavailable indicates the judge data could not be fetched.
	ErrJudgeUnavailable = errors.New("failed to fetch leetcode data")
	// ErrStatsUpsertFailed indicates the aggregate stats write was rejected.
	// Nothing has been persisted when this is returned.
	ErrStatsUpsertFailed = errors.New("failed to update user stats")
	// ErrSubmissionInsertFailed indicates the stats row landed but the
	// submission write-set did not. The returned summary is still valid.
	ErrSubmissionInsertFailed = errors.New("failed to insert solved problems")
)

// SyncService ingests a user's judge history and persists the derived
// analytics.
type SyncService interface {
	Sync(ctx context.Context, userID uint) (dto.SyncSummary, error)
}

type syncService struct {
	profiles repository.UserProfileRepository
	problems repository.ProblemRepository
	solved   repository.SolvedProblemRepository
	stats    repository.StatsRepository
	judge    leetcode.Fetcher
	logger   zerolog.Logger
	now      func() time.Time

	// The engine assumes single-writer semantics per user; overlapping
	// runs for the same user would race on the existing-key set.
	mu        sync.Mutex
	userLocks map[uint]*sync.Mutex
}

// NewSyncService builds the sync orchestrator.
func NewSyncService(
	profiles repository.UserProfileRepository,
	problems repository.ProblemRepository,
	solved repository.SolvedProblemRepository,
	statsRepo repository.StatsRepository,
	judge leetcode.Fetcher,
	logger zerolog.Logger,
) SyncService {
	return &syncService{
		profiles:  profiles,
		problems:  problems,
		solved:    solved,
		stats:     statsRepo,
		judge:     judge,
		logger:    logger.With().Str("component", "sync_service").Logger(),
		now:       time.Now,
		userLocks: map[uint]*sync.Mutex{},
	}
}

func (s *syncService) Sync(ctx context.Context, userID uint) (dto.SyncSummary, error) {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	start := time.Now()
	summary, err := s.sync(ctx, userID)
	outcome := outcomeLabel(err)
	observability.SyncRuns().WithLabelValues(outcome).Inc()
	observability.SyncDuration().WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return summary, err
}

func (s *syncService) sync(ctx context.Context, userID uint) (dto.SyncSummary, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SyncSummary{}, ErrProfileNotFound
		}
		return dto.SyncSummary{}, fmt.Errorf("load profile: %w", err)
	}

	if !profile.Linked() {
		return dto.SyncSummary{}, ErrNotLinked
	}

	data, err := s.judge.FetchUserData(ctx, profile.LeetcodeUsername, profile.LeetcodeSessionCookie)
	if err != nil {
		return dto.SyncSummary{}, fmt.Errorf("%w: %v", ErrJudgeUnavailable, err)
	}

	submissions := data.RecentSubmissionList
	s.logger.Info().
		Uint("user_id", userID).
		Int("submissions", len(submissions)).
		Msg("processing judge submissions")

	catalog, err := s.resolveCatalog(ctx, submissions)
	if err != nil {
		return dto.SyncSummary{}, fmt.Errorf("resolve catalog: %w", err)
	}

	topics, err := stats.AggregateTopics(ctx, submissions, catalog)
	if err != nil {
		return dto.SyncSummary{}, fmt.Errorf("aggregate topics: %w", err)
	}

	difficulty := stats.SummarizeDifficulty(data.MatchedUser.SubmitStats)
	calendar := stats.ParseSubmissionCalendar(data.MatchedUser.SubmissionCalendar)
	aggregate := stats.AssembleUserStats(difficulty, topics, calendar, s.now())

	row := s.buildStatsRow(userID, data.MatchedUser.SubmissionCalendar, aggregate)
	if err := s.stats.Upsert(ctx, &row); err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("stats upsert rejected")
		return dto.SyncSummary{}, fmt.Errorf("%w: %v", ErrStatsUpsertFailed, err)
	}

	summary := dto.SyncSummary{
		TotalSolved:          aggregate.TotalSolved,
		EasySolved:           aggregate.EasySolved,
		MediumSolved:         aggregate.MediumSolved,
		HardSolved:           aggregate.HardSolved,
		TopicMastery:         aggregate.TopicMastery,
		SubmissionsProcessed: len(submissions),
	}

	existing, err := s.existingKeys(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("failed to load existing submission keys")
		return summary, fmt.Errorf("%w: %v", ErrSubmissionInsertFailed, err)
	}

	result := stats.Reconcile(userID, submissions, catalog, existing)
	observability.SyncSubmissions().WithLabelValues("new").Add(float64(len(result.Records)))
	observability.SyncSubmissions().WithLabelValues("duplicate").Add(float64(result.Duplicates))
	observability.SyncSubmissions().WithLabelValues("unresolved").Add(float64(result.Unresolved))

	summary.NewSubmissions = len(result.Records)
	summary.DuplicatesSkipped = result.Duplicates

	if err := s.solved.BulkInsert(ctx, toSolvedProblems(result.Records)); err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("submission insert rejected")
		return summary, fmt.Errorf("%w: %v", ErrSubmissionInsertFailed, err)
	}

	s.logger.Info().
		Uint("user_id", userID).
		Int("new", len(result.Records)).
		Int("duplicates", result.Duplicates).
		Int("unresolved", result.Unresolved).
		Msg("sync completed")

	return summary, nil
}

// resolveCatalog batches the distinct slugs of the run into one catalog
// query and serves both topic aggregation and reconciliation from it.
func (s *syncService) resolveCatalog(ctx context.Context, submissions []leetcode.RecentSubmission) (stats.StaticCatalog, error) {
	seen := map[string]struct{}{}
	slugs := make([]string, 0, len(submissions))
	for _, submission := range submissions {
		if submission.TitleSlug == "" {
			continue
		}
		if _, ok := seen[submission.TitleSlug]; ok {
			continue
		}
		seen[submission.TitleSlug] = struct{}{}
		slugs = append(slugs, submission.TitleSlug)
	}

	problems, err := s.problems.ListBySlugs(ctx, slugs)
	if err != nil {
		return nil, err
	}

	catalog := make(stats.StaticCatalog, len(problems))
	for _, problem := range problems {
		catalog[problem.Slug] = stats.CatalogEntry{
			ID:     problem.ID,
			Topics: problem.TopicNames(),
		}
	}

	return catalog, nil
}

func (s *syncService) existingKeys(ctx context.Context, userID uint) (stats.KeySet, error) {
	records, err := s.solved.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	keys := make(stats.KeySet, len(records))
	for _, record := range records {
		keys.Add(stats.NewSubmissionKey(record.ProblemID, record.SolvedAt))
	}

	return keys, nil
}

func (s *syncService) buildStatsRow(userID uint, rawCalendar string, aggregate stats.AggregateUserStats) models.UserStats {
	return models.UserStats{
		UserID:             userID,
		TotalSolved:        aggregate.TotalSolved,
		EasySolved:         aggregate.EasySolved,
		MediumSolved:       aggregate.MediumSolved,
		HardSolved:         aggregate.HardSolved,
		TotalAccuracy:      aggregate.TotalAccuracy,
		EasyAccuracy:       aggregate.EasyAccuracy,
		MediumAccuracy:     aggregate.MediumAccuracy,
		HardAccuracy:       aggregate.HardAccuracy,
		SubmissionCalendar: rawCalendar,
		TopicMastery:       intMapToJSON(aggregate.TopicMastery),
		TopicAccuracy:      floatMapToJSON(aggregate.TopicAccuracy),
		LastSynced:         s.now().UTC(),
	}
}

func (s *syncService) lockFor(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

func toSolvedProblems(records []stats.ReconciledRecord) []models.SolvedProblem {
	if len(records) == 0 {
		return nil
	}

	out := make([]models.SolvedProblem, 0, len(records))
	for _, record := range records {
		out = append(out, models.SolvedProblem{
			UserID:           record.UserID,
			ProblemID:        record.ProblemID,
			ProblemName:      record.ProblemName,
			SolvedAt:         record.SolvedAt,
			SubmissionStatus: record.Status,
		})
	}
	return out
}

func intMapToJSON(values map[string]int) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(values))
	for key, value := range values {
		out[key] = value
	}
	return out
}

func floatMapToJSON(values map[string]float64) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(values))
	for key, value := range values {
		out[key] = value
	}
	return out
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrSubmissionInsertFailed):
		return "partial"
	default:
		return "failure"
	}
}

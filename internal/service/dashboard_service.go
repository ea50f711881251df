package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/leetsync/leetsync-api/internal/dto"
	"github.com/leetsync/leetsync-api/internal/models"
	"github.com/leetsync/leetsync-api/internal/repository"
	"github.com/leetsync/leetsync-api/internal/stats"
	"github.com/leetsync/leetsync-api/pkg/ai"
)

const topicDisplayLimit = 5

// DashboardService produces the aggregated dashboard payload.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID uint) (dto.DashboardResponse, error)
}

type dashboardService struct {
	stats     repository.StatsRepository
	solved    repository.SolvedProblemRepository
	generator ai.Generator
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewDashboardService builds the dashboard aggregator. The AI generator may
// be nil; recommendations then fall back to the static list.
func NewDashboardService(statsRepo repository.StatsRepository, solved repository.SolvedProblemRepository, generator ai.Generator, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		stats:     statsRepo,
		solved:    solved,
		generator: generator,
		cache:     cache,
		cacheTTL:  ttl,
		logger:    logger.With().Str("component", "dashboard_service").Logger(),
		now:       time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID uint) (dto.DashboardResponse, error) {
	cacheKey := fmt.Sprintf("dashboard:user:%d", userID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.DashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Uint("user_id", userID).Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	row, err := s.stats.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DashboardResponse{}, fmt.Errorf("load user stats: %w", err)
		}
		// Never synced; every section degrades to its zero value.
	}

	recent, err := s.solved.RecentAccepted(ctx, userID, topicDisplayLimit)
	if err != nil {
		s.logger.Warn().Err(err).Uint("user_id", userID).Msg("failed to load recent problems")
		recent = nil
	}

	response := s.buildResponse(ctx, row.UserID != 0, row, recent)

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

func (s *dashboardService) buildResponse(ctx context.Context, synced bool, row models.UserStats, recent []models.SolvedProblem) dto.DashboardResponse {
	calendar := stats.ParseSubmissionCalendar(row.SubmissionCalendar)
	window := stats.LastSevenDays(calendar, s.now())

	weeklyTotal := 0
	for _, day := range window {
		weeklyTotal += day.Count
	}

	mastery := jsonMapToInt(row.TopicMastery)
	accuracy := jsonMapToFloat(row.TopicAccuracy)
	leastMastery := leastIntTopics(mastery, topicDisplayLimit)
	leastAccuracy := leastFloatTopics(accuracy, topicDisplayLimit)

	recentActivity := make([]dto.RecentProblem, 0, len(recent))
	for _, record := range recent {
		recentActivity = append(recentActivity, dto.RecentProblem{
			ProblemName:      record.ProblemName,
			SubmissionStatus: record.SubmissionStatus,
			SolvedAt:         record.SolvedAt,
		})
	}

	var lastSynced *time.Time
	if synced && !row.LastSynced.IsZero() {
		ts := row.LastSynced
		lastSynced = &ts
	}

	return dto.DashboardResponse{
		Stats: dto.StatsBlock{
			TotalSolved:    row.TotalSolved,
			EasySolved:     row.EasySolved,
			MediumSolved:   row.MediumSolved,
			HardSolved:     row.HardSolved,
			TotalAccuracy:  roundOneDecimal(row.TotalAccuracy),
			EasyAccuracy:   roundOneDecimal(row.EasyAccuracy),
			MediumAccuracy: roundOneDecimal(row.MediumAccuracy),
			HardAccuracy:   roundOneDecimal(row.HardAccuracy),
		},
		TopicMastery:  topIntTopics(mastery, topicDisplayLimit),
		TopicAccuracy: topFloatTopics(accuracy, topicDisplayLimit),
		LeastMastery:  leastMastery,
		LeastAccuracy: leastAccuracy,
		StreakData:    window,
		ActivityStats: dto.ActivityStats{
			LongestStreak: stats.LongestStreak(calendar),
			AverageDaily:  stats.AverageDaily(calendar),
			BestDayOfWeek: stats.BestWeekday(calendar),
			WeeklyTotal:   weeklyTotal,
		},
		Recommendations: s.recommendations(ctx, row, leastMastery, leastAccuracy, recentActivity),
		RecentActivity:  recentActivity,
		LastSynced:      lastSynced,
	}
}

func (s *dashboardService) recommendations(ctx context.Context, row models.UserStats, leastMastery map[string]int, leastAccuracy map[string]float64, recent []dto.RecentProblem) []ai.Recommendation {
	if s.generator == nil {
		return ai.FallbackRecommendations()
	}

	names := make([]string, 0, len(recent))
	for _, problem := range recent {
		names = append(names, problem.ProblemName)
	}

	input := ai.RecommendationInput{
		TotalSolved:     row.TotalSolved,
		EasySolved:      row.EasySolved,
		MediumSolved:    row.MediumSolved,
		HardSolved:      row.HardSolved,
		TotalAccuracy:   row.TotalAccuracy,
		WeakestMastery:  sortedKeys(leastMastery),
		WeakestAccuracy: sortedFloatKeys(leastAccuracy),
		RecentProblems:  names,
	}

	recommendations, err := s.generator.Generate(ctx, input)
	if err != nil {
		s.logger.Warn().Err(err).Msg("recommendation generation failed, using fallback")
		return ai.FallbackRecommendations()
	}

	return recommendations
}

// topIntTopics returns the highest-valued topics, at most limit of them.
func topIntTopics(topics map[string]int, limit int) map[string]int {
	keys := sortedByValueDesc(topics)
	out := make(map[string]int, limit)
	for i, key := range keys {
		if i >= limit {
			break
		}
		out[key] = topics[key]
	}
	return out
}

func topFloatTopics(topics map[string]float64, limit int) map[string]float64 {
	keys := sortedByFloatValueDesc(topics)
	out := make(map[string]float64, limit)
	for i, key := range keys {
		if i >= limit {
			break
		}
		out[key] = topics[key]
	}
	return out
}

// leastIntTopics returns the lowest-valued topics with some activity.
func leastIntTopics(topics map[string]int, limit int) map[string]int {
	keys := sortedByValueDesc(topics)
	out := make(map[string]int, limit)
	for i := len(keys) - 1; i >= 0 && len(out) < limit; i-- {
		if topics[keys[i]] > 0 {
			out[keys[i]] = topics[keys[i]]
		}
	}
	return out
}

func leastFloatTopics(topics map[string]float64, limit int) map[string]float64 {
	keys := sortedByFloatValueDesc(topics)
	out := make(map[string]float64, limit)
	for i := len(keys) - 1; i >= 0 && len(out) < limit; i-- {
		if topics[keys[i]] > 0 {
			out[keys[i]] = topics[keys[i]]
		}
	}
	return out
}

func sortedByValueDesc(topics map[string]int) []string {
	keys := make([]string, 0, len(topics))
	for key := range topics {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if topics[keys[i]] != topics[keys[j]] {
			return topics[keys[i]] > topics[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func sortedByFloatValueDesc(topics map[string]float64) []string {
	keys := make([]string, 0, len(topics))
	for key := range topics {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if topics[keys[i]] != topics[keys[j]] {
			return topics[keys[i]] > topics[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func sortedKeys(topics map[string]int) []string {
	keys := make([]string, 0, len(topics))
	for key := range topics {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedFloatKeys(topics map[string]float64) []string {
	keys := make([]string, 0, len(topics))
	for key := range topics {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func jsonMapToInt(values datatypes.JSONMap) map[string]int {
	out := make(map[string]int, len(values))
	for key, value := range values {
		switch v := value.(type) {
		case int:
			out[key] = v
		case int64:
			out[key] = int(v)
		case float64:
			out[key] = int(v)
		case json.Number:
			if parsed, err := v.Int64(); err == nil {
				out[key] = int(parsed)
			}
		}
	}
	return out
}

func jsonMapToFloat(values datatypes.JSONMap) map[string]float64 {
	out := make(map[string]float64, len(values))
	for key, value := range values {
		switch v := value.(type) {
		case float64:
			out[key] = v
		case int:
			out[key] = float64(v)
		case int64:
			out[key] = float64(v)
		case json.Number:
			if parsed, err := v.Float64(); err == nil {
				out[key] = parsed
			}
		}
	}
	return out
}

func roundOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}

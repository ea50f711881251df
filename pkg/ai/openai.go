package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	aiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "leetsync",
		Subsystem: "ai",
		Name:      "recommendation_duration_seconds",
		Help:      "Duration of AI recommendation requests",
	}, []string{"model"})

	aiFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leetsync",
		Subsystem: "ai",
		Name:      "recommendation_failures_total",
		Help:      "Number of AI recommendation failures",
	}, []string{"model"})
)

// OpenAIConfig defines configuration options for the OpenAI generator.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	Logger      zerolog.Logger
}

// OpenAIGenerator implements Generator against the OpenAI chat completion API.
type OpenAIGenerator struct {
	client *openai.Client
	cfg    OpenAIConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewOpenAIGenerator builds a new generator using the provided configuration.
func NewOpenAIGenerator(cfg OpenAIConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 500
	}

	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}

	tracer := otel.Tracer("github.com/leetsync/leetsync-api/pkg/ai/openai")
	logger := cfg.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	config := openai.DefaultConfig(cfg.APIKey)
	client := openai.NewClientWithConfig(config)

	return &OpenAIGenerator{
		client: client,
		cfg:    cfg,
		tracer: tracer,
		logger: logger,
	}, nil
}

// Generate asks the model for study recommendations and parses the response.
func (g *OpenAIGenerator) Generate(parent context.Context, input RecommendationInput) ([]Recommendation, error) {
	ctx, span := g.tracer.Start(parent, "openai.recommendations", trace.WithAttributes(
		attribute.String("model", g.cfg.Model),
	))
	defer span.End()

	start := time.Now()
	request := openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: mentorSystemPrompt(),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildMentorPrompt(input),
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, request)
	duration := time.Since(start)
	aiDuration.WithLabelValues(g.cfg.Model).Observe(duration.Seconds())
	if err != nil {
		aiFailures.WithLabelValues(g.cfg.Model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("openai recommendations: %w", err)
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("no choices returned from openai")
		aiFailures.WithLabelValues(g.cfg.Model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	recommendations, err := parseRecommendationResponse(content)
	if err != nil {
		aiFailures.WithLabelValues(g.cfg.Model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return recommendations, nil
}

func mentorSystemPrompt() string {
	return "You are a DSA (Data Structures & Algorithms) mentor analyzing a user's LeetCode performance. " +
		"Respond with a JSON array of exactly 3 recommendations, each with title, message, priority and icon fields. " +
		"Give 2 recommendations on topics with low mastery and 1 on topics with high mastery, suggesting problems for each. " +
		"Keep messages concise (max 80 characters), actionable, and encouraging. " +
		"Use these icons: 🎯📚⚡🔥💪🏆📈🎖️👑📅"
}

func buildMentorPrompt(input RecommendationInput) string {
	builder := strings.Builder{}
	builder.WriteString("User Performance Data:\n")
	fmt.Fprintf(&builder, "- Total Solved: %d (Easy: %d, Medium: %d, Hard: %d)\n",
		input.TotalSolved, input.EasySolved, input.MediumSolved, input.HardSolved)
	fmt.Fprintf(&builder, "- Accuracy: %.1f%% overall\n", input.TotalAccuracy)
	fmt.Fprintf(&builder, "- Weakest Topics (Mastery): %s\n", joinOrNone(input.WeakestMastery))
	fmt.Fprintf(&builder, "- Weakest Topics (Accuracy): %s\n", joinOrNone(input.WeakestAccuracy))
	fmt.Fprintf(&builder, "- Recent Problems: %s\n", joinOrNone(input.RecentProblems))
	builder.WriteString("Return JSON.")
	return builder.String()
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}

func parseRecommendationResponse(content string) ([]Recommendation, error) {
	var recommendations []Recommendation
	if err := json.Unmarshal([]byte(content), &recommendations); err != nil {
		return nil, fmt.Errorf("parse recommendations json: %w", err)
	}

	if len(recommendations) == 0 {
		return nil, fmt.Errorf("empty recommendations list")
	}

	return recommendations, nil
}

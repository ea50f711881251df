package ai

import "context"

// RecommendationInput summarises a user's performance for the mentor prompt.
type RecommendationInput struct {
	TotalSolved     int
	EasySolved      int
	MediumSolved    int
	HardSolved      int
	TotalAccuracy   float64
	WeakestMastery  []string
	WeakestAccuracy []string
	RecentProblems  []string
}

// Recommendation is one study suggestion shown on the dashboard.
type Recommendation struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
	Icon     string `json:"icon"`
}

// Generator describes an AI model capable of producing study recommendations.
type Generator interface {
	Generate(ctx context.Context, input RecommendationInput) ([]Recommendation, error)
}

// FallbackRecommendations is shown whenever generation fails or no
// generator is configured.
func FallbackRecommendations() []Recommendation {
	return []Recommendation{
		{
			Title:    "Keep Practicing",
			Message:  "Consistency is key! Solve at least 1 problem daily.",
			Priority: "medium",
			Icon:     "💪",
		},
	}
}

package ai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRecommendationResponse(t *testing.T) {
	content := `[
		{"title": "Drill Graphs", "message": "Try Course Schedule next", "priority": "high", "icon": "🎯"},
		{"title": "Review Arrays", "message": "Revisit Two Sum variants", "priority": "medium", "icon": "📚"},
		{"title": "Keep Momentum", "message": "You own Hash Table, push Hard", "priority": "low", "icon": "🏆"}
	]`

	recommendations, err := parseRecommendationResponse(content)
	require.NoError(t, err)
	require.Len(t, recommendations, 3)
	require.Equal(t, "Drill Graphs", recommendations[0].Title)
	require.Equal(t, "high", recommendations[0].Priority)
}

func TestParseRecommendationResponseRejectsBadPayloads(t *testing.T) {
	_, err := parseRecommendationResponse(`{"title": "not an array"}`)
	require.Error(t, err)

	_, err = parseRecommendationResponse(`[]`)
	require.Error(t, err)
}

func TestBuildMentorPrompt(t *testing.T) {
	prompt := buildMentorPrompt(RecommendationInput{
		TotalSolved:    10,
		EasySolved:     6,
		MediumSolved:   3,
		HardSolved:     1,
		TotalAccuracy:  62.5,
		WeakestMastery: []string{"Graph", "Tree"},
	})

	require.Contains(t, prompt, "Total Solved: 10 (Easy: 6, Medium: 3, Hard: 1)")
	require.Contains(t, prompt, "62.5% overall")
	require.Contains(t, prompt, "Graph, Tree")
	require.Contains(t, prompt, "Recent Problems: None")
}

func TestNewOpenAIGeneratorRequiresKey(t *testing.T) {
	_, err := NewOpenAIGenerator(OpenAIConfig{})
	require.Error(t, err)
}

func TestFallbackRecommendations(t *testing.T) {
	fallback := FallbackRecommendations()
	require.NotEmpty(t, fallback)
	for _, recommendation := range fallback {
		require.NotEmpty(t, recommendation.Title)
		require.NotEmpty(t, recommendation.Message)
	}
}

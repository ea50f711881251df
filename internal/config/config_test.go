package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEETSYNC_JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "LeetSync API", cfg.AppName)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, "https://leetcode.com/graphql", cfg.LeetcodeEndpoint)
	require.Equal(t, 15*time.Second, cfg.LeetcodeTimeout)
	require.Equal(t, 1000, cfg.SubmissionLimit)
	require.Equal(t, 5*time.Minute, cfg.DashboardCacheTTL)
	require.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LEETSYNC_JWT_SECRET", "secret")
	t.Setenv("LEETSYNC_APP_PORT", ":9090")
	t.Setenv("LEETSYNC_LEETCODE_SUBMISSION_LIMIT", "250")
	t.Setenv("LEETSYNC_DASHBOARD_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddress())
	require.Equal(t, 250, cfg.SubmissionLimit)
	require.Equal(t, 30*time.Second, cfg.DashboardCacheTTL)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("LEETSYNC_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

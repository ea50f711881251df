package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/leetsync/leetsync-api/internal/dto"
	"github.com/leetsync/leetsync-api/internal/handler"
)

type stubDashboardService struct {
	response dto.DashboardResponse
	err      error
	lastID   uint
}

func (s *stubDashboardService) GetDashboard(_ context.Context, userID uint) (dto.DashboardResponse, error) {
	s.lastID = userID
	return s.response, s.err
}

func TestDashboardHandler(t *testing.T) {
	svc := &stubDashboardService{response: dto.DashboardResponse{
		Stats:        dto.StatsBlock{TotalSolved: 7, EasySolved: 5},
		TopicMastery: map[string]int{"Array": 4},
	}}

	app := fiber.New()
	group := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(55))
		return c.Next()
	})
	handler.NewDashboardHandler(svc, zerolog.Nop()).Register(group)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, uint(55), svc.lastID)

	var envelope apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)

	var dashboard dto.DashboardResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &dashboard))
	require.Equal(t, 7, dashboard.Stats.TotalSolved)
	require.Equal(t, 4, dashboard.TopicMastery["Array"])
}

func TestDashboardHandlerServiceError(t *testing.T) {
	app := fiber.New()
	group := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(55))
		return c.Next()
	})
	handler.NewDashboardHandler(&stubDashboardService{err: errors.New("redis down")}, zerolog.Nop()).Register(group)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

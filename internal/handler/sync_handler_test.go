package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/leetsync/leetsync-api/internal/dto"
	"github.com/leetsync/leetsync-api/internal/handler"
	"github.com/leetsync/leetsync-api/internal/service"
)

type stubSyncService struct {
	summary dto.SyncSummary
	err     error
	lastID  uint
}

func (s *stubSyncService) Sync(_ context.Context, userID uint) (dto.SyncSummary, error) {
	s.lastID = userID
	return s.summary, s.err
}

func newSyncApp(svc service.SyncService, userID any) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v1/leetcode", func(c *fiber.Ctx) error {
		if userID != nil {
			c.Locals("user_id", userID)
		}
		return c.Next()
	})
	handler.NewSyncHandler(svc, zerolog.Nop()).Register(group)
	return app
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doSync(t *testing.T, app *fiber.App) (int, apiEnvelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leetcode/sync", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestSyncHandlerSuccess(t *testing.T) {
	svc := &stubSyncService{summary: dto.SyncSummary{
		TotalSolved:       12,
		NewSubmissions:    4,
		DuplicatesSkipped: 2,
	}}
	app := newSyncApp(svc, uint(33))

	status, envelope := doSync(t, app)
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, envelope.Success)
	require.Equal(t, uint(33), svc.lastID)

	var summary dto.SyncSummary
	require.NoError(t, json.Unmarshal(envelope.Data, &summary))
	require.Equal(t, 12, summary.TotalSolved)
	require.Equal(t, 4, summary.NewSubmissions)
}

func TestSyncHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"profile not found", service.ErrProfileNotFound, fiber.StatusNotFound},
		{"not linked", service.ErrNotLinked, fiber.StatusBadRequest},
		{"judge down", service.ErrJudgeUnavailable, fiber.StatusBadGateway},
		{"unexpected", fmt.Errorf("connection reset"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newSyncApp(&stubSyncService{err: tc.err}, uint(33))

			status, envelope := doSync(t, app)
			require.Equal(t, tc.status, status)
			require.False(t, envelope.Success)
		})
	}
}

func TestSyncHandlerPartialFailureCarriesSummary(t *testing.T) {
	svc := &stubSyncService{
		summary: dto.SyncSummary{TotalSolved: 9, NewSubmissions: 3},
		err:     fmt.Errorf("%w: disk full", service.ErrSubmissionInsertFailed),
	}
	app := newSyncApp(svc, uint(33))

	status, envelope := doSync(t, app)
	require.Equal(t, fiber.StatusInternalServerError, status)
	require.False(t, envelope.Success)

	var summary dto.SyncSummary
	require.NoError(t, json.Unmarshal(envelope.Data, &summary))
	require.Equal(t, 9, summary.TotalSolved, "the computed numbers ride along with the failure")
}

func TestSyncHandlerMissingUserContext(t *testing.T) {
	app := newSyncApp(&stubSyncService{}, nil)

	status, envelope := doSync(t, app)
	require.Equal(t, fiber.StatusUnauthorized, status)
	require.False(t, envelope.Success)
}

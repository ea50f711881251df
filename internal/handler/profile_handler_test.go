package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/leetsync/leetsync-api/internal/dto"
	"github.com/leetsync/leetsync-api/internal/handler"
	"github.com/leetsync/leetsync-api/internal/service"
)

type stubProfileService struct {
	err     error
	lastID  uint
	lastReq dto.LinkLeetCodeRequest
}

func (s *stubProfileService) LinkLeetCode(_ context.Context, userID uint, req dto.LinkLeetCodeRequest) error {
	s.lastID = userID
	s.lastReq = req
	return s.err
}

func newProfileApp(svc service.ProfileService) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v1/profile", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(44))
		return c.Next()
	})
	handler.NewProfileHandler(svc, zerolog.Nop()).Register(group)
	return app
}

func putLink(t *testing.T, app *fiber.App, body string) (int, apiEnvelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile/leetcode", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestProfileHandlerLinkSuccess(t *testing.T) {
	svc := &stubProfileService{}
	app := newProfileApp(svc)

	status, envelope := putLink(t, app, `{"username": "alice", "sessionCookie": "encrypted"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, envelope.Success)
	require.Equal(t, uint(44), svc.lastID)
	require.Equal(t, "alice", svc.lastReq.Username)
	require.Equal(t, "encrypted", svc.lastReq.SessionCookie)
}

func TestProfileHandlerLinkErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation failure", service.ErrInvalidLinkRequest, fiber.StatusBadRequest},
		{"missing profile", service.ErrProfileNotFound, fiber.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newProfileApp(&stubProfileService{err: tc.err})

			status, envelope := putLink(t, app, `{"username": "alice", "sessionCookie": "x"}`)
			require.Equal(t, tc.status, status)
			require.False(t, envelope.Success)
		})
	}
}

func TestProfileHandlerMalformedBody(t *testing.T) {
	app := newProfileApp(&stubProfileService{})

	status, envelope := putLink(t, app, `{"username": `)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.False(t, envelope.Success)
}

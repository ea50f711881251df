package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/leetsync/leetsync-api/internal/dto"
	"github.com/leetsync/leetsync-api/internal/service"
	"github.com/leetsync/leetsync-api/internal/utils"
)

// ProfileHandler exposes the LeetCode account linking endpoint.
type ProfileHandler struct {
	service service.ProfileService
	logger  zerolog.Logger
}

// NewProfileHandler creates a new handler instance.
func NewProfileHandler(service service.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("component", "profile_handler").Logger(),
	}
}

// Register attaches the profile endpoints.
func (h *ProfileHandler) Register(router fiber.Router) {
	router.Put("/leetcode", h.linkLeetCode)
}

func (h *ProfileHandler) linkLeetCode(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.LinkLeetCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.LinkLeetCode(c.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLinkRequest):
			return utils.SendError(c, fiber.StatusBadRequest, "username and session cookie are required")
		case errors.Is(err, service.ErrProfileNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "user profile not found")
		default:
			h.logger.Error().Err(err).Uint("user_id", userID).Msg("failed to link leetcode account")
			return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
		}
	}

	return utils.SendSuccess(c, "leetcode account linked", nil)
}

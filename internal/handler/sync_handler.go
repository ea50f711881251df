package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/leetsync/leetsync-api/internal/service"
	"github.com/leetsync/leetsync-api/internal/utils"
)

// SyncHandler exposes the LeetCode sync endpoint.
type SyncHandler struct {
	service service.SyncService
	logger  zerolog.Logger
}

// NewSyncHandler creates a new handler instance.
func NewSyncHandler(service service.SyncService, logger zerolog.Logger) *SyncHandler {
	return &SyncHandler{
		service: service,
		logger:  logger.With().Str("component", "sync_handler").Logger(),
	}
}

// Register attaches the sync endpoint.
func (h *SyncHandler) Register(router fiber.Router) {
	router.Post("/sync", h.sync)
}

func (h *SyncHandler) sync(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	summary, err := h.service.Sync(c.Context(), userID)
	switch {
	case err == nil:
		return utils.SendSuccess(c, "LeetCode data synced successfully", summary)
	case errors.Is(err, service.ErrProfileNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "user profile not found")
	case errors.Is(err, service.ErrNotLinked):
		return utils.SendError(c, fiber.StatusBadRequest, "LeetCode username or cookie not found. Please sync your cookie first.")
	case errors.Is(err, service.ErrJudgeUnavailable):
		h.logger.Error().Err(err).Uint("user_id", userID).Msg("judge fetch failed")
		return utils.SendError(c, fiber.StatusBadGateway, "failed to fetch LeetCode data")
	case errors.Is(err, service.ErrSubmissionInsertFailed):
		// Stats landed, the write-set did not; return the computed numbers
		// alongside the failure so the caller can decide what to show.
		h.logger.Error().Err(err).Uint("user_id", userID).Msg("partial sync persistence failure")
		return utils.SendErrorWithData(c, fiber.StatusInternalServerError, "stats updated but submission records failed to persist", summary)
	default:
		h.logger.Error().Err(err).Uint("user_id", userID).Msg("sync failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

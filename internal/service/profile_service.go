package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/leetsync/leetsync-api/internal/dto"
	"github.com/leetsync/leetsync-api/internal/repository"
)

// ErrInvalidLinkRequest indicates the link payload failed validation.
var ErrInvalidLinkRequest = errors.New("invalid link request")

// ProfileService manages the LeetCode identity attached to an account.
type ProfileService interface {
	LinkLeetCode(ctx context.Context, userID uint, req dto.LinkLeetCodeRequest) error
}

type profileService struct {
	profiles repository.UserProfileRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewProfileService builds the profile service.
func NewProfileService(profiles repository.UserProfileRepository, validate *validator.Validate, logger zerolog.Logger) ProfileService {
	return &profileService{
		profiles: profiles,
		validate: validate,
		logger:   logger.With().Str("component", "profile_service").Logger(),
	}
}

// LinkLeetCode stores the judge identity for a user. The session cookie
// arrives already encrypted by the extension and is treated as opaque.
func (s *profileService) LinkLeetCode(ctx context.Context, userID uint, req dto.LinkLeetCodeRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLinkRequest, err)
	}

	if err := s.profiles.UpdateLeetCodeIdentity(ctx, userID, req.Username, req.SessionCookie); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("update leetcode identity: %w", err)
	}

	s.logger.Info().Uint("user_id", userID).Str("username", req.Username).Msg("leetcode account linked")
	return nil
}

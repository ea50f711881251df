package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/leetsync/leetsync-api/internal/models"
)

// UserProfileRepository reads and updates account profiles.
type UserProfileRepository interface {
	GetByID(ctx context.Context, id uint) (models.UserProfile, error)
	UpdateLeetCodeIdentity(ctx context.Context, id uint, username, sessionCookie string) error
}

type userProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository instantiates the repository.
func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) GetByID(ctx context.Context, id uint) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

func (r *userProfileRepository) UpdateLeetCodeIdentity(ctx context.Context, id uint, username, sessionCookie string) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"leetcode_username":       username,
			"leetcode_session_cookie": sessionCookie,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

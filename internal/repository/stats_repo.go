package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/leetsync/leetsync-api/internal/models"
)

// StatsRepository stores the per-user aggregate stats row.
type StatsRepository interface {
	GetByUser(ctx context.Context, userID uint) (models.UserStats, error)
	Upsert(ctx context.Context, stats *models.UserStats) error
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository instantiates the repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetByUser(ctx context.Context, userID uint) (models.UserStats, error) {
	var stats models.UserStats
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return models.UserStats{}, err
	}

	return stats, nil
}

// Upsert writes the aggregate row keyed by user_id, last write wins.
func (r *statsRepository) Upsert(ctx context.Context, stats *models.UserStats) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(stats).Error
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/leetsync/leetsync-api/internal/models"
)

// SolvedProblemRepository persists the reconciled submission write-set.
type SolvedProblemRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.SolvedProblem, error)
	RecentAccepted(ctx context.Context, userID uint, limit int) ([]models.SolvedProblem, error)
	BulkInsert(ctx context.Context, records []models.SolvedProblem) error
}

type solvedProblemRepository struct {
	db *gorm.DB
}

// NewSolvedProblemRepository instantiates the repository.
func NewSolvedProblemRepository(db *gorm.DB) SolvedProblemRepository {
	return &solvedProblemRepository{db: db}
}

func (r *solvedProblemRepository) ListByUser(ctx context.Context, userID uint) ([]models.SolvedProblem, error) {
	var records []models.SolvedProblem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *solvedProblemRepository) RecentAccepted(ctx context.Context, userID uint, limit int) ([]models.SolvedProblem, error) {
	if limit <= 0 {
		limit = 5
	}

	var records []models.SolvedProblem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("submission_status = ?", models.SubmissionStatusAccepted).
		Order("solved_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *solvedProblemRepository) BulkInsert(ctx context.Context, records []models.SolvedProblem) error {
	if len(records) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&records).Error
}

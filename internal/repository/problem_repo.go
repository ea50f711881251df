package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/leetsync/leetsync-api/internal/models"
)

// ProblemRepository reads the problem catalog.
type ProblemRepository interface {
	GetBySlug(ctx context.Context, slug string) (models.Problem, error)
	ListBySlugs(ctx context.Context, slugs []string) ([]models.Problem, error)
}

type problemRepository struct {
	db *gorm.DB
}

// NewProblemRepository instantiates the repository.
func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{db: db}
}

func (r *problemRepository) GetBySlug(ctx context.Context, slug string) (models.Problem, error) {
	var problem models.Problem
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&problem).Error; err != nil {
		return models.Problem{}, err
	}

	return problem, nil
}

func (r *problemRepository) ListBySlugs(ctx context.Context, slugs []string) ([]models.Problem, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	var problems []models.Problem
	if err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&problems).Error; err != nil {
		return nil, err
	}

	return problems, nil
}

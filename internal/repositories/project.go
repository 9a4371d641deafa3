package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskhub-dev/taskhub/internal/models"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]models.Project, error)
	// DeleteWithTasks removes the project's tasks and then the project itself
	// inside a single transaction. Either both are deleted or neither is.
	DeleteWithTasks(ctx context.Context, projectID uint) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *projectRepository) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return &project, nil
}

func (r *projectRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to find projects by owner: %w", err)
	}
	return projects, nil
}

func (r *projectRepository) DeleteWithTasks(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete project tasks: %w", err)
		}

		result := tx.Delete(&models.Project{}, projectID)

		if result.Error != nil {
			return fmt.Errorf("failed to delete project: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

// Package services holds the domain logic: registration and login, project
// and task management, ownership checks and the top-priority ranking. All
// storage access goes through the injected repositories.
package services

import (
	"time"

	"github.com/taskhub-dev/taskhub/internal/models"
	"github.com/taskhub-dev/taskhub/internal/repositories"
	"github.com/taskhub-dev/taskhub/internal/types"
	"gorm.io/datatypes"
)

type Service struct {
	users    repositories.UserRepository
	projects repositories.ProjectRepository
	tasks    repositories.TaskRepository
}

func NewService(users repositories.UserRepository, projects repositories.ProjectRepository, tasks repositories.TaskRepository) *Service {
	return &Service{
		users:    users,
		projects: projects,
		tasks:    tasks,
	}
}

// isOwner is the single authorization predicate for project-scoped
// operations: project delete, task add and task list all go through it.
func isOwner(project *models.Project, userID uint) bool {
	return project.OwnerID == userID
}

const dateLayout = "2006-01-02"

func formatDate(date *datatypes.Date) string {
	if date == nil {
		return ""
	}
	return time.Time(*date).Format(dateLayout)
}

func projectResponse(project models.Project) types.ProjectResponse {
	return types.ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		StartDate:   formatDate(project.StartDate),
		EndDate:     formatDate(project.EndDate),
		UserID:      project.OwnerID,
	}
}

func projectSummary(project *models.Project) *types.ProjectSummary {
	return &types.ProjectSummary{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		StartDate:   formatDate(project.StartDate),
		EndDate:     formatDate(project.EndDate),
	}
}

func taskResponse(task models.Task, project *types.ProjectSummary) types.TaskResponse {
	return types.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		DueDate:     formatDate(task.DueDate),
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		Project:     project,
	}
}

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/taskhub-dev/taskhub/internal/models"
	"github.com/taskhub-dev/taskhub/internal/repositories"
	"github.com/taskhub-dev/taskhub/internal/types"
	"gorm.io/datatypes"
)

type ProjectInput struct {
	Title       string
	Description string
	StartDate   *datatypes.Date
	EndDate     *datatypes.Date
}

// CreateProject creates a project owned by ownerID. The owner must already
// exist.
func (s *Service) CreateProject(ctx context.Context, ownerID uint, input ProjectInput) (types.ProjectResponse, error) {
	if ownerID == 0 {
		return types.ProjectResponse{}, validationError("User ID is required")
	}

	if strings.TrimSpace(input.Title) == "" {
		return types.ProjectResponse{}, validationError("Title is required")
	}

	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return types.ProjectResponse{}, notFoundError("User not found")
		}
		return types.ProjectResponse{}, err
	}

	project := models.Project{
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		OwnerID:     ownerID,
	}

	if err := s.projects.Create(ctx, &project); err != nil {
		return types.ProjectResponse{}, err
	}

	return projectResponse(project), nil
}

// ListProjects returns every project owned by userID, annotated with the
// owner id.
func (s *Service) ListProjects(ctx context.Context, userID uint) ([]types.ProjectResponse, error) {
	projects, err := s.projects.FindByOwner(ctx, userID)

	if err != nil {
		return nil, err
	}

	response := make([]types.ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, projectResponse(project))
	}

	return response, nil
}

// DeleteProject removes the project and its tasks in one transaction. Only
// the owner may delete a project.
func (s *Service) DeleteProject(ctx context.Context, projectID, userID uint) error {
	project, err := s.projects.FindByID(ctx, projectID)

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFoundError("Project not found")
		}
		return err
	}

	if !isOwner(project, userID) {
		return unauthorizedError("Unauthorized")
	}

	return s.projects.DeleteWithTasks(ctx, projectID)
}

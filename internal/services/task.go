package services

import (
	"context"
	"errors"
	"sort"

	"github.com/taskhub-dev/taskhub/internal/models"
	"github.com/taskhub-dev/taskhub/internal/repositories"
	"github.com/taskhub-dev/taskhub/internal/types"
	"gorm.io/datatypes"
)

type TaskInput struct {
	Title       string
	Description string
	Status      string
	DueDate     *datatypes.Date
	Priority    *int
}

// TaskPatch carries a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *int
}

const topTaskCount = 5

func validatePriority(priority *int, required bool) error {
	if priority == nil {
		if required {
			return validationError("Priority must be provided")
		}
		return nil
	}

	if *priority < 1 || *priority > 10 {
		return validationError("Priority must be between 1 and 10")
	}

	return nil
}

// findOwnedProject loads a project and checks that userID owns it.
func (s *Service) findOwnedProject(ctx context.Context, projectID, userID uint) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundError("Project not found")
		}
		return nil, err
	}

	if !isOwner(project, userID) {
		return nil, unauthorizedError("Unauthorized")
	}

	return project, nil
}

// AddTask creates a task under the project. Only the project owner may add
// tasks; priority, when supplied, must lie in [1,10].
func (s *Service) AddTask(ctx context.Context, projectID, userID uint, input TaskInput) (types.TaskResponse, error) {
	project, err := s.findOwnedProject(ctx, projectID, userID)

	if err != nil {
		return types.TaskResponse{}, err
	}

	if err := validatePriority(input.Priority, false); err != nil {
		return types.TaskResponse{}, err
	}

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		ProjectID:   project.ID,
	}

	if err := s.tasks.Create(ctx, &task); err != nil {
		return types.TaskResponse{}, err
	}

	return taskResponse(task, projectSummary(project)), nil
}

// ListTasks returns the project's tasks, each with an embedded project
// summary. Only the project owner may list them.
func (s *Service) ListTasks(ctx context.Context, projectID, userID uint) ([]types.TaskResponse, error) {
	project, err := s.findOwnedProject(ctx, projectID, userID)

	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.FindByProject(ctx, project.ID)

	if err != nil {
		return nil, err
	}

	summary := projectSummary(project)
	response := make([]types.TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, taskResponse(task, summary))
	}

	return response, nil
}

// GetTask fetches a task by id. Task-id routes perform no ownership check.
func (s *Service) GetTask(ctx context.Context, taskID uint) (types.TaskResponse, error) {
	task, err := s.tasks.FindByID(ctx, taskID)

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return types.TaskResponse{}, notFoundError("Task not found")
		}
		return types.TaskResponse{}, err
	}

	return taskResponse(*task, nil), nil
}

// UpdateTask replaces title, description, status, due date and priority.
// Priority is mandatory here; validation happens before anything is written
// so a rejected update leaves the stored record unchanged.
func (s *Service) UpdateTask(ctx context.Context, taskID uint, input TaskInput) error {
	task, err := s.tasks.FindByID(ctx, taskID)

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFoundError("Task not found")
		}
		return err
	}

	if err := validatePriority(input.Priority, true); err != nil {
		return err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.DueDate = input.DueDate
	task.Priority = input.Priority

	return s.tasks.Save(ctx, task)
}

// PartialUpdateTask overwrites only the supplied fields. The updatedAt
// timestamp is refreshed even when no field changed.
func (s *Service) PartialUpdateTask(ctx context.Context, taskID uint, patch TaskPatch) error {
	task, err := s.tasks.FindByID(ctx, taskID)

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFoundError("Task not found")
		}
		return err
	}

	if err := validatePriority(patch.Priority, false); err != nil {
		return err
	}

	if patch.Status != nil {
		task.Status = *patch.Status
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}

	if patch.Description != nil {
		task.Description = *patch.Description
	}

	if patch.Priority != nil {
		task.Priority = patch.Priority
	}

	return s.tasks.Save(ctx, task)
}

func (s *Service) DeleteTask(ctx context.Context, taskID uint) error {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFoundError("Task not found")
		}
		return err
	}

	return s.tasks.Delete(ctx, taskID)
}

// TopFivePriorityTasks ranks every task under the user's projects by priority
// descending and returns at most five. The sort is stable, so ties keep their
// retrieval (id) order; a missing priority ranks as zero. Sorting happens in
// process so the tie-break does not depend on database collation.
func (s *Service) TopFivePriorityTasks(ctx context.Context, userID uint) ([]types.TaskResponse, error) {
	tasks, err := s.tasks.FindByOwner(ctx, userID)

	if err != nil {
		return nil, err
	}

	priorityOf := func(task models.Task) int {
		if task.Priority == nil {
			return 0
		}
		return *task.Priority
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return priorityOf(tasks[i]) > priorityOf(tasks[j])
	})

	if len(tasks) > topTaskCount {
		tasks = tasks[:topTaskCount]
	}

	response := make([]types.TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, taskResponse(task, nil))
	}

	return response, nil
}

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/taskhub-dev/taskhub/internal/models"
	"github.com/taskhub-dev/taskhub/internal/repositories"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupService creates a service backed by an in-memory SQLite database.
func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	service := NewService(
		repositories.NewUserRepository(gdb),
		repositories.NewProjectRepository(gdb),
		repositories.NewTaskRepository(gdb),
	)

	return service, gdb
}

func createUser(t *testing.T, gdb *gorm.DB, name, email string) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: email}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createProject(t *testing.T, gdb *gorm.DB, ownerID uint, title string) *models.Project {
	t.Helper()

	project := &models.Project{Title: title, OwnerID: ownerID}
	if err := gdb.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

func createTask(t *testing.T, gdb *gorm.DB, projectID uint, title string, priority *int) *models.Task {
	t.Helper()

	task := &models.Task{Title: title, Priority: priority, ProjectID: projectID}
	if err := gdb.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

// assertKind fails the test unless err is a domain error of the given kind.
func assertKind(t *testing.T, err error, kind Kind) {
	t.Helper()

	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var domainErr *Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected domain error, got %v", err)
	}

	if domainErr.Kind != kind {
		t.Errorf("expected kind %d, got %d (message %q)", kind, domainErr.Kind, domainErr.Message)
	}
}

func date(t *testing.T, value string) *datatypes.Date {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	d := datatypes.Date(parsed)
	return &d
}

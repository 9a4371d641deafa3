package services

import (
	"context"
	"testing"
	"time"

	"github.com/taskhub-dev/taskhub/internal/models"
)

func TestAddTask(t *testing.T) {
	ctx := context.Background()

	t.Run("non-owner is rejected and nothing is created", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		bob := createUser(t, gdb, "bob", "bob@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")

		_, err := service.AddTask(ctx, project.ID, bob.ID, TaskInput{Title: "sneaky"})
		assertKind(t, err, KindUnauthorized)

		var count int64
		gdb.Model(&models.Task{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no tasks, got %d", count)
		}
	})

	t.Run("priority out of range", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")

		_, err := service.AddTask(ctx, project.ID, alice.ID, TaskInput{Title: "task", Priority: intPtr(11)})
		assertKind(t, err, KindValidation)
	})

	t.Run("success stamps timestamps", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")

		input := TaskInput{
			Title:    "write tests",
			Status:   "open",
			DueDate:  date(t, "2025-03-01"),
			Priority: intPtr(7),
		}

		created, err := service.AddTask(ctx, project.ID, alice.ID, input)
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}

		if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
			t.Error("expected timestamps to be set")
		}
		if created.DueDate != "2025-03-01" {
			t.Errorf("expected due date 2025-03-01, got %q", created.DueDate)
		}
		if created.Project == nil || created.Project.ID != project.ID {
			t.Errorf("expected embedded project summary, got %+v", created.Project)
		}
	})
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("non-owner is rejected", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		bob := createUser(t, gdb, "bob", "bob@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")

		_, err := service.ListTasks(ctx, project.ID, bob.ID)
		assertKind(t, err, KindUnauthorized)
	})

	t.Run("tasks embed a project summary", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")
		createTask(t, gdb, project.ID, "first", intPtr(2))
		createTask(t, gdb, project.ID, "second", nil)

		tasks, err := service.ListTasks(ctx, project.ID, alice.ID)
		if err != nil {
			t.Fatalf("ListTasks() error = %v", err)
		}

		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(tasks))
		}
		if tasks[0].Title != "first" || tasks[1].Title != "second" {
			t.Errorf("unexpected task order: %q, %q", tasks[0].Title, tasks[1].Title)
		}
		for _, task := range tasks {
			if task.Project == nil || task.Project.Title != "TMS" {
				t.Errorf("expected project summary on task %d", task.ID)
			}
		}
	})
}

func TestGetTask(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		service, _ := setupService(t)

		_, err := service.GetTask(ctx, 42)
		assertKind(t, err, KindNotFound)
	})

	t.Run("fetch by id performs no ownership check", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")
		task := createTask(t, gdb, project.ID, "task", intPtr(4))

		got, err := service.GetTask(ctx, task.ID)
		if err != nil {
			t.Fatalf("GetTask() error = %v", err)
		}
		if got.Title != "task" || got.Priority == nil || *got.Priority != 4 {
			t.Errorf("unexpected task: %+v", got)
		}
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		service, _ := setupService(t)

		err := service.UpdateTask(ctx, 42, TaskInput{Priority: intPtr(5)})
		assertKind(t, err, KindNotFound)
	})

	t.Run("missing priority leaves the record unchanged", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")
		task := createTask(t, gdb, project.ID, "original", intPtr(4))

		err := service.UpdateTask(ctx, task.ID, TaskInput{Title: "changed"})
		assertKind(t, err, KindValidation)

		var stored models.Task
		if err := gdb.First(&stored, task.ID).Error; err != nil {
			t.Fatalf("failed to reload task: %v", err)
		}
		if stored.Title != "original" || stored.Priority == nil || *stored.Priority != 4 {
			t.Errorf("stored record changed: %+v", stored)
		}
	})

	t.Run("out-of-range priority leaves the record unchanged", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")
		task := createTask(t, gdb, project.ID, "original", intPtr(4))

		err := service.UpdateTask(ctx, task.ID, TaskInput{Title: "changed", Priority: intPtr(0)})
		assertKind(t, err, KindValidation)

		var stored models.Task
		if err := gdb.First(&stored, task.ID).Error; err != nil {
			t.Fatalf("failed to reload task: %v", err)
		}
		if stored.Title != "original" {
			t.Errorf("stored record changed: %+v", stored)
		}
	})

	t.Run("full replace refreshes updatedAt", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")
		task := createTask(t, gdb, project.ID, "original", intPtr(4))

		time.Sleep(20 * time.Millisecond)

		input := TaskInput{
			Title:       "replaced",
			Description: "new description",
			Status:      "in progress",
			DueDate:     date(t, "2025-04-01"),
			Priority:    intPtr(9),
		}

		if err := service.UpdateTask(ctx, task.ID, input); err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}

		var stored models.Task
		if err := gdb.First(&stored, task.ID).Error; err != nil {
			t.Fatalf("failed to reload task: %v", err)
		}
		if stored.Title != "replaced" || stored.Status != "in progress" || *stored.Priority != 9 {
			t.Errorf("unexpected stored record: %+v", stored)
		}
		if !stored.UpdatedAt.After(stored.CreatedAt) {
			t.Error("expected updatedAt to be refreshed")
		}
	})
}

func TestPartialUpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		service, _ := setupService(t)

		err := service.PartialUpdateTask(ctx, 42, TaskPatch{Status: strPtr("done")})
		assertKind(t, err, KindNotFound)
	})

	t.Run("status-only patch leaves other fields untouched", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")
		task := createTask(t, gdb, project.ID, "original", intPtr(4))

		time.Sleep(20 * time.Millisecond)

		if err := service.PartialUpdateTask(ctx, task.ID, TaskPatch{Status: strPtr("done")}); err != nil {
			t.Fatalf("PartialUpdateTask() error = %v", err)
		}

		var stored models.Task
		if err := gdb.First(&stored, task.ID).Error; err != nil {
			t.Fatalf("failed to reload task: %v", err)
		}
		if stored.Status != "done" {
			t.Errorf("expected status %q, got %q", "done", stored.Status)
		}
		if stored.Title != "original" || stored.Priority == nil || *stored.Priority != 4 {
			t.Errorf("untouched fields changed: %+v", stored)
		}
		if !stored.UpdatedAt.After(stored.CreatedAt) {
			t.Error("expected updatedAt to be refreshed")
		}
	})

	t.Run("empty patch still refreshes updatedAt", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")
		task := createTask(t, gdb, project.ID, "original", intPtr(4))

		time.Sleep(20 * time.Millisecond)

		if err := service.PartialUpdateTask(ctx, task.ID, TaskPatch{}); err != nil {
			t.Fatalf("PartialUpdateTask() error = %v", err)
		}

		var stored models.Task
		if err := gdb.First(&stored, task.ID).Error; err != nil {
			t.Fatalf("failed to reload task: %v", err)
		}
		if !stored.UpdatedAt.After(stored.CreatedAt) {
			t.Error("expected updatedAt to be refreshed")
		}
	})

	t.Run("priority re-validated when present", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")
		task := createTask(t, gdb, project.ID, "original", intPtr(4))

		err := service.PartialUpdateTask(ctx, task.ID, TaskPatch{Priority: intPtr(11)})
		assertKind(t, err, KindValidation)
	})
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		service, _ := setupService(t)

		err := service.DeleteTask(ctx, 42)
		assertKind(t, err, KindNotFound)
	})

	t.Run("success", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")
		task := createTask(t, gdb, project.ID, "doomed", nil)

		if err := service.DeleteTask(ctx, task.ID); err != nil {
			t.Fatalf("DeleteTask() error = %v", err)
		}

		_, err := service.GetTask(ctx, task.ID)
		assertKind(t, err, KindNotFound)
	})
}

func TestTopFivePriorityTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by priority with stable ties and a cap of five", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		bob := createUser(t, gdb, "bob", "bob@example.com")
		aliceProject := createProject(t, gdb, alice.ID, "alice's")
		bobProject := createProject(t, gdb, bob.ID, "bob's")

		// Insertion order matters: the two 9s must come back in this order.
		priorities := []int{3, 9, 1, 9, 5, 7}
		titles := []string{"p3", "p9-first", "p1", "p9-second", "p5", "p7"}
		for i, priority := range priorities {
			createTask(t, gdb, aliceProject.ID, titles[i], intPtr(priority))
		}

		// Another user's task must never appear, however high its priority.
		createTask(t, gdb, bobProject.ID, "bob's p10", intPtr(10))

		tasks, err := service.TopFivePriorityTasks(ctx, alice.ID)
		if err != nil {
			t.Fatalf("TopFivePriorityTasks() error = %v", err)
		}

		if len(tasks) != 5 {
			t.Fatalf("expected 5 tasks, got %d", len(tasks))
		}

		wantTitles := []string{"p9-first", "p9-second", "p7", "p5", "p3"}
		for i, want := range wantTitles {
			if tasks[i].Title != want {
				t.Errorf("position %d: expected %q, got %q", i, want, tasks[i].Title)
			}
		}
	})

	t.Run("missing priority ranks as zero", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		project := createProject(t, gdb, alice.ID, "TMS")
		createTask(t, gdb, project.ID, "no priority", nil)
		createTask(t, gdb, project.ID, "low priority", intPtr(1))

		tasks, err := service.TopFivePriorityTasks(ctx, alice.ID)
		if err != nil {
			t.Fatalf("TopFivePriorityTasks() error = %v", err)
		}

		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(tasks))
		}
		if tasks[0].Title != "low priority" || tasks[1].Title != "no priority" {
			t.Errorf("unexpected order: %q, %q", tasks[0].Title, tasks[1].Title)
		}
	})

	t.Run("excludes tasks of deleted projects", func(t *testing.T) {
		service, gdb := setupService(t)
		alice := createUser(t, gdb, "alice", "alice@example.com")
		kept := createProject(t, gdb, alice.ID, "kept")
		doomed := createProject(t, gdb, alice.ID, "doomed")
		createTask(t, gdb, kept.ID, "kept task", intPtr(2))
		createTask(t, gdb, doomed.ID, "doomed task", intPtr(10))

		if err := service.DeleteProject(ctx, doomed.ID, alice.ID); err != nil {
			t.Fatalf("DeleteProject() error = %v", err)
		}

		tasks, err := service.TopFivePriorityTasks(ctx, alice.ID)
		if err != nil {
			t.Fatalf("TopFivePriorityTasks() error = %v", err)
		}

		if len(tasks) != 1 || tasks[0].Title != "kept task" {
			t.Errorf("unexpected tasks: %+v", tasks)
		}
	})
}

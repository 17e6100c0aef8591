package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub/backend/internal/config"
	"github.com/taskhub/backend/internal/core/ports"
	"github.com/taskhub/backend/internal/core/services"
	"github.com/taskhub/backend/internal/domain"
	"github.com/taskhub/backend/internal/infrastructure/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) ports.TaskRepository {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, RunMigrations(database))

	log, err := logger.New(config.LoggerConfig{
		Level:            "error",
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = Close(database) })
	return NewTaskRepository(database, log)
}

func seedTask(t *testing.T, repo ports.TaskRepository, task domain.Task) domain.Task {
	t.Helper()
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	require.NoError(t, repo.Create(context.Background(), &task))
	return task
}

func TestTaskRepositoryCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)

	created := seedTask(t, repo, domain.Task{Title: "Buy milk", Description: "2 liters"})

	fetched, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", fetched.Title)
	assert.Equal(t, "2 liters", fetched.Description)
	assert.Equal(t, domain.TaskStatusPending, fetched.Status)
	assert.False(t, fetched.CreatedAt.IsZero())
}

func TestTaskRepositoryGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}

func TestTaskRepositoryDelete(t *testing.T) {
	repo := newTestRepo(t)
	created := seedTask(t, repo, domain.Task{Title: "Ephemeral"})

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err := repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), created.ID), services.ErrTaskNotFound)
}

func TestTaskRepositorySearchCaseInsensitiveSubstring(t *testing.T) {
	repo := newTestRepo(t)
	seedTask(t, repo, domain.Task{Title: "Buy MILK"})
	seedTask(t, repo, domain.Task{Title: "Chores", Description: "get milk and eggs"})
	seedTask(t, repo, domain.Task{Title: "Unrelated"})

	tasks, err := repo.Search(context.Background(), "milk")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = repo.Search(context.Background(), "MiLk")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = repo.Search(context.Background(), "nothing here")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepositorySearchEscapesLikeMetacharacters(t *testing.T) {
	repo := newTestRepo(t)
	seedTask(t, repo, domain.Task{Title: "100% done"})
	seedTask(t, repo, domain.Task{Title: "100 percent done"})

	tasks, err := repo.Search(context.Background(), "100%")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "100% done", tasks[0].Title)
}

func TestTaskRepositoryFindFiltersConjunctively(t *testing.T) {
	repo := newTestRepo(t)
	seedTask(t, repo, domain.Task{Title: "a", Status: domain.TaskStatusCompleted, Priority: domain.TaskPriorityHigh})
	seedTask(t, repo, domain.Task{Title: "b", Status: domain.TaskStatusCompleted, Priority: domain.TaskPriorityLow})
	seedTask(t, repo, domain.Task{Title: "c", Status: domain.TaskStatusPending, Priority: domain.TaskPriorityHigh})

	filter := domain.NewTaskFilter(string(domain.TaskStatusCompleted), string(domain.TaskPriorityHigh), "", "", 1, 10)
	tasks, total, err := repo.Find(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].Title)
	assert.Equal(t, int64(1), total)

	// both criteria omitted matches everything
	filter = domain.NewTaskFilter("", "", "", "", 1, 10)
	tasks, total, err = repo.Find(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
	assert.Equal(t, int64(3), total)
}

func TestTaskRepositoryFindSortsDescending(t *testing.T) {
	repo := newTestRepo(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedTask(t, repo, domain.Task{
			Title:     fmt.Sprintf("task-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	filter := domain.NewTaskFilter("", "", "created_at", "desc", 1, 10)
	tasks, _, err := repo.Find(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, tasks, 5)

	for i := 1; i < len(tasks); i++ {
		assert.False(t, tasks[i].CreatedAt.After(tasks[i-1].CreatedAt),
			"created_at must be non-increasing")
	}
	assert.Equal(t, "task-4", tasks[0].Title)
}

// Concatenating all pages must yield every matching task exactly once,
// even when every row shares the same sort key.
func TestTaskRepositoryPaginationIsStableAcrossPages(t *testing.T) {
	repo := newTestRepo(t)
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	want := make(map[string]bool)
	for i := 0; i < 23; i++ {
		task := seedTask(t, repo, domain.Task{
			Title:     fmt.Sprintf("task-%d", i),
			CreatedAt: created,
		})
		want[task.ID] = false
	}

	const limit = 5
	page := 1
	for {
		filter := domain.NewTaskFilter("", "", "created_at", "asc", page, limit)
		tasks, total, err := repo.Find(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, int64(23), total)

		for _, task := range tasks {
			seen, ok := want[task.ID]
			require.True(t, ok, "unexpected task %s", task.ID)
			require.False(t, seen, "task %s returned twice", task.ID)
			want[task.ID] = true
		}

		if len(tasks) < limit {
			break
		}
		page++
	}

	assert.Equal(t, 5, page)
	for id, seen := range want {
		assert.True(t, seen, "task %s never returned", id)
	}
}

func TestTaskRepositoryFindPaginationBounds(t *testing.T) {
	repo := newTestRepo(t)
	for i := 0; i < 3; i++ {
		seedTask(t, repo, domain.Task{Title: fmt.Sprintf("task-%d", i)})
	}

	// page far past the end is an empty page, not an error
	filter := domain.NewTaskFilter("", "", "", "", 99, 10)
	tasks, total, err := repo.Find(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, int64(3), total)
}

func TestTaskRepositoryUpdate(t *testing.T) {
	repo := newTestRepo(t)
	created := seedTask(t, repo, domain.Task{Title: "before"})

	created.Title = "after"
	created.Status = domain.TaskStatusCompleted
	require.NoError(t, repo.Update(context.Background(), &created))

	fetched, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", fetched.Title)
	assert.Equal(t, domain.TaskStatusCompleted, fetched.Status)
}

func TestTaskRepositoryCountByStatus(t *testing.T) {
	repo := newTestRepo(t)
	seedTask(t, repo, domain.Task{Title: "p1"})
	seedTask(t, repo, domain.Task{Title: "p2"})
	seedTask(t, repo, domain.Task{Title: "c1", Status: domain.TaskStatusCompleted})

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.TaskStatusPending])
	assert.Equal(t, int64(1), counts[domain.TaskStatusCompleted])
}

package domain

import "time"

// ==================== ENUMS ====================

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// ==================== MODELS ====================

type Task struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `gorm:"index;default:Pending" json:"status"`
	Priority    TaskPriority `gorm:"index" json:"priority,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type TaskSummary struct {
	PendingCount    int64 `json:"pending_count"`
	InProgressCount int64 `json:"in_progress_count"`
	CompletedCount  int64 `json:"completed_count"`
	TotalCount      int64 `json:"total_count"`
}

// ==================== QUERY TYPES ====================

// TaskFilter is a normalized, store-ready query. Build one with
// NewTaskFilter so page/limit/sort are always within bounds.
type TaskFilter struct {
	Status   TaskStatus
	Priority TaskPriority
	SortBy   string
	Order    string
	Page     int
	Limit    int
}

func (f *TaskFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TaskPage is one page of filter results plus pagination metadata.
type TaskPage struct {
	Tasks       []Task `json:"tasks"`
	CurrentPage int    `json:"current_page"`
	TotalPages  int    `json:"total_pages"`
	TotalTasks  int64  `json:"total_tasks"`
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// sortableFields are the columns Filter may order by. Anything else
// falls back to created_at so a typo never turns into a SQL error.
var sortableFields = map[string]string{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"updated_at": "updated_at",
	"updatedAt":  "updated_at",
	"title":      "title",
	"status":     "status",
	"priority":   "priority",
}

// NewTaskFilter normalizes raw query parameters into a TaskFilter:
// page is clamped to >= 1, limit to [1, MaxPageLimit] (0 or negative
// means the default), order is descending only for "desc", and sort_by
// is mapped through the sortable column whitelist.
func NewTaskFilter(status, priority, sortBy, order string, page, limit int) TaskFilter {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	column, ok := sortableFields[sortBy]
	if !ok {
		column = "created_at"
	}

	if order != OrderDesc {
		order = OrderAsc
	}

	return TaskFilter{
		Status:   TaskStatus(status),
		Priority: TaskPriority(priority),
		SortBy:   column,
		Order:    order,
		Page:     page,
		Limit:    limit,
	}
}

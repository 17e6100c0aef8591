package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTaskFilterDefaults(t *testing.T) {
	f := NewTaskFilter("", "", "", "", 0, 0)

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPageLimit, f.Limit)
	assert.Equal(t, "created_at", f.SortBy)
	assert.Equal(t, OrderAsc, f.Order)
	assert.Empty(t, f.Status)
	assert.Empty(t, f.Priority)
}

func TestNewTaskFilterClampsPageAndLimit(t *testing.T) {
	f := NewTaskFilter("", "", "", "", -3, -1)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPageLimit, f.Limit)

	f = NewTaskFilter("", "", "", "", 2, 10000)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, MaxPageLimit, f.Limit)
}

func TestNewTaskFilterSortWhitelist(t *testing.T) {
	f := NewTaskFilter("", "", "createdAt", "", 1, 10)
	assert.Equal(t, "created_at", f.SortBy)

	f = NewTaskFilter("", "", "priority", "", 1, 10)
	assert.Equal(t, "priority", f.SortBy)

	// unknown sort fields must not leak into SQL
	f = NewTaskFilter("", "", "nonexistent; DROP TABLE tasks", "", 1, 10)
	assert.Equal(t, "created_at", f.SortBy)
}

func TestNewTaskFilterOrder(t *testing.T) {
	assert.Equal(t, OrderDesc, NewTaskFilter("", "", "", "desc", 1, 10).Order)
	assert.Equal(t, OrderAsc, NewTaskFilter("", "", "", "asc", 1, 10).Order)
	assert.Equal(t, OrderAsc, NewTaskFilter("", "", "", "descending", 1, 10).Order)
	assert.Equal(t, OrderAsc, NewTaskFilter("", "", "", "", 1, 10).Order)
}

func TestTaskFilterOffset(t *testing.T) {
	f := NewTaskFilter("", "", "", "", 3, 10)
	assert.Equal(t, 20, f.Offset())

	f = NewTaskFilter("", "", "", "", 1, 25)
	assert.Equal(t, 0, f.Offset())
}

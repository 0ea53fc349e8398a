// Package models contains shared data structures used across the application.
package models

import (
	"math"
	"time"
)

// TaskStatus represents the status of a warehouse task.
type TaskStatus string

const (
	TaskStatusDevelopment TaskStatus = "development"
	TaskStatusSent        TaskStatus = "sent"
	TaskStatusLoaded      TaskStatus = "loaded"
	TaskStatusInProgress  TaskStatus = "in_progress"
	TaskStatusPaused      TaskStatus = "paused"
	TaskStatusCompleted   TaskStatus = "completed"
	// TaskStatusDeleted is a terminal soft-delete marker. The task stays
	// in the collection and its number stays reserved.
	TaskStatusDeleted TaskStatus = "deleted"
)

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	PriorityLow       TaskPriority = "low"
	PriorityNormal    TaskPriority = "normal"
	PriorityImportant TaskPriority = "important"
	PriorityUrgent    TaskPriority = "urgent"
)

// TaskType represents the kind of warehouse job a task describes.
type TaskType string

const (
	TypePicking  TaskType = "picking"
	TypeShipment TaskType = "shipment"
	TypeWriteoff TaskType = "writeoff"
)

// Legacy task types kept for backward display compatibility with
// snapshots written by earlier releases.
const (
	TypeInventory TaskType = "inventory"
	TypeReceive   TaskType = "receive"
	TypeMove      TaskType = "move"
)

// Position is a line item within a task tracking a SKU's required
// versus completed quantity. Invariant: 0 <= Completed <= Quantity.
type Position struct {
	SKU       string `yaml:"sku"`
	Name      string `yaml:"name"`
	Quantity  int    `yaml:"quantity"`
	Completed int    `yaml:"completed"`
}

// Task represents a warehouse task.
// This corresponds to one entry in the tasks.yaml snapshot.
type Task struct {
	TaskNumber   string       `yaml:"task_number"` // M### format, immutable once assigned
	OrderNumber  string       `yaml:"order_number"`
	Title        string       `yaml:"title"`
	Description  string       `yaml:"description,omitempty"`
	Priority     TaskPriority `yaml:"priority"`
	Status       TaskStatus   `yaml:"status"`
	Type         TaskType     `yaml:"type"`
	Created      time.Time    `yaml:"created"`
	Updated      *time.Time   `yaml:"updated,omitempty"`
	Progress     int          `yaml:"progress"` // 0-100, derived from positions when present
	Positions    []Position   `yaml:"positions,omitempty"`
	SentToTablet bool         `yaml:"sent_to_tablet"`
	History      []AuditEntry `yaml:"history"`
}

// IsDeleted returns true if the task has been soft deleted.
func (t *Task) IsDeleted() bool {
	return t.Status == TaskStatusDeleted
}

// Touch refreshes the Updated timestamp.
func (t *Task) Touch(now time.Time) {
	n := now.UTC()
	t.Updated = &n
}

// RecalcProgress recomputes Progress from positions. Tasks without
// positions keep whatever Progress they were created with.
func (t *Task) RecalcProgress() {
	if len(t.Positions) == 0 {
		return
	}
	var quantity, completed int
	for _, p := range t.Positions {
		quantity += p.Quantity
		completed += p.Completed
	}
	if quantity <= 0 {
		t.Progress = 0
		return
	}
	t.Progress = int(math.Round(100 * float64(completed) / float64(quantity)))
}

// Clone returns a deep copy of the task. The store hands clones to
// callers so query results can never mutate owned state.
func (t *Task) Clone() *Task {
	c := *t
	if t.Updated != nil {
		u := *t.Updated
		c.Updated = &u
	}
	c.Positions = append([]Position(nil), t.Positions...)
	c.History = append([]AuditEntry(nil), t.History...)
	return &c
}

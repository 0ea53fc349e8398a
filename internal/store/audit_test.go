package store

import (
	"testing"
	"time"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

func TestDiffTasksTrackedFields(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	old := &models.Task{Title: "Pick parts", Priority: models.PriorityNormal, Status: models.TaskStatusDevelopment}

	tests := []struct {
		name       string
		mutate     func(*models.Task)
		wantFields []string
	}{
		{
			name:       "title change",
			mutate:     func(n *models.Task) { n.Title = "Pick spare parts" },
			wantFields: []string{"title"},
		},
		{
			name: "status and priority change",
			mutate: func(n *models.Task) {
				n.Status = models.TaskStatusInProgress
				n.Priority = models.PriorityUrgent
			},
			wantFields: []string{"priority", "status"},
		},
		{
			name:       "untracked field only",
			mutate:     func(n *models.Task) { n.Description = "changed" },
			wantFields: nil,
		},
		{
			name:       "no change",
			mutate:     func(n *models.Task) {},
			wantFields: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := old.Clone()
			tt.mutate(updated)

			entries := diffTasks(old, updated, now, "tester", "why")
			if len(entries) != len(tt.wantFields) {
				t.Fatalf("got %d entries, want %d", len(entries), len(tt.wantFields))
			}
			for i, f := range tt.wantFields {
				e := entries[i]
				if e.Field != f {
					t.Errorf("entry %d field = %q, want %q", i, e.Field, f)
				}
				if e.Kind != models.AuditKindFieldChange {
					t.Errorf("entry %d kind = %q, want field_change", i, e.Kind)
				}
				if e.Comment != "why" {
					t.Errorf("entry %d comment = %q, want %q", i, e.Comment, "why")
				}
			}
		})
	}
}

func TestDiffTasksRecordsTransition(t *testing.T) {
	now := time.Now()
	old := &models.Task{Status: models.TaskStatusDevelopment}
	updated := &models.Task{Status: models.TaskStatusCompleted}

	entries := diffTasks(old, updated, now, "tester", "")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.OldValue != "development" || e.NewValue != "completed" {
		t.Errorf("transition %q -> %q, want development -> completed", e.OldValue, e.NewValue)
	}
	if e.Comment != defaultComment {
		t.Errorf("empty comment should default to %q, got %q", defaultComment, e.Comment)
	}
}

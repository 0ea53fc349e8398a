package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

func TestLoadMissingSnapshotReturnsEmpty(t *testing.T) {
	gw := NewFileGateway(t.TempDir())

	snapshot, err := gw.Load()
	if err != nil {
		t.Fatalf("Load on empty dir: %v", err)
	}
	if snapshot != nil {
		t.Errorf("snapshot = %+v, want nil", snapshot)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	gw := NewFileGateway(t.TempDir())
	created := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

	task := &models.Task{
		TaskNumber:  "M007",
		OrderNumber: "2025/038",
		Title:       "Pick bearings",
		Priority:    models.PriorityUrgent,
		Status:      models.TaskStatusInProgress,
		Type:        models.TypePicking,
		Created:     created,
		Progress:    50,
		Positions: []models.Position{
			{SKU: "BRG-6204", Name: "Bearing", Quantity: 4, Completed: 2},
		},
		SentToTablet: true,
		History: []models.AuditEntry{
			models.NewCreationEntry(created, "operator", models.TaskStatusDevelopment),
			models.NewFreeformEntry(created.Add(time.Hour), "operator", "sent_to_tablet", "dispatched"),
		},
	}
	in := &models.Snapshot{
		Version:         1,
		Tasks:           []*models.Task{task},
		TaskCounter:     8,
		UsedTaskNumbers: []string{"M007"},
	}

	if err := gw.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := gw.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.TaskCounter != 8 || len(out.UsedTaskNumbers) != 1 {
		t.Errorf("allocator state lost: counter=%d used=%v", out.TaskCounter, out.UsedTaskNumbers)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("loaded %d tasks, want 1", len(out.Tasks))
	}

	got := out.Tasks[0]
	if got.TaskNumber != task.TaskNumber || got.OrderNumber != task.OrderNumber || got.Title != task.Title {
		t.Errorf("task identity lost: %+v", got)
	}
	if !got.Created.Equal(task.Created) {
		t.Errorf("created = %v, want %v", got.Created, task.Created)
	}
	if !got.SentToTablet || got.Progress != 50 {
		t.Errorf("flags lost: %+v", got)
	}
	if len(got.History) != 2 {
		t.Fatalf("history has %d entries, want 2", len(got.History))
	}
	if got.History[0].Kind != models.AuditKindCreation || got.History[1].Action != "sent_to_tablet" {
		t.Errorf("history shape lost: %+v", got.History)
	}
	if len(got.Positions) != 1 || got.Positions[0].Completed != 2 {
		t.Errorf("positions lost: %+v", got.Positions)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	gw := NewFileGateway(dir)

	if err := gw.Save(models.NewSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := gw.Save(models.NewSnapshot()); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != SnapshotFileName {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("data dir contains %v, want only %s", names, SnapshotFileName)
	}
}

func TestLoadCorruptSnapshotReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SnapshotFileName)
	if err := os.WriteFile(path, []byte("{invalid: [yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	gw := NewFileGateway(dir)
	snapshot, err := gw.Load()
	if err == nil {
		t.Fatal("Load on corrupt file should error")
	}
	if snapshot != nil {
		t.Errorf("snapshot = %+v, want nil on corruption", snapshot)
	}
}

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings()
	if s.Operator == "" {
		t.Error("default operator must not be empty")
	}
}

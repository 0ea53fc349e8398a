package store

import (
	"testing"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

func TestAllocateSequence(t *testing.T) {
	a := NewNumberAllocator()

	want := []string{"M001", "M002", "M003"}
	for i, w := range want {
		if got := a.Allocate(); got != w {
			t.Errorf("allocation %d = %q, want %q", i+1, got, w)
		}
	}
}

func TestAllocateSkipsUsedNumbers(t *testing.T) {
	a := NewNumberAllocator()
	a.Restore(1, []string{"M001", "M002"}, nil)

	if got := a.Allocate(); got != "M003" {
		t.Errorf("Allocate() = %q, want M003", got)
	}
}

func TestAllocateNeverReturnsUsed(t *testing.T) {
	a := NewNumberAllocator()
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		n := a.Allocate()
		if _, dup := seen[n]; dup {
			t.Fatalf("Allocate() returned %q twice", n)
		}
		seen[n] = struct{}{}
	}
}

func TestReleasedNumberIsNotReused(t *testing.T) {
	a := NewNumberAllocator()
	a.Allocate() // M001
	a.Allocate() // M002
	a.Allocate() // M003

	a.Release("M002")
	if a.IsUsed("M002") {
		t.Error("M002 should not be reserved after release")
	}
	// The counter never walks back, so the next allocation moves on.
	if got := a.Allocate(); got != "M004" {
		t.Errorf("Allocate() after release = %q, want M004", got)
	}
}

func TestRestoreReconcilesCounter(t *testing.T) {
	tests := []struct {
		name        string
		counter     int
		used        []string
		taskNumbers []string
		wantNext    string
	}{
		{
			name:     "counter behind max suffix",
			counter:  2,
			used:     []string{"M005"},
			wantNext: "M006",
		},
		{
			name:        "task numbers extend used set",
			counter:     1,
			used:        []string{"M002"},
			taskNumbers: []string{"M007"},
			wantNext:    "M008",
		},
		{
			name:     "persisted counter ahead wins",
			counter:  42,
			used:     []string{"M003"},
			wantNext: "M042",
		},
		{
			name:     "empty snapshot starts at one",
			counter:  0,
			wantNext: "M001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tasks []*models.Task
			for _, n := range tt.taskNumbers {
				tasks = append(tasks, &models.Task{TaskNumber: n})
			}

			a := NewNumberAllocator()
			a.Restore(tt.counter, tt.used, tasks)

			for _, n := range tt.used {
				if !a.IsUsed(n) {
					t.Errorf("number %q should be reserved after restore", n)
				}
			}
			if got := a.Allocate(); got != tt.wantNext {
				t.Errorf("Allocate() = %q, want %q", got, tt.wantNext)
			}
		})
	}
}

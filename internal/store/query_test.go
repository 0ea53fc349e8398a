package store

import (
	"testing"
	"time"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

func sampleTasks(now time.Time) []*models.Task {
	return []*models.Task{
		{
			TaskNumber:  "M001",
			OrderNumber: "2025/001",
			Title:       "Pick bearings",
			Description: "line 3",
			Status:      models.TaskStatusCompleted,
			Priority:    models.PriorityUrgent,
			Created:     now,
			Progress:    100,
		},
		{
			TaskNumber:  "M002",
			OrderNumber: "2025/002",
			Title:       "Ship pallets",
			Status:      models.TaskStatusInProgress,
			Priority:    models.PriorityNormal,
			Created:     now.Add(-3 * 24 * time.Hour),
			Progress:    40,
		},
		{
			TaskNumber:  "M003",
			OrderNumber: "2024/118",
			Title:       "Write off packaging",
			Status:      models.TaskStatusCompleted,
			Priority:    models.PriorityLow,
			Created:     now.Add(-20 * 24 * time.Hour),
			Progress:    75,
		},
		{
			TaskNumber:  "M004",
			OrderNumber: "2024/090",
			Title:       "Count shelf stock",
			Status:      models.TaskStatusPaused,
			Priority:    models.PriorityImportant,
			Created:     now.Add(-40 * 24 * time.Hour),
			Progress:    10,
		},
	}
}

func numbers(tasks []*models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.TaskNumber
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterByStatusPreservesOrder(t *testing.T) {
	now := time.Now()
	tasks := sampleTasks(now)

	got := Filter(tasks, FilterCriteria{Status: models.TaskStatusCompleted}, now)
	if !equalStrings(numbers(got), []string{"M001", "M003"}) {
		t.Errorf("filtered = %v, want [M001 M003]", numbers(got))
	}
}

func TestFilterSearch(t *testing.T) {
	now := time.Now()
	tasks := sampleTasks(now)

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title case-insensitive", "PALLET", []string{"M002"}},
		{"description", "line 3", []string{"M001"}},
		{"task number", "m004", []string{"M004"}},
		{"order number", "2024/", []string{"M003", "M004"}},
		{"no match", "zzz", nil},
		{"empty matches all", "", []string{"M001", "M002", "M003", "M004"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tasks, FilterCriteria{Search: tt.search}, now)
			if !equalStrings(numbers(got), tt.want) {
				t.Errorf("Filter(search=%q) = %v, want %v", tt.search, numbers(got), tt.want)
			}
		})
	}
}

func TestFilterPeriod(t *testing.T) {
	now := time.Now()
	tasks := sampleTasks(now)

	tests := []struct {
		period Period
		want   []string
	}{
		{PeriodToday, []string{"M001"}},
		{PeriodWeek, []string{"M001", "M002"}},
		{PeriodMonth, []string{"M001", "M002", "M003"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			got := Filter(tasks, FilterCriteria{Period: tt.period}, now)
			if !equalStrings(numbers(got), tt.want) {
				t.Errorf("Filter(period=%s) = %v, want %v", tt.period, numbers(got), tt.want)
			}
		})
	}
}

func TestFilterPeriodTodayAcrossZones(t *testing.T) {
	// 01:30 local in UTC+3 is still the previous day in UTC. A task
	// created at this instant is stored in UTC but must count as today.
	zone := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2025, 6, 1, 1, 30, 0, 0, zone)
	tasks := []*models.Task{
		{TaskNumber: "M001", Created: now.UTC()},
		{TaskNumber: "M002", Created: now.UTC().Add(-24 * time.Hour)},
	}

	got := Filter(tasks, FilterCriteria{Period: PeriodToday}, now)
	if !equalStrings(numbers(got), []string{"M001"}) {
		t.Errorf("Filter(period=today) = %v, want [M001]", numbers(got))
	}
}

func TestFilterCriteriaAreANDed(t *testing.T) {
	now := time.Now()
	tasks := sampleTasks(now)

	got := Filter(tasks, FilterCriteria{
		Status:   models.TaskStatusCompleted,
		Priority: models.PriorityLow,
	}, now)
	if !equalStrings(numbers(got), []string{"M003"}) {
		t.Errorf("combined filter = %v, want [M003]", numbers(got))
	}
}

func TestSortCycleByProgress(t *testing.T) {
	now := time.Now()
	tasks := sampleTasks(now)
	original := numbers(tasks)

	asc := Sort(tasks, SortByProgress, SortAsc)
	if !equalStrings(numbers(asc), []string{"M004", "M002", "M003", "M001"}) {
		t.Errorf("asc = %v", numbers(asc))
	}

	desc := Sort(tasks, SortByProgress, SortDesc)
	if !equalStrings(numbers(desc), []string{"M001", "M003", "M002", "M004"}) {
		t.Errorf("desc = %v", numbers(desc))
	}

	none := Sort(tasks, SortByProgress, SortNone)
	if !equalStrings(numbers(none), original) {
		t.Errorf("none = %v, want original order %v", numbers(none), original)
	}

	// The input slice must never be reordered.
	if !equalStrings(numbers(tasks), original) {
		t.Errorf("input mutated: %v", numbers(tasks))
	}
}

func TestSortByCreated(t *testing.T) {
	now := time.Now()
	tasks := sampleTasks(now)

	got := Sort(tasks, SortByCreated, SortAsc)
	if !equalStrings(numbers(got), []string{"M004", "M003", "M002", "M001"}) {
		t.Errorf("created asc = %v", numbers(got))
	}
}

func TestSortByPriorityRank(t *testing.T) {
	now := time.Now()
	tasks := sampleTasks(now)

	got := Sort(tasks, SortByPriority, SortDesc)
	if !equalStrings(numbers(got), []string{"M001", "M004", "M002", "M003"}) {
		t.Errorf("priority desc = %v", numbers(got))
	}
}

func TestSortStateToggle(t *testing.T) {
	var s SortState

	s.Toggle(SortByProgress)
	if s.Field != SortByProgress || s.Direction != SortAsc {
		t.Fatalf("first toggle = %+v, want progress asc", s)
	}
	s.Toggle(SortByProgress)
	if s.Direction != SortDesc {
		t.Fatalf("second toggle = %+v, want desc", s)
	}
	s.Toggle(SortByProgress)
	if s.Direction != SortNone {
		t.Fatalf("third toggle = %+v, want none", s)
	}
	s.Toggle(SortByProgress)
	if s.Direction != SortAsc {
		t.Fatalf("fourth toggle = %+v, want asc again", s)
	}

	// Selecting another column resets to asc.
	s.Toggle(SortByProgress) // now desc
	s.Toggle(SortByTitle)
	if s.Field != SortByTitle || s.Direction != SortAsc {
		t.Fatalf("column switch = %+v, want title asc", s)
	}
}

package store

import (
	"sort"
	"strings"
	"time"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

// Period restricts a filter to tasks created within a window ending now.
type Period string

// Supported creation-date windows.
const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// FilterCriteria describes which tasks to keep. Zero-valued dimensions
// match everything; non-zero dimensions are ANDed together.
type FilterCriteria struct {
	Status   models.TaskStatus
	Priority models.TaskPriority
	Period   Period
	Search   string
}

// Filter returns the tasks matching the criteria, preserving relative
// order. The input is never mutated.
func Filter(tasks []*models.Task, c FilterCriteria, now time.Time) []*models.Task {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	var out []*models.Task
	for _, t := range tasks {
		if c.Status != "" && t.Status != c.Status {
			continue
		}
		if c.Priority != "" && t.Priority != c.Priority {
			continue
		}
		if c.Period != "" && !inPeriod(t.Created, c.Period, now) {
			continue
		}
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchesSearch looks for the lowercased needle in title, description,
// task number and order number.
func matchesSearch(t *models.Task, needle string) bool {
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle) ||
		strings.Contains(strings.ToLower(t.TaskNumber), needle) ||
		strings.Contains(strings.ToLower(t.OrderNumber), needle)
}

// inPeriod checks the creation time against a window ending now. Month
// is a calendar-month subtraction, not a fixed 30 days.
func inPeriod(created time.Time, p Period, now time.Time) bool {
	switch p {
	case PeriodToday:
		// Created is stored in UTC; compare calendar dates in the
		// caller's zone or early-morning tasks land on "yesterday".
		cy, cm, cd := created.In(now.Location()).Date()
		ny, nm, nd := now.Date()
		return cy == ny && cm == nm && cd == nd
	case PeriodWeek:
		return !created.Before(now.Add(-7 * 24 * time.Hour))
	case PeriodMonth:
		return !created.Before(now.AddDate(0, -1, 0))
	default:
		return true
	}
}

// SortField names a sortable task column.
type SortField string

// Sortable columns.
const (
	SortByNumber   SortField = "number"
	SortByOrder    SortField = "order"
	SortByTitle    SortField = "title"
	SortByPriority SortField = "priority"
	SortByStatus   SortField = "status"
	SortByCreated  SortField = "created"
	SortByProgress SortField = "progress"
)

// SortDirection is one step of the none/asc/desc cycle.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// priorityRank orders priorities from least to most urgent.
var priorityRank = map[models.TaskPriority]int{
	models.PriorityLow:       0,
	models.PriorityNormal:    1,
	models.PriorityImportant: 2,
	models.PriorityUrgent:    3,
}

// Sort returns a sorted copy of tasks. SortNone restores the input
// (insertion) order. The input slice is never mutated.
func Sort(tasks []*models.Task, field SortField, direction SortDirection) []*models.Task {
	out := append([]*models.Task(nil), tasks...)
	if direction == SortNone {
		return out
	}

	less := lessFunc(field)
	sort.SliceStable(out, func(i, j int) bool {
		if direction == SortDesc {
			i, j = j, i
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(field SortField) func(a, b *models.Task) bool {
	switch field {
	case SortByOrder:
		return func(a, b *models.Task) bool { return a.OrderNumber < b.OrderNumber }
	case SortByTitle:
		return func(a, b *models.Task) bool { return a.Title < b.Title }
	case SortByPriority:
		return func(a, b *models.Task) bool { return priorityRank[a.Priority] < priorityRank[b.Priority] }
	case SortByStatus:
		return func(a, b *models.Task) bool { return a.Status < b.Status }
	case SortByCreated:
		return func(a, b *models.Task) bool { return a.Created.Before(b.Created) }
	case SortByProgress:
		return func(a, b *models.Task) bool { return a.Progress < b.Progress }
	default:
		return func(a, b *models.Task) bool { return a.TaskNumber < b.TaskNumber }
	}
}

// SortState tracks the column and direction selected in a list view.
type SortState struct {
	Field     SortField
	Direction SortDirection
}

// Toggle advances the state for a column selection: repeated selection
// of the same column cycles none, asc, desc, none; selecting a
// different column starts over at asc.
func (s *SortState) Toggle(field SortField) {
	if s.Field != field {
		s.Field = field
		s.Direction = SortAsc
		return
	}
	switch s.Direction {
	case SortNone:
		s.Direction = SortAsc
	case SortAsc:
		s.Direction = SortDesc
	default:
		s.Direction = SortNone
	}
}

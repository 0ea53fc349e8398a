// Package store owns the in-memory task collection and everything that
// mutates it: number allocation, audit history, filtering and sorting,
// and best-effort snapshotting through a persistence gateway.
package store

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"time"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

// Gateway persists store snapshots. The in-memory collection stays
// authoritative: a failed save is logged, never fatal.
type Gateway interface {
	Save(snapshot *models.Snapshot) error
	Load() (*models.Snapshot, error)
}

// EventType classifies store change notifications.
type EventType int

// Event types emitted to subscribers.
const (
	EventCreated EventType = iota
	EventUpdated
	EventDeleted
	EventReloaded
)

// Event notifies subscribers that the collection changed.
type Event struct {
	Type       EventType
	TaskNumber string
}

// Store holds the task collection. All operations run on the caller's
// goroutine; there is exactly one mutator at a time in this application,
// so the store does no locking of its own.
type Store struct {
	gateway Gateway
	user    string
	now     func() time.Time

	tasks []*models.Task // insertion order
	index map[string]*models.Task
	alloc *NumberAllocator
	subs  []chan Event
}

// New creates an empty store. The user name is stamped on every audit
// entry the store appends.
func New(gateway Gateway, user string) *Store {
	return &Store{
		gateway: gateway,
		user:    user,
		now:     time.Now,
		index:   make(map[string]*models.Task),
		alloc:   NewNumberAllocator(),
	}
}

// Load replaces the collection with the persisted snapshot. An absent
// or corrupt snapshot leaves the store empty so the caller can seed
// sample data.
func (s *Store) Load() error {
	snapshot, err := s.gateway.Load()
	if err != nil {
		log.Printf("Warning: snapshot load failed, starting empty: %v", err)
		snapshot = nil
	}
	if snapshot == nil {
		snapshot = models.NewSnapshot()
	}

	s.tasks = snapshot.Tasks
	s.index = make(map[string]*models.Task, len(s.tasks))
	for _, t := range s.tasks {
		s.index[t.TaskNumber] = t
	}
	s.alloc.Restore(snapshot.TaskCounter, snapshot.UsedTaskNumbers, s.tasks)

	s.notify(Event{Type: EventReloaded})
	return err
}

// Empty reports whether the store holds no tasks at all.
func (s *Store) Empty() bool {
	return len(s.tasks) == 0
}

// Subscribe returns a channel of change events. Delivery is best
// effort: a subscriber that stops draining misses events rather than
// blocking mutations.
func (s *Store) Subscribe() <-chan Event {
	ch := make(chan Event, 16)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *Store) notify(e Event) {
	for _, ch := range s.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Draft holds the caller-supplied fields for a new task.
type Draft struct {
	OrderNumber string
	Title       string
	Description string
	Priority    models.TaskPriority
	Type        models.TaskType
	Positions   []models.Position
	Progress    int
}

var orderNumberPattern = regexp.MustCompile(`^(\d{4})/\d{3}$`)

// orderNumberYearWindow is how many years back an order number may
// reach; one year ahead is always allowed.
const orderNumberYearWindow = 4

// validateOrderNumber checks the YYYY/NNN pattern and the year window
// [currentYear-4, currentYear+1].
func validateOrderNumber(orderNumber string, now time.Time) error {
	m := orderNumberPattern.FindStringSubmatch(orderNumber)
	if m == nil {
		return &ValidationError{Field: "order_number", Reason: "must match YYYY/NNN, e.g. 2024/038"}
	}
	year, _ := strconv.Atoi(m[1])
	current := now.Year()
	if year < current-orderNumberYearWindow || year > current+1 {
		return &ValidationError{Field: "order_number", Reason: "year out of range"}
	}
	return nil
}

// validatePositions checks the 0 <= completed <= quantity invariant on
// every line item.
func validatePositions(positions []models.Position) error {
	for _, p := range positions {
		if p.Quantity < 0 || p.Completed < 0 || p.Completed > p.Quantity {
			return &ValidationError{
				Field:  "positions",
				Reason: fmt.Sprintf("position %s: completed %d out of range 0..%d", p.SKU, p.Completed, p.Quantity),
			}
		}
	}
	return nil
}

// Create validates the draft, allocates a task number and inserts the
// new task. The first history entry records the creation.
func (s *Store) Create(draft Draft) (*models.Task, error) {
	now := s.now()
	if err := validateOrderNumber(draft.OrderNumber, now); err != nil {
		return nil, err
	}
	if err := validatePositions(draft.Positions); err != nil {
		return nil, err
	}

	if draft.Priority == "" {
		draft.Priority = models.PriorityNormal
	}
	if draft.Type == "" {
		draft.Type = models.TypePicking
	}

	t := &models.Task{
		TaskNumber:  s.alloc.Allocate(),
		OrderNumber: draft.OrderNumber,
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		Status:      models.TaskStatusDevelopment,
		Type:        draft.Type,
		Created:     now.UTC(),
		Positions:   append([]models.Position(nil), draft.Positions...),
	}
	if len(t.Positions) > 0 {
		t.RecalcProgress()
	} else {
		t.Progress = clampProgress(draft.Progress)
	}
	appendHistory(t, models.NewCreationEntry(now, s.user, t.Status))

	s.tasks = append(s.tasks, t)
	s.index[t.TaskNumber] = t

	s.persist()
	s.notify(Event{Type: EventCreated, TaskNumber: t.TaskNumber})
	return t.Clone(), nil
}

// UpdateOptions contains the patch for an existing task. Nil fields are
// left untouched.
type UpdateOptions struct {
	OrderNumber *string
	Title       *string
	Description *string
	Priority    *models.TaskPriority
	Status      *models.TaskStatus
	Type        *models.TaskType
	Positions   []models.Position // nil = unchanged
}

// Update applies a patch to a task. Changes to title, priority and
// status are recorded in the history together with the comment; a patch
// that changes none of them appends nothing regardless of the comment.
func (s *Store) Update(taskNumber string, patch UpdateOptions, comment string) (*models.Task, error) {
	t, ok := s.index[taskNumber]
	if !ok {
		return nil, &NotFoundError{TaskNumber: taskNumber}
	}

	now := s.now()
	if patch.OrderNumber != nil {
		if err := validateOrderNumber(*patch.OrderNumber, now); err != nil {
			return nil, err
		}
	}
	if patch.Positions != nil {
		if err := validatePositions(patch.Positions); err != nil {
			return nil, err
		}
	}

	old := t.Clone()

	if patch.OrderNumber != nil {
		t.OrderNumber = *patch.OrderNumber
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Positions != nil {
		t.Positions = append([]models.Position(nil), patch.Positions...)
		t.RecalcProgress()
	}

	if entries := diffTasks(old, t, now, s.user, comment); len(entries) > 0 {
		appendHistory(t, entries...)
	}
	t.Touch(now)

	s.persist()
	s.notify(Event{Type: EventUpdated, TaskNumber: taskNumber})
	return t.Clone(), nil
}

// SendToTablet marks the task as dispatched to a field device. Sending
// twice is reported as AlreadySentError so the caller can surface a
// warning.
func (s *Store) SendToTablet(taskNumber string) (*models.Task, error) {
	t, ok := s.index[taskNumber]
	if !ok {
		return nil, &NotFoundError{TaskNumber: taskNumber}
	}
	if t.SentToTablet {
		return nil, &AlreadySentError{TaskNumber: taskNumber}
	}

	now := s.now()
	t.SentToTablet = true
	t.Touch(now)
	appendHistory(t, models.NewFreeformEntry(now, s.user, "sent_to_tablet", "dispatched to tablet"))

	s.persist()
	s.notify(Event{Type: EventUpdated, TaskNumber: taskNumber})
	return t.Clone(), nil
}

// Delete removes a task. Tasks already dispatched to a tablet are soft
// deleted: the status flips to deleted, the task stays queryable and
// its number stays reserved. Never-dispatched tasks are removed
// entirely and their number released.
func (s *Store) Delete(taskNumber string) (softDeleted bool, err error) {
	t, ok := s.index[taskNumber]
	if !ok {
		return false, &NotFoundError{TaskNumber: taskNumber}
	}
	// Already archived: nothing left to do, and the history must not
	// collect duplicate terminal entries.
	if t.IsDeleted() {
		return true, nil
	}

	now := s.now()
	if t.SentToTablet {
		t.Status = models.TaskStatusDeleted
		t.Touch(now)
		appendHistory(t, models.NewFreeformEntry(now, s.user, "deleted", "archived"))
		softDeleted = true
	} else {
		for i, cur := range s.tasks {
			if cur.TaskNumber == taskNumber {
				s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
				break
			}
		}
		delete(s.index, taskNumber)
		s.alloc.Release(taskNumber)
	}

	s.persist()
	s.notify(Event{Type: EventDeleted, TaskNumber: taskNumber})
	return softDeleted, nil
}

// Get retrieves a task by number, including soft-deleted ones.
func (s *Store) Get(taskNumber string) (*models.Task, error) {
	t, ok := s.index[taskNumber]
	if !ok {
		return nil, &NotFoundError{TaskNumber: taskNumber}
	}
	return t.Clone(), nil
}

// ListOptions contains options for listing tasks.
type ListOptions struct {
	Criteria       *FilterCriteria
	Sort           *SortState
	IncludeDeleted bool
}

// List returns tasks in insertion order, optionally filtered and
// sorted. The result holds clones; mutating it never touches the
// collection.
func (s *Store) List(opts ListOptions) []*models.Task {
	tasks := s.tasks
	if !opts.IncludeDeleted {
		visible := make([]*models.Task, 0, len(tasks))
		for _, t := range tasks {
			if !t.IsDeleted() {
				visible = append(visible, t)
			}
		}
		tasks = visible
	}
	if opts.Criteria != nil {
		tasks = Filter(tasks, *opts.Criteria, s.now())
	}
	if opts.Sort != nil {
		tasks = Sort(tasks, opts.Sort.Field, opts.Sort.Direction)
	}

	out := make([]*models.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// persist snapshots the whole collection. In-memory state remains the
// source of truth, so failures degrade to a logged warning.
func (s *Store) persist() {
	counter, used := s.alloc.State()
	snapshot := &models.Snapshot{
		Version:         1,
		Tasks:           s.tasks,
		TaskCounter:     counter,
		UsedTaskNumbers: used,
	}
	if err := s.gateway.Save(snapshot); err != nil {
		log.Printf("Warning: %v", &PersistenceError{Op: "save", Err: err})
	}
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

// taskNumberPrefix is the letter every task number starts with.
const taskNumberPrefix = "M"

// NumberAllocator hands out unique M### task numbers. The counter only
// ever moves forward; numbers released by hard deletes are dropped from
// the used set but the counter never walks back to them, so they are
// not reissued in normal operation.
type NumberAllocator struct {
	counter int
	used    map[string]struct{}
}

// NewNumberAllocator creates an allocator starting at M001.
func NewNumberAllocator() *NumberAllocator {
	return &NumberAllocator{
		counter: 1,
		used:    make(map[string]struct{}),
	}
}

// Allocate returns the next free task number and marks it used.
func (a *NumberAllocator) Allocate() string {
	for {
		n := fmt.Sprintf("%s%03d", taskNumberPrefix, a.counter)
		a.counter++
		if _, taken := a.used[n]; taken {
			continue
		}
		a.used[n] = struct{}{}
		return n
	}
}

// Release frees a task number after a hard delete. The counter is left
// untouched.
func (a *NumberAllocator) Release(taskNumber string) {
	delete(a.used, taskNumber)
}

// IsUsed reports whether a task number is currently reserved.
func (a *NumberAllocator) IsUsed(taskNumber string) bool {
	_, ok := a.used[taskNumber]
	return ok
}

// Restore rebuilds allocator state from a snapshot. The used set is the
// union of the persisted set and the numbers of all loaded tasks, and
// the counter is reconciled so no existing number can be allocated
// again after a restart.
func (a *NumberAllocator) Restore(counter int, usedNumbers []string, tasks []*models.Task) {
	a.used = make(map[string]struct{}, len(usedNumbers)+len(tasks))
	maxSuffix := 0
	note := func(n string) {
		if n == "" {
			return
		}
		a.used[n] = struct{}{}
		if s, err := strconv.Atoi(strings.TrimPrefix(n, taskNumberPrefix)); err == nil && s > maxSuffix {
			maxSuffix = s
		}
	}
	for _, n := range usedNumbers {
		note(n)
	}
	for _, t := range tasks {
		note(t.TaskNumber)
	}

	a.counter = maxSuffix + 1
	if counter > a.counter {
		a.counter = counter
	}
	if a.counter < 1 {
		a.counter = 1
	}
}

// State exports the allocator for snapshotting. The used set is sorted
// so snapshots are stable across saves.
func (a *NumberAllocator) State() (counter int, usedNumbers []string) {
	usedNumbers = make([]string, 0, len(a.used))
	for n := range a.used {
		usedNumbers = append(usedNumbers, n)
	}
	sort.Strings(usedNumbers)
	return a.counter, usedNumbers
}

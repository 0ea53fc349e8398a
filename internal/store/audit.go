package store

import (
	"time"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

// defaultComment is recorded when an edit changes tracked fields but
// the operator left the comment empty.
const defaultComment = "no comment"

// diffTasks compares the tracked fields of two task states and returns
// one field-change entry per field that differs. Fields outside the
// tracked set (description, positions, order number) mutate silently.
// A nil result means the edit does not grow the history at all, even
// when a comment was supplied.
func diffTasks(old, new *models.Task, now time.Time, user, comment string) []models.AuditEntry {
	if comment == "" {
		comment = defaultComment
	}

	var entries []models.AuditEntry
	if old.Title != new.Title {
		entries = append(entries, models.NewFieldChangeEntry(now, user, "title", old.Title, new.Title, comment))
	}
	if old.Priority != new.Priority {
		entries = append(entries, models.NewFieldChangeEntry(now, user, "priority", string(old.Priority), string(new.Priority), comment))
	}
	if old.Status != new.Status {
		entries = append(entries, models.NewFieldChangeEntry(now, user, "status", string(old.Status), string(new.Status), comment))
	}
	return entries
}

// appendHistory pushes entries to the end of the task history. The
// caller supplies timestamps; no monotonicity check is made.
func appendHistory(t *models.Task, entries ...models.AuditEntry) {
	t.History = append(t.History, entries...)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditKind discriminates the shape of an audit entry.
type AuditKind string

const (
	AuditKindCreation    AuditKind = "creation"
	AuditKindFieldChange AuditKind = "field_change"
	AuditKindFreeform    AuditKind = "freeform"
)

// AuditEntry is one immutable record in a task's history. Entries are
// appended by the store and never edited, reordered or removed.
//
// The shape depends on Kind: creation and field_change entries carry
// Field/OldValue/NewValue, freeform entries carry only Action and
// Comment. The constructors below are the only intended way to build
// entries.
type AuditEntry struct {
	ID        string    `yaml:"id"`
	Kind      AuditKind `yaml:"kind"`
	Timestamp time.Time `yaml:"timestamp"`
	User      string    `yaml:"user"`
	Action    string    `yaml:"action"`
	Comment   string    `yaml:"comment,omitempty"`
	Field     string    `yaml:"field,omitempty"`
	OldValue  string    `yaml:"old_value,omitempty"`
	NewValue  string    `yaml:"new_value,omitempty"`
	Details   string    `yaml:"details,omitempty"`
}

// NewCreationEntry builds the first history entry of a task.
func NewCreationEntry(now time.Time, user string, status TaskStatus) AuditEntry {
	return AuditEntry{
		ID:        uuid.New().String(),
		Kind:      AuditKindCreation,
		Timestamp: now.UTC(),
		User:      user,
		Action:    "created",
		Field:     "status",
		OldValue:  "",
		NewValue:  string(status),
	}
}

// NewFieldChangeEntry builds an entry describing a single tracked-field
// transition.
func NewFieldChangeEntry(now time.Time, user, field, oldValue, newValue, comment string) AuditEntry {
	return AuditEntry{
		ID:        uuid.New().String(),
		Kind:      AuditKindFieldChange,
		Timestamp: now.UTC(),
		User:      user,
		Action:    "changed",
		Comment:   comment,
		Field:     field,
		OldValue:  oldValue,
		NewValue:  newValue,
	}
}

// NewFreeformEntry builds an entry for actions that are not tied to a
// tracked field, such as sending a task to a tablet.
func NewFreeformEntry(now time.Time, user, action, comment string) AuditEntry {
	return AuditEntry{
		ID:        uuid.New().String(),
		Kind:      AuditKindFreeform,
		Timestamp: now.UTC(),
		User:      user,
		Action:    action,
		Comment:   comment,
	}
}

package models

// Snapshot is the durable on-disk representation of the whole store.
// This corresponds to the tasks.yaml file in the data directory.
type Snapshot struct {
	Version         int      `yaml:"version"`
	Tasks           []*Task  `yaml:"tasks"`
	TaskCounter     int      `yaml:"task_counter"`
	UsedTaskNumbers []string `yaml:"used_task_numbers"`
}

// NewSnapshot creates an empty snapshot with the current schema version.
func NewSnapshot() *Snapshot {
	return &Snapshot{Version: 1, TaskCounter: 1}
}

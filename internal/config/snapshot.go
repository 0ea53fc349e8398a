package config

import (
	"path/filepath"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

// FileGateway persists store snapshots as a YAML file in a data
// directory. It implements the store's Gateway interface.
type FileGateway struct {
	dir string
}

// NewFileGateway creates a gateway rooted at dir.
func NewFileGateway(dir string) *FileGateway {
	return &FileGateway{dir: dir}
}

// DefaultGateway creates a gateway rooted at the user's data directory.
func DefaultGateway() (*FileGateway, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	return NewFileGateway(dir), nil
}

func (g *FileGateway) path() string {
	return filepath.Join(g.dir, SnapshotFileName)
}

// Save writes the snapshot to disk.
func (g *FileGateway) Save(snapshot *models.Snapshot) error {
	return SaveYAML(g.path(), snapshot)
}

// Load reads the snapshot from disk. A missing file yields (nil, nil)
// so the caller can start from an empty store; a corrupt file yields an
// error alongside the nil snapshot and the caller degrades the same way.
func (g *FileGateway) Load() (*models.Snapshot, error) {
	path := g.path()
	if !FileExists(path) {
		return nil, nil
	}

	var snapshot models.Snapshot
	if err := LoadYAML(path, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

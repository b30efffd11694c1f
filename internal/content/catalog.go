// Package content holds the seeded feed collections (signal stories, voices,
// winwires) and keeps them fresh when the seed file changes on disk.
package content

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"sigdesk/internal/logger"
	"sigdesk/internal/types"

	"github.com/fsnotify/fsnotify"
)

// Snapshot is one immutable view of the seeded collections.
type Snapshot struct {
	Stories  []types.SignalStory
	Voices   []types.Voice
	Winwires []types.Winwire
	LoadedAt time.Time
}

// Catalog serves the current content snapshot. Reads never block a reload; a
// failed reload keeps the previous snapshot.
type Catalog struct {
	path string

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewCatalog loads the seed at path.
func NewCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("content catalog requires a seed path")
	}
	snap, err := loadSeed(path)
	if err != nil {
		return nil, err
	}
	return &Catalog{path: path, snapshot: snap}, nil
}

// NewStatic builds a catalog over fixed collections, for tests and for
// callers that seed content programmatically.
func NewStatic(stories []types.SignalStory, voices []types.Voice, winwires []types.Winwire) *Catalog {
	return &Catalog{snapshot: Snapshot{
		Stories:  stories,
		Voices:   voices,
		Winwires: winwires,
		LoadedAt: time.Now(),
	}}
}

// Snapshot returns the current snapshot. The slices are shared, read-only by
// convention; the aggregator never mutates them.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Reload re-reads the seed file. On failure the previous snapshot stays
// active and the error is returned.
func (c *Catalog) Reload() error {
	if c.path == "" {
		return fmt.Errorf("content catalog has no seed path")
	}
	snap, err := loadSeed(c.path)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()
	logger.Infof("content seed reloaded (%d stories, %d voices, %d winwires)",
		len(snap.Stories), len(snap.Voices), len(snap.Winwires))
	return nil
}

// Watch reloads the catalog whenever the seed file is rewritten. It blocks
// until ctx is done.
func (c *Catalog) Watch(ctx context.Context) error {
	if c.path == "" {
		return fmt.Errorf("content catalog has no seed path")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Watch the directory, not the file: editors replace files on save and
	// the inode-level watch would be lost.
	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		return err
	}
	target := filepath.Clean(c.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(evt.Name) != target {
				continue
			}
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
				continue
			}
			if err := c.Reload(); err != nil {
				logger.Errorf("content seed reload failed, keeping previous snapshot: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("content seed watcher error: %v", err)
		}
	}
}

package toml

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"reflect"

	"github.com/bnema/bsky-accounts-cli/internal/ports"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the document whenever another process rewrites it, notifying
// subscribers with a reload event. The store's own atomic rewrites also land
// here but are filtered out by comparing the decoded document against the
// in-memory state. Watch returns once the watcher is installed; it stops when
// ctx is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create accounts watcher: %w", err)
	}

	// The document is replaced via rename, so the watch has to sit on the
	// directory rather than the file itself.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch accounts directory: %w", err)
	}

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != s.path {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
					continue
				}
				s.reload()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Debug("accounts watcher error", "path", s.path, "error", err)
			}
		}
	}()

	return nil
}

func (s *Store) reload() {
	file, err := readDocument(s.path)
	if err != nil {
		slog.Debug("reload accounts file", "path", s.path, "error", err)
		return
	}

	s.mu.Lock()
	current := fileSchema{Version: currentSchemaVersion, Active: string(s.active)}
	for _, account := range s.accounts {
		current.Accounts = append(current.Accounts, toSchema(account))
	}

	if reflect.DeepEqual(file, current) {
		s.mu.Unlock()
		return
	}

	s.adopt(file)
	s.mu.Unlock()

	slog.Debug("accounts file changed externally", "path", s.path)
	s.notify(ports.StoreEvent{Kind: ports.StoreEventReload})
}

package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Source is the recursive filesystem watcher over the managed root
// It emits Created/Modified/Deleted events for
// supported files and filters directory events, hidden files, anything
// under the staging directory, and unsupported extensions. A watcher
// Rename on a path is treated as Deleted for that path; the
// corresponding Created for the destination arrives as its own event,
// which is how a move is decomposed per the spec.
type Source struct {
	watcher       *fsnotify.Watcher
	root          string
	stagingDir    string
	supportedExts map[string]struct{}
	logger        *slog.Logger
}

// NewSource builds a Source watching root (and every subdirectory
// beneath it, including managed `<PREFIX>*` folders — the watcher does
// not filter those, only the staging directory and non-file entries).
func NewSource(root, stagingDir string, supportedExts []string, logger *slog.Logger) (*Source, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	exts := make(map[string]struct{}, len(supportedExts))
	for _, e := range supportedExts {
		exts[strings.ToLower(e)] = struct{}{}
	}

	s := &Source{
		watcher:       w,
		root:          root,
		stagingDir:    stagingDir,
		supportedExts: exts,
		logger:        logger,
	}

	if err := s.addRecursive(root); err != nil {
		w.Close()
		return nil, err
	}
	return s, nil
}

// addRecursive adds a watch on dir and every directory beneath it.
// Unreadable subdirectories are skipped rather than aborting the whole
// walk — a single permission-denied folder shouldn't take the watcher
// down.
func (s *Source) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if addErr := s.watcher.Add(path); addErr != nil && s.logger != nil {
				s.logger.Warn("failed to watch directory", "path", path, "error", addErr)
			}
		}
		return nil
	})
}

// Run blocks, delivering events to out until ctx is cancelled or the
// underlying watcher closes.
func (s *Source) Run(ctx context.Context, out chan<- Event) error {
	defer s.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return nil
			}
			s.handle(ev, out)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return nil
			}
			if s.logger != nil {
				s.logger.Warn("watcher error", "error", err)
			}
		}
	}
}

func (s *Source) handle(ev fsnotify.Event, out chan<- Event) {
	info, statErr := os.Lstat(ev.Name)
	isDir := statErr == nil && info.IsDir()

	if ev.Op&fsnotify.Create != 0 && isDir {
		// A newly created directory (a managed cluster folder, or one
		// the user made) must itself be watched so files dropped
		// inside it later are seen (directory events
		// are filtered, but the watcher is recursive).
		s.addRecursive(ev.Name)
		return
	}
	if isDir {
		return
	}
	if s.shouldIgnore(ev.Name) {
		return
	}

	switch {
	case ev.Op&fsnotify.Create != 0:
		s.emit(out, Created, ev.Name)
	case ev.Op&fsnotify.Write != 0:
		s.emit(out, Modified, ev.Name)
	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		s.emit(out, Deleted, ev.Name)
	}
}

func (s *Source) shouldIgnore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if s.underStaging(path) {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	_, supported := s.supportedExts[ext]
	return !supported
}

func (s *Source) underStaging(path string) bool {
	staging, err := filepath.Abs(s.stagingDir)
	if err != nil {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(staging, abs)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && rel != "")
}

func (s *Source) emit(out chan<- Event, kind Kind, path string) {
	select {
	case out <- Event{Kind: kind, Path: path}:
	default:
		if s.logger != nil {
			s.logger.Warn("event channel full, dropping event", "path", path, "kind", kind.String())
		}
	}
}

// Close releases the underlying watcher resources.
func (s *Source) Close() error {
	return s.watcher.Close()
}

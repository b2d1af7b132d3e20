// Package organiser mirrors cluster assignments to the on-disk folder
// layout: it creates/maintains `<PREFIX><cluster_name>`
// folders, moves files into the one matching their current cluster, and
// prunes managed folders that are now empty.
package organiser

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// SyncFolders ensures a folder exists for each cluster in clusterMap
// (keyed by cluster name, valued by the file paths currently assigned to
// it), moves every file whose parent isn't already that folder, and
// removes now-empty managed folders. Per-file move failures are logged
// and do not abort the rest of the batch. Returns the
// {old_path -> new_path} map of moves actually performed.
func SyncFolders(root, prefix string, clusterMap map[string][]string, logger *slog.Logger) map[string]string {
	moves := make(map[string]string)

	for name, paths := range clusterMap {
		folder := filepath.Join(root, prefix+name)
		if err := os.MkdirAll(folder, 0755); err != nil {
			if logger != nil {
				logger.Warn("failed to create managed folder", "folder", folder, "error", err)
			}
			continue
		}

		for _, path := range paths {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if filepath.Dir(path) == folder {
				continue
			}

			dest := resolveCollision(filepath.Join(folder, filepath.Base(path)))
			if err := movePath(path, dest); err != nil {
				if logger != nil {
					logger.Warn("failed to move file", "path", path, "dest", dest, "error", err)
				}
				continue
			}
			moves[path] = dest
		}
	}

	pruneEmptyManagedFolders(root, prefix, logger)
	return moves
}

// resolveCollision appends `_1`, `_2`, ... to dest's stem until the
// path doesn't already exist, preserving the extension.
func resolveCollision(dest string) string {
	if _, err := os.Stat(dest); err != nil {
		return dest
	}

	dir := filepath.Dir(dest)
	ext := filepath.Ext(dest)
	stem := strings.TrimSuffix(filepath.Base(dest), ext)

	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, stem+"_"+strconv.Itoa(counter)+ext)
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}

// movePath renames src to dest, falling back to copy+delete when the
// rename fails because the paths cross filesystem boundaries.
func movePath(src, dest string) error {
	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	return copyThenDelete(src, dest)
}

func copyThenDelete(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}

// pruneEmptyManagedFolders removes direct children of root whose name
// starts with prefix and which are now empty. It does not recurse into
// subfolders, and never touches non-managed directories.
func pruneEmptyManagedFolders(root, prefix string, logger *slog.Logger) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to list root for pruning", "root", root, "error", err)
		}
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		folder := filepath.Join(root, entry.Name())
		contents, err := os.ReadDir(folder)
		if err != nil || len(contents) > 0 {
			continue
		}
		if err := os.Remove(folder); err != nil && logger != nil {
			logger.Warn("failed to remove empty managed folder", "folder", folder, "error", err)
		}
	}
}

// BuildClusterMap groups file paths by the cluster name they're
// currently assigned to, given a file path ->
// cluster id assignment and a cluster id -> name lookup.
func BuildClusterMap(assignments map[string]int, names map[int]string) map[string][]string {
	clusterMap := make(map[string][]string)
	for path, clusterID := range assignments {
		name, ok := names[clusterID]
		if !ok {
			name = "Cluster_" + strconv.Itoa(clusterID)
		}
		clusterMap[name] = append(clusterMap[name], path)
	}
	return clusterMap
}

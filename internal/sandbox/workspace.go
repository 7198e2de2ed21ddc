package sandbox

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is one request's scratch directory on the shared volume, known
// under both path views. It is created in the compile stage and owned jointly
// with the container until cleanup removes both.
type Workspace struct {
	Dir     string // path inside this process's mount namespace
	HostDir string // same directory as the container daemon sees it
}

// NewWorkspace allocates a uniquely named directory under the container-side
// sandbox root. Names come from a collision-free allocator so concurrent
// requests never share a directory.
func NewWorkspace(roots Roots) (*Workspace, error) {
	name := "job-" + uuid.NewString()
	dir := filepath.Join(roots.Container, name)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workspace directory: %w", err)
	}

	return &Workspace{Dir: dir, HostDir: roots.HostDir(dir)}, nil
}

// WriteFile places a file inside the workspace, creating intermediate
// directories for nested paths (project layouts like SandboxApp/Program.cs).
func (w *Workspace) WriteFile(rel string, contents string) error {
	path := filepath.Join(w.Dir, rel)
	if dir := filepath.Dir(path); dir != w.Dir {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create workspace subdirectory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}

// Remove deletes the workspace recursively. Best-effort; cleanup paths
// swallow the error by contract.
func (w *Workspace) Remove() error {
	if w == nil || w.Dir == "" {
		return nil
	}
	return os.RemoveAll(w.Dir)
}

// ListStale returns workspace directories under root older than the given
// modification cutoff, in directory-name order. Used by the clean command to reap
// directories left behind by crashed workers.
func ListStale(root string, cutoff int64) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var stale []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().UnixNano() < cutoff {
			stale = append(stale, filepath.Join(root, entry.Name()))
		}
	}
	return stale, nil
}

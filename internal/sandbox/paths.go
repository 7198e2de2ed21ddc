package sandbox

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Default workspace root inside this service's own mount namespace.
const DefaultContainerRoot = "/sandbox"

// windowsDrivePath matches local drive-letter paths (C:\..., d:/...), which
// the container daemon cannot mount.
var windowsDrivePath = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// Roots holds the two views of the shared workspace volume: the path as this
// process sees it, and the same directory as the container daemon sees it.
type Roots struct {
	Container string
	Host      string
}

// PathError reports a misconfigured sandbox root. It surfaces at the input
// boundary, never as a sandbox failure.
type PathError struct {
	Var    string
	Reason string
	Hint   string
}

func (e *PathError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s\n  Hint: %s", e.Var, e.Reason, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Var, e.Reason)
}

// ResolveRoots reads CONTAINER_SANDBOX_ROOT and HOST_SANDBOX_ROOT from the
// environment. The host root is required and must be a Linux-style path the
// container daemon can bind-mount.
func ResolveRoots() (Roots, error) {
	containerRoot := os.Getenv("CONTAINER_SANDBOX_ROOT")
	if containerRoot == "" {
		containerRoot = DefaultContainerRoot
	}

	hostRoot := strings.TrimSpace(os.Getenv("HOST_SANDBOX_ROOT"))
	if hostRoot == "" {
		return Roots{}, &PathError{
			Var:    "HOST_SANDBOX_ROOT",
			Reason: "not set",
			Hint:   "export the workspace volume path as the container daemon sees it",
		}
	}

	if windowsDrivePath.MatchString(hostRoot) {
		return Roots{}, &PathError{
			Var:    "HOST_SANDBOX_ROOT",
			Reason: "must be a daemon-visible Linux path, not a drive-letter path",
			Hint:   "for Windows Docker Desktop use /run/desktop/mnt/host/<drive>/...",
		}
	}

	hostRoot = strings.TrimRight(strings.ReplaceAll(hostRoot, "\\", "/"), "/")

	return Roots{Container: containerRoot, Host: hostRoot}, nil
}

// HostDir translates a workspace directory created under the container root
// into the equivalent host path. Only the final path element carries identity;
// the two roots name the same directory.
func (r Roots) HostDir(workspaceDir string) string {
	return r.Host + "/" + filepath.Base(workspaceDir)
}

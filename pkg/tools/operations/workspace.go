package operations

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/hamzaessahbaoui/workspace-files/toolkit"
)

// Workspace is the single directory every file operation is confined to.
type Workspace struct {
	root   string
	logger *zap.Logger
}

// NewWorkspace resolves root to an absolute path and creates it if absent.
// A nil logger discards operation logs.
func NewWorkspace(root string, logger *zap.Logger) (*Workspace, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("workspace root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root %q: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace root %q: %w", abs, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workspace{root: abs, logger: logger}, nil
}

// Root returns the absolute workspace path.
func (w *Workspace) Root() string {
	return w.root
}

// resolve joins filename onto the root. Names that clean to the root itself or
// to anything outside it are rejected, so "../x" and "a/../../x" never escape.
// Symlinks inside the workspace are not followed for this check.
func (w *Workspace) resolve(filename string) (string, error) {
	full := filepath.Join(w.root, filename)
	rel, err := filepath.Rel(w.root, full)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", toolkit.Errorf(toolkit.CodeInvalidArguments, "Invalid filename '%s': path escapes workspace root", filename)
	}
	return full, nil
}

package operations

import (
	"github.com/hamzaessahbaoui/workspace-files/toolkit"
)

// Tool names exposed by the workspace.
const (
	ToolListFiles  = "list_files"
	ToolReadFile   = "read_file"
	ToolWriteFile  = "write_file"
	ToolEditFile   = "edit_file"
	ToolDeleteFile = "delete_file"
)

// Tools builds the five workspace tools bound to w.
func Tools(w *Workspace) []toolkit.Tool {
	return []toolkit.Tool{
		toolkit.NewTool(ToolListFiles, "List all files inside the workspace folder", w.ListFiles),
		toolkit.NewTool(ToolReadFile, "Read content of a file", w.ReadFile),
		toolkit.NewTool(ToolWriteFile, "Create or overwrite a file with given content", w.WriteFile),
		toolkit.NewTool(ToolEditFile, "Edit specific lines in an existing file", w.EditFile),
		toolkit.NewTool(ToolDeleteFile, "Delete a file by name", w.DeleteFile),
	}
}

// Register adds the workspace tools to tk. It stops at the first registration error.
func Register(tk *toolkit.Toolkit, w *Workspace) error {
	for _, t := range Tools(w) {
		if err := tk.Register(t); err != nil {
			return err
		}
	}
	return nil
}

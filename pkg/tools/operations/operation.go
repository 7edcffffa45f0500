package operations

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// --- Core Logic Functions ---

// ListFiles returns the names of the entries directly under the workspace root,
// files and directories alike, sorted by name. It does not recurse.
func (w *Workspace) ListFiles(ctx context.Context, _ ListFilesArgs) (ListFilesResponse, error) {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		w.logger.Error("list workspace", zap.Error(err))
		return ListFilesResponse{}, ioFailure("list", ".", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		files = append(files, e.Name())
	}
	return ListFilesResponse{Files: files}, nil
}

// ReadFile returns the full content of a workspace file.
func (w *Workspace) ReadFile(ctx context.Context, args ReadFileArgs) (ReadFileResponse, error) {
	path, err := w.resolve(args.Filename)
	if err != nil {
		return ReadFileResponse{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		w.logger.Debug("read file", zap.String("filename", args.Filename), zap.Error(err))
		return ReadFileResponse{}, classify("read", args.Filename, err)
	}
	return ReadFileResponse{Content: string(content)}, nil
}

// WriteFile creates the file or truncates and replaces it with args.Content verbatim.
// Parent directories must already exist.
func (w *Workspace) WriteFile(ctx context.Context, args WriteFileArgs) (WriteFileResponse, error) {
	path, err := w.resolve(args.Filename)
	if err != nil {
		return WriteFileResponse{}, err
	}

	if err := os.WriteFile(path, []byte(args.Content), 0o644); err != nil {
		w.logger.Error("write file", zap.String("filename", args.Filename), zap.Error(err))
		return WriteFileResponse{}, ioFailure("write", args.Filename, err)
	}
	return WriteFileResponse{
		Success: true,
		Message: fmt.Sprintf("File '%s' written successfully", args.Filename),
	}, nil
}

// EditFile replaces whole lines of an existing file. The file is split on "\n",
// so an empty file has one empty line. Every edit is range-checked before any
// line is touched; a rejected call leaves the file unchanged. Edits are then
// applied in order, so when two edits target the same line the later one wins.
func (w *Workspace) EditFile(ctx context.Context, args EditFileArgs) (EditFileResponse, error) {
	path, err := w.resolve(args.Filename)
	if err != nil {
		return EditFileResponse{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return EditFileResponse{}, classify("read", args.Filename, err)
	}

	lines := strings.Split(string(data), "\n")
	for _, e := range args.Edits {
		if e.Line < 1 || e.Line > len(lines) {
			return EditFileResponse{}, errInvalidLine(e.Line, len(lines))
		}
	}
	for _, e := range args.Edits {
		lines[e.Line-1] = e.NewText
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		w.logger.Error("write edited file", zap.String("filename", args.Filename), zap.Error(err))
		return EditFileResponse{}, ioFailure("write", args.Filename, err)
	}
	w.logger.Debug("file edited", zap.String("filename", args.Filename), zap.Int("edits", len(args.Edits)))
	return EditFileResponse{
		Success: true,
		Message: fmt.Sprintf("Edited %d line(s) in '%s'", len(args.Edits), args.Filename),
		Edited:  len(args.Edits),
	}, nil
}

// DeleteFile removes a workspace file. A missing file is reported as
// file_not_found rather than treated as success. Directories are not removed.
func (w *Workspace) DeleteFile(ctx context.Context, args DeleteFileArgs) (DeleteFileResponse, error) {
	path, err := w.resolve(args.Filename)
	if err != nil {
		return DeleteFileResponse{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return DeleteFileResponse{}, classify("delete", args.Filename, err)
	}
	if info.IsDir() {
		return DeleteFileResponse{}, ioFailure("delete", args.Filename, errors.New("is a directory"))
	}

	if err := os.Remove(path); err != nil {
		w.logger.Error("delete file", zap.String("filename", args.Filename), zap.Error(err))
		return DeleteFileResponse{}, classify("delete", args.Filename, err)
	}
	return DeleteFileResponse{
		Success: true,
		Message: fmt.Sprintf("File '%s' deleted successfully", args.Filename),
	}, nil
}

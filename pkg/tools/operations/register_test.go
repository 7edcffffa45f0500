package operations_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzaessahbaoui/workspace-files/pkg/tools/operations"
	"github.com/hamzaessahbaoui/workspace-files/toolkit"
)

func setup(t *testing.T) (*toolkit.Toolkit, *operations.Workspace) {
	t.Helper()
	ws, err := operations.NewWorkspace(t.TempDir(), nil)
	require.NoError(t, err)
	tk := toolkit.New("workspace_files")
	require.NoError(t, operations.Register(tk, ws))
	return tk, ws
}

func dispatch(t *testing.T, tk *toolkit.Toolkit, name, args string) toolkit.Result {
	t.Helper()
	return tk.Dispatch(context.Background(), name, json.RawMessage(args))
}

func TestRegister_Catalog(t *testing.T) {
	tk, _ := setup(t)

	var names []string
	for _, d := range tk.Tools() {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Description, d.Name)
	}
	assert.Equal(t, []string{"delete_file", "edit_file", "list_files", "read_file", "write_file"}, names)
}

func TestRegister_Twice(t *testing.T) {
	tk, ws := setup(t)

	err := operations.Register(tk, ws)
	require.Error(t, err)
	assert.True(t, errors.Is(err, toolkit.ErrDuplicateTool))
}

func TestEditFileSchema_AdvertisesMinimumLine(t *testing.T) {
	tk, _ := setup(t)

	for _, d := range tk.Tools() {
		if d.Name != operations.ToolEditFile {
			continue
		}
		raw, err := json.Marshal(d.InputSchema)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"minimum":1`)
		assert.Contains(t, string(raw), `"Line number to edit (1-indexed)"`)
		return
	}
	t.Fatal("edit_file not registered")
}

func TestDispatch_FileLifecycle(t *testing.T) {
	tk, _ := setup(t)

	res := dispatch(t, tk, "write_file", `{"filename":"a.txt","content":"x"}`)
	require.False(t, res.IsError, "%+v", res.Error)
	assert.Equal(t, operations.WriteFileResponse{Success: true, Message: "File 'a.txt' written successfully"}, res.Data)

	res = dispatch(t, tk, "write_file", `{"filename":"b.txt","content":"y"}`)
	require.False(t, res.IsError)

	res = dispatch(t, tk, "list_files", `{}`)
	require.False(t, res.IsError)
	list, ok := res.Data.(operations.ListFilesResponse)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, list.Files)

	res = dispatch(t, tk, "read_file", `{"filename":"a.txt"}`)
	require.False(t, res.IsError)
	assert.Equal(t, operations.ReadFileResponse{Content: "x"}, res.Data)

	res = dispatch(t, tk, "delete_file", `{"filename":"a.txt"}`)
	require.False(t, res.IsError)

	res = dispatch(t, tk, "read_file", `{"filename":"a.txt"}`)
	require.True(t, res.IsError)
	assert.Equal(t, operations.CodeFileNotFound, res.Error.Code)
	assert.Equal(t, "File not found: a.txt", res.Error.Message)

	res = dispatch(t, tk, "delete_file", `{"filename":"a.txt"}`)
	require.True(t, res.IsError)
	assert.Equal(t, operations.CodeFileNotFound, res.Error.Code)
}

func TestDispatch_EditFile(t *testing.T) {
	tk, ws := setup(t)
	path := filepath.Join(ws.Root(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n3"), 0o644))

	res := dispatch(t, tk, "edit_file", `{"filename":"f.txt","edits":[{"line":1,"newText":"A"},{"line":3,"newText":"B"}]}`)
	require.False(t, res.IsError, "%+v", res.Error)
	assert.Equal(t, operations.EditFileResponse{Success: true, Message: "Edited 2 line(s) in 'f.txt'", Edited: 2}, res.Data)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A\n2\nB", string(data))
}

func TestDispatch_EditFileRejectedCallsLeaveFileUnchanged(t *testing.T) {
	tests := []struct {
		name     string
		args     string
		wantCode string
	}{
		{
			name:     "line zero fails the schema minimum",
			args:     `{"filename":"f.txt","edits":[{"line":0,"newText":"x"}]}`,
			wantCode: toolkit.CodeInvalidArguments,
		},
		{
			name:     "line past the end",
			args:     `{"filename":"f.txt","edits":[{"line":4,"newText":"x"}]}`,
			wantCode: operations.CodeInvalidLineNumber,
		},
		{
			name:     "missing newText",
			args:     `{"filename":"f.txt","edits":[{"line":1}]}`,
			wantCode: toolkit.CodeInvalidArguments,
		},
		{
			name:     "line is not an integer",
			args:     `{"filename":"f.txt","edits":[{"line":1.5,"newText":"x"}]}`,
			wantCode: toolkit.CodeInvalidArguments,
		},
		{
			name:     "edits missing",
			args:     `{"filename":"f.txt"}`,
			wantCode: toolkit.CodeInvalidArguments,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk, ws := setup(t)
			path := filepath.Join(ws.Root(), "f.txt")
			require.NoError(t, os.WriteFile(path, []byte("1\n2\n3"), 0o644))

			res := dispatch(t, tk, "edit_file", tc.args)
			require.True(t, res.IsError)
			assert.Equal(t, tc.wantCode, res.Error.Code)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "1\n2\n3", string(data))
		})
	}
}

func TestDispatch_ValidationErrors(t *testing.T) {
	tk, _ := setup(t)

	tests := []struct {
		tool string
		args string
	}{
		{tool: "read_file", args: `{}`},
		{tool: "read_file", args: `{"filename":""}`},
		{tool: "read_file", args: `{"filename":42}`},
		{tool: "write_file", args: `{"filename":"a.txt"}`},
		{tool: "write_file", args: `{"content":"x"}`},
		{tool: "delete_file", args: `null`},
		{tool: "read_file", args: `{"filename":"../outside.txt"}`},
	}

	for _, tc := range tests {
		res := dispatch(t, tk, tc.tool, tc.args)
		require.True(t, res.IsError, "%s %s", tc.tool, tc.args)
		assert.Equal(t, toolkit.CodeInvalidArguments, res.Error.Code, "%s %s", tc.tool, tc.args)
	}
}

func TestDispatch_WriteEmptyContentIsValid(t *testing.T) {
	tk, ws := setup(t)

	res := dispatch(t, tk, "write_file", `{"filename":"empty.txt","content":""}`)
	require.False(t, res.IsError, "%+v", res.Error)
	assert.FileExists(t, filepath.Join(ws.Root(), "empty.txt"))
}

func TestDispatch_UnknownToolNamesIt(t *testing.T) {
	tk, _ := setup(t)

	res := dispatch(t, tk, "rename_file", `{"filename":"a.txt"}`)
	require.True(t, res.IsError)
	assert.Equal(t, toolkit.CodeUnknownTool, res.Error.Code)
	assert.Contains(t, res.Error.Message, "rename_file")
}

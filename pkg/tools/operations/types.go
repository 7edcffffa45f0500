package operations

// ListFilesArgs represents arguments for the ListFiles operation. It takes none.
type ListFilesArgs struct{}

// ListFilesResponse represents the response for the ListFiles operation
type ListFilesResponse struct {
	Files []string `json:"files" jsonschema:"required,description=Names of the entries directly under the workspace folder."`
}

// ReadFileArgs represents arguments for the ReadFile operation
type ReadFileArgs struct {
	Filename string `json:"filename" jsonschema:"required,minLength=1,description=Name of the file to read"`
}

// ReadFileResponse represents the response for the ReadFile operation
type ReadFileResponse struct {
	Content string `json:"content" jsonschema:"required,description=Full UTF-8 content of the file."`
}

// WriteFileArgs represents arguments for the WriteFile operation
type WriteFileArgs struct {
	Filename string `json:"filename" jsonschema:"required,minLength=1,description=Name of the file to write"`
	Content  string `json:"content" jsonschema:"required,description=Content to write to the file"`
}

// WriteFileResponse represents the response for the WriteFile operation
type WriteFileResponse struct {
	Success bool   `json:"success" jsonschema:"required"`
	Message string `json:"message" jsonschema:"required"`
}

// LineEdit replaces the whole text of one 1-indexed line.
type LineEdit struct {
	Line    int    `json:"line" jsonschema:"required,minimum=1,description=Line number to edit (1-indexed)"`
	NewText string `json:"newText" jsonschema:"required,description=New text for this line"`
}

// EditFileArgs represents arguments for the EditFile operation
type EditFileArgs struct {
	Filename string     `json:"filename" jsonschema:"required,minLength=1,description=Name of the file to edit"`
	Edits    []LineEdit `json:"edits" jsonschema:"required,description=Array of line edits to apply"`
}

// EditFileResponse represents the response for the EditFile operation
type EditFileResponse struct {
	Success bool   `json:"success" jsonschema:"required"`
	Message string `json:"message" jsonschema:"required"`
	Edited  int    `json:"edited" jsonschema:"required,description=Number of edits applied."`
}

// DeleteFileArgs represents arguments for the DeleteFile operation
type DeleteFileArgs struct {
	Filename string `json:"filename" jsonschema:"required,minLength=1,description=Name of the file to delete"`
}

// DeleteFileResponse represents the response for the DeleteFile operation
type DeleteFileResponse struct {
	Success bool   `json:"success" jsonschema:"required"`
	Message string `json:"message" jsonschema:"required"`
}

package models

// UploadedFile is one multipart upload, held only for the duration of a request.
type UploadedFile struct {
	Name    string
	Content []byte
}

// GenerationRequest is the body sent to the remote generation service.
type GenerationRequest struct {
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Model  string `json:"model"`
}

// GenerationResult is the part of the remote reply this service consumes.
type GenerationResult struct {
	Response string `json:"response"`
}

type AskRequest struct {
	Prompt string `form:"prompt" binding:"required"`
}

// FileResult describes the output produced for one uploaded file. SQLFile or
// TestFile is set depending on the route; Error and Status are only set for
// failed files under the collect_all policy.
type FileResult struct {
	File     string `json:"file"`
	SQLFile  string `json:"sql_file,omitempty"`
	TestFile string `json:"test_file,omitempty"`
	Error    string `json:"error,omitempty"`
	Status   int    `json:"status,omitempty"`
}

type BatchResponse struct {
	Message string       `json:"message"`
	Results []FileResult `json:"results"`
	Failed  int          `json:"failed,omitempty"`
}

type AskFilesResponse struct {
	Message  string `json:"message"`
	SQLFile  string `json:"sql_file"`
	TestFile string `json:"test_file"`
}

type OutputFileInfo struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

type CheckResult struct {
	File  string   `json:"file"`
	Valid bool     `json:"valid"`
	Plan  []string `json:"plan,omitempty"`
	Error string   `json:"error,omitempty"`
}

package models

// CommitAction represents a single file operation in a commit
type CommitAction struct {
	Action       string `json:"action"` // "create", "update", "delete", "move", "chmod"
	FilePath     string `json:"file_path"`
	PreviousPath string `json:"previous_path,omitempty"`
	Content      string `json:"content,omitempty"`
	Encoding     string `json:"encoding,omitempty"` // "text" or "base64"
}

// CommitPayload represents the body of a commit request. The client passes
// it through to the API unmodified and does not validate it.
type CommitPayload struct {
	Branch        string         `json:"branch"`
	CommitMessage string         `json:"commit_message"`
	Actions       []CommitAction `json:"actions"`
	AuthorName    string         `json:"author_name,omitempty"`
	AuthorEmail   string         `json:"author_email,omitempty"`
	StartBranch   string         `json:"start_branch,omitempty"`
}

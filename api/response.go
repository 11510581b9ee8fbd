package api

type InvokeStatus string

const (
	Success       InvokeStatus = "success"
	NonZeroExit   InvokeStatus = "nonzero_exit"
	Timeout       InvokeStatus = "timeout"
	ToolNotFound  InvokeStatus = "tool_not_found"
	InternalError InvokeStatus = "internal_error"
)

// InvokeResponse is the terminal message for an invocation.
type InvokeResponse struct {
	InvUuid string       `json:"inv_uuid"`
	Status  InvokeStatus `json:"status"`

	// Output is the trimmed stdout of a successful run.
	Output string `json:"output,omitempty"`

	// ExitCode and Stderr are set for nonzero_exit outcomes.
	ExitCode *int   `json:"exit_code,omitempty"`
	Stderr   string `json:"stderr,omitempty"`

	ErrorMessage string `json:"error_message,omitempty"`

	WallMillis int64 `json:"wall_ms,omitempty"`
}

// TranscodeResponse carries the converted artifact.
type TranscodeResponse struct {
	InvUuid string `json:"inv_uuid"`

	Script   *string   `json:"script,omitempty"`
	Notebook *Notebook `json:"notebook,omitempty"`

	ErrorMessage string `json:"error_message,omitempty"`
}

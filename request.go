package titod

// CmdRequest describes a single invocation of the grading tool.
// It is constructed once by the caller and never mutated afterwards.
type CmdRequest struct {
	InvUuid string `json:"inv_uuid"`

	// Name is the logical command, e.g. "tito". It is mapped to a
	// concrete path by the resolver, never interpreted by a shell.
	Name string   `json:"name"`
	Args []string `json:"args"`

	// WorkDir overrides the gateway's workspace directory when non-empty.
	WorkDir string `json:"work_dir,omitempty"`

	// Env entries are overlaid on top of the inherited process
	// environment before augmentation.
	Env map[string]string `json:"env,omitempty"`
}

// CmdResult is produced exactly once per successful invocation.
// Timed-out and failed runs never yield one; those outcomes travel as
// typed errors.
type CmdResult struct {
	// Stdout has surrounding whitespace removed.
	Stdout string `json:"stdout"`

	// Stderr of a successful run is kept for logging only; response
	// payloads carry stdout.
	Stderr string `json:"stderr"`

	ExitCode int `json:"exit_code"`

	WallMillis int64 `json:"wall_ms"`
}

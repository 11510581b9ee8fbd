package api

// InvokeReq is the wire form of an invocation request as received from
// the queue. The HTTP (or other) frontend is expected to have validated
// it already.
type InvokeReq struct {
	InvUuid string `json:"inv_uuid"`

	// Args are passed to the grading tool as a discrete list.
	Args []string `json:"args"`

	WorkDir string            `json:"work_dir,omitempty"`
	Env     map[string]string `json:"env,omitempty"`

	// TimeoutMs bounds the wall-clock duration of the child process.
	TimeoutMs int64 `json:"timeout_ms"`

	// ResSqsUrl, when set, directs outcome messages to an SQS queue
	// instead of the NATS reply inbox.
	ResSqsUrl string `json:"res_sqs_url,omitempty"`
}

// TranscodeReq converts between percent-marker script text and a
// structured notebook document. Exactly one of Script and Notebook is
// expected to be set.
type TranscodeReq struct {
	InvUuid string `json:"inv_uuid"`

	Script   *string   `json:"script,omitempty"`
	Notebook *Notebook `json:"notebook,omitempty"`
}

package sqssink

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/tinytorch-edu/titod"
	"github.com/tinytorch-edu/titod/api"
)

type sqsResQueueSink struct {
	sqsClient *sqs.Client
	queueUrl  string
	invUuid   string
}

const (
	MsgTypeStartedInvocation  = "started_invocation"
	MsgTypeFinishedInvocation = "finished_invocation"
)

// Queue messages stay readable in consoles; long tool output is
// trimmed to a rectangle before sending.
const (
	MaxOutputHeight = 40
	MaxOutputWidth  = 80
)

type Header struct {
	InvUuid string `json:"inv_uuid"`
	MsgType string `json:"msg_type"`
}

type StartedInvocation struct {
	Header
	Path string   `json:"path"`
	Args []string `json:"args"`
}

type FinishedInvocation struct {
	Header
	Response api.InvokeResponse `json:"response"`
}

func (s *sqsResQueueSink) StartInvocation(path string, args []string) {
	s.send(StartedInvocation{
		Header: s.header(MsgTypeStartedInvocation),
		Path:   path,
		Args:   args,
	})
}

func (s *sqsResQueueSink) FinishInvocation(res *titod.CmdResult) {
	s.send(FinishedInvocation{
		Header: s.header(MsgTypeFinishedInvocation),
		Response: api.InvokeResponse{
			InvUuid:    s.invUuid,
			Status:     api.Success,
			Output:     trimStrToRect(res.Stdout, MaxOutputHeight, MaxOutputWidth),
			WallMillis: res.WallMillis,
		},
	})
}

func (s *sqsResQueueSink) FailWithNotFound(msg string) {
	s.send(FinishedInvocation{
		Header: s.header(MsgTypeFinishedInvocation),
		Response: api.InvokeResponse{
			InvUuid:      s.invUuid,
			Status:       api.ToolNotFound,
			ErrorMessage: msg,
		},
	})
}

func (s *sqsResQueueSink) FailWithExit(exitCode int, stderr string, stdout string) {
	s.send(FinishedInvocation{
		Header: s.header(MsgTypeFinishedInvocation),
		Response: api.InvokeResponse{
			InvUuid:  s.invUuid,
			Status:   api.NonZeroExit,
			ExitCode: &exitCode,
			Stderr:   trimStrToRect(stderr, MaxOutputHeight, MaxOutputWidth),
			Output:   trimStrToRect(stdout, MaxOutputHeight, MaxOutputWidth),
		},
	})
}

func (s *sqsResQueueSink) FailWithTimeout(limit time.Duration) {
	s.send(FinishedInvocation{
		Header: s.header(MsgTypeFinishedInvocation),
		Response: api.InvokeResponse{
			InvUuid:      s.invUuid,
			Status:       api.Timeout,
			ErrorMessage: "command timed out after " + limit.String(),
		},
	})
}

func (s *sqsResQueueSink) header(msgType string) Header {
	return Header{InvUuid: s.invUuid, MsgType: msgType}
}

package natsink

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/tinytorch-edu/titod"
	"github.com/tinytorch-edu/titod/api"
)

type natsSink struct {
	nc      *nats.Conn
	inbox   string
	invUuid string
}

const (
	MsgTypeStartedInvocation  = "started_invocation"
	MsgTypeFinishedInvocation = "finished_invocation"
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

func (s *natsSink) StartInvocation(path string, args []string) {
	s.send(StartedInvocation{
		Header: s.header(MsgTypeStartedInvocation),
		Path:   path,
		Args:   args,
	})
}

func (s *natsSink) FinishInvocation(res *titod.CmdResult) {
	s.send(FinishedInvocation{
		Header: s.header(MsgTypeFinishedInvocation),
		Response: api.InvokeResponse{
			InvUuid:    s.invUuid,
			Status:     api.Success,
			Output:     res.Stdout,
			WallMillis: res.WallMillis,
		},
	})
}

func (s *natsSink) FailWithNotFound(msg string) {
	s.send(FinishedInvocation{
		Header: s.header(MsgTypeFinishedInvocation),
		Response: api.InvokeResponse{
			InvUuid:      s.invUuid,
			Status:       api.ToolNotFound,
			ErrorMessage: msg,
		},
	})
}

func (s *natsSink) FailWithExit(exitCode int, stderr string, stdout string) {
	s.send(FinishedInvocation{
		Header: s.header(MsgTypeFinishedInvocation),
		Response: api.InvokeResponse{
			InvUuid:  s.invUuid,
			Status:   api.NonZeroExit,
			ExitCode: &exitCode,
			Stderr:   stderr,
		},
	})
}

func (s *natsSink) FailWithTimeout(limit time.Duration) {
	s.send(FinishedInvocation{
		Header: s.header(MsgTypeFinishedInvocation),
		Response: api.InvokeResponse{
			InvUuid:      s.invUuid,
			Status:       api.Timeout,
			ErrorMessage: "command timed out after " + limit.String(),
		},
	})
}

func (s *natsSink) header(msgType string) Header {
	return Header{InvUuid: s.invUuid, MsgType: msgType}
}

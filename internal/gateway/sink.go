package gateway

import (
	"time"

	"github.com/tinytorch-edu/titod"
)

// InvocationSink receives the lifecycle of a single invocation. A sink
// is bound to one invocation at construction time; exactly one of the
// Finish/Fail methods is called after StartInvocation.
type InvocationSink interface {
	StartInvocation(path string, args []string)

	FinishInvocation(res *titod.CmdResult)

	FailWithNotFound(msg string)
	FailWithExit(exitCode int, stderr string, stdout string)
	FailWithTimeout(limit time.Duration)
}

// Multi fans one invocation's events out to several sinks, e.g. a
// reply queue plus the transcript archive.
type Multi []InvocationSink

func (m Multi) StartInvocation(path string, args []string) {
	for _, s := range m {
		s.StartInvocation(path, args)
	}
}

func (m Multi) FinishInvocation(res *titod.CmdResult) {
	for _, s := range m {
		s.FinishInvocation(res)
	}
}

func (m Multi) FailWithNotFound(msg string) {
	for _, s := range m {
		s.FailWithNotFound(msg)
	}
}

func (m Multi) FailWithExit(exitCode int, stderr string, stdout string) {
	for _, s := range m {
		s.FailWithExit(exitCode, stderr, stdout)
	}
}

func (m Multi) FailWithTimeout(limit time.Duration) {
	for _, s := range m {
		s.FailWithTimeout(limit)
	}
}

// NopSink discards all events. Useful for library callers that do
// their own reporting.
type NopSink struct{}

func (NopSink) StartInvocation(path string, args []string) {}

func (NopSink) FinishInvocation(res *titod.CmdResult) {}

func (NopSink) FailWithNotFound(msg string) {}

func (NopSink) FailWithExit(exitCode int, stderr string, stdout string) {}

func (NopSink) FailWithTimeout(limit time.Duration) {}

package transcript

import (
	"log/slog"
	"time"

	"github.com/tinytorch-edu/titod"
)

// Sink archives the outcome of one invocation into a Store. It is
// usually stacked behind a reply sink via Multi.
type Sink struct {
	store *Store
	t     Transcript
}

func NewSink(store *Store, req titod.CmdRequest) *Sink {
	return &Sink{
		store: store,
		t: Transcript{
			InvUuid:   req.InvUuid,
			Name:      req.Name,
			Args:      req.Args,
			StartedAt: time.Now().UTC(),
		},
	}
}

func (s *Sink) StartInvocation(path string, args []string) {
	s.t.Path = path
}

func (s *Sink) FinishInvocation(res *titod.CmdResult) {
	s.t.Outcome = "success"
	s.t.Stdout = res.Stdout
	s.t.Stderr = res.Stderr
	s.t.WallMillis = res.WallMillis
	s.save()
}

func (s *Sink) FailWithNotFound(msg string) {
	s.t.Outcome = "tool_not_found"
	s.t.Stderr = msg
	s.save()
}

func (s *Sink) FailWithExit(exitCode int, stderr string, stdout string) {
	s.t.Outcome = "nonzero_exit"
	s.t.ExitCode = exitCode
	s.t.Stderr = stderr
	s.t.Stdout = stdout
	s.save()
}

func (s *Sink) FailWithTimeout(limit time.Duration) {
	s.t.Outcome = "timeout"
	s.t.WallMillis = limit.Milliseconds()
	s.save()
}

func (s *Sink) save() {
	if err := s.store.Save(s.t); err != nil {
		slog.Error("failed to archive transcript", "inv", s.t.InvUuid, "err", err)
	}
}

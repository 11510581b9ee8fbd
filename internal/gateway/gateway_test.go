package gateway

import (
	"context"
	"log/slog"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tinytorch-edu/titod"
	"github.com/tinytorch-edu/titod/internal/resolver"
)

// recordingSink captures the event surface of one invocation.
type recordingSink struct {
	started  bool
	finished *titod.CmdResult
	notFound []string
	exits    []int
	timeouts []time.Duration
}

func (r *recordingSink) StartInvocation(path string, args []string) { r.started = true }

func (r *recordingSink) FinishInvocation(res *titod.CmdResult) { r.finished = res }

func (r *recordingSink) FailWithNotFound(msg string) { r.notFound = append(r.notFound, msg) }

func (r *recordingSink) FailWithExit(exitCode int, stderr string, stdout string) {
	r.exits = append(r.exits, exitCode)
}

func (r *recordingSink) FailWithTimeout(limit time.Duration) {
	r.timeouts = append(r.timeouts, limit)
}

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	tools := resolver.NewToolchain(t.Context(), map[string][]string{
		"sh": nil,
	})
	return New(tools, t.TempDir(), slog.Default())
}

func shReq(script string) titod.CmdRequest {
	return titod.CmdRequest{
		InvUuid: "test-inv",
		Name:    "sh",
		Args:    []string{"-c", script},
	}
}

func TestExecuteSuccessTrimsStdout(t *testing.T) {
	gw := newTestGateway(t)
	sink := &recordingSink{}

	res, err := gw.Execute(t.Context(), sink, shReq(`printf 'hello world \n\n'`), 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, "hello world", res.Stdout)
	require.Equal(t, 0, res.ExitCode)
	require.True(t, sink.started)
	require.NotNil(t, sink.finished)
}

func TestExecuteKeepsStderrOnSuccess(t *testing.T) {
	gw := newTestGateway(t)

	res, err := gw.Execute(t.Context(), &recordingSink{},
		shReq(`echo warn >&2; echo out`), 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, "out", res.Stdout)
	require.Equal(t, "warn\n", res.Stderr)
}

func TestExecuteNonZeroExit(t *testing.T) {
	gw := newTestGateway(t)
	sink := &recordingSink{}

	_, err := gw.Execute(t.Context(), sink,
		shReq(`printf 'diagnostic\n' ; printf 'grading check failed\n' >&2; exit 3`), 5*time.Second)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 3, exitErr.ExitCode)
	require.Equal(t, "grading check failed", exitErr.Stderr)
	require.Equal(t, "diagnostic\n", exitErr.Stdout)
	require.Equal(t, []int{3}, sink.exits)
	require.Nil(t, sink.finished)
}

func TestExecuteTimeout(t *testing.T) {
	gw := newTestGateway(t)
	sink := &recordingSink{}

	started := time.Now()
	_, err := gw.Execute(t.Context(), sink, shReq(`sleep 5`), 200*time.Millisecond)
	elapsed := time.Since(started)

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	require.Equal(t, 200*time.Millisecond, timeoutErr.Limit)
	// Hard wall-clock bound: termination, not waiting out the child.
	require.Less(t, elapsed, 3*time.Second)
	require.Equal(t, []time.Duration{200 * time.Millisecond}, sink.timeouts)
}

func TestExecuteTimeoutKillsProcessTree(t *testing.T) {
	gw := newTestGateway(t)
	sink := &recordingSink{}

	// The backgrounded sleep inherits the pipe write-ends. If only the
	// shell dies, Execute stays blocked until the orphan exits.
	started := time.Now()
	_, err := gw.Execute(t.Context(), sink, shReq(`sleep 5 & sleep 5`), 200*time.Millisecond)
	elapsed := time.Since(started)

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	require.Less(t, elapsed, 3*time.Second)
	require.Equal(t, []time.Duration{200 * time.Millisecond}, sink.timeouts)
}

func TestExecuteUnresolvedCommandSpawnsNothing(t *testing.T) {
	gw := newTestGateway(t)

	spawns := 0
	gw.spawn = func(cmd *exec.Cmd) error {
		spawns++
		return cmd.Run()
	}

	sink := &recordingSink{}
	_, err := gw.Execute(t.Context(), sink, titod.CmdRequest{
		InvUuid: "test-inv",
		Name:    "tito",
		Args:    []string{"--version"},
	}, 5*time.Second)

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	require.Equal(t, "tito", notFoundErr.Name)
	require.Zero(t, spawns)
	require.False(t, sink.started)
	require.Len(t, sink.notFound, 1)
}

func TestExecuteRejectsNonPositiveTimeout(t *testing.T) {
	gw := newTestGateway(t)
	_, err := gw.Execute(t.Context(), &recordingSink{}, shReq(`true`), 0)
	require.Error(t, err)
}

func TestExecuteWorkDirOverride(t *testing.T) {
	gw := newTestGateway(t)
	dir := t.TempDir()

	res, err := gw.Execute(t.Context(), &recordingSink{}, titod.CmdRequest{
		InvUuid: "test-inv",
		Name:    "sh",
		Args:    []string{"-c", "pwd"},
		WorkDir: dir,
	}, 5*time.Second)
	require.NoError(t, err)
	require.Contains(t, res.Stdout, dir)
}

func TestExecuteEnvOverrides(t *testing.T) {
	gw := newTestGateway(t)

	res, err := gw.Execute(t.Context(), &recordingSink{}, titod.CmdRequest{
		InvUuid: "test-inv",
		Name:    "sh",
		Args:    []string{"-c", `printf '%s' "$GRADING_MODE"`},
		Env:     map[string]string{"GRADING_MODE": "autograde"},
	}, 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, "autograde", res.Stdout)
}

func TestExecuteConcurrentCalls(t *testing.T) {
	gw := newTestGateway(t)

	done := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			_, err := gw.Execute(context.Background(), NopSink{}, shReq(`echo ok`), 5*time.Second)
			done <- err
		}()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, <-done)
	}
}

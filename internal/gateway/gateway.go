// Package gateway runs the grading tool as a supervised child process
// and classifies the outcome. It imposes no serialization or admission
// control of its own; concurrent Execute calls are independent.
package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/tinytorch-edu/titod"
	"github.com/tinytorch-edu/titod/internal/resolver"
)

// killGrace bounds how long Wait may linger on abandoned pipes after
// the process group has been signalled.
const killGrace = 250 * time.Millisecond

// DefaultWorkspace picks the working directory used when a request
// does not name one.
func DefaultWorkspace() string {
	if _, err := os.Stat("/app/TinyTorch"); err == nil {
		return "/app/TinyTorch"
	}
	return "/app"
}

type Gateway struct {
	tools       *resolver.Toolchain
	workspace   string
	pkgRoots    []string
	interpreter string
	log         *slog.Logger

	// spawn is the process primitive, replaceable in tests.
	spawn func(cmd *exec.Cmd) error
}

func New(tools *resolver.Toolchain, workspace string, log *slog.Logger) *Gateway {
	if workspace == "" {
		workspace = DefaultWorkspace()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{
		tools:       tools,
		workspace:   workspace,
		pkgRoots:    PkgRootCandidates,
		interpreter: InterpreterPath,
		log:         log,
		spawn:       (*exec.Cmd).Run,
	}
}

// Execute runs one invocation with a hard wall-clock bound. On success
// the result carries trimmed stdout. Failures come back as
// *NotFoundError, *ExitError or *TimeoutError; nothing is ever
// collapsed into a bare exit code.
func (g *Gateway) Execute(ctx context.Context, sink InvocationSink, req titod.CmdRequest, timeout time.Duration) (*titod.CmdResult, error) {
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", timeout)
	}

	path, ok := g.tools.Path(req.Name)
	if !ok {
		err := &NotFoundError{Name: req.Name}
		g.log.Error("invocation refused", "inv", req.InvUuid, "err", err)
		sink.FailWithNotFound(err.Error())
		return nil, err
	}

	dir := req.WorkDir
	if dir == "" {
		dir = g.workspace
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, req.Args...)
	cmd.Dir = dir
	cmd.Env = PrepareEnv(req.Env, g.pkgRoots, g.interpreter)

	// The tool may fork its own children. Running it in a fresh process
	// group lets the deadline kill the whole tree, and WaitDelay keeps
	// Run from blocking on pipe write-ends a straggler still holds.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		if errors.Is(err, syscall.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
	cmd.WaitDelay = killGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	g.log.Info("executing command",
		"inv", req.InvUuid, "path", path, "args", req.Args, "dir", dir)
	sink.StartInvocation(path, req.Args)

	started := time.Now()
	runErr := g.spawn(cmd)
	wallMillis := time.Since(started).Milliseconds()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		// Partial output is deliberately discarded.
		err := &TimeoutError{Limit: timeout}
		g.log.Error("invocation timed out",
			"inv", req.InvUuid, "limit", timeout, "wall_ms", wallMillis)
		sink.FailWithTimeout(timeout)
		return nil, err
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			err := &ExitError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
				Stdout:   stdout.String(),
			}
			g.log.Error("command exited nonzero",
				"inv", req.InvUuid, "exit_code", err.ExitCode, "stderr", err.Stderr)
			sink.FailWithExit(err.ExitCode, err.Stderr, err.Stdout)
			return nil, err
		}
		// The resolved path vanished or lost its exec bit between
		// startup and now.
		err := &NotFoundError{Name: req.Name}
		g.log.Error("command failed to spawn", "inv", req.InvUuid, "err", runErr)
		sink.FailWithNotFound(err.Error())
		return nil, err
	}

	res := &titod.CmdResult{
		Stdout:     strings.TrimSpace(stdout.String()),
		Stderr:     stderr.String(),
		ExitCode:   0,
		WallMillis: wallMillis,
	}
	g.log.Info("command succeeded",
		"inv", req.InvUuid, "wall_ms", wallMillis, "stdout_len", len(res.Stdout))
	if res.Stderr != "" {
		g.log.Debug("command stderr", "inv", req.InvUuid, "stderr", res.Stderr)
	}
	sink.FinishInvocation(res)
	return res, nil
}

package behave

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tinytorch-edu/titod/api"
	"github.com/tinytorch-edu/titod/internal/gateway"
)

// RunCase executes one scenario against the gateway and checks the
// outcome against the expectation. A nil return means the scenario
// passed.
func RunCase(ctx context.Context, gw *gateway.Gateway, sink gateway.InvocationSink, c Case) error {
	res, err := gw.Execute(ctx, sink, c.Req, c.Timeout)

	status := classify(err)
	if string(status) != c.Expect.Status {
		return fmt.Errorf("expected status %q, got %q (err: %v)", c.Expect.Status, status, err)
	}

	if c.Expect.ExitCode != nil {
		var exitErr *gateway.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("expected exit code %d but outcome carries none", *c.Expect.ExitCode)
		}
		if exitErr.ExitCode != *c.Expect.ExitCode {
			return fmt.Errorf("expected exit code %d, got %d", *c.Expect.ExitCode, exitErr.ExitCode)
		}
	}

	if c.Expect.StdoutHas != "" {
		if res == nil || !strings.Contains(res.Stdout, c.Expect.StdoutHas) {
			return fmt.Errorf("stdout does not contain %q", c.Expect.StdoutHas)
		}
	}

	if c.Expect.StderrHas != "" {
		var exitErr *gateway.ExitError
		if !errors.As(err, &exitErr) || !strings.Contains(exitErr.Stderr, c.Expect.StderrHas) {
			return fmt.Errorf("stderr does not contain %q", c.Expect.StderrHas)
		}
	}

	return nil
}

func classify(err error) api.InvokeStatus {
	if err == nil {
		return api.Success
	}
	var (
		notFound *gateway.NotFoundError
		exit     *gateway.ExitError
		timeout  *gateway.TimeoutError
	)
	switch {
	case errors.As(err, &notFound):
		return api.ToolNotFound
	case errors.As(err, &exit):
		return api.NonZeroExit
	case errors.As(err, &timeout):
		return api.Timeout
	}
	return api.InternalError
}

// Package termsink reports invocation lifecycle events to the
// terminal. Used by the one-off `run` and `behave` commands.
package termsink

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/tinytorch-edu/titod"
)

type TerminalSink struct {
	InvUuid   string
	StartedAt time.Time
}

func New(invUuid string) *TerminalSink {
	return &TerminalSink{InvUuid: invUuid, StartedAt: time.Now()}
}

func (t *TerminalSink) StartInvocation(path string, args []string) {
	fmt.Printf("== Invocation %s started ==\n", t.InvUuid)
	fmt.Printf("%s %s\n", path, strings.Join(args, " "))
}

func (t *TerminalSink) FinishInvocation(res *titod.CmdResult) {
	dur := time.Since(t.StartedAt).Round(time.Millisecond)
	color.Green("== Invocation finished in %s ==", dur)
	if res.Stdout != "" {
		fmt.Println(res.Stdout)
	}
}

func (t *TerminalSink) FailWithNotFound(msg string) {
	color.Red("== Tool not found: %s ==", msg)
}

func (t *TerminalSink) FailWithExit(exitCode int, stderr string, stdout string) {
	color.Red("== Command failed with exit code %d ==", exitCode)
	if stderr != "" {
		fmt.Printf("stderr:\n%s\n", stderr)
	}
	if stdout != "" {
		fmt.Printf("stdout:\n%s\n", stdout)
	}
}

func (t *TerminalSink) FailWithTimeout(limit time.Duration) {
	color.Red("== Command timed out after %s ==", limit)
}

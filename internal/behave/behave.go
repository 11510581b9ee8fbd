// Package behave loads behaviour suites for the command gateway from
// TOML files and runs them against a live gateway. Suites describe an
// invocation and the expected classification of its outcome.
package behave

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/tinytorch-edu/titod"
)

// SpecInvocation is the invocation block inside a scenario entry.
type SpecInvocation struct {
	Name      string            `toml:"name"`
	Args      []string          `toml:"args"`
	WorkDir   string            `toml:"work_dir"`
	Env       map[string]string `toml:"env"`
	TimeoutMs int64             `toml:"timeout_ms"`
}

// SpecExpect describes the expected outcome classification.
type SpecExpect struct {
	// Status is one of success, nonzero_exit, timeout, tool_not_found.
	Status string `toml:"status"`

	ExitCode  *int   `toml:"exit_code"`
	StdoutHas string `toml:"stdout_has"`
	StderrHas string `toml:"stderr_has"`
}

// specSuite maps to [[scenarios]] entries. The invocation is written as
// an array-of-tables, so we model it as a slice and use the first
// element.
type specSuite struct {
	Description   string           `toml:"description"`
	InvocationAOT []SpecInvocation `toml:"invocation"`
	Expect        SpecExpect       `toml:"expect"`
}

type specRoot struct {
	Suites []specSuite `toml:"scenarios"`
}

// Case is a runnable scenario converted from TOML.
type Case struct {
	Name    string
	Req     titod.CmdRequest
	Timeout time.Duration
	Expect  SpecExpect
}

// Parse reads a behaviour TOML file and converts it to runnable cases.
func Parse(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read behaviour file: %w", err)
	}
	var root specRoot
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cases := make([]Case, 0, len(root.Suites))
	for _, suite := range root.Suites {
		if len(suite.InvocationAOT) == 0 {
			return nil, fmt.Errorf("scenario entry is missing invocation block")
		}
		inv := suite.InvocationAOT[0]

		name := inv.Name
		if name == "" {
			name = "tito"
		}

		timeout := time.Duration(inv.TimeoutMs) * time.Millisecond
		if timeout == 0 {
			timeout = 60 * time.Second
		}

		cases = append(cases, Case{
			Name: suite.Description,
			Req: titod.CmdRequest{
				InvUuid: uuid.NewString(),
				Name:    name,
				Args:    inv.Args,
				WorkDir: inv.WorkDir,
				Env:     inv.Env,
			},
			Timeout: timeout,
			Expect:  suite.Expect,
		})
	}

	return cases, nil
}

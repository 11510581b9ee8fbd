package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	pretty_table "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tinytorch-edu/titod/internal/gateway"
	"github.com/tinytorch-edu/titod/internal/resolver"
)

type feedbackRow struct {
	unit    string
	health  int // 0 - OK, 1 - Warning, 2 - Error
	message string
}

func main() {
	feedback := make([]feedbackRow, 0)

	titoRow, titoPath := ensureTitoResolves()
	feedback = append(feedback, titoRow)

	if titoRow.health != 2 {
		feedback = append(feedback, ensureTitoRuns(titoPath))
	}

	feedback = append(feedback, checkWorkspace())
	feedback = append(feedback, checkInterpreter())

	outputFeedback(feedback)

	for _, row := range feedback {
		if row.health == 2 {
			os.Exit(1)
		}
	}
}

func ensureTitoResolves() (feedbackRow, string) {
	path, err := resolver.Resolve("tito", resolver.TitoCandidates)
	if err != nil {
		return feedbackRow{
			unit:    "tito",
			health:  2,
			message: err.Error(),
		}, ""
	}
	return feedbackRow{
		unit:    "tito",
		health:  0,
		message: path,
	}, path
}

// ensureTitoRuns asks the tool for its version with a short budget.
// A tool that cannot print its version will not grade anything.
func ensureTitoRuns(path string) feedbackRow {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	cmd.Env = gateway.PrepareEnv(nil, gateway.PkgRootCandidates, gateway.InterpreterPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return feedbackRow{
				unit:    "tito --version",
				health:  2,
				message: fmt.Sprintf("exit %d: %s", exitErr.ExitCode(), strings.TrimSpace(string(out))),
			}
		}
		return feedbackRow{
			unit:    "tito --version",
			health:  2,
			message: err.Error(),
		}
	}
	return feedbackRow{
		unit:    "tito --version",
		health:  0,
		message: strings.TrimSpace(string(out)),
	}
}

func checkWorkspace() feedbackRow {
	ws := gateway.DefaultWorkspace()
	if _, err := os.Stat(ws); err != nil {
		return feedbackRow{
			unit:    "workspace",
			health:  1,
			message: fmt.Sprintf("%s does not exist", ws),
		}
	}
	return feedbackRow{unit: "workspace", health: 0, message: ws}
}

func checkInterpreter() feedbackRow {
	if _, err := os.Stat(gateway.InterpreterPath); err != nil {
		return feedbackRow{
			unit:    "python",
			health:  1,
			message: fmt.Sprintf("%s not found, PYTHON will not be set", gateway.InterpreterPath),
		}
	}
	return feedbackRow{unit: "python", health: 0, message: gateway.InterpreterPath}
}

func outputFeedback(feedback []feedbackRow) {
	t := pretty_table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(pretty_table.Row{"Unit", "Health", "Message"})
	for _, row := range feedback {
		health := text.FgGreen.Sprint("OK")
		switch row.health {
		case 1:
			health = text.FgYellow.Sprint("Warning")
		case 2:
			health = text.FgRed.Sprint("Error")
		}
		t.AppendRow(pretty_table.Row{row.unit, health, row.message})
	}
	t.Render()
}

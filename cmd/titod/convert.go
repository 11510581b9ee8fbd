package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tinytorch-edu/titod/api"
	"github.com/tinytorch-edu/titod/internal/notebook"
)

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert between percent-marker scripts and notebook JSON",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "to-script",
				Usage: "input is notebook JSON, output is script text (default is the reverse)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file (default stdout)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return convert(cmd)
		},
	}
}

func convert(cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one input file")
	}
	data, err := os.ReadFile(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var out []byte
	if cmd.Bool("to-script") {
		var nb api.Notebook
		if err := json.Unmarshal(data, &nb); err != nil {
			return fmt.Errorf("failed to parse notebook JSON: %w", err)
		}
		out = []byte(notebook.RenderScript(nb.Document()))
	} else {
		doc := notebook.ParseScript(string(data))
		out, err = json.MarshalIndent(api.NewNotebook(doc), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal notebook JSON: %w", err)
		}
		out = append(out, '\n')
	}

	if path := cmd.String("output"); path != "" {
		return os.WriteFile(path, out, 0o644)
	}
	_, err = os.Stdout.Write(out)
	return err
}

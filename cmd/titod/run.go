package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/tinytorch-edu/titod"
	"github.com/tinytorch-edu/titod/internal/gateway"
	"github.com/tinytorch-edu/titod/internal/resolver"
	"github.com/tinytorch-edu/titod/internal/termsink"
	"github.com/tinytorch-edu/titod/internal/transcript"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "invoke tito once and print the outcome",
		ArgsUsage: "ARGS...",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 60 * time.Second,
				Usage: "wall-clock budget for the invocation",
			},
			&cli.StringFlag{
				Name:  "workdir",
				Usage: "working directory override",
			},
			&cli.BoolFlag{
				Name:  "archive",
				Usage: "also archive the transcript",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runOnce(ctx, cmd)
		},
	}
}

func runOnce(ctx context.Context, cmd *cli.Command) error {
	tools := resolver.NewToolchain(ctx, map[string][]string{
		"tito": resolver.TitoCandidates,
	})
	gw := gateway.New(tools, cmd.String("workdir"), slog.Default())

	req := titod.CmdRequest{
		InvUuid: uuid.NewString(),
		Name:    "tito",
		Args:    cmd.Args().Slice(),
		WorkDir: cmd.String("workdir"),
	}

	sink := gateway.Multi{termsink.New(req.InvUuid)}
	if cmd.Bool("archive") {
		store, err := transcript.NewStore(transcript.DefaultDir())
		if err != nil {
			return err
		}
		sink = append(sink, transcript.NewSink(store, req))
	}

	_, err := gw.Execute(ctx, sink, req, cmd.Duration("timeout"))
	if err != nil {
		var exitErr *gateway.ExitError
		if errors.As(err, &exitErr) {
			// The terminal sink already printed the details.
			os.Exit(exitErr.ExitCode)
		}
		return fmt.Errorf("invocation failed: %w", err)
	}
	return nil
}

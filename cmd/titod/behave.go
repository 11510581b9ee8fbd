package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/tinytorch-edu/titod/internal/behave"
	"github.com/tinytorch-edu/titod/internal/gateway"
	"github.com/tinytorch-edu/titod/internal/resolver"
)

func behaveCmd() *cli.Command {
	return &cli.Command{
		Name:      "behave",
		Usage:     "run gateway behaviour scenarios from a TOML file",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runBehave(ctx, cmd)
		},
	}
}

func runBehave(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one behaviour file")
	}

	cases, err := behave.Parse(cmd.Args().First())
	if err != nil {
		return err
	}

	// Scenarios may target helper commands besides tito (e.g. sh in
	// local suites); resolve every name the file mentions.
	names := map[string][]string{"tito": resolver.TitoCandidates}
	for _, c := range cases {
		if _, ok := names[c.Req.Name]; !ok {
			names[c.Req.Name] = nil
		}
	}
	tools := resolver.NewToolchain(ctx, names)
	// Scenarios default to the directory the suite is run from.
	gw := gateway.New(tools, ".", slog.Default())

	failed := 0
	for _, c := range cases {
		if err := behave.RunCase(ctx, gw, gateway.NopSink{}, c); err != nil {
			color.Red("FAIL %s: %v", c.Name, err)
			failed++
			continue
		}
		color.Green("PASS %s", c.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(cases))
	}
	fmt.Printf("all %d scenarios passed\n", len(cases))
	return nil
}

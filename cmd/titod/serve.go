package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/semaphore"

	"github.com/tinytorch-edu/titod"
	"github.com/tinytorch-edu/titod/api"
	"github.com/tinytorch-edu/titod/internal/environment"
	"github.com/tinytorch-edu/titod/internal/gateway"
	"github.com/tinytorch-edu/titod/internal/natsink"
	"github.com/tinytorch-edu/titod/internal/notebook"
	"github.com/tinytorch-edu/titod/internal/resolver"
	"github.com/tinytorch-edu/titod/internal/transcript"
	"github.com/tinytorch-edu/titod/sqssink"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "consume invocation requests from NATS and run them",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	cfg := environment.ReadEnvConfig()

	tools := resolver.NewToolchain(ctx, map[string][]string{
		"tito":   resolver.TitoCandidates,
		"python": {gateway.InterpreterPath},
	})
	gw := gateway.New(tools, cfg.WorkspaceDir, slog.Default())

	transcriptDir := cfg.TranscriptDir
	if transcriptDir == "" {
		transcriptDir = transcript.DefaultDir()
	}
	store, err := transcript.NewStore(transcriptDir)
	if err != nil {
		return err
	}

	nc, err := nats.Connect(cfg.NatsUrl)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS at %s: %w", cfg.NatsUrl, err)
	}
	defer nc.Drain()

	// The gateway itself is unbounded; admission is decided here.
	sem := semaphore.NewWeighted(cfg.MaxInFlight)

	sub, err := nc.QueueSubscribe(cfg.Subject, "titod", func(msg *nats.Msg) {
		if err := sem.Acquire(ctx, 1); err != nil {
			return
		}
		go func() {
			defer sem.Release(1)
			handleInvoke(ctx, gw, store, nc, cfg.DefaultTimeout, msg)
		}()
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", cfg.Subject, err)
	}
	defer sub.Unsubscribe()

	convSub, err := nc.QueueSubscribe(cfg.Subject+".transcode", "titod", func(msg *nats.Msg) {
		handleTranscode(nc, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to transcode subject: %w", err)
	}
	defer convSub.Unsubscribe()

	slog.Info("titod serving", "subject", cfg.Subject, "nats", cfg.NatsUrl,
		"max_in_flight", cfg.MaxInFlight, "tools", tools.Names())

	<-ctx.Done()
	slog.Info("shutting down")
	return nil
}

func handleInvoke(ctx context.Context, gw *gateway.Gateway, store *transcript.Store,
	nc *nats.Conn, defaultTimeout time.Duration, msg *nats.Msg) {

	var wireReq api.InvokeReq
	if err := json.Unmarshal(msg.Data, &wireReq); err != nil {
		slog.Error("failed to unmarshal invocation request", "err", err)
		return
	}

	invUuid := wireReq.InvUuid
	if invUuid == "" {
		invUuid = uuid.NewString()
	}

	req := titod.CmdRequest{
		InvUuid: invUuid,
		Name:    "tito",
		Args:    wireReq.Args,
		WorkDir: wireReq.WorkDir,
		Env:     wireReq.Env,
	}

	timeout := defaultTimeout
	if wireReq.TimeoutMs > 0 {
		timeout = time.Duration(wireReq.TimeoutMs) * time.Millisecond
	}

	var reply gateway.InvocationSink
	switch {
	case wireReq.ResSqsUrl != "":
		reply = sqssink.New(invUuid, wireReq.ResSqsUrl)
	case msg.Reply != "":
		reply = natsink.New(nc, invUuid, msg.Reply)
	default:
		reply = gateway.NopSink{}
	}

	sink := gateway.Multi{reply, transcript.NewSink(store, req)}

	// Outcome reporting is the sink's job; the error is already
	// classified and logged by the gateway.
	_, _ = gw.Execute(ctx, sink, req, timeout)
}

func handleTranscode(nc *nats.Conn, msg *nats.Msg) {
	if msg.Reply == "" {
		return
	}

	var req api.TranscodeReq
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		slog.Error("failed to unmarshal transcode request", "err", err)
		return
	}

	resp := api.TranscodeResponse{InvUuid: req.InvUuid}
	switch {
	case req.Script != nil:
		resp.Notebook = api.NewNotebook(notebook.ParseScript(*req.Script))
	case req.Notebook != nil:
		script := notebook.RenderScript(req.Notebook.Document())
		resp.Script = &script
	default:
		resp.ErrorMessage = "either script or notebook must be provided"
	}

	b, err := json.Marshal(resp)
	if err != nil {
		slog.Error("failed to marshal transcode response", "err", err)
		return
	}
	if err := nc.Publish(msg.Reply, b); err != nil {
		slog.Error("failed to publish transcode response", "err", err)
	}
}

package natsink

import (
	"encoding/json"
	"log/slog"
)

func (s *natsSink) send(msg interface{}) {
	b, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal sink message", "err", err)
		return
	}

	if err := s.nc.Publish(s.inbox, b); err != nil {
		slog.Error("failed to publish sink message to NATS", "err", err)
	}
}

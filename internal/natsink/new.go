package natsink

import (
	"github.com/nats-io/nats.go"
)

// New creates a NATS sink that publishes invocation events to the
// given inbox subject.
func New(nc *nats.Conn, invUuid string, inbox string) *natsSink {
	return &natsSink{
		nc:      nc,
		inbox:   inbox,
		invUuid: invUuid,
	}
}

// Package proxy declares the common shape every wire-protocol tap in this
// repository implements: accept client connections, relay bytes to an
// upstream server unmodified (save x11proto's one sanctioned mutation),
// and publish a decoded Record per message.
package proxy

import (
	"context"

	"github.com/x11tap/x11tap/x11proto"
)

// Proxy is the interface proxy/x11 implements: ListenAndServe to run the
// accept loop, Records for the channel of captured wire messages, Close
// to tear it down.
type Proxy interface {
	// ListenAndServe accepts client connections and relays them to the
	// upstream X server until ctx is canceled or a fatal listener error
	// occurs.
	ListenAndServe(ctx context.Context) error
	// Records returns the channel of decoded wire messages.
	Records() <-chan x11proto.Record
	// Close stops the proxy, closing the listener and any open
	// connections.
	Close() error
}

package x11

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/x11tap/x11tap/metrics"
	"github.com/x11tap/x11tap/x11proto"
)

// conn relays one client<->upstream pairing and decodes every message
// flowing through it: raw-byte relay in both directions, two goroutines,
// capture happens inline with the forward so the trace can never diverge
// from what was actually sent.
type conn struct {
	clientConn   net.Conn
	upstreamConn net.Conn
	records      chan<- x11proto.Record
	opts         *x11proto.RenderOptions
	shared       *x11proto.Connection
}

func newConn(clientConn, upstreamConn net.Conn, records chan<- x11proto.Record, opts *x11proto.RenderOptions) *conn {
	return &conn{
		clientConn:   clientConn,
		upstreamConn: upstreamConn,
		records:      records,
		opts:         opts,
		shared:       x11proto.NewConnection(),
	}
}

func (c *conn) relay(ctx context.Context) error {
	metrics.ConnectionsTotal.Inc()

	errCh := make(chan error, 2)
	go func() { errCh <- c.pump(ctx, c.clientConn, c.upstreamConn, true) }()
	go func() { errCh <- c.pump(ctx, c.upstreamConn, c.clientConn, false) }()

	err := <-errCh
	_ = c.clientConn.Close()
	_ = c.upstreamConn.Close()
	<-errCh

	return err
}

// pump reads from src, decodes each message against the connection's
// shared x11proto.Connection state, publishes a Record, and forwards the
// exact bytes (mutated in place only by x11proto's sanctioned
// QueryExtension rewrite) to dst.
func (c *conn) pump(ctx context.Context, src, dst net.Conn, fromClient bool) error {
	store := make([]byte, 4096)
	pending := 0 // bytes of store[:pending] awaiting decode

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		n, rec, err := x11proto.Decode(store[:pending], c.shared, c.opts, fromClient)
		if err == nil {
			metrics.MessagesTotal.WithLabelValues(rec.Kind, rec.Direction).Inc()
			metrics.MessageSizeHistogram.Observe(float64(rec.Bytes))
			c.publish(rec)

			if _, werr := dst.Write(store[:n]); werr != nil {
				return fmt.Errorf("x11: forward: %w", werr)
			}
			metrics.BytesRelayedTotal.WithLabelValues(rec.Direction).Add(float64(n))

			copy(store, store[n:pending])
			pending -= n
			continue
		}

		if !errors.Is(err, x11proto.ErrNeedMoreData) {
			metrics.DecodeErrorsTotal.Inc()
			return fmt.Errorf("x11: decode: %w", err)
		}

		if pending == len(store) {
			grown := make([]byte, len(store)*2)
			copy(grown, store[:pending])
			store = grown
		}
		read, rerr := src.Read(store[pending:])
		pending += read
		if rerr != nil {
			if isClosedErr(rerr) {
				return nil
			}
			return fmt.Errorf("x11: read: %w", rerr)
		}
	}
}

func (c *conn) publish(rec x11proto.Record) {
	select {
	case c.records <- rec:
	default:
		// subscriber (or proxy.Records consumer) not keeping up; drop
		// rather than stall the relay.
	}
}

func isClosedErr(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return netErr.Err.Error() == "use of closed network connection"
	}
	return strings.Contains(err.Error(), "closed")
}

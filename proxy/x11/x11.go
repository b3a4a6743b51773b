// Package x11 implements proxy.Proxy for the X11 wire protocol: it
// accepts client connections, relays bytes to an upstream X server
// unmodified, and publishes an x11proto.Record per decoded message. One
// goroutine per accepted connection feeds a shared records channel.
package x11

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/x11tap/x11tap/x11proto"
)

// Proxy relays one listener's connections to a single upstream X server.
type Proxy struct {
	network  string
	listen   string
	upstream string
	opts     *x11proto.RenderOptions

	records chan x11proto.Record

	mu     sync.Mutex
	lis    net.Listener
	closed bool
	wg     sync.WaitGroup
}

// New creates a Proxy listening on network/listen and forwarding to
// upstream (dialed with the same network). opts controls how x11proto
// renders decoded messages (verbosity, multiline, denied extensions).
func New(network, listen, upstream string, opts *x11proto.RenderOptions) *Proxy {
	if opts == nil {
		opts = &x11proto.RenderOptions{}
	}
	return &Proxy{
		network:  network,
		listen:   listen,
		upstream: upstream,
		opts:     opts,
		records:  make(chan x11proto.Record, 256),
	}
}

// Records returns the channel of decoded wire messages.
func (p *Proxy) Records() <-chan x11proto.Record { return p.records }

// ListenAndServe accepts connections until ctx is canceled or Close is
// called.
func (p *Proxy) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, p.network, p.listen)
	if err != nil {
		return fmt.Errorf("x11: listen %s %s: %w", p.network, p.listen, err)
	}

	p.mu.Lock()
	p.lis = lis
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = p.Close()
	}()

	for {
		clientConn, err := lis.Accept()
		if err != nil {
			p.wg.Wait()
			close(p.records)
			p.mu.Lock()
			closed := p.closed
			p.mu.Unlock()
			if closed {
				return nil
			}
			return fmt.Errorf("x11: accept: %w", err)
		}

		var d net.Dialer
		upstreamConn, err := d.DialContext(ctx, p.network, p.upstream)
		if err != nil {
			_ = clientConn.Close()
			continue
		}

		c := newConn(clientConn, upstreamConn, p.records, p.opts)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			_ = c.relay(ctx)
		}()
	}
}

// Close stops accepting new connections. Connections already relaying
// run until their sockets close.
func (p *Proxy) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if p.lis != nil {
		return p.lis.Close()
	}
	return nil
}

// Package probe pre-fetches well-known atom names from the upstream X
// server at startup: it opens its own side connection to the real
// backend and runs a bounded, read-only diagnostic exchange independent
// of the traffic being proxied.
package probe

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
)

// Client opens its own connection to the upstream X server to resolve
// atom names ahead of time. The names it returns are not added to any
// proxied connection's atom table; cmd/x11tapd only logs how many it
// resolved.
type Client struct {
	id   string
	conn net.Conn
}

// NewClient dials network/addr and performs the X11 connection-setup
// handshake as an unauthenticated client. id is a probe-session
// identifier (uuid) used only in error messages.
func NewClient(ctx context.Context, network, addr string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("probe: dial %s: %w", addr, err)
	}
	c := &Client{id: uuid.New().String(), conn: conn}
	if err := c.handshake(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("probe[%s]: handshake: %w", c.id, err)
	}
	return c, nil
}

// handshake sends a minimal little-endian connection-setup request with
// no authorization and drains the reply, whatever its status: probe only
// needs a live, sequenced connection, not a successfully authenticated one.
func (c *Client) handshake() error {
	req := make([]byte, 12)
	req[0] = 'l'
	binary.LittleEndian.PutUint16(req[2:4], 11) // protocol-major-version
	if _, err := c.conn.Write(req); err != nil {
		return fmt.Errorf("write setup request: %w", err)
	}

	var head [8]byte
	if _, err := io.ReadFull(c.conn, head[:]); err != nil {
		return fmt.Errorf("read setup reply header: %w", err)
	}
	lenUnits := binary.LittleEndian.Uint16(head[6:8])
	rest := make([]byte, int(lenUnits)*4)
	if _, err := io.ReadFull(c.conn, rest); err != nil {
		return fmt.Errorf("read setup reply body: %w", err)
	}
	return nil
}

// PrefetchResult is one resolved atom.
type PrefetchResult struct {
	ID   uint32
	Name string
}

// Prefetch issues GetAtomName (opcode 17) for every id in [1, maxID] and
// returns the ones the server actually knows (an error reply just means
// that id isn't interned; it is skipped, not fatal).
func (c *Client) Prefetch(ctx context.Context, maxID uint32) ([]PrefetchResult, error) {
	var results []PrefetchResult
	seq := uint16(0)
	for id := uint32(1); id <= maxID; id++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		seq++
		req := make([]byte, 8)
		req[0] = 17 // GetAtomName
		binary.LittleEndian.PutUint16(req[2:4], 2) // length in 4-byte units
		binary.LittleEndian.PutUint32(req[4:8], id)
		if _, err := c.conn.Write(req); err != nil {
			return results, fmt.Errorf("probe[%s]: write GetAtomName(%d): %w", c.id, id, err)
		}

		name, ok, err := c.readGetAtomNameReply()
		if err != nil {
			return results, fmt.Errorf("probe[%s]: read GetAtomName(%d) reply: %w", c.id, id, err)
		}
		if ok {
			results = append(results, PrefetchResult{ID: id, Name: name})
		}
	}
	return results, nil
}

// readGetAtomNameReply reads one server message and, if it is a
// successful GetAtomName reply, returns its name. An error message
// (code 0) is reported as ok=false, not an error — the atom id was
// simply never interned.
func (c *Client) readGetAtomNameReply() (name string, ok bool, err error) {
	var head [32]byte
	if _, err := io.ReadFull(c.conn, head[:]); err != nil {
		return "", false, err
	}
	if head[0] == 0 { // Error
		return "", false, nil
	}
	nameLen := binary.LittleEndian.Uint16(head[8:10])
	lenUnits := binary.LittleEndian.Uint32(head[4:8])
	body := make([]byte, int(lenUnits)*4)
	if _, err := io.ReadFull(c.conn, body); err != nil {
		return "", false, err
	}
	if int(nameLen) > len(body) {
		return "", false, fmt.Errorf("name length %d exceeds reply body %d", nameLen, len(body))
	}
	return string(body[:nameLen]), true, nil
}

// Close closes the probe connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// DefaultTimeout bounds how long a Prefetch pass may run.
const DefaultTimeout = 5 * time.Second

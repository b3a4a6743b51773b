// Command x11-demo-client is a minimal hand-rolled X11 client exercising
// x11tap: it performs the connection-setup handshake and then issues a
// steady stream of InternAtom requests through the proxy.
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"time"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:6070", "x11tap listen address")
	network := flag.String("net", "tcp", "transport: tcp or unix")
	flag.Parse()

	if err := run(*network, *addr); err != nil {
		log.Fatal(err)
	}
}

func run(network, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var d net.Dialer
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return fmt.Errorf("dial %s %s: %w", network, addr, err)
	}
	defer func() { _ = conn.Close() }()

	if err := handshake(conn); err != nil {
		return fmt.Errorf("handshake: %w", err)
	}
	fmt.Printf("connected to X server via x11tap on %s\n", addr)

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	names := []string{"WM_NAME", "WM_CLASS", "_NET_WM_PID", "UTF8_STRING"}
	for i := 0; ; i++ {
		name := names[i%len(names)]
		atom, err := internAtom(conn, uint16(i+1), name)
		if err != nil {
			return fmt.Errorf("InternAtom(%s): %w", name, err)
		}
		fmt.Printf("interned %q -> atom %d\n", name, atom)

		select {
		case <-ctx.Done():
			fmt.Println("shutting down")
			return nil
		case <-ticker.C:
		}
	}
}

// handshake sends a minimal little-endian connection-setup request and
// drains the reply.
func handshake(conn net.Conn) error {
	req := make([]byte, 12)
	req[0] = 'l'
	binary.LittleEndian.PutUint16(req[2:4], 11) // protocol-major-version
	if _, err := conn.Write(req); err != nil {
		return err
	}

	var head [8]byte
	if _, err := io.ReadFull(conn, head[:]); err != nil {
		return err
	}
	lenUnits := binary.LittleEndian.Uint16(head[6:8])
	rest := make([]byte, int(lenUnits)*4)
	_, err := io.ReadFull(conn, rest)
	return err
}

// internAtom issues InternAtom (opcode 16) for name and returns the
// server-assigned atom id from the reply.
func internAtom(conn net.Conn, seq uint16, name string) (uint32, error) {
	nameLen := len(name)
	padded := (nameLen + 3) / 4 * 4
	req := make([]byte, 8+padded)
	req[0] = 16 // InternAtom
	req[1] = 0  // only-if-exists = false
	binary.LittleEndian.PutUint16(req[2:4], uint16(len(req)/4))
	binary.LittleEndian.PutUint16(req[4:6], uint16(nameLen))
	copy(req[8:], name)
	if _, err := conn.Write(req); err != nil {
		return 0, err
	}

	var reply [32]byte
	if _, err := io.ReadFull(conn, reply[:]); err != nil {
		return 0, err
	}
	if reply[0] == 0 {
		return 0, fmt.Errorf("server returned error for InternAtom(%s)", name)
	}
	lenUnits := binary.LittleEndian.Uint32(reply[4:8])
	if lenUnits > 0 {
		tail := make([]byte, lenUnits*4)
		if _, err := io.ReadFull(conn, tail); err != nil {
			return 0, err
		}
	}
	return binary.LittleEndian.Uint32(reply[8:12]), nil
}

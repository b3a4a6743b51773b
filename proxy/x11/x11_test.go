package x11_test

import (
	"context"
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"github.com/x11tap/x11tap/proxy/x11"
	"github.com/x11tap/x11tap/x11proto"
)

// fakeServer accepts one connection, completes a minimal Success setup
// reply, then answers one InternAtom request with an InternAtom reply
// carrying atom id 100 — scenario S1's round trip.
func fakeServer(t *testing.T, lis net.Listener) {
	t.Helper()
	go func() {
		conn, err := lis.Accept()
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		var setupReq [12]byte
		if _, err := io.ReadFull(conn, setupReq[:]); err != nil {
			return
		}
		nameLen := binary.LittleEndian.Uint16(setupReq[6:8])
		dataLen := binary.LittleEndian.Uint16(setupReq[8:10])
		rest := make([]byte, int(nameLen+3)/4*4+int(dataLen+3)/4*4)
		_, _ = io.ReadFull(conn, rest)

		reply := make([]byte, 40)
		reply[0] = 1 // Success
		binary.LittleEndian.PutUint16(reply[2:4], 11)
		binary.LittleEndian.PutUint16(reply[6:8], 8) // 32 bytes beyond the first 8
		_, _ = conn.Write(reply)

		var req [12]byte
		if _, err := io.ReadFull(conn, req[:]); err != nil {
			return
		}
		replyBuf := make([]byte, 32)
		replyBuf[0] = 1
		binary.LittleEndian.PutUint16(replyBuf[2:4], 1) // seq
		binary.LittleEndian.PutUint32(replyBuf[8:12], 100)
		_, _ = conn.Write(replyBuf)
	}()
}

func TestInternAtomRoundTrip(t *testing.T) {
	var lc net.ListenConfig
	upstreamLis, err := lc.Listen(context.Background(), "tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen upstream: %v", err)
	}
	defer func() { _ = upstreamLis.Close() }()
	fakeServer(t, upstreamLis)

	clientLis, err := lc.Listen(context.Background(), "tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen client: %v", err)
	}
	addr := clientLis.Addr().String()
	_ = clientLis.Close()

	p := x11.New("tcp", addr, upstreamLis.Addr().String(), &x11proto.RenderOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = p.ListenAndServe(ctx) }()

	var d net.Dialer
	deadline := time.Now().Add(time.Second)
	var clientConn net.Conn
	for time.Now().Before(deadline) {
		clientConn, err = d.Dial("tcp", addr)
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if clientConn == nil {
		t.Fatalf("dial proxy: %v", err)
	}
	defer func() { _ = clientConn.Close() }()

	setupReq := make([]byte, 12)
	setupReq[0] = 'l'
	binary.LittleEndian.PutUint16(setupReq[2:4], 11)
	if _, err := clientConn.Write(setupReq); err != nil {
		t.Fatalf("write setup: %v", err)
	}

	setupReplyHead := make([]byte, 8)
	if _, err := io.ReadFull(clientConn, setupReplyHead); err != nil {
		t.Fatalf("read setup reply head: %v", err)
	}
	lenUnits := binary.LittleEndian.Uint16(setupReplyHead[6:8])
	rest := make([]byte, int(lenUnits)*4)
	if _, err := io.ReadFull(clientConn, rest); err != nil {
		t.Fatalf("read setup reply body: %v", err)
	}

	req := make([]byte, 12)
	req[0] = 16 // InternAtom
	binary.LittleEndian.PutUint16(req[2:4], 3)
	binary.LittleEndian.PutUint16(req[4:6], 4) // name length
	copy(req[8:], "TEST")
	if _, err := clientConn.Write(req); err != nil {
		t.Fatalf("write InternAtom: %v", err)
	}

	replyBuf := make([]byte, 32)
	if _, err := io.ReadFull(clientConn, replyBuf); err != nil {
		t.Fatalf("read InternAtom reply: %v", err)
	}
	atom := binary.LittleEndian.Uint32(replyBuf[8:12])
	if atom != 100 {
		t.Errorf("expected atom 100, got %d", atom)
	}

	var sawRequest, sawReply bool
	deadline = time.Now().Add(2 * time.Second)
	for !sawRequest || !sawReply {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for records (request=%v reply=%v)", sawRequest, sawReply)
		}
		select {
		case rec := <-p.Records():
			if rec.Kind == "REQUEST" && rec.Name == "InternAtom" {
				sawRequest = true
			}
			if rec.Kind == "REPLY" && rec.Name == "InternAtom" {
				sawReply = true
			}
		case <-time.After(100 * time.Millisecond):
		}
	}
}

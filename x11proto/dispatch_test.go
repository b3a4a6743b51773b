package x11proto_test

import (
	"strings"
	"testing"

	"github.com/x11tap/x11tap/x11proto"
)

func newTestConn() *x11proto.Connection {
	c := x11proto.NewConnection()
	c.SetByteOrderFromSetupByte('l')
	return c
}

// KeymapNotify (code 11) has no sequence number at all: its 32-byte frame
// is entirely a keys bitmap starting at byte 1, per spec §8 scenario S4.
func TestParseServerMessageKeymapNotify(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 32)
	buf[0] = 11
	for i := 1; i < 32; i++ {
		buf[i] = 0xff
	}

	c := newTestConn()
	consumed, rec, err := x11proto.ParseServerMessage(buf, c, &x11proto.RenderOptions{})
	if err != nil {
		t.Fatalf("ParseServerMessage: %v", err)
	}
	if consumed != 32 {
		t.Fatalf("consumed = %d, want 32", consumed)
	}
	if rec.HasSeq {
		t.Fatalf("HasSeq = true, want false for KeymapNotify")
	}
	if rec.Name != "KeymapNotify" {
		t.Fatalf("Name = %q, want KeymapNotify", rec.Name)
	}
	if !strings.Contains(rec.String(), ":?????: ") {
		t.Fatalf("String() = %q, want ?????  placeholder for the missing sequence", rec.String())
	}
}

// A SendEvent-relayed Expose event has the high bit of the wire code set
// (spec §3); this must surface as EVENT(generated) with the real sequence
// number still present.
func TestParseServerMessageGeneratedEvent(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 32)
	buf[0] = 12 | 0x80 // Expose, generated
	buf[2] = 7         // sequence low byte

	c := newTestConn()
	_, rec, err := x11proto.ParseServerMessage(buf, c, &x11proto.RenderOptions{})
	if err != nil {
		t.Fatalf("ParseServerMessage: %v", err)
	}
	if rec.Kind != "EVENT(generated)" {
		t.Fatalf("Kind = %q, want EVENT(generated)", rec.Kind)
	}
	if rec.Name != "Expose" {
		t.Fatalf("Name = %q, want Expose", rec.Name)
	}
	if !rec.HasSeq || rec.Seq != 7 {
		t.Fatalf("Seq = %d (hasSeq=%v), want 7 (true)", rec.Seq, rec.HasSeq)
	}
}

// A non-generated Expose keeps the plain EVENT kind.
func TestParseServerMessageOrdinaryEvent(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 32)
	buf[0] = 12 // Expose, not generated

	c := newTestConn()
	_, rec, err := x11proto.ParseServerMessage(buf, c, &x11proto.RenderOptions{})
	if err != nil {
		t.Fatalf("ParseServerMessage: %v", err)
	}
	if rec.Kind != "EVENT" {
		t.Fatalf("Kind = %q, want EVENT", rec.Kind)
	}
}

// ParseServerMessage reports ErrNeedMoreData, not a decode error, for a
// short buffer: every server message is at least 32 bytes (spec §3).
func TestParseServerMessageShortBuffer(t *testing.T) {
	t.Parallel()

	c := newTestConn()
	_, _, err := x11proto.ParseServerMessage(make([]byte, 16), c, &x11proto.RenderOptions{})
	if err != x11proto.ErrNeedMoreData {
		t.Fatalf("err = %v, want ErrNeedMoreData", err)
	}
}

// ParseRequest reports ErrNeedMoreData (not a decode error) when the
// length field promises more bytes than are buffered yet.
func TestParseRequestNeedsMoreData(t *testing.T) {
	t.Parallel()

	buf := []byte{16, 0, 2, 0} // InternAtom, lengthUnits=2 (8 bytes), only 4 buffered
	c := newTestConn()
	_, _, err := x11proto.ParseRequest(buf, c, &x11proto.RenderOptions{})
	if err != x11proto.ErrNeedMoreData {
		t.Fatalf("err = %v, want ErrNeedMoreData", err)
	}
}

// A request with a length field shorter than its own fixed header is a
// genuine protocol violation, reported as a *DecodeError.
func TestParseRequestTooShortHeader(t *testing.T) {
	t.Parallel()

	buf := []byte{16, 0, 0, 0} // lengthUnits=0 with BIG-REQUESTS inactive: reqLen=0 < fieldsStart=4
	c := newTestConn()
	_, _, err := x11proto.ParseRequest(buf, c, &x11proto.RenderOptions{})
	if _, ok := err.(*x11proto.DecodeError); !ok {
		t.Fatalf("err = %v (%T), want *DecodeError", err, err)
	}
}

// Unknown request opcodes still decode using the length field alone, and
// fall back to extension-name resolution or "?" (spec's opaque-fallback
// scope decision).
func TestParseRequestUnknownOpcode(t *testing.T) {
	t.Parallel()

	buf := []byte{200, 0, 2, 0, 0, 0, 0, 0} // opcode 200, lengthUnits=2 (8 bytes)
	c := newTestConn()
	consumed, rec, err := x11proto.ParseRequest(buf, c, &x11proto.RenderOptions{})
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if consumed != 8 {
		t.Fatalf("consumed = %d, want 8", consumed)
	}
	if rec.Name != "?" {
		t.Fatalf("Name = %q, want ? for an unclaimed opcode", rec.Name)
	}
}

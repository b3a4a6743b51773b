package x11proto

import (
	"errors"
	"fmt"
)

// DecodeError reports a structural failure to parse a message: a length
// field pointing past what the protocol allows, a header shorter than
// the protocol minimum, or similar. It is returned, never panicked (spec
// §7/§9): callers decide whether to drop the connection or resynchronize.
type DecodeError struct {
	msg string
}

func (e *DecodeError) Error() string { return e.msg }

// DecodeErrorf builds a *DecodeError with a formatted message.
func DecodeErrorf(format string, args ...any) *DecodeError {
	return &DecodeError{msg: fmt.Sprintf(format, args...)}
}

// ErrNeedMoreData means buf holds a valid but incomplete prefix of the
// next message: the caller should read more bytes from the connection
// and retry Decode with the same buffer extended, not treat this as a
// protocol violation. This is distinct from DecodeError, which means the
// bytes present are already inconsistent with the protocol (a length
// field claiming less than the fixed header it's part of, for example).
var ErrNeedMoreData = errors.New("x11proto: need more data")

// Decode parses exactly one message from the front of buf, dispatching on
// the connection's setup-exchange state and message direction. It returns
// the number of bytes consumed so the caller can advance its stream
// cursor; consumed is always > 0 on a nil error.
//
// fromClient distinguishes the two halves of the byte stream: a
// connection's very first client->server message is always the setup
// request, and its very first server->client message is always the
// setup reply (spec §2); every later message on that direction is a
// regular request, or a reply/event/error.
func Decode(buf []byte, c *Connection, o *RenderOptions, fromClient bool) (consumed int, rec Record, err error) {
	if fromClient {
		if !c.setupRequestSeen {
			if len(buf) < 12 {
				return 0, Record{}, ErrNeedMoreData
			}
			swap := buf[0] == 'B'
			nameLen := int(card16(buf[6:8], swap))
			dataLen := int(card16(buf[8:10], swap))
			need := 12 + Pad(nameLen) + Pad(dataLen)
			if len(buf) < need {
				return 0, Record{}, ErrNeedMoreData
			}
			n, body := DecodeSetupRequest(buf, c, o)
			return n, Record{
				ConnID: c.ID, Bytes: n, Direction: "C->S", Kind: "SETUP-REQUEST",
				HasSeq: false, Body: body,
			}, nil
		}
		return ParseRequest(buf, c, o)
	}

	if !c.setupReplySeen {
		if len(buf) < 8 {
			return 0, Record{}, ErrNeedMoreData
		}
		lenUnits := int(card16(buf[6:8], c.Swap))
		if need := 8 + Size(lenUnits); len(buf) < need {
			return 0, Record{}, ErrNeedMoreData
		}
		n, body := DecodeSetupReply(buf, c, o)
		return n, Record{
			ConnID: c.ID, Bytes: n, Direction: "S->C", Kind: "SETUP-REPLY",
			HasSeq: false, Body: body,
		}, nil
	}
	return ParseServerMessage(buf, c, o)
}

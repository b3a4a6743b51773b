package x11proto

import "fmt"

// Record is one decoded wire message: enough to produce the fixed
// top-line log format spec §4.7 requires, plus the formatted body.
type Record struct {
	ConnID    uint32
	Bytes     int
	Direction string // "C->S" or "S->C"
	Kind      string // REQUEST, REPLY, EVENT, ERROR, SETUP-REQUEST, SETUP-REPLY
	Seq       uint16
	HasSeq    bool
	Code      uint8
	Name      string
	Body      string
}

// String renders the fixed top-line format: C{conn:03}:{bytes:04}B:
// {direction}:S{seq:05}: {kind} {name}({code}): {body}. KeymapNotify's
// sequence is rendered "?????" instead of a zero-padded number (spec §8
// scenario S4); SETUP-REQUEST/SETUP-REPLY have no sequence of their own
// (the first request's sequence number is 1, assigned afterward).
func (r Record) String() string {
	seqStr := "?????"
	if r.HasSeq {
		seqStr = fmt.Sprintf("S%05d", r.Seq)
	}
	return fmt.Sprintf("C%03d:%04dB:%s:%s: %s %s(%d): %s",
		r.ConnID, r.Bytes, r.Direction, seqStr, r.Kind, r.Name, r.Code, r.Body)
}

// verboseRedundantFields renders the wire fields the top-line already
// carries (discriminator, sequence, length) so -verbose mode reproduces
// them in the body too, ahead of the message's own fields.
func verboseRedundantFields(o *RenderOptions, discName string, disc uint32, hasSeq bool, seq uint16, hasLength bool, length uint32) []FieldValue {
	if !o.Verbose {
		return nil
	}
	fields := []FieldValue{{Name: discName, Value: FormatScalar(disc, 1, nil, true)}}
	if hasSeq {
		fields = append(fields, FieldValue{Name: "sequence-number", Value: FormatScalar(uint32(seq), 2, nil, true)})
	}
	if hasLength {
		fields = append(fields, FieldValue{Name: "length", Value: FormatScalar(length, 4, nil, true)})
	}
	return fields
}

// headerRequestLength returns the total request length in bytes and the
// byte offset fixed fields start at, accounting for BIG-REQUESTS'
// extended length encoding (spec §4.6): lengthUnits==0 with
// BIG-REQUESTS active means the real length is the next CARD32, in
// units, and fixed fields start 4 bytes later than usual.
func headerRequestLength(buf []byte, swap bool, c *Connection) (reqLen, fieldsStart int) {
	lengthUnits := card16(buf[2:4], swap)
	if lengthUnits == 0 && c.BigRequestsEnabled() {
		ext := card32(buf[4:8], swap)
		return Size(int(ext)), 8
	}
	return Size(int(lengthUnits)), 4
}

// ParseRequest decodes one client->server request starting at buf[0].
// reqLen (and therefore the bytes Decode's caller should advance by)
// is always known up front from the length field, even for requests this
// package doesn't recognize.
func ParseRequest(buf []byte, c *Connection, o *RenderOptions) (consumed int, rec Record, err error) {
	if len(buf) < 4 {
		return 0, Record{}, ErrNeedMoreData
	}
	swap := c.Swap
	opcode := buf[0]
	detailByte := buf[1]

	if lengthUnits := card16(buf[2:4], swap); lengthUnits == 0 && c.BigRequestsEnabled() && len(buf) < 8 {
		return 0, Record{}, ErrNeedMoreData
	}
	reqLen, fieldsStart := headerRequestLength(buf, swap, c)
	if reqLen < fieldsStart {
		return 0, Record{}, DecodeErrorf("request length %d shorter than header (opcode %d)", reqLen, opcode)
	}
	if reqLen > len(buf) {
		return 0, Record{}, ErrNeedMoreData
	}

	seq := c.RegisterRequest(opcode)
	ctx := RootCtx(o.Multiline)

	desc, known := requestTable[opcode]
	if !known {
		name := "?"
		if ext, ok := c.ExtensionForOpcode(opcode); ok {
			name = ext.Name + "Request"
		}
		return reqLen, Record{
			ConnID: c.ID, Bytes: reqLen, Direction: "C->S", Kind: "REQUEST",
			Seq: seq, HasSeq: true, Code: opcode, Name: name,
			Body: summarizeBytes(buf[fieldsStart:reqLen]),
		}, nil
	}

	lengthUnits := card16(buf[2:4], swap)
	fields := verboseRedundantFields(o, "opcode", uint32(opcode), true, seq, true, uint32(lengthUnits))
	if desc.Detail.Width != 0 {
		v := uint32(detailByte)
		var rendered string
		if desc.Detail.format != nil {
			rendered = desc.Detail.format(v, o, c)
		} else {
			rendered = FormatScalar(v, 1, nil, o.Verbose)
		}
		fields = append(fields, FieldValue{Name: desc.Detail.Name, Value: rendered})
	}

	fixedConsumed, vals, raw := ParseFields(buf[fieldsStart:reqLen], swap, desc.Fields, o, c)
	fields = append(fields, vals...)
	if desc.Tail != nil {
		tailBuf := buf[fieldsStart+fixedConsumed : reqLen]
		fields = append(fields, desc.Tail(tailBuf, swap, reqLen, ctx, o, c, seq, uint32(detailByte), raw)...)
	}

	return reqLen, Record{
		ConnID: c.ID, Bytes: reqLen, Direction: "C->S", Kind: "REQUEST",
		Seq: seq, HasSeq: true, Code: opcode, Name: desc.Name,
		Body: Brace(ctx, fields),
	}, nil
}

// ParseServerMessage decodes one server->client message: an error
// (code 0), a reply (code 1), or an event (code >= 2), per spec §3's
// leading-byte discriminator.
func ParseServerMessage(buf []byte, c *Connection, o *RenderOptions) (consumed int, rec Record, err error) {
	if len(buf) < 32 {
		return 0, Record{}, ErrNeedMoreData
	}
	switch buf[0] {
	case 0:
		return parseErrorMessage(buf, c, o)
	case 1:
		return parseReplyMessage(buf, c, o)
	default:
		return parseEventMessage(buf, c, o)
	}
}

func parseErrorMessage(buf []byte, c *Connection, o *RenderOptions) (int, Record, error) {
	name, seq, body := DispatchError(buf, c.Swap, o, c)
	c.DiscardStash(seq)
	c.UnregisterRequest(seq)
	return 32, Record{
		ConnID: c.ID, Bytes: 32, Direction: "S->C", Kind: "ERROR",
		Seq: seq, HasSeq: true, Code: buf[1], Name: name, Body: body,
	}, nil
}

func parseEventMessage(buf []byte, c *Connection, o *RenderOptions) (int, Record, error) {
	ctx := RootCtx(o.Multiline)
	name, generated, seq, hasSeq, body := DispatchEvent(buf, c.Swap, o, c, ctx)
	kind := "EVENT"
	if generated {
		kind = "EVENT(generated)"
	}
	return 32, Record{
		ConnID: c.ID, Bytes: 32, Direction: "S->C", Kind: kind,
		Seq: seq, HasSeq: hasSeq, Code: buf[0] & 0x7f, Name: name, Body: body,
	}, nil
}

func parseReplyMessage(buf []byte, c *Connection, o *RenderOptions) (int, Record, error) {
	swap := c.Swap
	seq := card16(buf[2:4], swap)
	replyLenUnits := card32(buf[4:8], swap)
	total := 32 + Size(int(replyLenUnits))
	if total > len(buf) {
		return 0, Record{}, ErrNeedMoreData
	}

	opcode, known := c.LookupRequest(seq)
	name := "?"
	if known {
		name = requestNameForOpcode(opcode, c)
	}
	detail := uint32(buf[1])
	ctx := RootCtx(o.Multiline)

	fields := verboseRedundantFields(o, "type", 1, true, seq, true, replyLenUnits)
	unregister := true
	switch {
	case known && opcode == 98: // QueryExtension: sanctioned mutation lives here
		fields = append(fields, handleQueryExtensionReply(buf, swap, ctx, o, c, seq)...)
	case known && isBigReqEnableReply(opcode, c):
		fields = append(fields, handleBigReqEnableReply(buf[8:32], swap, o, c)...)
	case known && opcode == 50: // ListFontsWithInfo: sentinel-terminated reply sequence
		var final bool
		var tailFields []FieldValue
		tailFields, final = handleListFontsWithInfoReply(buf[:total], swap, o, c, ctx, detail)
		fields = append(fields, tailFields...)
		unregister = final
	case known && replyTable[opcode] != nil:
		desc := replyTable[opcode]
		region := buf[8:32]
		var raw map[string]uint32
		fixedConsumed := 0
		if desc.Fields != nil {
			n, vals, r := ParseFields(region, swap, desc.Fields, o, c)
			fields = append(fields, vals...)
			raw = r
			fixedConsumed = n
		}
		if desc.Tail != nil {
			// Tail owns everything Fields didn't: the rest of the
			// 24-byte region plus any list data beyond the 32-byte base.
			tailBuf := buf[8+fixedConsumed : total]
			fields = append(fields, desc.Tail(tailBuf, swap, replyLenUnits, ctx, o, c, seq, detail, raw)...)
		}
	default:
		fields = append(fields, FieldValue{Name: "data", Value: summarizeBytes(buf[8:total])})
	}

	if unregister {
		c.UnregisterRequest(seq)
	}
	return total, Record{
		ConnID: c.ID, Bytes: total, Direction: "S->C", Kind: "REPLY",
		Seq: seq, HasSeq: true, Code: opcode, Name: name,
		Body: Brace(ctx, fields),
	}, nil
}

// isBigReqEnableReply reports whether opcode is the major opcode
// BIG-REQUESTS was assigned on c, the only request that extension
// defines (spec §4.6).
func isBigReqEnableReply(opcode uint8, c *Connection) bool {
	ext, ok := c.ExtensionByName("BIG-REQUESTS")
	return ok && ext.MajorOpcode == opcode
}

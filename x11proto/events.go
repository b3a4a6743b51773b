package x11proto

// DispatchEvent renders one 32-byte core event frame: buf[0] is the wire
// code (bit 7 set means server-synthesized via SendEvent, spec §3),
// buf[1] is detail-or-unused, buf[2:4] is the sequence number (KeymapNotify
// excepted, see below), and buf[4:32] is the body.
//
// generated reports the SendEvent flag, name is the resolved event name
// ("?" if the low 7 bits aren't a known core code and no extension claims
// it), hasSeq is false only for KeymapNotify (spec §8 scenario S4: no
// sequence number is ever meaningful for this event, rendered "?????"
// instead of a number by the caller), and body is the formatted fields.
func DispatchEvent(buf []byte, swap bool, o *RenderOptions, c *Connection, ctx Ctx) (name string, generated bool, seq uint16, hasSeq bool, body string) {
	code := buf[0]
	generated = code&0x80 != 0
	low := code & 0x7f

	desc, ok := eventTable[low]
	if !ok {
		seq = card16(buf[2:4], swap)
		if ext, ok := c.ExtensionForEvent(low); ok {
			return ext.Name + "Event", generated, seq, true, summarizeBytes(buf[4:32])
		}
		return "?", generated, seq, true, summarizeBytes(buf[4:32])
	}

	if desc.NoSequence {
		fields := verboseRedundantFields(o, "code", uint32(code), false, 0, false, 0)
		fields = append(fields, desc.Tail(buf[1:32], swap, ctx, o, c)...)
		return desc.Name, generated, 0, false, Brace(ctx, fields)
	}

	seq = card16(buf[2:4], swap)
	fields := verboseRedundantFields(o, "code", uint32(code), true, seq, false, 0)
	if desc.Detail.Width != 0 {
		v := readFieldRaw(buf[1:2], swap, 1)
		var rendered string
		if desc.Detail.format != nil {
			rendered = desc.Detail.format(v, o, c)
		} else {
			rendered = FormatScalar(v, 1, nil, o.Verbose)
		}
		fields = append(fields, FieldValue{Name: "detail", Value: rendered})
	}
	rest := buf[4:32]
	if desc.Tail != nil {
		fields = append(fields, desc.Tail(rest, swap, ctx, o, c)...)
	} else {
		_, vals, _ := ParseFields(rest, swap, desc.Fields, o, c)
		fields = append(fields, vals...)
	}
	return desc.Name, generated, seq, true, Brace(ctx, fields)
}

// FormatEmbeddedEvent renders a 32-byte event embedded in a SendEvent
// request's body (spec §8 scenario S5). It never has a meaningful
// sequence number of its own (the wire bytes are whatever the sender
// chose): terse output leaves the sequence field out, and verbose output
// shows those raw bytes as "sequence-number" like any other top-level
// event.
func FormatEmbeddedEvent(buf []byte, swap bool, ctx Ctx, o *RenderOptions, c *Connection) string {
	name, _, _, _, body := DispatchEvent(buf, swap, o, c, ctx)
	return name + body
}

func renderKeymapBitmap(b []byte) string {
	// 31 bytes, bit N-8 of byte (N/8) set means keycode N is down, for
	// keycodes 8..255 (spec §8 scenario S4 only requires the ?????
	// sequence placeholder; the bitmap itself renders as a plain hex
	// dump, there being no per-bit names for individual keycodes).
	return ListOfByteHex(b)
}

func tailKeymapNotify(buf []byte, swap bool, ctx Ctx, o *RenderOptions, c *Connection) []FieldValue {
	return []FieldValue{{Name: "keys", Value: renderKeymapBitmap(buf[:min(31, len(buf))])}}
}

// tailClientMessage renders ClientMessage's window, type atom and 20-byte
// data union. The union is always shown as five 32-bit words, whatever the
// event's format field (8/16/32) says.
func tailClientMessage(buf []byte, swap bool, ctx Ctx, o *RenderOptions, c *Connection) []FieldValue {
	win := card32(buf[0:4], swap)
	typ := card32(buf[4:8], swap)
	data := buf[8:28]
	var items []string
	nested := ctx.Nested(true)
	// format isn't available here (it's the event's Detail, rendered by
	// the caller), so the union is shown as the raw 32-bit words
	// extensions most commonly key off of.
	for i := 0; i+4 <= len(data); i += 4 {
		items = append(items, hexString(card32(data[i:i+4], swap), 4))
	}
	return []FieldValue{
		{Name: "window", Value: FormatResourceID(win, o.Verbose)},
		{Name: "type", Value: FormatAtom(typ, nil, c.Atoms, o.Verbose)},
		{Name: "data", Value: renderList(nested, items)},
	}
}

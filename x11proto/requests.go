package x11proto

// Hand-written tail parsers for requests whose variable-length part isn't
// a plain LISTofVALUE: Pascal-counted strings, geometry lists, and the
// handful of requests with genuine cross-message side effects (InternAtom
// stashes its name for the reply; QueryExtension stashes its name;
// SendEvent recurses into the embedded event). Grounded on the core
// protocol's request encodings (spec §3, §4.6).

func tailValueList(schema []ValueListEntry) TailParser {
	return func(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
		mask := raw["value-mask"]
		_, rendered := ParseValueList(buf, swap, mask, schema, ctx, o.Verbose)
		return []FieldValue{{Name: "value-list", Value: rendered}}
	}
}

// readCountedString8 reads a CARD16 length, 2 unused bytes, then that many
// STRING8 bytes (the common "stashed name" shape InternAtom, OpenFont,
// QueryExtension, and the *Color requests all share).
func readCountedString8(buf []byte, swap bool) (name string, consumed int) {
	n := int(card16(buf, swap))
	start := 4
	if start+n > len(buf) {
		n = max0(len(buf) - start)
	}
	return string(buf[start : start+n]), Pad(start + n)
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func tailInternAtomRequest(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	name, _ := readCountedString8(buf, swap)
	c.Stash(seq, name)
	return []FieldValue{{Name: "name", Value: quoteASCII(name)}}
}

func tailOpenFont(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	name, _ := readCountedString8(buf, swap)
	return []FieldValue{{Name: "name", Value: quoteASCII(name)}}
}

func tailNamedString(field string) TailParser {
	return func(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
		name, _ := readCountedString8(buf, swap)
		return []FieldValue{{Name: field, Value: quoteASCII(name)}}
	}
}

func tailQueryExtensionRequest(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	name, _ := readCountedString8(buf, swap)
	c.Stash(seq, name)
	return []FieldValue{{Name: "name", Value: quoteASCII(name)}}
}

// tailChangeProperty renders the format/length-dependent data: a quoted
// string for format 8 whatever the type, a CARD16 list for format 16 and a
// CARD32 list otherwise. Spec §4.6
// singles this out ("decodes by format width, not by declared type, since
// the type atom is caller-chosen and not authoritative").
func tailChangeProperty(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	format := raw["format"]
	n := int(raw["length"])
	nested := ctx.Nested(true)
	switch format {
	case 8:
		end := n
		if end > len(buf) {
			end = len(buf)
		}
		return []FieldValue{{Name: "data", Value: quoteASCII(string(buf[:end]))}}
	case 16:
		items := make([]string, 0, n)
		for i := 0; i < n && (i+1)*2 <= len(buf); i++ {
			items = append(items, FormatScalar(uint32(card16(buf[i*2:i*2+2], swap)), 2, nil, o.Verbose))
		}
		return []FieldValue{{Name: "data", Value: renderList(nested, items)}}
	default:
		items := make([]string, 0, n)
		for i := 0; i < n && (i+1)*4 <= len(buf); i++ {
			items = append(items, FormatScalar(card32(buf[i*4:i*4+4], swap), 4, nil, o.Verbose))
		}
		return []FieldValue{{Name: "data", Value: renderList(nested, items)}}
	}
}

// tailSendEvent recursively formats the 32-byte embedded event using the
// same event dispatch table as top-level events, annotated "(generated)"
// per spec §8 scenario S5. The embedded event is never itself relayed as
// a separate wire message, so its sequence bytes carry no meaning; see
// FormatEmbeddedEvent for how they are rendered.
func tailSendEvent(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	if len(buf) < 32 {
		return []FieldValue{{Name: "event", Value: "<truncated>"}}
	}
	rendered := FormatEmbeddedEvent(buf[:32], swap, ctx.Nested(false), o, c)
	return []FieldValue{{Name: "event", Value: rendered + " (generated)"}}
}

func tailListFonts(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	name, _ := readCountedString8(buf, swap)
	return []FieldValue{{Name: "pattern", Value: quoteASCII(name)}}
}

func tailSetFontPath(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	count := int(raw["str-number-in-path"])
	nested := ctx.Nested(true)
	var items []string
	off := 0
	for i := 0; i < count && off < len(buf); i++ {
		n := int(buf[off])
		off++
		end := off + n
		if end > len(buf) {
			end = len(buf)
		}
		items = append(items, quoteASCII(string(buf[off:end])))
		off = end
	}
	return []FieldValue{{Name: "path", Value: renderList(nested, items)}}
}

func tailSetDashes(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	n := int(raw["n"])
	nested := ctx.Nested(true)
	items := make([]string, 0, n)
	for i := 0; i < n && i < len(buf); i++ {
		items = append(items, FormatScalar(uint32(buf[i]), 1, nil, o.Verbose))
	}
	return []FieldValue{{Name: "dashes", Value: renderList(nested, items)}}
}

func pointElem(buf []byte, swap bool) (int, string) {
	x := sint16(buf[0:2], swap)
	y := sint16(buf[2:4], swap)
	return 4, Brace(RootCtx(false), []FieldValue{
		{Name: "x", Value: FormatScalar(uint32(uint16(x)), 2, nil, false)},
		{Name: "y", Value: FormatScalar(uint32(uint16(y)), 2, nil, false)},
	})
}

func segmentElem(buf []byte, swap bool) (int, string) {
	return 8, Brace(RootCtx(false), []FieldValue{
		{Name: "x1", Value: FormatScalar(uint32(uint16(sint16(buf[0:2], swap))), 2, nil, false)},
		{Name: "y1", Value: FormatScalar(uint32(uint16(sint16(buf[2:4], swap))), 2, nil, false)},
		{Name: "x2", Value: FormatScalar(uint32(uint16(sint16(buf[4:6], swap))), 2, nil, false)},
		{Name: "y2", Value: FormatScalar(uint32(uint16(sint16(buf[6:8], swap))), 2, nil, false)},
	})
}

func rectangleElem(buf []byte, swap bool) (int, string) {
	return 8, Brace(RootCtx(false), []FieldValue{
		{Name: "x", Value: FormatScalar(uint32(uint16(sint16(buf[0:2], swap))), 2, nil, false)},
		{Name: "y", Value: FormatScalar(uint32(uint16(sint16(buf[2:4], swap))), 2, nil, false)},
		{Name: "width", Value: FormatScalar(uint32(card16(buf[4:6], swap)), 2, nil, false)},
		{Name: "height", Value: FormatScalar(uint32(card16(buf[6:8], swap)), 2, nil, false)},
	})
}

func arcElem(buf []byte, swap bool) (int, string) {
	return 12, Brace(RootCtx(false), []FieldValue{
		{Name: "x", Value: FormatScalar(uint32(uint16(sint16(buf[0:2], swap))), 2, nil, false)},
		{Name: "y", Value: FormatScalar(uint32(uint16(sint16(buf[2:4], swap))), 2, nil, false)},
		{Name: "width", Value: FormatScalar(uint32(card16(buf[4:6], swap)), 2, nil, false)},
		{Name: "height", Value: FormatScalar(uint32(card16(buf[6:8], swap)), 2, nil, false)},
		{Name: "angle1", Value: FormatScalar(uint32(uint16(sint16(buf[8:10], swap))), 2, nil, false)},
		{Name: "angle2", Value: FormatScalar(uint32(uint16(sint16(buf[10:12], swap))), 2, nil, false)},
	})
}

func tailPointList(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	_, rendered := ParseByteBoundedList(buf, swap, len(buf), pointElem, ctx, true)
	return []FieldValue{{Name: "points", Value: rendered}}
}

func tailPointListAfterShape(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	_, rendered := ParseByteBoundedList(buf, swap, len(buf), pointElem, ctx, true)
	return []FieldValue{{Name: "points", Value: rendered}}
}

func tailSegmentList(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	_, rendered := ParseByteBoundedList(buf, swap, len(buf), segmentElem, ctx, true)
	return []FieldValue{{Name: "segments", Value: rendered}}
}

func tailRectangleList(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	_, rendered := ParseByteBoundedList(buf, swap, len(buf), rectangleElem, ctx, true)
	return []FieldValue{{Name: "rectangles", Value: rendered}}
}

func tailArcList(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	_, rendered := ParseByteBoundedList(buf, swap, len(buf), arcElem, ctx, true)
	return []FieldValue{{Name: "arcs", Value: rendered}}
}

// summarizeBytes renders a raw data tail as a length plus a short hex
// preview, used where dumping the full payload (image pixels) wouldn't be
// meaningfully readable.
func summarizeBytes(b []byte) string {
	const preview = 16
	n := len(b)
	if n == 0 {
		return "<0 bytes>"
	}
	end := n
	if end > preview {
		end = preview
	}
	s := ListOfByteHex(b[:end])
	if n > preview {
		return s[:len(s)-1] + ", ...] (" + itoa(n) + " bytes)"
	}
	return s + " (" + itoa(n) + " bytes)"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func tailPutImage(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	return []FieldValue{{Name: "data", Value: summarizeBytes(buf)}}
}

func tailPolyText(wide bool) TailParser {
	return func(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
		nested := ctx.Nested(true)
		var items []string
		off := 0
		for off < len(buf) {
			n := int(buf[off])
			if n == 0 {
				break
			}
			if n == 255 {
				if off+5 > len(buf) {
					break
				}
				font := card32(buf[off+1:off+5], swap)
				items = append(items, "font-shift("+FormatResourceID(font, o.Verbose)+")")
				off += 5
				continue
			}
			if off+2 > len(buf) {
				break
			}
			delta := int(sint8(buf[off+1 : off+2]))
			strStart := off + 2
			strLen := n
			byteLen := strLen
			if wide {
				byteLen = strLen * 2
			}
			end := strStart + byteLen
			if end > len(buf) {
				end = len(buf)
			}
			var text string
			if wide {
				text = summarizeBytes(buf[strStart:end])
			} else {
				text = quoteASCII(string(buf[strStart:end]))
			}
			items = append(items, Brace(RootCtx(false), []FieldValue{
				{Name: "delta", Value: itoa(delta)},
				{Name: "string", Value: text},
			}))
			off = end
		}
		return []FieldValue{{Name: "items", Value: renderList(nested, items)}}
	}
}

func tailImageText(wide bool) TailParser {
	return func(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
		n := int(detail)
		byteLen := n
		if wide {
			byteLen = n * 2
		}
		if byteLen > len(buf) {
			byteLen = len(buf)
		}
		var text string
		if wide {
			text = summarizeBytes(buf[:byteLen])
		} else {
			text = quoteASCII(string(buf[:byteLen]))
		}
		return []FieldValue{{Name: "string", Value: text}}
	}
}

func tailChangeKeyboardMapping(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	nested := ctx.Nested(true)
	_, rendered := ParseByteBoundedList(buf, swap, len(buf), func(b []byte, swap bool) (int, string) {
		return 4, hexString(card32(b, swap), 4)
	}, nested, true)
	return []FieldValue{{Name: "keysyms", Value: rendered}}
}

func tailChangeHosts(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	n := int(raw["address-len"])
	if n > len(buf) {
		n = len(buf)
	}
	return []FieldValue{{Name: "address", Value: summarizeBytes(buf[:n])}}
}

func tailRotateProperties(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	n := int(raw["n"])
	_, rendered := ParseFixedList(buf, swap, n, func(b []byte, swap bool) (int, string) {
		return 4, FormatAtom(card32(b, swap), nil, c.Atoms, o.Verbose)
	}, ctx, true)
	return []FieldValue{{Name: "properties", Value: rendered}}
}

func tailRawByteList(field string) TailParser {
	return func(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
		n := int(detail)
		if n > len(buf) {
			n = len(buf)
		}
		nested := ctx.Nested(true)
		items := make([]string, n)
		for i := 0; i < n; i++ {
			items[i] = FormatScalar(uint32(buf[i]), 1, nil, o.Verbose)
		}
		return []FieldValue{{Name: field, Value: renderList(nested, items)}}
	}
}

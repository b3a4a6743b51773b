package x11proto

// Hand-written reply tail parsers: LISTofWINDOW, stashed-name round
// trips, GetProperty's format-dependent value, and QueryExtension's
// sanctioned present-byte mutation (spec §9's "exactly one place the
// decoder is allowed to write back to the wire", grounded on the
// scheduleQueryExtensionReplyRewrite pattern cypherbits' surrogate uses
// for the same purpose: making a denied extension invisible to the
// client without breaking the session).

func tailQueryTree(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	root := card32(buf[0:4], swap)
	parent := card32(buf[4:8], swap)
	count := int(card16(buf[8:10], swap))
	rest := buf[24:]
	nested := ctx.Nested(true)
	_, rendered := ParseFixedList(rest, swap, count, func(b []byte, swap bool) (int, string) {
		return 4, FormatResourceID(card32(b, swap), o.Verbose)
	}, nested, true)
	return []FieldValue{
		{Name: "root", Value: FormatResourceID(root, o.Verbose)},
		{Name: "parent", Value: FormatResourceID(parent, o.Verbose)},
		{Name: "children", Value: rendered},
	}
}

func tailInternAtomReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	atom := card32(buf[0:4], swap)
	if name, ok := c.TakeStash(seq); ok {
		c.Atoms.Intern(atom, name)
	}
	return []FieldValue{{Name: "atom", Value: FormatAtom(atom, nil, c.Atoms, o.Verbose)}}
}

func tailGetAtomNameReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	nameLen := int(card16(buf[0:2], swap))
	rest := buf[24:]
	if nameLen > len(rest) {
		nameLen = len(rest)
	}
	name := string(rest[:nameLen])
	return []FieldValue{{Name: "name", Value: quoteASCII(name)}}
}

// tailGetPropertyReply decodes by the reply's format field, not by the
// type atom (spec §4.6: the type is caller/server chosen and not
// authoritative for how to walk the bytes), special-casing STRING/ATOM
// type atoms to render names instead of bare integers.
func tailGetPropertyReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	typ := card32(buf[0:4], swap)
	format := uint8(detail)
	valueLen := card32(buf[8:12], swap)
	rest := buf[24:]
	var rendered string
	switch format {
	case 0:
		rendered = "[]"
	case 8:
		end := int(valueLen)
		if end > len(rest) {
			end = len(rest)
		}
		if typ == StringAtomID {
			rendered = quoteASCII(string(rest[:end]))
		} else {
			rendered = ListOfByteHex(rest[:end])
		}
	case 16:
		nested := ctx.Nested(true)
		var items []string
		for i := 0; i < int(valueLen) && (i+1)*2 <= len(rest); i++ {
			items = append(items, FormatScalar(uint32(card16(rest[i*2:i*2+2], swap)), 2, nil, o.Verbose))
		}
		rendered = renderList(nested, items)
	default: // 32
		nested := ctx.Nested(true)
		var items []string
		isAtoms := typ == AtomAtomID
		for i := 0; i < int(valueLen) && (i+1)*4 <= len(rest); i++ {
			v := card32(rest[i*4:i*4+4], swap)
			if isAtoms {
				items = append(items, FormatAtom(v, nil, c.Atoms, o.Verbose))
			} else {
				items = append(items, FormatScalar(v, 4, nil, o.Verbose))
			}
		}
		rendered = renderList(nested, items)
	}
	return []FieldValue{
		{Name: "type", Value: FormatAtom(typ, enumTable(e(0, "None")), c.Atoms, o.Verbose)},
		{Name: "format", Value: FormatScalar(uint32(format), 1, nil, o.Verbose)},
		{Name: "value", Value: rendered},
	}
}

func tailListPropertiesReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	count := int(card16(buf[0:2], swap))
	rest := buf[24:]
	nested := ctx.Nested(true)
	_, rendered := ParseFixedList(rest, swap, count, func(b []byte, swap bool) (int, string) {
		return 4, FormatAtom(card32(b, swap), nil, c.Atoms, o.Verbose)
	}, nested, true)
	return []FieldValue{{Name: "atoms", Value: rendered}}
}

func tailGetMotionEventsReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	count := int(card32(buf[0:4], swap))
	rest := buf[24:]
	nested := ctx.Nested(true)
	_, rendered := ParseFixedList(rest, swap, count, func(b []byte, swap bool) (int, string) {
		return 8, Brace(RootCtx(false), []FieldValue{
			{Name: "time", Value: hexString(card32(b[0:4], swap), 4)},
			{Name: "x", Value: FormatScalar(uint32(uint16(sint16(b[4:6], swap))), 2, nil, false)},
			{Name: "y", Value: FormatScalar(uint32(uint16(sint16(b[6:8], swap))), 2, nil, false)},
		})
	}, nested, true)
	return []FieldValue{{Name: "events", Value: rendered}}
}

func tailQueryKeymapReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	return []FieldValue{{Name: "keys", Value: ListOfByteHex(buf[:32])}}
}

func tailListFontsReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	count := int(card16(buf[0:2], swap))
	rest := buf[24:]
	nested := ctx.Nested(true)
	var items []string
	off := 0
	for i := 0; i < count && off < len(rest); i++ {
		l := int(rest[off])
		off++
		end := off + l
		if end > len(rest) {
			end = len(rest)
		}
		items = append(items, quoteASCII(string(rest[off:end])))
		off = end
	}
	return []FieldValue{{Name: "names", Value: renderList(nested, items)}}
}

func tailGetFontPathReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	count := int(card16(buf[0:2], swap))
	rest := buf[24:]
	nested := ctx.Nested(true)
	var items []string
	off := 0
	for i := 0; i < count && off < len(rest); i++ {
		l := int(rest[off])
		off++
		end := off + l
		if end > len(rest) {
			end = len(rest)
		}
		items = append(items, quoteASCII(string(rest[off:end])))
		off = end
	}
	return []FieldValue{{Name: "path", Value: renderList(nested, items)}}
}

func tailGetImageReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	visual := card32(buf[0:4], swap)
	rest := buf[24:]
	return []FieldValue{
		{Name: "visual", Value: FormatResourceID(visual, o.Verbose)},
		{Name: "data", Value: summarizeBytes(rest)},
	}
}

func tailListInstalledColormapsReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	count := int(card16(buf[0:2], swap))
	rest := buf[24:]
	nested := ctx.Nested(true)
	_, rendered := ParseFixedList(rest, swap, count, func(b []byte, swap bool) (int, string) {
		return 4, FormatResourceID(card32(b, swap), o.Verbose)
	}, nested, true)
	return []FieldValue{{Name: "cmaps", Value: rendered}}
}

func tailQueryColorsReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	count := int(card16(buf[0:2], swap))
	rest := buf[24:]
	nested := ctx.Nested(true)
	_, rendered := ParseFixedList(rest, swap, count, func(b []byte, swap bool) (int, string) {
		return 8, Brace(RootCtx(false), []FieldValue{
			{Name: "red", Value: FormatScalar(uint32(card16(b[0:2], swap)), 2, nil, false)},
			{Name: "green", Value: FormatScalar(uint32(card16(b[2:4], swap)), 2, nil, false)},
			{Name: "blue", Value: FormatScalar(uint32(card16(b[4:6], swap)), 2, nil, false)},
		})
	}, nested, true)
	return []FieldValue{{Name: "colors", Value: rendered}}
}

func tailListExtensionsReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	count := int(detail)
	rest := buf[24:]
	nested := ctx.Nested(true)
	var items []string
	off := 0
	for i := 0; i < count && off < len(rest); i++ {
		l := int(rest[off])
		off++
		end := off + l
		if end > len(rest) {
			end = len(rest)
		}
		items = append(items, quoteASCII(string(rest[off:end])))
		off = Pad(end)
	}
	return []FieldValue{{Name: "names", Value: renderList(nested, items)}}
}

func tailGetKeyboardMappingReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	keysymsPerKeycode := int(detail)
	rest := buf[24:]
	nested := ctx.Nested(true)
	count := 0
	if keysymsPerKeycode > 0 {
		count = len(rest) / 4 / keysymsPerKeycode
	}
	var rows []string
	off := 0
	for i := 0; i < count; i++ {
		var items []string
		for j := 0; j < keysymsPerKeycode && off+4 <= len(rest); j++ {
			items = append(items, hexString(card32(rest[off:off+4], swap), 4))
			off += 4
		}
		rows = append(rows, renderList(nested.Nested(true), items))
	}
	return []FieldValue{{Name: "keysyms", Value: renderList(nested, rows)}}
}

func tailRawByteListReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	count := int(detail)
	rest := buf[24:]
	if count > len(rest) {
		count = len(rest)
	}
	nested := ctx.Nested(true)
	items := make([]string, count)
	for i := 0; i < count; i++ {
		items[i] = FormatScalar(uint32(rest[i]), 1, nil, o.Verbose)
	}
	return []FieldValue{{Name: "map", Value: renderList(nested, items)}}
}

func tailGetModifierMappingReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	keycodesPerModifier := int(detail)
	rest := buf[24:]
	nested := ctx.Nested(true)
	names := []string{"Shift", "Lock", "Control", "Mod1", "Mod2", "Mod3", "Mod4", "Mod5"}
	var rows []string
	for i := 0; i < 8; i++ {
		var items []string
		for j := 0; j < keycodesPerModifier; j++ {
			idx := i*keycodesPerModifier + j
			if idx >= len(rest) {
				break
			}
			items = append(items, FormatScalar(uint32(rest[idx]), 1, nil, o.Verbose))
		}
		rows = append(rows, names[i]+"="+renderList(nested.Nested(true), items))
	}
	return []FieldValue{{Name: "modifiers", Value: renderList(nested, rows)}}
}

// handleQueryExtensionReply is called directly by dispatch.go instead of
// going through the generic replyTable path, since it is the one place
// x11proto writes back to the wire: when o.DenyExtensions names the
// extension the client just asked about, it zeroes present/major-opcode/
// first-event/first-error in buf before rendering, so a denied
// extension's absence is both logged and genuinely enforced downstream
// (spec §9).
func handleQueryExtensionReply(buf []byte, swap bool, ctx Ctx, o *RenderOptions, c *Connection, seq uint16) []FieldValue {
	name, _ := c.TakeStash(seq)
	present := buf[8] != 0
	if present && name != "" && o.DenyExtensions != nil && o.DenyExtensions[name] {
		buf[8] = 0
		buf[9] = 0
		buf[10] = 0
		buf[11] = 0
		present = false
	}
	majorOpcode := buf[9]
	firstEvent := buf[10]
	firstError := buf[11]
	if present && name != "" {
		c.ActivateExtension(ExtensionInfo{Name: name, MajorOpcode: majorOpcode, FirstEvent: firstEvent, FirstError: firstError})
	}
	fields := []FieldValue{
		{Name: "present", Value: FormatScalar(boolToU32(present), 1, boolNames, o.Verbose)},
		{Name: "major-opcode", Value: FormatScalar(uint32(majorOpcode), 1, nil, o.Verbose)},
		{Name: "first-event", Value: FormatScalar(uint32(firstEvent), 1, nil, o.Verbose)},
		{Name: "first-error", Value: FormatScalar(uint32(firstError), 1, nil, o.Verbose)},
	}
	if name != "" {
		fields = append(fields, FieldValue{Name: "name", Value: quoteASCII(name)})
	}
	return fields
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// renderCharInfo renders one 12-byte CHARINFO: left/right side bearing,
// character width, ascent, descent (all INT16), then a CARD16 attributes
// bitmap (spec's font-metrics structure, shared by QueryFont and
// ListFontsWithInfo).
func renderCharInfo(b []byte, swap bool, o *RenderOptions) string {
	return Brace(RootCtx(false), []FieldValue{
		{Name: "left-bearing", Value: FormatScalar(uint32(uint16(sint16(b[0:2], swap))), 2, nil, o.Verbose)},
		{Name: "right-bearing", Value: FormatScalar(uint32(uint16(sint16(b[2:4], swap))), 2, nil, o.Verbose)},
		{Name: "width", Value: FormatScalar(uint32(uint16(sint16(b[4:6], swap))), 2, nil, o.Verbose)},
		{Name: "ascent", Value: FormatScalar(uint32(uint16(sint16(b[6:8], swap))), 2, nil, o.Verbose)},
		{Name: "descent", Value: FormatScalar(uint32(uint16(sint16(b[8:10], swap))), 2, nil, o.Verbose)},
		{Name: "attributes", Value: hexString(uint32(card16(b[10:12], swap)), 2)},
	})
}

// renderFontProp renders one 8-byte FONTPROP: an ATOM name and a CARD32
// value whose meaning depends on the property (so rendered as a bare
// integer, not resolved further).
func renderFontProp(b []byte, swap bool, o *RenderOptions, c *Connection) string {
	return Brace(RootCtx(false), []FieldValue{
		{Name: "name", Value: FormatAtom(card32(b[0:4], swap), nil, c.Atoms, o.Verbose)},
		{Name: "value", Value: FormatScalar(card32(b[4:8], swap), 4, nil, o.Verbose)},
	})
}

// tailFontInfo renders the shared QueryFont/ListFontsWithInfo body: two
// CHARINFOs (min/max bounds), scalar font metrics, then N FONTPROPs and
// (QueryFont only) L CHARINFOs. buf starts right after the 8-byte reply
// header (spec's font-query replies extend their "fixed" region past the
// nominal 32-byte boundary, unlike most replies, so Fields can't cover
// them and the whole region is parsed here instead).
func tailFontInfo(buf []byte, swap bool, ctx Ctx, o *RenderOptions, c *Connection) (fields []FieldValue, propCount, charCount int, after int) {
	minBounds := renderCharInfo(buf[0:12], swap, o)
	maxBounds := renderCharInfo(buf[16:28], swap, o)
	minChar := card16(buf[32:34], swap)
	maxChar := card16(buf[34:36], swap)
	defaultChar := card16(buf[36:38], swap)
	n := int(card16(buf[38:40], swap))
	drawDirection := buf[40]
	minByte1 := buf[41]
	maxByte1 := buf[42]
	allCharsExist := buf[43]
	fontAscent := sint16(buf[44:46], swap)
	fontDescent := sint16(buf[46:48], swap)
	l := int(card32(buf[48:52], swap))

	fields = []FieldValue{
		{Name: "min-bounds", Value: minBounds},
		{Name: "max-bounds", Value: maxBounds},
		{Name: "min-char-or-byte2", Value: FormatScalar(uint32(minChar), 2, nil, o.Verbose)},
		{Name: "max-char-or-byte2", Value: FormatScalar(uint32(maxChar), 2, nil, o.Verbose)},
		{Name: "default-char", Value: FormatScalar(uint32(defaultChar), 2, nil, o.Verbose)},
		{Name: "draw-direction", Value: FormatScalar(uint32(drawDirection), 1, fontDrawDirectionNames, o.Verbose)},
		{Name: "min-byte1", Value: FormatScalar(uint32(minByte1), 1, nil, o.Verbose)},
		{Name: "max-byte1", Value: FormatScalar(uint32(maxByte1), 1, nil, o.Verbose)},
		{Name: "all-chars-exist", Value: FormatScalar(uint32(allCharsExist), 1, boolNames, o.Verbose)},
		{Name: "font-ascent", Value: FormatScalar(uint32(uint16(fontAscent)), 2, nil, o.Verbose)},
		{Name: "font-descent", Value: FormatScalar(uint32(uint16(fontDescent)), 2, nil, o.Verbose)},
	}

	rest := buf[52:]
	nested := ctx.Nested(true)
	var props []string
	off := 0
	for i := 0; i < n && off+8 <= len(rest); i++ {
		props = append(props, renderFontProp(rest[off:off+8], swap, o, c))
		off += 8
	}
	fields = append(fields, FieldValue{Name: "properties", Value: renderList(nested, props)})
	return fields, n, l, 52 + off
}

// tailQueryFontReply decodes QueryFont's full metrics reply: bounds,
// scalar metrics, FONTPROPs, then L CHARINFOs for every character in the
// font's range.
func tailQueryFontReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	fields, _, l, off := tailFontInfo(buf, swap, ctx, o, c)
	rest := buf[off:]
	nested := ctx.Nested(true)
	var chars []string
	coff := 0
	for i := 0; i < l && coff+12 <= len(rest); i++ {
		chars = append(chars, renderCharInfo(rest[coff:coff+12], swap, o))
		coff += 12
	}
	fields = append(fields, FieldValue{Name: "char-infos", Value: renderList(nested, chars)})
	return fields
}

// tailQueryTextExtentsReply decodes QueryTextExtents' 24-byte metrics
// body; draw-direction is odd-length's sibling bit, carried in the
// detail byte rather than the fixed region.
func tailQueryTextExtentsReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	return []FieldValue{
		{Name: "draw-direction", Value: FormatScalar(detail, 1, fontDrawDirectionNames, o.Verbose)},
		{Name: "font-ascent", Value: FormatScalar(uint32(uint16(sint16(buf[0:2], swap))), 2, nil, o.Verbose)},
		{Name: "font-descent", Value: FormatScalar(uint32(uint16(sint16(buf[2:4], swap))), 2, nil, o.Verbose)},
		{Name: "overall-ascent", Value: FormatScalar(uint32(uint16(sint16(buf[4:6], swap))), 2, nil, o.Verbose)},
		{Name: "overall-descent", Value: FormatScalar(uint32(uint16(sint16(buf[6:8], swap))), 2, nil, o.Verbose)},
		{Name: "overall-width", Value: FormatScalar(card32(buf[8:12], swap), 4, nil, o.Verbose)},
		{Name: "overall-left", Value: FormatScalar(card32(buf[12:16], swap), 4, nil, o.Verbose)},
		{Name: "overall-right", Value: FormatScalar(card32(buf[16:20], swap), 4, nil, o.Verbose)},
	}
}

// handleListFontsWithInfoReply decodes one reply in ListFontsWithInfo's
// sentinel-terminated sequence (spec's multi-reply request, the one
// request other than the connection setup exchange that produces more
// than one reply per request). name-length (the detail byte) is zero on
// the final, sentinel reply, whose other fields are not meaningful per
// the protocol and are rendered as a bare marker instead.
func handleListFontsWithInfoReply(buf []byte, swap bool, o *RenderOptions, c *Connection, ctx Ctx, detail uint32) (fields []FieldValue, final bool) {
	nameLen := int(detail)
	if nameLen == 0 {
		return []FieldValue{{Name: "sentinel", Value: "true"}}, true
	}
	region := buf[8:]
	fields, _, _, off := tailFontInfo(region, swap, ctx, o, c)
	rest := region[off:]
	if nameLen > len(rest) {
		nameLen = len(rest)
	}
	fields = append(fields, FieldValue{Name: "name", Value: quoteASCII(string(rest[:nameLen]))})
	return fields, false
}

// tailAllocColorCellsReply renders AllocColorCells' two parallel pixel/
// plane-mask lists, both sized by fields already parsed into raw.
func tailAllocColorCellsReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	pixelsN := int(raw["pixels"])
	masksN := int(raw["masks"])
	nested := ctx.Nested(true)
	off, pixels := ParseFixedList(buf, swap, pixelsN, func(b []byte, swap bool) (int, string) {
		return 4, FormatScalar(card32(b, swap), 4, nil, o.Verbose)
	}, nested, true)
	_, masks := ParseFixedList(buf[off:], swap, masksN, func(b []byte, swap bool) (int, string) {
		return 4, hexString(card32(b, swap), 4)
	}, nested, true)
	return []FieldValue{
		{Name: "pixels", Value: pixels},
		{Name: "masks", Value: masks},
	}
}

// tailAllocColorPlanesReply renders AllocColorPlanes' pixel list sized
// by the n field already parsed into raw.
func tailAllocColorPlanesReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	count := int(raw["n"])
	nested := ctx.Nested(true)
	_, rendered := ParseFixedList(buf, swap, count, func(b []byte, swap bool) (int, string) {
		return 4, FormatScalar(card32(b, swap), 4, nil, o.Verbose)
	}, nested, true)
	return []FieldValue{{Name: "pixels", Value: rendered}}
}

// tailGetKeyboardControlReply decodes GetKeyboardControl's full reply
// body, which (like the font-query replies) extends past the nominal
// 24-byte fixed region: its 32-byte auto-repeats bitmap starts inside
// the region and continues beyond it.
func tailGetKeyboardControlReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	return []FieldValue{
		{Name: "global-auto-repeat", Value: FormatScalar(detail, 1, onOffNames, o.Verbose)},
		{Name: "led-mask", Value: hexString(card32(buf[0:4], swap), 4)},
		{Name: "key-click-percent", Value: FormatScalar(uint32(buf[4]), 1, nil, o.Verbose)},
		{Name: "bell-percent", Value: FormatScalar(uint32(buf[5]), 1, nil, o.Verbose)},
		{Name: "bell-pitch", Value: FormatScalar(uint32(card16(buf[6:8], swap)), 2, nil, o.Verbose)},
		{Name: "bell-duration", Value: FormatScalar(uint32(card16(buf[8:10], swap)), 2, nil, o.Verbose)},
		{Name: "auto-repeats", Value: ListOfByteHex(buf[12:min(44, len(buf))])},
	}
}

// tailListHostsReply renders ListHosts' variable-length HOST entries:
// family, then an address padded to 4 bytes, sized by its own
// address-length field (spec's per-entry variable-length list, the same
// shape as ChangeHosts' request-side address).
func tailListHostsReply(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue {
	count := int(raw["n"])
	nested := ctx.Nested(true)
	var items []string
	off := 0
	for i := 0; i < count && off+4 <= len(buf); i++ {
		family := buf[off]
		addrLen := int(card16(buf[off+2:off+4], swap))
		off += 4
		end := off + addrLen
		if end > len(buf) {
			end = len(buf)
		}
		addr := buf[off:end]
		off = Pad(end)
		items = append(items, Brace(nested.Nested(false), []FieldValue{
			{Name: "family", Value: FormatScalar(uint32(family), 1, hostFamilyNames, o.Verbose)},
			{Name: "address", Value: summarizeBytes(addr)},
		}))
	}
	return []FieldValue{
		{Name: "mode", Value: FormatScalar(detail, 1, enumTable(e(0, "Disable"), e(1, "Enable")), o.Verbose)},
		{Name: "hosts", Value: renderList(nested, items)},
	}
}

// handleBigReqEnableReply records the server's acceptance of BIG-REQUESTS
// once its reply arrives: c.EnableBigRequests activates extended request
// length parsing for every subsequent request on this connection, kept
// distinct from ActivateExtension (which only registers the opcode/
// event/error ranges) per the Open Question resolved in DESIGN.md.
func handleBigReqEnableReply(buf []byte, swap bool, o *RenderOptions, c *Connection) []FieldValue {
	max := card32(buf[0:4], swap)
	c.EnableBigRequests()
	return []FieldValue{{Name: "maximum-request-length", Value: FormatScalar(max, 4, nil, o.Verbose)}}
}

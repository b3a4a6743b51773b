package x11proto

// DecodeSetupRequest parses the one-time client connection-setup request
// (spec §5): byte-order byte, protocol version, and two counted
// authorization strings. Callers invoke this exactly once per connection,
// before ParseRequest ever runs.
func DecodeSetupRequest(buf []byte, c *Connection, o *RenderOptions) (consumed int, body string) {
	c.SetByteOrderFromSetupByte(buf[0])
	swap := c.Swap
	major := card16(buf[2:4], swap)
	minor := card16(buf[4:6], swap)
	nameLen := int(card16(buf[6:8], swap))
	dataLen := int(card16(buf[8:10], swap))
	off := 12
	name := buf[off : off+nameLen]
	off += Pad(nameLen)
	data := buf[off : off+dataLen]
	off += Pad(dataLen)
	c.setupRequestSeen = true

	fields := []FieldValue{
		{Name: "protocol-major-version", Value: FormatScalar(uint32(major), 2, nil, o.Verbose)},
		{Name: "protocol-minor-version", Value: FormatScalar(uint32(minor), 2, nil, o.Verbose)},
		{Name: "authorization-protocol-name", Value: quoteASCII(string(name))},
		{Name: "authorization-protocol-data", Value: summarizeBytes(data)},
	}
	return off, Brace(RootCtx(o.Multiline), fields)
}

// renderVisualType renders one 24-byte VISUALTYPE entry of a DEPTH's
// visuals list.
func renderVisualType(b []byte, swap bool, o *RenderOptions) string {
	return Brace(RootCtx(false), []FieldValue{
		{Name: "visual-id", Value: hexString(card32(b[0:4], swap), 4)},
		{Name: "class", Value: FormatScalar(uint32(b[4]), 1, visualClassNames, o.Verbose)},
		{Name: "bits-per-rgb-value", Value: FormatScalar(uint32(b[5]), 1, nil, o.Verbose)},
		{Name: "colormap-entries", Value: FormatScalar(uint32(card16(b[6:8], swap)), 2, nil, o.Verbose)},
		{Name: "red-mask", Value: hexString(card32(b[8:12], swap), 4)},
		{Name: "green-mask", Value: hexString(card32(b[12:16], swap), 4)},
		{Name: "blue-mask", Value: hexString(card32(b[16:20], swap), 4)},
	})
}

// renderDepth renders one DEPTH entry (8-byte header, then n 24-byte
// VISUALTYPEs) and reports the bytes it consumed.
func renderDepth(buf []byte, swap bool, o *RenderOptions, ctx Ctx) (consumed int, rendered string) {
	depth := buf[0]
	n := int(card16(buf[2:4], swap))
	off := 8
	nested := ctx.Nested(true)
	var visuals []string
	for i := 0; i < n && off+24 <= len(buf); i++ {
		visuals = append(visuals, renderVisualType(buf[off:off+24], swap, o))
		off += 24
	}
	return off, Brace(ctx, []FieldValue{
		{Name: "depth", Value: FormatScalar(uint32(depth), 1, nil, o.Verbose)},
		{Name: "visuals", Value: renderList(nested, visuals)},
	})
}

// renderScreen renders one SCREEN entry (40-byte fixed header, then m
// DEPTHs) and reports the bytes it consumed.
func renderScreen(buf []byte, swap bool, o *RenderOptions, ctx Ctx) (consumed int, rendered string) {
	numDepths := int(buf[39])
	off := 40
	nested := ctx.Nested(true)
	var depths []string
	for i := 0; i < numDepths && off < len(buf); i++ {
		n, s := renderDepth(buf[off:], swap, o, nested)
		depths = append(depths, s)
		off += n
	}
	fields := []FieldValue{
		{Name: "root", Value: FormatResourceID(card32(buf[0:4], swap), o.Verbose)},
		{Name: "default-colormap", Value: FormatResourceID(card32(buf[4:8], swap), o.Verbose)},
		{Name: "white-pixel", Value: FormatScalar(card32(buf[8:12], swap), 4, nil, o.Verbose)},
		{Name: "black-pixel", Value: FormatScalar(card32(buf[12:16], swap), 4, nil, o.Verbose)},
		{Name: "current-input-masks", Value: FormatBitmask(card32(buf[16:20], swap), 4, eventMaskFlagNames, o.Verbose)},
		{Name: "width-in-pixels", Value: FormatScalar(uint32(card16(buf[20:22], swap)), 2, nil, o.Verbose)},
		{Name: "height-in-pixels", Value: FormatScalar(uint32(card16(buf[22:24], swap)), 2, nil, o.Verbose)},
		{Name: "width-in-millimeters", Value: FormatScalar(uint32(card16(buf[24:26], swap)), 2, nil, o.Verbose)},
		{Name: "height-in-millimeters", Value: FormatScalar(uint32(card16(buf[26:28], swap)), 2, nil, o.Verbose)},
		{Name: "min-installed-maps", Value: FormatScalar(uint32(card16(buf[28:30], swap)), 2, nil, o.Verbose)},
		{Name: "max-installed-maps", Value: FormatScalar(uint32(card16(buf[30:32], swap)), 2, nil, o.Verbose)},
		{Name: "root-visual", Value: hexString(card32(buf[32:36], swap), 4)},
		{Name: "backing-stores", Value: FormatScalar(uint32(buf[36]), 1, backingStoreNames, o.Verbose)},
		{Name: "save-unders", Value: FormatScalar(uint32(buf[37]), 1, boolNames, o.Verbose)},
		{Name: "root-depth", Value: FormatScalar(uint32(buf[38]), 1, nil, o.Verbose)},
		{Name: "depths", Value: renderList(nested, depths)},
	}
	return off, Brace(ctx, fields)
}

// DecodeSetupReply parses the server's connection-setup reply (spec §5).
// The Success branch always walks the vendor string and pixmap format
// list in full; the per-screen/per-depth/per-visual tree beneath it is
// fully expanded only under -verbose (it is the single largest piece of
// the reply and is rarely what a trace reader wants by default), and
// otherwise rendered as a length summary.
func DecodeSetupReply(buf []byte, c *Connection, o *RenderOptions) (consumed int, body string) {
	swap := c.Swap
	status := buf[0]
	c.setupReplySeen = true

	switch status {
	case 0: // Failed
		reasonLen := int(buf[1])
		major := card16(buf[2:4], swap)
		minor := card16(buf[4:6], swap)
		lenUnits := int(card16(buf[6:8], swap))
		reason := buf[8 : 8+reasonLen]
		total := 8 + Size(lenUnits)
		fields := []FieldValue{
			{Name: "status", Value: "Failed"},
			{Name: "protocol-major-version", Value: FormatScalar(uint32(major), 2, nil, o.Verbose)},
			{Name: "protocol-minor-version", Value: FormatScalar(uint32(minor), 2, nil, o.Verbose)},
			{Name: "reason", Value: quoteASCII(string(reason))},
		}
		return total, Brace(RootCtx(o.Multiline), fields)

	case 2: // Authenticate
		lenUnits := int(card16(buf[6:8], swap))
		total := 8 + Size(lenUnits)
		reason := buf[8:total]
		fields := []FieldValue{
			{Name: "status", Value: "Authenticate"},
			{Name: "reason", Value: quoteASCII(string(reason))},
		}
		return total, Brace(RootCtx(o.Multiline), fields)

	default: // Success
		major := card16(buf[2:4], swap)
		minor := card16(buf[4:6], swap)
		lenUnits := int(card16(buf[6:8], swap))
		releaseNumber := card32(buf[8:12], swap)
		resourceIDBase := card32(buf[12:16], swap)
		resourceIDMask := card32(buf[16:20], swap)
		motionBufferSize := card32(buf[20:24], swap)
		vendorLen := int(card16(buf[24:26], swap))
		maxRequestLength := card16(buf[26:28], swap)
		numScreens := int(buf[28])
		numFormats := int(buf[29])
		minKeycode := buf[32]
		maxKeycode := buf[33]

		off := 40
		vendor := buf[off : off+vendorLen]
		off += Pad(vendorLen)

		formats := make([]string, 0, numFormats)
		for i := 0; i < numFormats; i++ {
			f := buf[off : off+8]
			formats = append(formats, Brace(RootCtx(false), []FieldValue{
				{Name: "depth", Value: FormatScalar(uint32(f[0]), 1, nil, o.Verbose)},
				{Name: "bits-per-pixel", Value: FormatScalar(uint32(f[1]), 1, nil, o.Verbose)},
				{Name: "scanline-pad", Value: FormatScalar(uint32(f[2]), 1, nil, o.Verbose)},
			}))
			off += 8
		}

		total := 8 + Size(lenUnits)
		screenBytes := buf[off:total]

		ctx := RootCtx(o.Multiline)
		nested := ctx.Nested(true)

		var roots string
		if o.Verbose {
			screensNested := ctx.Nested(true)
			var screens []string
			soff := 0
			for i := 0; i < numScreens && soff < len(screenBytes); i++ {
				n, s := renderScreen(screenBytes[soff:], swap, o, screensNested)
				screens = append(screens, s)
				soff += n
			}
			roots = renderList(screensNested, screens)
		} else {
			roots = "<" + itoa(numScreens) + " screens, " + summarizeBytes(screenBytes) + ">"
		}

		fields := []FieldValue{
			{Name: "status", Value: "Success"},
			{Name: "protocol-major-version", Value: FormatScalar(uint32(major), 2, nil, o.Verbose)},
			{Name: "protocol-minor-version", Value: FormatScalar(uint32(minor), 2, nil, o.Verbose)},
			{Name: "release-number", Value: FormatScalar(releaseNumber, 4, nil, o.Verbose)},
			{Name: "resource-id-base", Value: hexString(resourceIDBase, 4)},
			{Name: "resource-id-mask", Value: hexString(resourceIDMask, 4)},
			{Name: "motion-buffer-size", Value: FormatScalar(motionBufferSize, 4, nil, o.Verbose)},
			{Name: "maximum-request-length", Value: FormatScalar(uint32(maxRequestLength), 2, nil, o.Verbose)},
			{Name: "image-byte-order", Value: FormatScalar(uint32(buf[30]), 1, enumTable(e(0, "LSBFirst"), e(1, "MSBFirst")), o.Verbose)},
			{Name: "bitmap-format-bit-order", Value: FormatScalar(uint32(buf[31]), 1, enumTable(e(0, "LeastSignificant"), e(1, "MostSignificant")), o.Verbose)},
			{Name: "min-keycode", Value: FormatScalar(uint32(minKeycode), 1, nil, o.Verbose)},
			{Name: "max-keycode", Value: FormatScalar(uint32(maxKeycode), 1, nil, o.Verbose)},
			{Name: "vendor", Value: quoteASCII(string(vendor))},
			{Name: "pixmap-formats", Value: renderList(nested, formats)},
			{Name: "roots", Value: roots},
		}
		return total, Brace(ctx, fields)
	}
}

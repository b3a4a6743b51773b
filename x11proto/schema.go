package x11proto

// RenderOptions bundles the subset of Settings the formatting layer needs
// (spec §6's read-only settings record, projected down to what x11proto
// touches per call instead of taking a dependency on the settings
// package).
type RenderOptions struct {
	Verbose   bool
	Multiline bool
	Timestamp TimestampOptions
	// DenyExtensions names extensions QueryExtension replies should
	// report as absent regardless of what the real server said (spec
	// §6's -deny-extension flag; enforced in replies.go's
	// handleQueryExtensionReply, the decoder's one sanctioned mutation).
	DenyExtensions map[string]bool
}

// Field describes one fixed-layout member of a message body: how wide it
// is on the wire, how to read it, and how to render it. Field tables
// (tables_*.go) are the "declarative description of the protocol tables"
// spec §2 anticipates; only messages with real variable tails or
// cross-message side effects need hand-written parser functions on top.
type Field struct {
	Name string
	// Width is the wire size in bytes: 1, 2, or 4.
	Width int
	// Pad marks unused/reserved bytes; emitted only when Verbose and Name
	// is non-empty (matches spec §4.6 point 5's "redundant fields" rule
	// for the header's own reserved bytes).
	Pad bool
	// format renders the field's already-read value. nil means plain
	// scalar hex+decimal at this Width.
	format func(v uint32, o *RenderOptions, c *Connection) string
}

func readFieldRaw(buf []byte, swap bool, width int) uint32 {
	switch width {
	case 1:
		return uint32(card8(buf))
	case 2:
		return uint32(card16(buf, swap))
	default:
		return card32(buf, swap)
	}
}

// ParseFields reads fields in order from buf (which begins immediately
// after whatever header bytes the caller already consumed), returning
// total bytes consumed, one FieldValue per non-pad field (pad fields are
// included only in verbose mode, carrying their raw hex value), and a
// {name -> raw value} map so a following TailParser can recover a field
// it needs (typically a value-mask or length) without re-parsing.
func ParseFields(buf []byte, swap bool, fields []Field, o *RenderOptions, c *Connection) (consumed int, values []FieldValue, raw map[string]uint32) {
	raw = make(map[string]uint32, len(fields))
	off := 0
	for _, f := range fields {
		v := readFieldRaw(buf[off:off+f.Width], swap, f.Width)
		off += f.Width
		if f.Name != "" {
			raw[f.Name] = v
		}
		if f.Pad {
			if o.Verbose && f.Name != "" {
				values = append(values, FieldValue{Name: f.Name, Value: hexString(v, f.Width)})
			}
			continue
		}
		var rendered string
		if f.format != nil {
			rendered = f.format(v, o, c)
		} else {
			rendered = FormatScalar(v, f.Width, nil, o.Verbose)
		}
		values = append(values, FieldValue{Name: f.Name, Value: rendered})
	}
	return off, values, raw
}

// FieldsWidth returns the total byte width of fields, for callers that
// need to know where the fixed part ends before parsing a tail.
func FieldsWidth(fields []Field) int {
	w := 0
	for _, f := range fields {
		w += f.Width
	}
	return w
}

// Field constructors used by tables_*.go.

func card8f(name string) Field  { return Field{Name: name, Width: 1} }
func card16f(name string) Field { return Field{Name: name, Width: 2} }
func card32f(name string) Field { return Field{Name: name, Width: 4} }

func int8f(name string) Field {
	return Field{Name: name, Width: 1, format: func(v uint32, o *RenderOptions, c *Connection) string {
		return FormatScalar(v, 1, nil, o.Verbose)
	}}
}
func int16f(name string) Field {
	return Field{Name: name, Width: 2, format: func(v uint32, o *RenderOptions, c *Connection) string {
		return FormatScalar(v, 2, nil, o.Verbose)
	}}
}

func int32f(name string) Field {
	return Field{Name: name, Width: 4, format: func(v uint32, o *RenderOptions, c *Connection) string {
		return FormatScalar(v, 4, nil, o.Verbose)
	}}
}

func pad8f(width int) Field  { return Field{Name: "", Width: width, Pad: true} }
func padNamed(name string, width int) Field { return Field{Name: name, Width: width, Pad: true} }

func boolf(name string) Field {
	return enumf(name, 1, boolNames)
}

func enumf(name string, width int, names *EnumTable) Field {
	return Field{Name: name, Width: width, format: func(v uint32, o *RenderOptions, c *Connection) string {
		return FormatScalar(v, width, names, o.Verbose)
	}}
}

func bitmaskf(name string, width int, names *EnumTable) Field {
	return Field{Name: name, Width: width, format: func(v uint32, o *RenderOptions, c *Connection) string {
		return FormatBitmask(v, width, names, o.Verbose)
	}}
}

// resourceIDf handles WINDOW/PIXMAP/FONT/GCONTEXT/COLORMAP/CURSOR and the
// DRAWABLE/FONTABLE unions, all of which share the top-3-bits-zero
// resource id representation (spec §4.4). specialZero optionally treats
// the literal value 0 as a named constant (e.g. "None").
func resourceIDf(name string, specialZero string) Field {
	return Field{Name: name, Width: 4, format: func(v uint32, o *RenderOptions, c *Connection) string {
		if v == 0 && specialZero != "" {
			if o.Verbose {
				return "0x00000000(" + specialZero + ")"
			}
			return specialZero
		}
		return FormatResourceID(v, o.Verbose)
	}}
}

func atomf(name string, names *EnumTable) Field {
	return Field{Name: name, Width: 4, format: func(v uint32, o *RenderOptions, c *Connection) string {
		return FormatAtom(v, names, c.Atoms, o.Verbose)
	}}
}

func timestampf(name string) Field {
	return Field{Name: name, Width: 4, format: func(v uint32, o *RenderOptions, c *Connection) string {
		return FormatTimestamp(v, o.Timestamp)
	}}
}

func keysymf(name string) Field {
	return Field{Name: name, Width: 4, format: func(v uint32, o *RenderOptions, c *Connection) string {
		return hexString(v, 4)
	}}
}

func char2bf(name string) Field {
	return Field{Name: name, Width: 2, format: func(v uint32, o *RenderOptions, c *Connection) string {
		return hexString(v, 2)
	}}
}

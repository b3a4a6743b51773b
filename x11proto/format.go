package x11proto

import (
	"fmt"
	"strings"
	"time"
)

// ValueHint tells the value formatter how to render an otherwise-opaque
// 32-bit (or narrower) wire value: as a scalar/enum, or as a bitmask to
// decompose into flag names (spec §4.4).
type ValueHint int

const (
	HintScalar ValueHint = iota
	HintBitmask
)

// Ctx is an immutable whitespace/format context for one nesting depth
// (spec §4.3). Root contexts are built from Settings.Multiline; nested
// contexts are derived with Nested.
type Ctx struct {
	depth       int
	multiline   bool
	enclose     string // indent string for this level's enclosing braces
	member      string // indent string for this level's members
	equals      string
	sep         string
}

// RootCtx builds the top-level formatting context.
func RootCtx(multiline bool) Ctx {
	c := Ctx{multiline: multiline}
	c.recompute()
	return c
}

func (c *Ctx) recompute() {
	if c.multiline {
		c.enclose = strings.Repeat("  ", c.depth)
		c.member = strings.Repeat("  ", c.depth+1)
		c.equals = "="
		c.sep = "\n"
	} else {
		c.enclose = ""
		c.member = ""
		c.equals = " = "
		c.sep = " "
	}
}

// Nested returns the context for one level deeper. forceSingleline
// collapses multiline rendering for this sub-tree only (used for LISTs of
// scalars nested inside a structured parent, per spec §4.3), without
// weakening the parent's own multiline-ness.
func (c Ctx) Nested(forceSingleline bool) Ctx {
	n := Ctx{depth: c.depth + 1, multiline: c.multiline && !forceSingleline}
	n.recompute()
	return n
}

func (c Ctx) Multiline() bool      { return c.multiline }
func (c Ctx) Equals() string       { return c.equals }
func (c Ctx) Sep() string          { return c.sep }
func (c Ctx) EncloseIndent() string { return c.enclose }
func (c Ctx) MemberIndent() string  { return c.member }

// Brace renders a struct-shaped record: "{" + sep-joined "name=value"
// members + sep + enclosing indent + "}". fields is ordered; name column
// is padded to the longest name's width when multiline, matching spec
// §4.4's "field-name column width is the length of the longest field
// name when multiline, zero otherwise".
func Brace(ctx Ctx, fields []FieldValue) string {
	if len(fields) == 0 {
		return "{}"
	}
	width := 0
	if ctx.multiline {
		for _, f := range fields {
			if len(f.Name) > width {
				width = len(f.Name)
			}
		}
	}
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(ctx.Sep())
	for i, f := range fields {
		b.WriteString(ctx.MemberIndent())
		if ctx.multiline {
			b.WriteString(fmt.Sprintf("%-*s", width, f.Name))
		} else {
			b.WriteString(f.Name)
		}
		b.WriteString(ctx.Equals())
		b.WriteString(f.Value)
		if i != len(fields)-1 {
			b.WriteString(",")
		}
		b.WriteString(ctx.Sep())
	}
	b.WriteString(ctx.EncloseIndent())
	b.WriteString("}")
	return b.String()
}

// FieldValue is one labeled, already-formatted member of a Brace record.
type FieldValue struct {
	Name  string
	Value string
}

// FormatScalar renders a bare integer per spec §4.4's scalar-or-enum
// form: "0x12(18)" unknown, "0x12(NamedValue)" in enum range. Terse mode
// drops the hex prefix when a name is available.
func FormatScalar(v uint32, width int, names *EnumTable, verbose bool) string {
	hex := hexString(v, width)
	if name, ok := names.Name(v); ok {
		if verbose {
			return fmt.Sprintf("%s(%s)", hex, name)
		}
		return name
	}
	if verbose {
		return fmt.Sprintf("%s(%d)", hex, v)
	}
	return hex
}

// FormatBitmask renders a bitmask decomposition per spec §4.4:
// "0x12(FlagA,FlagC)" verbose; terse drops the hex prefix when any flag
// matched.
func FormatBitmask(v uint32, width int, names *EnumTable, verbose bool) string {
	hex := hexString(v, width)
	flags := names.Decompose(v)
	if len(flags) == 0 {
		if verbose {
			return fmt.Sprintf("%s(%d)", hex, v)
		}
		return hex
	}
	joined := strings.Join(flags, ",")
	if verbose {
		return fmt.Sprintf("%s(%s)", hex, joined)
	}
	return joined
}

// FormatValue dispatches to FormatScalar or FormatBitmask per hint.
func FormatValue(v uint32, width int, names *EnumTable, hint ValueHint, verbose bool) string {
	if hint == HintBitmask {
		return FormatBitmask(v, width, names, verbose)
	}
	return FormatScalar(v, width, names, verbose)
}

func hexString(v uint32, width int) string {
	switch width {
	case 1:
		return fmt.Sprintf("0x%02x", uint8(v))
	case 2:
		return fmt.Sprintf("0x%04x", uint16(v))
	default:
		return fmt.Sprintf("0x%08x", v)
	}
}

// FormatResourceID renders a resource-id type (WINDOW, ATOM, PIXMAP,
// FONT, GCONTEXT, COLORMAP, CURSOR, and the DRAWABLE/FONTABLE unions): the
// top 3 bits must be zero (spec §4.4), then it passes through the plain
// integer path.
func FormatResourceID(v uint32, verbose bool) string {
	// top 3 bits of a 32-bit resource id must be zero on the wire; they
	// are masked off before rendering, and a value with any of them set
	// is neither reported nor rejected.
	return FormatScalar(v&0x1fffffff, 4, nil, verbose)
}

// FormatAtom renders an ATOM value: id first, then (if not covered by a
// contextual enum table) the interned name if known (spec §4.4,
// "for ATOM specifically").
func FormatAtom(v uint32, names *EnumTable, atoms *AtomTable, verbose bool) string {
	if names.In(v) {
		return FormatScalar(v, 4, names, verbose)
	}
	hex := hexString(v, 4)
	if name, ok := atoms.Lookup(v); ok {
		return fmt.Sprintf("%s(%s)", hex, quoteASCII(name))
	}
	if verbose {
		return fmt.Sprintf("%s(%d)", hex, v)
	}
	return hex
}

// TimestampOptions carries the relative-timestamp rendering inputs from
// Settings (spec §4.4's TIMESTAMP case).
type TimestampOptions struct {
	Relative  bool
	RefTick   uint32
	RefUnix   int64
}

// FormatTimestamp renders a TIMESTAMP: always hex; in relative mode,
// appends a UTC wall-clock computed from the configured reference tick
// and unix-time (1000 ticks/second).
func FormatTimestamp(v uint32, opts TimestampOptions) string {
	hex := hexString(v, 4)
	if !opts.Relative {
		return hex
	}
	const ticksPerSec = 1000
	delta := int64(v) - int64(opts.RefTick)
	unixSec := opts.RefUnix + delta/ticksPerSec
	return fmt.Sprintf("%s(%sUTC)", hex, formatUnixUTC(unixSec))
}

func formatUnixUTC(sec int64) string {
	return time.Unix(sec, 0).UTC().Format("2006-01-02T15:04:05Z")
}

func quoteASCII(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&b, "\\x%02x", c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

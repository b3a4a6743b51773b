package x11proto

import (
	"fmt"
	"strings"
)

// ListElement formats one element of a LISTofT and reports how many
// bytes it consumed.
type ListElement func(buf []byte, swap bool) (consumed int, rendered string)

// ParseFixedList walks exactly count elements of elem, as used for
// LISTofWINDOW in QueryTree and similar fixed-count lists (spec §4.5).
func ParseFixedList(buf []byte, swap bool, count int, elem ListElement, ctx Ctx, forceSingleline bool) (consumed int, rendered string) {
	nested := ctx.Nested(forceSingleline)
	var items []string
	off := 0
	for i := 0; i < count; i++ {
		n, s := elem(buf[off:], swap)
		items = append(items, s)
		off += n
	}
	return off, renderList(nested, items)
}

// ParseByteBoundedList walks elem repeatedly while the padded bytes
// consumed so far remain less than sz, for STR/TEXTITEM-style lists whose
// end coincides with a padded boundary rather than an element count
// (spec §4.5).
func ParseByteBoundedList(buf []byte, swap bool, sz int, elem ListElement, ctx Ctx, forceSingleline bool) (consumed int, rendered string) {
	nested := ctx.Nested(forceSingleline)
	var items []string
	off := 0
	for Pad(off) < sz {
		n, s := elem(buf[off:], swap)
		if n <= 0 {
			break
		}
		items = append(items, s)
		off += n
	}
	return off, renderList(nested, items)
}

func renderList(ctx Ctx, items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	if !ctx.Multiline() {
		return "[" + strings.Join(items, ", ") + "]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for i, it := range items {
		b.WriteString(ctx.MemberIndent())
		b.WriteString(it)
		if i != len(items)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(ctx.EncloseIndent())
	b.WriteString("]")
	return b.String()
}

// ValueListEntry describes one bit of a LISTofVALUE schema: its mask bit,
// wire name, format hint, and optional enum/flag table (spec §4.5).
type ValueListEntry struct {
	Bit   uint32
	Name  string
	Hint  ValueHint
	Names *EnumTable
}

// ParseValueList walks a 32-bit mask against schema in ascending-bit
// order; for each set bit it consumes 4 bytes (VALUE's fixed wire size)
// and formats it per the entry's hint, annotated with its name (spec
// §4.5, and scenario S6).
func ParseValueList(buf []byte, swap bool, mask uint32, schema []ValueListEntry, ctx Ctx, verbose bool) (consumed int, rendered string) {
	nested := ctx.Nested(false)
	var fields []FieldValue
	off := 0
	for _, entry := range schema {
		if mask&entry.Bit == 0 {
			continue
		}
		if off+4 > len(buf) {
			break
		}
		v := card32(buf[off:off+4], swap)
		fields = append(fields, FieldValue{
			Name:  entry.Name,
			Value: FormatValue(v, 4, entry.Names, entry.Hint, verbose),
		})
		off += 4
	}
	return off, Brace(nested, fields)
}

// ListOfByteHex renders a raw byte slice as a single-line hex list, used
// for GetProperty replies whose type isn't STRING (spec §4.6).
func ListOfByteHex(b []byte) string {
	if len(b) == 0 {
		return "[]"
	}
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("0x%02x", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

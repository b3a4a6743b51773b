package x11proto

// DispatchError renders one 32-byte core error frame: buf[0]=0,
// buf[1]=error code, buf[2:4]=sequence, buf[4:8]=the field errorTable
// names (bad resource id, bad value, or unused), buf[8:10]=minor-opcode,
// buf[10]=major-opcode (spec §3, §4.7).
func DispatchError(buf []byte, swap bool, o *RenderOptions, c *Connection) (name string, seq uint16, body string) {
	code := buf[1]
	seq = card16(buf[2:4], swap)
	desc, ok := errorTable[code]
	if !ok {
		if ext, ok := c.ExtensionForError(code); ok {
			return ext.Name + "Error", seq, summarizeBytes(buf[4:32])
		}
		return "?", seq, summarizeBytes(buf[4:32])
	}

	minorOpcode := card16(buf[8:10], swap)
	majorOpcode := buf[10]
	majorName := requestNameForOpcode(majorOpcode, c)

	fields := verboseRedundantFields(o, "type", 0, true, seq, false, 0)
	if o.Verbose {
		fields = append(fields, FieldValue{Name: "error-code", Value: FormatScalar(uint32(code), 1, nil, true)})
	}
	if desc.Field4 != "" {
		v := card32(buf[4:8], swap)
		var rendered string
		if desc.Field4Kind == errField4Value {
			rendered = FormatScalar(v, 4, nil, o.Verbose)
		} else {
			rendered = FormatResourceID(v, o.Verbose)
		}
		fields = append(fields, FieldValue{Name: desc.Field4, Value: rendered})
	}
	fields = append(fields,
		FieldValue{Name: "minor-opcode", Value: FormatScalar(uint32(minorOpcode), 2, nil, o.Verbose)},
		FieldValue{Name: "major-opcode", Value: hexString(uint32(majorOpcode), 1) + "(" + majorName + ")"},
	)
	return desc.Name, seq, Brace(RootCtx(o.Multiline), fields)
}

// requestNameForOpcode resolves a major opcode to its request name for
// the error frame's major-opcode field, including extension opcodes
// activated on c.
func requestNameForOpcode(op uint8, c *Connection) string {
	if d, ok := requestTable[op]; ok {
		return d.Name
	}
	if ext, ok := c.ExtensionForOpcode(op); ok {
		return ext.Name
	}
	return "?"
}

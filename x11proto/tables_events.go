package x11proto

// EventDesc describes one core event code's layout. Every event shares
// the 32-byte frame: code(1) + detail-or-unused(1) + sequence(2) +
// 28 bytes of body (spec §3). Detail mirrors RequestDesc's: some events
// use byte 2 as real data (KeyPress's keycode, ButtonPress's button, the
// crossing and focus events' detail, ClientMessage's format) and set
// Detail below; the rest leave it unused.
type EventDesc struct {
	Name   string
	Detail Field
	Fields []Field
	// Tail renders anything Fields don't cover (ClientMessage's union).
	Tail func(buf []byte, swap bool, ctx Ctx, o *RenderOptions, c *Connection) []FieldValue
	// NoSequence marks KeymapNotify: its wire frame has no sequence
	// number at all (bytes 1..31 are entirely a keys bitmap), so the
	// caller renders "?????" in the sequence column instead of a number
	// (spec §8 scenario S4) and the body starts at byte 1, not byte 4.
	NoSequence bool
}

// eventTable maps the low 7 bits of the wire event code (codes 2..34;
// the high bit is the SendEvent-generated flag handled in dispatch.go,
// not here) to its descriptor.
var eventTable = map[uint8]*EventDesc{
	2: {Name: "KeyPress", Detail: card8f("keycode"), Fields: keyButtonEventFields()},
	3: {Name: "KeyRelease", Detail: card8f("keycode"), Fields: keyButtonEventFields()},
	4: {Name: "ButtonPress", Detail: card8f("button"), Fields: keyButtonEventFields()},
	5: {Name: "ButtonRelease", Detail: card8f("button"), Fields: keyButtonEventFields()},
	6: {Name: "MotionNotify", Detail: enumf("detail", 1, enumTable(e(0, "Normal"), e(1, "Hint"))), Fields: keyButtonEventFields()},
	7: {Name: "EnterNotify", Detail: enumf("detail", 1, notifyDetailNames), Fields: crossingEventFields()},
	8: {Name: "LeaveNotify", Detail: enumf("detail", 1, notifyDetailNames), Fields: crossingEventFields()},
	9: {Name: "FocusIn", Detail: enumf("detail", 1, notifyDetailNames), Fields: []Field{
		resourceIDf("event", ""), enumf("mode", 1, notifyModeNames), padNamed("", 3),
	}},
	10: {Name: "FocusOut", Detail: enumf("detail", 1, notifyDetailNames), Fields: []Field{
		resourceIDf("event", ""), enumf("mode", 1, notifyModeNames), padNamed("", 3),
	}},
	11: {Name: "KeymapNotify", NoSequence: true, Tail: tailKeymapNotify},
	12: {Name: "Expose", Fields: []Field{
		resourceIDf("window", ""), card16f("x"), card16f("y"), card16f("width"), card16f("height"), card16f("count"), padNamed("", 2),
	}},
	13: {Name: "GraphicsExposure", Fields: []Field{
		resourceIDf("drawable", ""), card16f("x"), card16f("y"), card16f("width"), card16f("height"),
		card16f("minor-opcode"), card8f("count"), card8f("major-opcode"), padNamed("", 3),
	}},
	14: {Name: "NoExposure", Fields: []Field{
		resourceIDf("drawable", ""), card16f("minor-opcode"), card8f("major-opcode"), padNamed("", 1),
	}},
	15: {Name: "VisibilityNotify", Fields: []Field{resourceIDf("window", ""), enumf("state", 1, visibilityNames), padNamed("", 3)}},
	16: {Name: "CreateNotify", Fields: []Field{
		resourceIDf("parent", ""), resourceIDf("window", ""),
		int16f("x"), int16f("y"), card16f("width"), card16f("height"), card16f("border-width"),
		boolf("override-redirect"),
	}},
	17: {Name: "DestroyNotify", Fields: []Field{resourceIDf("event", ""), resourceIDf("window", "")}},
	18: {Name: "UnmapNotify", Fields: []Field{
		resourceIDf("event", ""), resourceIDf("window", ""), boolf("from-configure"), padNamed("", 3),
	}},
	19: {Name: "MapNotify", Fields: []Field{
		resourceIDf("event", ""), resourceIDf("window", ""), boolf("override-redirect"), padNamed("", 3),
	}},
	20: {Name: "MapRequest", Fields: []Field{resourceIDf("parent", ""), resourceIDf("window", "")}},
	21: {Name: "ReparentNotify", Fields: []Field{
		resourceIDf("event", ""), resourceIDf("window", ""), resourceIDf("parent", ""),
		int16f("x"), int16f("y"), boolf("override-redirect"), padNamed("", 3),
	}},
	22: {Name: "ConfigureNotify", Fields: []Field{
		resourceIDf("event", ""), resourceIDf("window", ""), resourceIDf("above-sibling", "None"),
		int16f("x"), int16f("y"), card16f("width"), card16f("height"), card16f("border-width"),
		boolf("override-redirect"),
	}},
	23: {Name: "ConfigureRequest", Detail: enumf("stack-mode", 1, stackModeNames), Fields: []Field{
		resourceIDf("parent", ""), resourceIDf("window", ""), resourceIDf("sibling", "None"),
		int16f("x"), int16f("y"), card16f("width"), card16f("height"), card16f("border-width"),
		bitmaskf("value-mask", 2, nil), padNamed("", 2),
	}},
	24: {Name: "GravityNotify", Fields: []Field{
		resourceIDf("event", ""), resourceIDf("window", ""), int16f("x"), int16f("y"),
	}},
	25: {Name: "ResizeRequest", Fields: []Field{resourceIDf("window", ""), card16f("width"), card16f("height")}},
	26: {Name: "CirculateNotify", Fields: []Field{
		resourceIDf("event", ""), resourceIDf("window", ""), padNamed("", 4), enumf("place", 1, placeNames), padNamed("", 3),
	}},
	27: {Name: "CirculateRequest", Fields: []Field{
		resourceIDf("event", ""), resourceIDf("window", ""), padNamed("", 4), enumf("place", 1, placeNames), padNamed("", 3),
	}},
	28: {Name: "PropertyNotify", Fields: []Field{
		resourceIDf("window", ""), atomf("atom", nil), timestampf("time"), enumf("state", 1, propertyNotifyStateNames), padNamed("", 3),
	}},
	29: {Name: "SelectionClear", Fields: []Field{
		timestampf("time"), resourceIDf("owner", ""), atomf("selection", nil),
	}},
	30: {Name: "SelectionRequest", Fields: []Field{
		timestampf("time"), resourceIDf("owner", ""), resourceIDf("requestor", ""),
		atomf("selection", nil), atomf("target", nil), atomf("property", enumTable(e(0, "None"))),
	}},
	31: {Name: "SelectionNotify", Fields: []Field{
		timestampf("time"), resourceIDf("requestor", ""), atomf("selection", nil), atomf("target", nil),
		atomf("property", enumTable(e(0, "None"))),
	}},
	32: {Name: "ColormapNotify", Fields: []Field{
		resourceIDf("window", ""), resourceIDf("colormap", "None"), boolf("new"), enumf("state", 1, colormapStateNames),
	}},
	33: {Name: "ClientMessage", Detail: card8f("format"), Tail: tailClientMessage},
	34: {Name: "MappingNotify", Fields: []Field{
		enumf("request", 1, enumTable(e(0, "Modifier"), e(1, "Keyboard"), e(2, "Pointer"))),
		card8f("first-keycode"), card8f("count"), padNamed("", 1),
	}},
}

func keyButtonEventFields() []Field {
	return []Field{
		timestampf("time"), resourceIDf("root", ""), resourceIDf("event", ""), resourceIDf("child", "None"),
		int16f("root-x"), int16f("root-y"), int16f("event-x"), int16f("event-y"),
		bitmaskf("state", 2, keyButMaskFlagNames), boolf("same-screen"), padNamed("", 1),
	}
}

func crossingEventFields() []Field {
	return []Field{
		timestampf("time"), resourceIDf("root", ""), resourceIDf("event", ""), resourceIDf("child", "None"),
		int16f("root-x"), int16f("root-y"), int16f("event-x"), int16f("event-y"),
		bitmaskf("state", 2, keyButMaskFlagNames), enumf("mode", 1, notifyModeNames),
		bitmaskf("same-screen-focus", 1, enumTable(e(1, "SameScreen"), e(2, "Focus"))),
	}
}

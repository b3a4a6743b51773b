package x11proto

// ReplyDesc describes the reply a given request opcode produces. Replies
// are dispatched by the major opcode recorded against the sequence
// number at request time (spec §4.7: "replies are not self-describing"),
// never by a code byte of their own. Every reply's wire frame is
// type(1)=1 + detail(1) + sequence(2) + reply-length(4, in 4-byte units
// beyond the 32-byte base) + 24 bytes fixed data + reply-length*4 bytes
// of list data (spec §3).
type ReplyDesc struct {
	// Fields covers the 24-byte fixed region (buf[8:32]); entries whose
	// extra data needs the detail byte or reply-length set Tail instead
	// of, or in addition to, Fields.
	Fields []Field
	Tail   ReplyTailParser
}

// ReplyTailParser parses whatever Fields don't cover. buf starts right
// after the bytes Fields consumed (byte 8 of the reply when Fields is
// nil) and runs to the reply's end; n is reply-length in 4-byte units (the
// wire field, before ×4); detail is the reply's header byte 1; raw holds
// Fields' raw values by name.
type ReplyTailParser func(buf []byte, swap bool, n uint32, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue

// replyTable is keyed by the major opcode of the request that produced
// the reply. Opcodes that produce a reply but aren't listed render
// generically, as a hex summary of everything after the 8-byte header.
var replyTable = map[uint8]*ReplyDesc{
	3: {Fields: []Field{ // GetWindowAttributes
		enumf("backing-store", 4, backingStoreNames), card32f("visual"), enumf("class", 2, windowClassNames),
		enumf("bit-gravity", 1, bitGravityNames), enumf("win-gravity", 1, winGravityNames),
		card32f("backing-planes"), card32f("backing-pixel"), boolf("save-under"),
		boolf("map-is-installed"), enumf("map-state", 1, mapStateNames), boolf("override-redirect"),
		resourceIDf("colormap", "None"), bitmaskf("all-event-masks", 4, eventMaskFlagNames),
		bitmaskf("your-event-mask", 4, eventMaskFlagNames), bitmaskf("do-not-propagate-mask", 2, eventMaskFlagNames),
		padNamed("", 2),
	}},
	14: {Fields: []Field{ // GetGeometry
		resourceIDf("root", ""), int16f("x"), int16f("y"), card16f("width"), card16f("height"),
		card16f("border-width"), padNamed("", 10),
	}},
	15: {Tail: tailQueryTree}, // QueryTree
	16: {Tail: tailInternAtomReply}, // InternAtom
	17: {Tail: tailGetAtomNameReply}, // GetAtomName
	20: {Tail: tailGetPropertyReply}, // GetProperty
	21: {Tail: tailListPropertiesReply}, // ListProperties
	23: {Fields: []Field{resourceIDf("owner", "None"), padNamed("", 20)}}, // GetSelectionOwner
	26: {Fields: []Field{padNamed("", 24)}}, // GrabPointer (status is in detail)
	31: {Fields: []Field{padNamed("", 24)}}, // GrabKeyboard
	38: {Fields: []Field{ // QueryPointer
		resourceIDf("root", ""), resourceIDf("child", "None"),
		int16f("root-x"), int16f("root-y"), int16f("win-x"), int16f("win-y"),
		bitmaskf("mask", 2, keyButMaskFlagNames), padNamed("", 2),
	}},
	39: {Tail: tailGetMotionEventsReply}, // GetMotionEvents
	40: {Fields: []Field{ // TranslateCoordinates
		resourceIDf("child", "None"), int16f("dst-x"), int16f("dst-y"), padNamed("", 16),
	}},
	43: {Fields: []Field{resourceIDf("focus", "None"), padNamed("", 20)}}, // GetInputFocus
	44: {Tail: tailQueryKeymapReply}, // QueryKeymap
	47: {Tail: tailQueryFontReply}, // QueryFont: fixed region runs past byte 32, Fields left nil
	48: {Tail: tailQueryTextExtentsReply}, // QueryTextExtents
	49: {Tail: tailListFontsReply}, // ListFonts
	52: {Tail: tailGetFontPathReply}, // GetFontPath
	73: {Tail: tailGetImageReply}, // GetImage
	83: {Tail: tailListInstalledColormapsReply}, // ListInstalledColormaps
	84: {Fields: []Field{ // AllocColor
		card16f("red"), card16f("green"), card16f("blue"), padNamed("", 2), card32f("pixel"), padNamed("", 12),
	}},
	85: {Fields: []Field{ // AllocNamedColor
		card32f("pixel"), card16f("exact-red"), card16f("exact-green"), card16f("exact-blue"),
		card16f("screen-red"), card16f("screen-green"), card16f("screen-blue"),
	}},
	86: {Fields: []Field{card16f("pixels"), card16f("masks"), padNamed("", 20)}, Tail: tailAllocColorCellsReply}, // AllocColorCells
	87: {Fields: []Field{ // AllocColorPlanes
		card16f("n"), padNamed("", 2), card32f("red-mask"), card32f("green-mask"), card32f("blue-mask"), padNamed("", 8),
	}, Tail: tailAllocColorPlanesReply},
	91: {Tail: tailQueryColorsReply}, // QueryColors
	92: {Fields: []Field{ // LookupColor
		card16f("exact-red"), card16f("exact-green"), card16f("exact-blue"),
		card16f("screen-red"), card16f("screen-green"), card16f("screen-blue"), padNamed("", 12),
	}},
	97: {Fields: []Field{card16f("width"), card16f("height"), padNamed("", 20)}}, // QueryBestSize
	98: {Fields: []Field{ // QueryExtension
		boolf("present"), card8f("major-opcode"), card8f("first-event"), card8f("first-error"), padNamed("", 20),
	}},
	99: {Tail: tailListExtensionsReply}, // ListExtensions
	101: {Tail: tailGetKeyboardMappingReply}, // GetKeyboardMapping
	103: {Tail: tailGetKeyboardControlReply}, // GetKeyboardControl: auto-repeats bitmap runs past byte 32
	106: {Fields: []Field{ // GetPointerControl
		card16f("acceleration-numerator"), card16f("acceleration-denominator"), card16f("threshold"), padNamed("", 18),
	}},
	108: {Fields: []Field{ // GetScreenSaver
		card16f("timeout"), card16f("interval"), boolf("prefer-blanking"), boolf("allow-exposures"), padNamed("", 18),
	}},
	110: {Fields: []Field{card16f("n"), padNamed("", 22)}, Tail: tailListHostsReply}, // ListHosts
	116: {Fields: []Field{padNamed("", 24)}}, // SetPointerMapping (status is in detail)
	117: {Tail: tailRawByteListReply}, // GetPointerMapping
	118: {Fields: []Field{padNamed("", 24)}}, // SetModifierMapping (status is in detail)
	119: {Tail: tailGetModifierMappingReply}, // GetModifierMapping
}

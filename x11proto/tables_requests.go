package x11proto

// RequestDesc describes one core request opcode's layout (spec §4.6): the
// wire name, how to interpret the request header's second byte (core
// protocol overloads it as either padding or a one-byte "detail" field
// depending on the request), and the fixed fields following the 4-byte
// header. Requests with a variable-length tail (LISTofVALUE, STRING8,
// LISTofPOINT, ...) set Tail to the hand-written parser in requests.go;
// Fields alone cover every byte for requests without one.
type RequestDesc struct {
	Name   string
	Detail Field // header byte 2; zero value (Width 0) means "unused"
	Fields []Field
	Tail   TailParser
}

// TailParser parses whatever the fixed Fields don't cover: buf starts
// immediately after Fields, reqLen is the total request length in bytes
// (including the 4-byte header) per spec §4.2's length field, detail is
// the header's second byte (0 if the request leaves it unused), and raw
// carries every fixed field's unformatted value keyed by name (so, e.g.,
// a value-mask can be recovered without re-parsing). It returns the
// rendered tail fields to merge into the request's Brace output.
type TailParser func(buf []byte, swap bool, reqLen int, ctx Ctx, o *RenderOptions, c *Connection, seq uint16, detail uint32, raw map[string]uint32) []FieldValue

// requestTable maps major opcode (1..127; 127 is NoOperation) to its
// descriptor. Every core opcode has a Name so the fixed top-line log
// format (spec §4.7) always resolves; an entry with neither Fields nor
// Tail renders only its header fields. Opcodes missing from this table
// fall back to the opaque body dump in dispatch.go.
var requestTable = map[uint8]*RequestDesc{
	1:  {Name: "CreateWindow", Detail: card8f("depth"), Fields: []Field{
		resourceIDf("wid", ""), resourceIDf("parent", ""),
		int16f("x"), int16f("y"), card16f("width"), card16f("height"),
		card16f("border-width"), enumf("class", 2, windowClassNames),
		card32f("visual"), bitmaskf("value-mask", 4, nil),
	}, Tail: tailValueList(createWindowValueSchema)},
	2: {Name: "ChangeWindowAttributes", Fields: []Field{
		resourceIDf("window", ""), bitmaskf("value-mask", 4, nil),
	}, Tail: tailValueList(createWindowValueSchema)},
	3:  {Name: "GetWindowAttributes", Fields: []Field{resourceIDf("window", "")}},
	4:  {Name: "DestroyWindow", Fields: []Field{resourceIDf("window", "")}},
	5:  {Name: "DestroySubwindows", Fields: []Field{resourceIDf("window", "")}},
	6:  {Name: "ChangeSaveSet", Detail: enumf("mode", 1, enumTable(e(0, "Insert"), e(1, "Delete"))), Fields: []Field{resourceIDf("window", "")}},
	7: {Name: "ReparentWindow", Fields: []Field{
		resourceIDf("window", ""), resourceIDf("parent", ""), int16f("x"), int16f("y"),
	}},
	8:  {Name: "MapWindow", Fields: []Field{resourceIDf("window", "")}},
	9:  {Name: "MapSubwindows", Fields: []Field{resourceIDf("window", "")}},
	10: {Name: "UnmapWindow", Fields: []Field{resourceIDf("window", "")}},
	11: {Name: "UnmapSubwindows", Fields: []Field{resourceIDf("window", "")}},
	12: {Name: "ConfigureWindow", Fields: []Field{
		resourceIDf("window", ""), card16f("value-mask"), padNamed("", 2),
	}, Tail: tailValueList(configureWindowValueSchema)},
	13: {Name: "CirculateWindow", Detail: enumf("direction", 1, circulateNames), Fields: []Field{resourceIDf("window", "")}},
	14: {Name: "GetGeometry", Fields: []Field{resourceIDf("drawable", "")}},
	15: {Name: "QueryTree", Fields: []Field{resourceIDf("window", "")}},
	16: {Name: "InternAtom", Detail: boolf("only-if-exists"), Tail: tailInternAtomRequest},
	17: {Name: "GetAtomName", Fields: []Field{atomf("atom", nil)}},
	18: {Name: "ChangeProperty", Detail: enumf("mode", 1, propertyModeNames), Fields: []Field{
		resourceIDf("window", ""), atomf("property", nil), atomf("type", nil),
		card8f("format"), padNamed("", 3), card32f("length"),
	}, Tail: tailChangeProperty},
	19: {Name: "DeleteProperty", Fields: []Field{resourceIDf("window", ""), atomf("property", nil)}},
	20: {Name: "GetProperty", Detail: boolf("delete"), Fields: []Field{
		resourceIDf("window", ""), atomf("property", nil), atomf("type", enumTable(e(0, "AnyPropertyType"))),
		card32f("long-offset"), card32f("long-length"),
	}},
	21: {Name: "ListProperties", Fields: []Field{resourceIDf("window", "")}},
	22: {Name: "SetSelectionOwner", Fields: []Field{
		resourceIDf("owner", "None"), atomf("selection", nil), timestampf("time"),
	}},
	23: {Name: "GetSelectionOwner", Fields: []Field{atomf("selection", nil)}},
	24: {Name: "ConvertSelection", Fields: []Field{
		resourceIDf("requestor", ""), atomf("selection", nil), atomf("target", nil),
		atomf("property", enumTable(e(0, "None"))), timestampf("time"),
	}},
	25: {Name: "SendEvent", Detail: boolf("propagate"), Fields: []Field{
		resourceIDf("destination", ""), bitmaskf("event-mask", 4, eventMaskFlagNames),
	}, Tail: tailSendEvent},
	26: {Name: "GrabPointer", Detail: boolf("owner-events"), Fields: []Field{
		resourceIDf("grab-window", ""), bitmaskf("event-mask", 2, pointerEventFlagNames),
		enumf("pointer-mode", 1, grabModeNames), enumf("keyboard-mode", 1, grabModeNames),
		resourceIDf("confine-to", "None"), resourceIDf("cursor", "None"), timestampf("time"),
	}},
	27: {Name: "UngrabPointer", Fields: []Field{timestampf("time")}},
	28: {Name: "GrabButton", Detail: boolf("owner-events"), Fields: []Field{
		resourceIDf("grab-window", ""), bitmaskf("event-mask", 2, pointerEventFlagNames),
		enumf("pointer-mode", 1, grabModeNames), enumf("keyboard-mode", 1, grabModeNames),
		resourceIDf("confine-to", "None"), resourceIDf("cursor", "None"),
		card8f("button"), padNamed("", 1), bitmaskf("modifiers", 2, keyButMaskFlagNames),
	}},
	29: {Name: "UngrabButton", Detail: card8f("button"), Fields: []Field{
		resourceIDf("grab-window", ""), bitmaskf("modifiers", 2, keyButMaskFlagNames),
	}},
	30: {Name: "ChangeActivePointerGrab", Fields: []Field{
		resourceIDf("cursor", "None"), timestampf("time"), bitmaskf("event-mask", 2, pointerEventFlagNames), padNamed("", 2),
	}},
	31: {Name: "GrabKeyboard", Detail: boolf("owner-events"), Fields: []Field{
		resourceIDf("grab-window", ""), timestampf("time"),
		enumf("pointer-mode", 1, grabModeNames), enumf("keyboard-mode", 1, grabModeNames), padNamed("", 2),
	}},
	32: {Name: "UngrabKeyboard", Fields: []Field{timestampf("time")}},
	33: {Name: "GrabKey", Detail: boolf("owner-events"), Fields: []Field{
		resourceIDf("grab-window", ""), bitmaskf("modifiers", 2, keyMaskFlagNames),
		card8f("key"), enumf("pointer-mode", 1, grabModeNames), enumf("keyboard-mode", 1, grabModeNames), padNamed("", 3),
	}},
	34: {Name: "UngrabKey", Detail: card8f("key"), Fields: []Field{
		resourceIDf("grab-window", ""), bitmaskf("modifiers", 2, keyMaskFlagNames), padNamed("", 2),
	}},
	35: {Name: "AllowEvents", Detail: enumf("mode", 1, allowEventsModeNames), Fields: []Field{timestampf("time")}},
	36: {Name: "GrabServer"},
	37: {Name: "UngrabServer"},
	38: {Name: "QueryPointer", Fields: []Field{resourceIDf("window", "")}},
	39: {Name: "GetMotionEvents", Fields: []Field{
		resourceIDf("window", ""), timestampf("start"), timestampf("stop"),
	}},
	40: {Name: "TranslateCoordinates", Fields: []Field{
		resourceIDf("src-window", ""), resourceIDf("dst-window", ""), int16f("src-x"), int16f("src-y"),
	}},
	41: {Name: "WarpPointer", Fields: []Field{
		resourceIDf("src-window", "None"), resourceIDf("dst-window", "None"),
		int16f("src-x"), int16f("src-y"), card16f("src-width"), card16f("src-height"),
		int16f("dst-x"), int16f("dst-y"),
	}},
	42: {Name: "SetInputFocus", Detail: enumf("revert-to", 1, focusRevertToNames), Fields: []Field{
		resourceIDf("focus", "None"), timestampf("time"),
	}},
	43: {Name: "GetInputFocus"},
	44: {Name: "QueryKeymap"},
	45: {Name: "OpenFont", Fields: []Field{resourceIDf("fid", "")}, Tail: tailOpenFont},
	46: {Name: "CloseFont", Fields: []Field{resourceIDf("font", "")}},
	47: {Name: "QueryFont", Fields: []Field{resourceIDf("font", "")}},
	48: {Name: "QueryTextExtents", Detail: boolf("odd-length"), Fields: []Field{resourceIDf("font", "")}},
	49: {Name: "ListFonts", Fields: []Field{card16f("max-names")}, Tail: tailListFonts},
	50: {Name: "ListFontsWithInfo", Fields: []Field{card16f("max-names")}, Tail: tailListFonts},
	51: {Name: "SetFontPath", Fields: []Field{card16f("str-number-in-path"), padNamed("", 2)}, Tail: tailSetFontPath},
	52: {Name: "GetFontPath"},
	53: {Name: "CreatePixmap", Fields: []Field{
		resourceIDf("pid", ""), resourceIDf("drawable", ""), card16f("width"), card16f("height"),
	}, Detail: card8f("depth")},
	54: {Name: "FreePixmap", Fields: []Field{resourceIDf("pixmap", "")}},
	55: {Name: "CreateGC", Fields: []Field{
		resourceIDf("cid", ""), resourceIDf("drawable", ""), bitmaskf("value-mask", 4, nil),
	}, Tail: tailValueList(gcValueSchema)},
	56: {Name: "ChangeGC", Fields: []Field{
		resourceIDf("gc", ""), bitmaskf("value-mask", 4, nil),
	}, Tail: tailValueList(gcValueSchema)},
	57: {Name: "CopyGC", Fields: []Field{
		resourceIDf("src-gc", ""), resourceIDf("dst-gc", ""), bitmaskf("value-mask", 4, nil),
	}},
	58: {Name: "SetDashes", Fields: []Field{
		resourceIDf("gc", ""), card16f("dash-offset"), card16f("n"),
	}, Tail: tailSetDashes},
	59: {Name: "SetClipRectangles", Detail: enumf("ordering", 1, ordering3Names), Fields: []Field{
		resourceIDf("gc", ""), int16f("clip-x-origin"), int16f("clip-y-origin"),
	}, Tail: tailRectangleList},
	60: {Name: "FreeGC", Fields: []Field{resourceIDf("gc", "")}},
	61: {Name: "ClearArea", Detail: boolf("exposures"), Fields: []Field{
		resourceIDf("window", ""), int16f("x"), int16f("y"), card16f("width"), card16f("height"),
	}},
	62: {Name: "CopyArea", Fields: []Field{
		resourceIDf("src-drawable", ""), resourceIDf("dst-drawable", ""), resourceIDf("gc", ""),
		int16f("src-x"), int16f("src-y"), int16f("dst-x"), int16f("dst-y"), card16f("width"), card16f("height"),
	}},
	63: {Name: "CopyPlane", Fields: []Field{
		resourceIDf("src-drawable", ""), resourceIDf("dst-drawable", ""), resourceIDf("gc", ""),
		int16f("src-x"), int16f("src-y"), int16f("dst-x"), int16f("dst-y"), card16f("width"), card16f("height"),
		card32f("bit-plane"),
	}},
	64: {Name: "PolyPoint", Detail: enumf("coordinate-mode", 1, coordModeNames), Fields: []Field{
		resourceIDf("drawable", ""), resourceIDf("gc", ""),
	}, Tail: tailPointList},
	65: {Name: "PolyLine", Detail: enumf("coordinate-mode", 1, coordModeNames), Fields: []Field{
		resourceIDf("drawable", ""), resourceIDf("gc", ""),
	}, Tail: tailPointList},
	66: {Name: "PolySegment", Fields: []Field{resourceIDf("drawable", ""), resourceIDf("gc", "")}, Tail: tailSegmentList},
	67: {Name: "PolyRectangle", Fields: []Field{resourceIDf("drawable", ""), resourceIDf("gc", "")}, Tail: tailRectangleList},
	68: {Name: "PolyArc", Fields: []Field{resourceIDf("drawable", ""), resourceIDf("gc", "")}, Tail: tailArcList},
	69: {Name: "FillPoly", Fields: []Field{
		resourceIDf("drawable", ""), resourceIDf("gc", ""),
		enumf("shape", 1, polyShapeNames), enumf("coordinate-mode", 1, coordModeNames), padNamed("", 2),
	}, Tail: tailPointListAfterShape},
	70: {Name: "PolyFillRectangle", Fields: []Field{resourceIDf("drawable", ""), resourceIDf("gc", "")}, Tail: tailRectangleList},
	71: {Name: "PolyFillArc", Fields: []Field{resourceIDf("drawable", ""), resourceIDf("gc", "")}, Tail: tailArcList},
	72: {Name: "PutImage", Detail: enumf("format", 1, imageFormatNames), Fields: []Field{
		resourceIDf("drawable", ""), resourceIDf("gc", ""), card16f("width"), card16f("height"),
		int16f("dst-x"), int16f("dst-y"), card8f("left-pad"), card8f("depth"), padNamed("", 2),
	}, Tail: tailPutImage},
	73: {Name: "GetImage", Detail: enumf("format", 1, imageFormatNames), Fields: []Field{
		resourceIDf("drawable", ""), int16f("x"), int16f("y"), card16f("width"), card16f("height"), card32f("plane-mask"),
	}},
	74: {Name: "PolyText8", Fields: []Field{
		resourceIDf("drawable", ""), resourceIDf("gc", ""), int16f("x"), int16f("y"),
	}, Tail: tailPolyText(false)},
	75: {Name: "PolyText16", Fields: []Field{
		resourceIDf("drawable", ""), resourceIDf("gc", ""), int16f("x"), int16f("y"),
	}, Tail: tailPolyText(true)},
	76: {Name: "ImageText8", Detail: card8f("string-len"), Fields: []Field{
		resourceIDf("drawable", ""), resourceIDf("gc", ""), int16f("x"), int16f("y"),
	}, Tail: tailImageText(false)},
	77: {Name: "ImageText16", Detail: card8f("string-len"), Fields: []Field{
		resourceIDf("drawable", ""), resourceIDf("gc", ""), int16f("x"), int16f("y"),
	}, Tail: tailImageText(true)},
	78: {Name: "CreateColormap", Detail: enumf("alloc", 1, colormapAllocNames), Fields: []Field{
		resourceIDf("mid", ""), resourceIDf("window", ""), card32f("visual"),
	}},
	79: {Name: "FreeColormap", Fields: []Field{resourceIDf("colormap", "")}},
	80: {Name: "CopyColormapAndFree", Fields: []Field{resourceIDf("mid", ""), resourceIDf("src-colormap", "")}},
	81: {Name: "InstallColormap", Fields: []Field{resourceIDf("colormap", "")}},
	82: {Name: "UninstallColormap", Fields: []Field{resourceIDf("colormap", "")}},
	83: {Name: "ListInstalledColormaps", Fields: []Field{resourceIDf("window", "")}},
	84: {Name: "AllocColor", Fields: []Field{
		resourceIDf("colormap", ""), card16f("red"), card16f("green"), card16f("blue"), padNamed("", 2),
	}},
	85: {Name: "AllocNamedColor", Fields: []Field{resourceIDf("colormap", "")}, Tail: tailNamedString("name")},
	86: {Name: "AllocColorCells", Detail: boolf("contiguous"), Fields: []Field{
		resourceIDf("colormap", ""), card16f("colors"), card16f("planes"),
	}},
	87: {Name: "AllocColorPlanes", Detail: boolf("contiguous"), Fields: []Field{
		resourceIDf("colormap", ""), card16f("colors"), card16f("reds"), card16f("greens"), card16f("blues"),
	}},
	88: {Name: "FreeColors", Fields: []Field{resourceIDf("colormap", ""), card32f("plane-mask")}},
	89: {Name: "StoreColors"},
	90: {Name: "StoreNamedColor", Detail: bitmaskf("do-rgb-mask", 1, nil), Fields: []Field{
		resourceIDf("colormap", ""), card32f("pixel"),
	}, Tail: tailNamedString("name")},
	91: {Name: "QueryColors", Fields: []Field{resourceIDf("colormap", "")}},
	92: {Name: "LookupColor", Fields: []Field{resourceIDf("colormap", "")}, Tail: tailNamedString("name")},
	93: {Name: "CreateCursor", Fields: []Field{
		resourceIDf("cid", ""), resourceIDf("source", ""), resourceIDf("mask", "None"),
		card16f("fore-red"), card16f("fore-green"), card16f("fore-blue"),
		card16f("back-red"), card16f("back-green"), card16f("back-blue"),
		card16f("x"), card16f("y"),
	}},
	94: {Name: "CreateGlyphCursor", Fields: []Field{
		resourceIDf("cid", ""), resourceIDf("source-font", ""), resourceIDf("mask-font", "None"),
		card16f("source-char"), card16f("mask-char"),
		card16f("fore-red"), card16f("fore-green"), card16f("fore-blue"),
		card16f("back-red"), card16f("back-green"), card16f("back-blue"),
	}},
	95: {Name: "FreeCursor", Fields: []Field{resourceIDf("cursor", "")}},
	96: {Name: "RecolorCursor", Fields: []Field{
		resourceIDf("cursor", ""),
		card16f("fore-red"), card16f("fore-green"), card16f("fore-blue"),
		card16f("back-red"), card16f("back-green"), card16f("back-blue"),
	}},
	97: {Name: "QueryBestSize", Detail: enumf("class", 1, enumTable(e(0, "Cursor"), e(1, "Tile"), e(2, "Stipple"))), Fields: []Field{
		resourceIDf("drawable", ""), card16f("width"), card16f("height"),
	}},
	98: {Name: "QueryExtension", Tail: tailQueryExtensionRequest},
	99: {Name: "ListExtensions"},
	100: {Name: "ChangeKeyboardMapping", Fields: []Field{
		card8f("keycode-count"), card8f("first-keycode"), card8f("keysyms-per-keycode"), padNamed("", 1),
	}, Tail: tailChangeKeyboardMapping},
	101: {Name: "GetKeyboardMapping", Fields: []Field{card8f("first-keycode"), card8f("count"), padNamed("", 2)}},
	102: {Name: "ChangeKeyboardControl", Fields: []Field{bitmaskf("value-mask", 4, nil)}},
	103: {Name: "GetKeyboardControl"},
	104: {Name: "Bell", Detail: int8f("percent")},
	105: {Name: "ChangePointerControl", Fields: []Field{
		int16f("acceleration-numerator"), int16f("acceleration-denominator"), int16f("threshold"),
		boolf("do-acceleration"), boolf("do-threshold"),
	}},
	106: {Name: "GetPointerControl"},
	107: {Name: "SetScreenSaver", Fields: []Field{
		int16f("timeout"), int16f("interval"), enumf("prefer-blanking", 1, screenSaverModeNames), enumf("allow-exposures", 1, screenSaverModeNames),
	}},
	108: {Name: "GetScreenSaver"},
	109: {Name: "ChangeHosts", Detail: enumf("mode", 1, enumTable(e(0, "Insert"), e(1, "Delete"))), Fields: []Field{
		enumf("family", 1, hostFamilyNames), padNamed("", 1), card16f("address-len"),
	}, Tail: tailChangeHosts},
	110: {Name: "ListHosts"},
	111: {Name: "SetAccessControl", Detail: enumf("mode", 1, enumTable(e(0, "Disable"), e(1, "Enable")))},
	112: {Name: "SetCloseDownMode", Detail: enumf("mode", 1, closeDownModeNames)},
	113: {Name: "KillClient", Fields: []Field{card32f("resource")}},
	114: {Name: "RotateProperties", Fields: []Field{
		resourceIDf("window", ""), card16f("n"), int16f("delta"),
	}, Tail: tailRotateProperties},
	115: {Name: "ForceScreenSaver", Detail: enumf("mode", 1, enumTable(e(0, "Reset"), e(1, "Activate")))},
	116: {Name: "SetPointerMapping", Detail: card8f("length"), Tail: tailRawByteList("map")},
	117: {Name: "GetPointerMapping"},
	118: {Name: "SetModifierMapping", Detail: card8f("keycodes-per-modifier"), Tail: tailRawByteList("keycodes")},
	119: {Name: "GetModifierMapping"},
	127: {Name: "NoOperation"},
}

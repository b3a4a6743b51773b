package x11proto

// EnumPair is one named value in an enum or bitmask table.
type EnumPair struct {
	Value uint32
	Name  string
}

// EnumTable is an ordered {value -> name} table used by the value
// formatter (spec §4.4). For plain enums, In reports whether v has a
// defined name. For bitmask tables, Decompose walks pairs in ascending
// bit order (spec §8 property 7 requires ascending order in the output).
type EnumTable struct {
	Pairs []EnumPair
	// AnyValue, when non-nil, is a sentinel that short-circuits bitmask
	// decomposition entirely (SETofKEYMASK's AnyModifier, spec §4.4).
	AnyValue *uint32
}

// Name returns the defined name for v, if any.
func (t *EnumTable) Name(v uint32) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, p := range t.Pairs {
		if p.Value == v {
			return p.Name, true
		}
	}
	return "", false
}

// In reports whether v falls within this table's defined range. Used by
// the value formatter to decide whether ATOM/TIMESTAMP contextual enums
// apply before falling back to interned-atom lookup or relative time.
func (t *EnumTable) In(v uint32) bool {
	_, ok := t.Name(v)
	return ok
}

// Decompose returns the names of every bit set in v, in ascending bit
// order, per the table's flag pairs. AnyValue short-circuits to a single
// name when v equals it exactly.
func (t *EnumTable) Decompose(v uint32) []string {
	if t == nil {
		return nil
	}
	if t.AnyValue != nil && v == *t.AnyValue {
		if name, ok := t.Name(v); ok {
			return []string{name}
		}
	}
	pairs := append([]EnumPair(nil), t.Pairs...)
	// stable ascending-bit order
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && pairs[j-1].Value > pairs[j].Value; j-- {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
		}
	}
	var names []string
	for _, p := range pairs {
		if p.Value != 0 && v&p.Value == p.Value {
			names = append(names, p.Name)
		}
	}
	return names
}

func enumTable(pairs ...EnumPair) *EnumTable {
	return &EnumTable{Pairs: pairs}
}

func e(v uint32, name string) EnumPair { return EnumPair{Value: v, Name: name} }

// Core enum/flag tables referenced by field schemas (tables_*.go) and the
// hand-written parsers. Names and values are the X11 core protocol's.

var boolNames = enumTable(e(0, "False"), e(1, "True"))

var windowClassNames = enumTable(e(0, "CopyFromParent"), e(1, "InputOutput"), e(2, "InputOnly"))

var mapStateNames = enumTable(e(0, "Unmapped"), e(1, "Unviewable"), e(2, "Viewable"))

var bitGravityNames = enumTable(
	e(0, "Forget"), e(1, "NorthWest"), e(2, "North"), e(3, "NorthEast"),
	e(4, "West"), e(5, "Center"), e(6, "East"), e(7, "SouthWest"),
	e(8, "South"), e(9, "SouthEast"), e(10, "Static"),
)

var winGravityNames = enumTable(
	e(0, "Unmap"), e(1, "NorthWest"), e(2, "North"), e(3, "NorthEast"),
	e(4, "West"), e(5, "Center"), e(6, "East"), e(7, "SouthWest"),
	e(8, "South"), e(9, "SouthEast"), e(10, "Static"),
)

var backingStoreNames = enumTable(e(0, "NotUseful"), e(1, "WhenMapped"), e(2, "Always"))

var stackModeNames = enumTable(
	e(0, "Above"), e(1, "Below"), e(2, "TopIf"), e(3, "BottomIf"), e(4, "Opposite"),
)

var circulateNames = enumTable(e(0, "RaiseLowest"), e(1, "LowerHighest"))

var propertyModeNames = enumTable(e(0, "Replace"), e(1, "Prepend"), e(2, "Append"))

var changePropertyStateNames = enumTable(e(0, "NewValue"), e(1, "Deleted"))

var grabStatusNames = enumTable(
	e(0, "Success"), e(1, "AlreadyGrabbed"), e(2, "InvalidTime"),
	e(3, "NotViewable"), e(4, "Frozen"),
)

var grabModeNames = enumTable(e(0, "Synchronous"), e(1, "Asynchronous"))

var allowEventsModeNames = enumTable(
	e(0, "AsyncPointer"), e(1, "SyncPointer"), e(2, "ReplayPointer"),
	e(3, "AsyncKeyboard"), e(4, "SyncKeyboard"), e(5, "ReplayKeyboard"),
	e(6, "AsyncBoth"), e(7, "SyncBoth"),
)

var inputFocusNames = enumTable(e(0, "None"), e(1, "PointerRoot"), e(2, "Parent"))

var focusRevertToNames = inputFocusNames

var visualClassNames = enumTable(
	e(0, "StaticGray"), e(1, "GrayScale"), e(2, "StaticColor"),
	e(3, "PseudoColor"), e(4, "TrueColor"), e(5, "DirectColor"),
)

var hostFamilyNames = enumTable(
	e(0, "Internet"), e(1, "DECnet"), e(2, "Chaos"), e(5, "ServerInterpreted"), e(6, "InternetV6"),
)

var closeDownModeNames = enumTable(
	e(0, "Destroy"), e(1, "RetainPermanent"), e(2, "RetainTemporary"),
)

var kbNames = enumTable(e(0, "KeyClick"), e(1, "Percent"))

var onOffNames = enumTable(e(0, "Off"), e(1, "On"))

var screenSaverModeNames = enumTable(e(0, "No"), e(1, "Yes"), e(2, "Default"))

var coordModeNames = enumTable(e(0, "Origin"), e(1, "Previous"))

var polyShapeNames = enumTable(e(0, "Complex"), e(1, "Nonconvex"), e(2, "Convex"))

var imageFormatNames = enumTable(e(0, "Bitmap"), e(1, "XYPixmap"), e(2, "ZPixmap"))

var ordering3Names = enumTable(e(0, "UnSorted"), e(1, "YSorted"), e(2, "YXSorted"), e(3, "YXBanded"))

var fontDrawDirectionNames = enumTable(e(0, "LeftToRight"), e(1, "RightToLeft"))

var colormapAllocNames = enumTable(e(0, "None"), e(1, "All"))

var colormapStateNames = enumTable(e(0, "Uninstalled"), e(1, "Installed"))

var notifyDetailNames = enumTable(
	e(0, "Ancestor"), e(1, "Virtual"), e(2, "Inferior"), e(3, "Nonlinear"),
	e(4, "NonlinearVirtual"), e(5, "Pointer"), e(6, "PointerRoot"), e(7, "None"),
)

var notifyModeNames = enumTable(e(0, "Normal"), e(1, "Grab"), e(2, "Ungrab"), e(3, "WhileGrabbed"))

var visibilityNames = enumTable(e(0, "Unobscured"), e(1, "PartiallyObscured"), e(2, "FullyObscured"))

var placeNames = enumTable(e(0, "OnTop"), e(1, "OnBottom"))

var propertyNotifyStateNames = changePropertyStateNames

var keyButMaskFlagNames = enumTable(
	e(0x0001, "Shift"), e(0x0002, "Lock"), e(0x0004, "Control"),
	e(0x0008, "Mod1"), e(0x0010, "Mod2"), e(0x0020, "Mod3"),
	e(0x0040, "Mod4"), e(0x0080, "Mod5"),
	e(0x0100, "Button1"), e(0x0200, "Button2"), e(0x0400, "Button3"),
	e(0x0800, "Button4"), e(0x1000, "Button5"),
)

var keyMaskAnyValue = uint32(0x8000)

var keyMaskFlagNames = &EnumTable{
	Pairs: append(append([]EnumPair(nil), keyButMaskFlagNames.Pairs[:8]...),
		e(0x8000, "AnyModifier")),
	AnyValue: &keyMaskAnyValue,
}

var eventMaskFlagNames = enumTable(
	e(0x00000001, "KeyPress"), e(0x00000002, "KeyRelease"),
	e(0x00000004, "ButtonPress"), e(0x00000008, "ButtonRelease"),
	e(0x00000010, "EnterWindow"), e(0x00000020, "LeaveWindow"),
	e(0x00000040, "PointerMotion"), e(0x00000080, "PointerMotionHint"),
	e(0x00000100, "Button1Motion"), e(0x00000200, "Button2Motion"),
	e(0x00000400, "Button3Motion"), e(0x00000800, "Button4Motion"),
	e(0x00001000, "Button5Motion"), e(0x00002000, "ButtonMotion"),
	e(0x00004000, "KeymapState"), e(0x00008000, "Exposure"),
	e(0x00010000, "VisibilityChange"), e(0x00020000, "StructureNotify"),
	e(0x00040000, "ResizeRedirect"), e(0x00080000, "SubstructureNotify"),
	e(0x00100000, "SubstructureRedirect"), e(0x00200000, "FocusChange"),
	e(0x00400000, "PropertyChange"), e(0x00800000, "ColormapChange"),
	e(0x01000000, "OwnerGrabButton"),
)

var pointerEventFlagNames = enumTable(
	e(0x00000004, "ButtonPress"), e(0x00000008, "ButtonRelease"),
	e(0x00000010, "EnterWindow"), e(0x00000020, "LeaveWindow"),
	e(0x00000040, "PointerMotion"), e(0x00000080, "PointerMotionHint"),
	e(0x00000100, "Button1Motion"), e(0x00000200, "Button2Motion"),
	e(0x00000400, "Button3Motion"), e(0x00000800, "Button4Motion"),
	e(0x00001000, "Button5Motion"), e(0x00002000, "ButtonMotion"),
	e(0x01000000, "OwnerGrabButton"),
)

var deviceEventFlagNames = enumTable(
	e(0x00000001, "KeyPress"), e(0x00000002, "KeyRelease"),
	e(0x00000004, "ButtonPress"), e(0x00000008, "ButtonRelease"),
	e(0x00000040, "PointerMotion"),
	e(0x00000100, "Button1Motion"), e(0x00000200, "Button2Motion"),
	e(0x00000400, "Button3Motion"), e(0x00000800, "Button4Motion"),
	e(0x00001000, "Button5Motion"), e(0x00002000, "ButtonMotion"),
)

// valueSpec is one entry of a LISTofVALUE schema (spec §4.5): the mask
// bit a CreateWindow/ChangeWindowAttributes/CreateGC/ChangeGC/
// ConfigureWindow VALUE-mask value occupies, its wire name, and how to
// format it. toValueListEntries adapts these into the generic
// []ValueListEntry the list parser consumes.
type valueSpec struct {
	bit   uint32
	name  string
	trait ValueHint
	enum  *EnumTable
}

func toValueListEntries(specs []valueSpec) []ValueListEntry {
	out := make([]ValueListEntry, len(specs))
	for i, s := range specs {
		out[i] = ValueListEntry{Bit: s.bit, Name: s.name, Hint: s.trait, Names: s.enum}
	}
	return out
}

var createWindowValueNames = []valueSpec{
	{0x00000001, "background-pixmap", HintScalar, nil},
	{0x00000002, "background-pixel", HintScalar, nil},
	{0x00000004, "border-pixmap", HintScalar, nil},
	{0x00000008, "border-pixel", HintScalar, nil},
	{0x00000010, "bit-gravity", HintScalar, bitGravityNames},
	{0x00000020, "win-gravity", HintScalar, winGravityNames},
	{0x00000040, "backing-store", HintScalar, backingStoreNames},
	{0x00000080, "backing-planes", HintScalar, nil},
	{0x00000100, "backing-pixel", HintScalar, nil},
	{0x00000200, "override-redirect", HintScalar, boolNames},
	{0x00000400, "save-under", HintScalar, boolNames},
	{0x00000800, "event-mask", HintBitmask, eventMaskFlagNames},
	{0x00001000, "do-not-propagate-mask", HintBitmask, eventMaskFlagNames},
	{0x00002000, "colormap", HintScalar, nil},
	{0x00004000, "cursor", HintScalar, nil},
}

var gcValueNames = []valueSpec{
	{0x00000001, "function", HintScalar, nil},
	{0x00000002, "plane-mask", HintScalar, nil},
	{0x00000004, "foreground", HintScalar, nil},
	{0x00000008, "background", HintScalar, nil},
	{0x00000010, "line-width", HintScalar, nil},
	{0x00000020, "line-style", HintScalar, nil},
	{0x00000040, "cap-style", HintScalar, nil},
	{0x00000080, "join-style", HintScalar, nil},
	{0x00000100, "fill-style", HintScalar, nil},
	{0x00000200, "fill-rule", HintScalar, nil},
	{0x00000400, "tile", HintScalar, nil},
	{0x00000800, "stipple", HintScalar, nil},
	{0x00001000, "tile-stipple-x-origin", HintScalar, nil},
	{0x00002000, "tile-stipple-y-origin", HintScalar, nil},
	{0x00004000, "font", HintScalar, nil},
	{0x00008000, "subwindow-mode", HintScalar, nil},
	{0x00010000, "graphics-exposures", HintScalar, boolNames},
	{0x00020000, "clip-x-origin", HintScalar, nil},
	{0x00040000, "clip-y-origin", HintScalar, nil},
	{0x00080000, "clip-mask", HintScalar, nil},
	{0x00100000, "dash-offset", HintScalar, nil},
	{0x00200000, "dashes", HintScalar, nil},
	{0x00400000, "arc-mode", HintScalar, nil},
}

var configureWindowValueNames = []valueSpec{
	{0x0001, "x", HintScalar, nil},
	{0x0002, "y", HintScalar, nil},
	{0x0004, "width", HintScalar, nil},
	{0x0008, "height", HintScalar, nil},
	{0x0010, "border-width", HintScalar, nil},
	{0x0020, "sibling", HintScalar, nil},
	{0x0040, "stack-mode", HintScalar, stackModeNames},
}

// Precomputed ValueListEntry schemas consumed by ParseValueList in the
// hand-written CreateWindow/ChangeWindowAttributes/CreateGC/ChangeGC/
// ConfigureWindow parsers (requests.go).
var (
	createWindowValueSchema    = toValueListEntries(createWindowValueNames)
	gcValueSchema              = toValueListEntries(gcValueNames)
	configureWindowValueSchema = toValueListEntries(configureWindowValueNames)
)

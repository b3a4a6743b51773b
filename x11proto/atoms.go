package x11proto

import "sync"

// predefinedAtoms lists the X11 core protocol's built-in atom identifiers
// 1..68, seeded into every connection's atom table at creation.
var predefinedAtoms = map[uint32]string{
	1: "PRIMARY", 2: "SECONDARY", 3: "ARC", 4: "ATOM", 5: "BITMAP",
	6: "CARDINAL", 7: "COLORMAP", 8: "CURSOR", 9: "CUT_BUFFER0",
	10: "CUT_BUFFER1", 11: "CUT_BUFFER2", 12: "CUT_BUFFER3", 13: "CUT_BUFFER4",
	14: "CUT_BUFFER5", 15: "CUT_BUFFER6", 16: "CUT_BUFFER7", 17: "DRAWABLE",
	18: "FONT", 19: "INTEGER", 20: "PIXMAP", 21: "POINT", 22: "RECTANGLE",
	23: "RESOURCE_MANAGER", 24: "RGB_COLOR_MAP", 25: "RGB_BEST_MAP",
	26: "RGB_BLUE_MAP", 27: "RGB_DEFAULT_MAP", 28: "RGB_GRAY_MAP",
	29: "RGB_GREEN_MAP", 30: "RGB_RED_MAP", 31: "STRING", 32: "VISUALID",
	33: "WINDOW", 34: "WM_COMMAND", 35: "WM_HINTS", 36: "WM_CLIENT_MACHINE",
	37: "WM_ICON_NAME", 38: "WM_ICON_SIZE", 39: "WM_NAME", 40: "WM_NORMAL_HINTS",
	41: "WM_SIZE_HINTS", 42: "WM_ZOOM_HINTS", 43: "MIN_SPACE", 44: "NORM_SPACE",
	45: "MAX_SPACE", 46: "END_SPACE", 47: "SUPERSCRIPT_X", 48: "SUPERSCRIPT_Y",
	49: "SUBSCRIPT_X", 50: "SUBSCRIPT_Y", 51: "UNDERLINE_POSITION",
	52: "UNDERLINE_THICKNESS", 53: "STRIKEOUT_ASCENT", 54: "STRIKEOUT_DESCENT",
	55: "ITALIC_ANGLE", 56: "X_HEIGHT", 57: "QUAD_WIDTH", 58: "WEIGHT",
	59: "POINT_SIZE", 60: "RESOLUTION", 61: "COPYRIGHT", 62: "NOTICE",
	63: "FONT_NAME", 64: "FAMILY_NAME", 65: "FULL_NAME", 66: "CAP_HEIGHT",
	67: "WM_CLASS", 68: "WM_TRANSIENT_FOR",
}

// AtomAtomID is the predefined ATOM type atom, used by GetProperty's
// type-rendering special case (spec §4.6).
const AtomAtomID uint32 = 4

// StringAtomID is the predefined STRING type atom.
const StringAtomID uint32 = 31

// AtomTable mirrors the server's interned-atom namespace for one
// connection: {atom id -> name}. Kept per-connection per spec §9's design
// note ("shared, mutable atom table ... keep it per-connection unless the
// host explicitly opts in").
type AtomTable struct {
	mu    sync.RWMutex
	names map[uint32]string
}

func newAtomTable() *AtomTable {
	t := &AtomTable{names: make(map[uint32]string, len(predefinedAtoms))}
	for id, name := range predefinedAtoms {
		t.names[id] = name
	}
	return t
}

// Intern records name under id, overwriting any previous binding — the
// protocol permits InternAtom re-use, so rebinding is not an error.
func (t *AtomTable) Intern(id uint32, name string) {
	if id == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.names[id] = name
}

// Lookup returns the name interned for id, if any.
func (t *AtomTable) Lookup(id uint32) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	name, ok := t.names[id]
	return name, ok
}

package x11proto

// ErrorDesc describes one core error code's layout. Every error shares
// the 32-byte frame: code(1)=0, error-code(1), sequence(2), then 4 bytes
// that are either a bad resource id (most errors) or a bad value
// (Value error) or unused, followed by minor-opcode(2) and
// major-opcode(1) and 21 unused bytes (spec §3).
type ErrorDesc struct {
	Name string
	// Field4 names the 4-byte slot at offset 4: "bad-value" for Value
	// errors, a resource-type name for the ones that report a resource
	// id, or "" when the core protocol leaves it unused (IDChoice never
	// does; most others report something).
	Field4     string
	Field4Kind int // 0 = resource id, 1 = plain value
}

const (
	errField4Resource = 0
	errField4Value    = 1
)

var errorTable = map[uint8]*ErrorDesc{
	1:  {Name: "Request"},
	2:  {Name: "Value", Field4: "bad-value", Field4Kind: errField4Value},
	3:  {Name: "Window", Field4: "bad-resource-id"},
	4:  {Name: "Pixmap", Field4: "bad-resource-id"},
	5:  {Name: "Atom", Field4: "bad-atom-id"},
	6:  {Name: "Cursor", Field4: "bad-resource-id"},
	7:  {Name: "Font", Field4: "bad-resource-id"},
	8:  {Name: "Match"},
	9:  {Name: "Drawable", Field4: "bad-resource-id"},
	10: {Name: "Access"},
	11: {Name: "Alloc"},
	12: {Name: "Colormap", Field4: "bad-resource-id"},
	13: {Name: "GContext", Field4: "bad-resource-id"},
	14: {Name: "IDChoice", Field4: "bad-resource-id"},
	15: {Name: "Name"},
	16: {Name: "Length"},
	17: {Name: "Implementation"},
}

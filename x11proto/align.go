package x11proto

// Align is the X11 wire protocol's quad-alignment unit in bytes.
const Align = 4

// Pad rounds a raw byte count up to the nearest multiple of Align.
func Pad(n int) int {
	return n + ((Align - (n % Align)) % Align)
}

// Units converts a raw byte count to the number of aligned units it
// occupies once padded. Reply and request headers encode lengths this way.
func Units(n int) int {
	return Pad(n) / Align
}

// Size converts a count of aligned units back to a byte count.
func Size(units int) int {
	return units * Align
}

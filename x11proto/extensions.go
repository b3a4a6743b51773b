package x11proto

// ExtensionInfo records the three base values a QueryExtension reply
// carries for an extension that reported present=true: the range of
// major opcodes, event codes, and error codes it owns from that point on
// (spec §9's open question on extension ranges — resolved here by giving
// each extension an explicit length via the registry rather than an
// implicit "until the next one").
type ExtensionInfo struct {
	Name        string
	MajorOpcode uint8
	FirstEvent  uint8
	FirstError  uint8
	// EventCount and ErrorCount bound the contiguous range this
	// extension owns. Zero means "unknown" (opaque dispatch for that
	// family); ActivateExtension sets these from knownExtensionRanges.
	EventCount uint8
	ErrorCount uint8
}

// knownExtensionRanges gives the {event,error} range width for extensions
// x11proto is compiled to recognize beyond BIG-REQUESTS (which carries
// neither events nor errors). Extensions absent from this table are still
// registered (so their major-opcode requests dispatch to the opaque
// extension-request path) but their event/error ranges are left at zero,
// meaning events/errors in the 128+ code space fall back to opaque
// logging — matching spec §1's "does not parse ... extensions it has not
// been compiled to recognize".
var knownExtensionRanges = map[string]struct{ events, errors uint8 }{
	"BIG-REQUESTS": {0, 0},
}

// ActivateExtension registers ext against the connection, keyed by name.
// Called from QueryExtension's reply parser once present=true, for
// BIG-REQUESTS too; extended request lengths are switched on separately,
// by EnableBigRequests from BigReqEnable's reply (spec §4.6).
func (c *Connection) ActivateExtension(ext ExtensionInfo) {
	if r, ok := knownExtensionRanges[ext.Name]; ok {
		ext.EventCount = r.events
		ext.ErrorCount = r.errors
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.extensions[ext.Name] = ext
}

// ExtensionForOpcode returns the activated extension owning major opcode
// op, if any. Core opcodes (1..127) never match.
func (c *Connection) ExtensionForOpcode(op uint8) (ExtensionInfo, bool) {
	if op < 128 {
		return ExtensionInfo{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.extensions {
		if e.MajorOpcode == op {
			return e, true
		}
	}
	return ExtensionInfo{}, false
}

// ExtensionForEvent returns the activated extension whose event range
// contains code (low 7 bits of the wire event code), if any.
func (c *Connection) ExtensionForEvent(code uint8) (ExtensionInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.extensions {
		if e.EventCount == 0 {
			continue
		}
		if code >= e.FirstEvent && code < e.FirstEvent+e.EventCount {
			return e, true
		}
	}
	return ExtensionInfo{}, false
}

// ExtensionForError returns the activated extension whose error range
// contains code, if any.
func (c *Connection) ExtensionForError(code uint8) (ExtensionInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.extensions {
		if e.ErrorCount == 0 {
			continue
		}
		if code >= e.FirstError && code < e.FirstError+e.ErrorCount {
			return e, true
		}
	}
	return ExtensionInfo{}, false
}

// ExtensionByName returns the activated extension registered under name.
func (c *Connection) ExtensionByName(name string) (ExtensionInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.extensions[name]
	return e, ok
}

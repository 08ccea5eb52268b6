package display

// Write records a single WriteAt call.
type Write struct {
	Row  int
	Col  int
	Text string
}

// FakeDisplay records every write and clear for test assertions.
type FakeDisplay struct {
	// Writes contains all WriteAt calls in order.
	Writes []Write

	// Clears counts Clear calls.
	Clears int

	// Closed tracks if Close was called.
	Closed bool

	// WriteError, if set, will be returned by WriteAt.
	WriteError error
}

// NewFakeDisplay creates a FakeDisplay for testing.
func NewFakeDisplay() *FakeDisplay {
	return &FakeDisplay{}
}

// WriteAt records the write.
func (f *FakeDisplay) WriteAt(row, col int, text string) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.Writes = append(f.Writes, Write{Row: row, Col: col, Text: text})
	return nil
}

// Clear records the clear.
func (f *FakeDisplay) Clear() error {
	f.Clears++
	return nil
}

// Close marks the display as closed.
func (f *FakeDisplay) Close() error {
	f.Closed = true
	return nil
}

// GlyphWrites returns the writes aimed at the trend indicator cell.
func (f *FakeDisplay) GlyphWrites() []Write {
	var out []Write
	for _, w := range f.Writes {
		if w.Row == GlyphRow && w.Col == GlyphCol {
			out = append(out, w)
		}
	}
	return out
}

// Reset clears recorded calls.
func (f *FakeDisplay) Reset() {
	f.Writes = nil
	f.Clears = 0
	f.Closed = false
	f.WriteError = nil
}

package led

// FakeDriver records requested levels for test assertions.
type FakeDriver struct {
	// Levels contains every SetLevel value in order.
	Levels []int

	// SetError, if set, will be returned by SetLevel.
	SetError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeDriver creates a FakeDriver for testing.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{}
}

// SetLevel records the level.
func (f *FakeDriver) SetLevel(level int) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.Levels = append(f.Levels, level)
	return nil
}

// Close marks the driver as closed.
func (f *FakeDriver) Close() error {
	f.Closed = true
	return nil
}

// Last returns the most recent level, or -1 if none was set.
func (f *FakeDriver) Last() int {
	if len(f.Levels) == 0 {
		return -1
	}
	return f.Levels[len(f.Levels)-1]
}

// Reset clears recorded state.
func (f *FakeDriver) Reset() {
	f.Levels = nil
	f.SetError = nil
	f.Closed = false
}

package typecatch

// maxMessages bounds the feed; older lines scroll off.
const maxMessages = 6

// Feed holds the transient message column and the single special banner.
type Feed struct {
	lines   []string
	special string
}

// Add appends a message line.
func (f *Feed) Add(text string) {
	f.lines = append(f.lines, text)
	if len(f.lines) > maxMessages {
		f.lines = f.lines[len(f.lines)-maxMessages:]
	}
}

// Clear drops every message line.
func (f *Feed) Clear() {
	f.lines = f.lines[:0]
}

// Lines returns a copy of the current messages, oldest first.
func (f *Feed) Lines() []string {
	return append([]string(nil), f.lines...)
}

// SetSpecial replaces the banner.
func (f *Feed) SetSpecial(text string) {
	f.special = text
}

// Special returns the banner text, empty when none.
func (f *Feed) Special() string {
	return f.special
}

package scanner

// cursor is a byte position in the text being scanned.
type cursor struct {
	src string
	off int
}

// eof reports whether the cursor has reached the end of the text.
func (c *cursor) eof() bool {
	return c.off >= len(c.src)
}

// peek reads the current byte without consuming it, or 0 at EOF.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// peekAt reads the byte n positions ahead, or 0 past EOF.
func (c *cursor) peekAt(n int) byte {
	if c.off+n >= len(c.src) {
		return 0
	}
	return c.src[c.off+n]
}

// bump consumes and returns the current byte, or 0 at EOF.
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// eat consumes the next byte if it matches b.
func (c *cursor) eat(b byte) bool {
	if !c.eof() && c.src[c.off] == b {
		c.off++
		return true
	}
	return false
}

// lineRemainder returns the text from the cursor up to, but not including,
// the next newline (or EOF). Nothing is consumed.
func (c *cursor) lineRemainder() string {
	end := c.off
	for end < len(c.src) && c.src[end] != '\n' {
		end++
	}
	return c.src[c.off:end]
}

// skip advances the cursor by n bytes.
func (c *cursor) skip(n int) {
	c.off += n
	if c.off > len(c.src) {
		c.off = len(c.src)
	}
}

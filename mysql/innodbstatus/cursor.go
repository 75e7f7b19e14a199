// SPDX-License-Identifier: GPL-3.0-or-later

package innodbstatus

import (
	"regexp"
	"strings"
)

// cursor is a position over one status report. It only ever moves forward:
// tryMatch advances past a successful anchored match and skipLine advances
// past the next newline, so a parse pass is single and linear regardless of
// the report size.
type cursor struct {
	text string
	pos  int
}

// tryMatch matches re exactly at the current position. On success the cursor
// advances past the matched text and the submatches are returned (full match
// at index 0). On failure the cursor is unchanged and nil is returned.
// Patterns must be anchored with '^'.
func (c *cursor) tryMatch(re *regexp.Regexp) []string {
	m := re.FindStringSubmatch(c.text[c.pos:])
	if m == nil {
		return nil
	}
	c.pos += len(m[0])
	return m
}

// peek reports whether re matches at the current position without consuming
// anything.
func (c *cursor) peek(re *regexp.Regexp) bool {
	return re.MatchString(c.text[c.pos:])
}

// skipLine advances past the next newline, or to the end of input for an
// unterminated last line. It reports false when the input is already
// exhausted.
func (c *cursor) skipLine() bool {
	if c.exhausted() {
		return false
	}
	if i := strings.IndexByte(c.text[c.pos:], '\n'); i >= 0 {
		c.pos += i + 1
	} else {
		c.pos = len(c.text)
	}
	return true
}

func (c *cursor) exhausted() bool {
	return c.pos >= len(c.text)
}

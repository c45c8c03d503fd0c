// Package unicode models codepoints the way the site presents them:
// U+ notation, HTML entities, block membership, and the style bucket class
// the character grid derives from a codepoint's 1024-wide range.
package unicode

import (
	"fmt"
	"strconv"
	"strings"
)

// Codepoint identifies a single Unicode scalar value.
type Codepoint rune

// MaxCodepoint is the highest valid Unicode scalar value.
const MaxCodepoint Codepoint = 0x10FFFF

// Format renders the canonical U+ notation, zero-padded to four digits.
func (c Codepoint) Format() string {
	return fmt.Sprintf("U+%04X", rune(c))
}

// Hex renders the bare uppercase hex form used in detail page URLs.
func (c Codepoint) Hex() string {
	return fmt.Sprintf("%04X", rune(c))
}

// HTMLEntity renders the decimal character reference for copy blocks.
func (c Codepoint) HTMLEntity() string {
	return fmt.Sprintf("&#%d;", rune(c))
}

// String returns the character itself.
func (c Codepoint) String() string {
	return string(rune(c))
}

// Valid reports whether the codepoint is a Unicode scalar value outside the
// surrogate range.
func (c Codepoint) Valid() bool {
	if c < 0 || c > MaxCodepoint {
		return false
	}
	return c < 0xD800 || c > 0xDFFF
}

// StyleClass returns the CSS bucket class for the character grid. Buckets are
// 1024 codepoints wide, so U+0417 maps to "u0400" and U+1D70F to "u1d400".
func (c Codepoint) StyleClass() string {
	bucket := rune(c) &^ 0x3FF
	return fmt.Sprintf("u%04x", bucket)
}

// Parse accepts the notations the search box understands: "U+1F600",
// "u+1f600", "0x1F600", and bare hex like "1F600".
func Parse(value string) (Codepoint, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	upper := strings.ToUpper(value)
	switch {
	case strings.HasPrefix(upper, "U+"):
		upper = upper[2:]
	case strings.HasPrefix(upper, "0X"):
		upper = upper[2:]
	}
	if upper == "" || len(upper) > 6 {
		return 0, false
	}

	parsed, err := strconv.ParseUint(upper, 16, 32)
	if err != nil {
		return 0, false
	}
	cp := Codepoint(parsed)
	if !cp.Valid() {
		return 0, false
	}
	return cp, true
}

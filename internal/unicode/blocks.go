package unicode

import "strings"

// Block is a named range of codepoints from the Unicode standard.
type Block struct {
	Name string
	Slug string
	Lo   Codepoint
	Hi   Codepoint
}

// Contains reports whether the codepoint falls inside the block.
func (b Block) Contains(c Codepoint) bool {
	return c >= b.Lo && c <= b.Hi
}

// Blocks lists the ranges the dataset covers, ordered by starting codepoint.
// This is the subset of the standard the site seeds and navigates; it is not
// the full block registry.
var Blocks = []Block{
	{Name: "Basic Latin", Slug: "basic-latin", Lo: 0x0000, Hi: 0x007F},
	{Name: "Latin-1 Supplement", Slug: "latin-1-supplement", Lo: 0x0080, Hi: 0x00FF},
	{Name: "Latin Extended-A", Slug: "latin-extended-a", Lo: 0x0100, Hi: 0x017F},
	{Name: "Greek and Coptic", Slug: "greek-coptic", Lo: 0x0370, Hi: 0x03FF},
	{Name: "Cyrillic", Slug: "cyrillic", Lo: 0x0400, Hi: 0x04FF},
	{Name: "Phonetic Extensions", Slug: "phonetic-extensions", Lo: 0x1D00, Hi: 0x1D7F},
	{Name: "General Punctuation", Slug: "general-punctuation", Lo: 0x2000, Hi: 0x206F},
	{Name: "Superscripts and Subscripts", Slug: "superscripts-subscripts", Lo: 0x2070, Hi: 0x209F},
	{Name: "Currency Symbols", Slug: "currency-symbols", Lo: 0x20A0, Hi: 0x20CF},
	{Name: "Letterlike Symbols", Slug: "letterlike-symbols", Lo: 0x2100, Hi: 0x214F},
	{Name: "Number Forms", Slug: "number-forms", Lo: 0x2150, Hi: 0x218F},
	{Name: "Arrows", Slug: "arrows", Lo: 0x2190, Hi: 0x21FF},
	{Name: "Mathematical Operators", Slug: "mathematical-operators", Lo: 0x2200, Hi: 0x22FF},
	{Name: "Enclosed Alphanumerics", Slug: "enclosed-alphanumerics", Lo: 0x2460, Hi: 0x24FF},
	{Name: "Geometric Shapes", Slug: "geometric-shapes", Lo: 0x25A0, Hi: 0x25FF},
	{Name: "Miscellaneous Symbols", Slug: "miscellaneous-symbols", Lo: 0x2600, Hi: 0x26FF},
	{Name: "Dingbats", Slug: "dingbats", Lo: 0x2700, Hi: 0x27BF},
	{Name: "Miscellaneous Symbols and Arrows", Slug: "miscellaneous-symbols-and-arrows", Lo: 0x2B00, Hi: 0x2BFF},
	{Name: "Counting Rod Numerals", Slug: "counting-rod-numerals", Lo: 0x1D360, Hi: 0x1D37F},
	{Name: "Mathematical Alphanumeric Symbols", Slug: "mathematical-alphanumeric-symbols", Lo: 0x1D400, Hi: 0x1D7FF},
	{Name: "Miscellaneous Symbols and Pictographs", Slug: "miscellaneous-symbols-and-pictographs", Lo: 0x1F300, Hi: 0x1F5FF},
	{Name: "Emoticons", Slug: "emoticons", Lo: 0x1F600, Hi: 0x1F64F},
	{Name: "Transport and Map Symbols", Slug: "transport-and-map-symbols", Lo: 0x1F680, Hi: 0x1F6FF},
	{Name: "Supplemental Symbols and Pictographs", Slug: "supplemental-symbols-and-pictographs", Lo: 0x1F900, Hi: 0x1F9FF},
	{Name: "Symbols and Pictographs Extended-A", Slug: "symbols-and-pictographs-extended-a", Lo: 0x1FA70, Hi: 0x1FAFF},
}

// BlockOf returns the covering block for a codepoint, when the dataset has one.
func BlockOf(c Codepoint) (Block, bool) {
	for _, b := range Blocks {
		if b.Contains(c) {
			return b, true
		}
	}
	return Block{}, false
}

// BlockBySlug resolves a block page slug.
func BlockBySlug(slug string) (Block, bool) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	for _, b := range Blocks {
		if b.Slug == slug {
			return b, true
		}
	}
	return Block{}, false
}

// emojiRanges covers the codepoints the site renders as CDN images
// rather than native text.
var emojiRanges = []struct{ lo, hi Codepoint }{
	{0x1F300, 0x1F5FF},
	{0x1F600, 0x1F64F},
	{0x1F680, 0x1F6FF},
	{0x1F900, 0x1F9FF},
	{0x1FA70, 0x1FAFF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
}

// IsEmoji reports whether the codepoint is presented as an emoji image.
func IsEmoji(c Codepoint) bool {
	for _, r := range emojiRanges {
		if c >= r.lo && c <= r.hi {
			return true
		}
	}
	return false
}

// Package templates renders the site's HTML pages from embedded templates.
package templates

import (
	"html/template"

	"golang.org/x/text/message"
)

// Page holds chrome data shared by every rendered page.
type Page struct {
	// T formats localized strings for the resolved language.
	T *message.Printer
	// Lang is the URL path code of the resolved language ("en", "jp").
	Lang string
	// Title is the full document title.
	Title string
	// Description fills the meta description tag.
	Description string
	// SearchQuery refills the header search box.
	SearchQuery string
	// DaySymbolsJSON is the serialized day-symbol window injected into
	// the page for the symbol-of-the-day widget.
	DaySymbolsJSON template.JS
	// Languages lists the footer language switcher entries.
	Languages []LanguageLink
	// AppName and Tagline brand the header.
	AppName string
	Tagline string
}

// LanguageLink is one footer language switcher entry.
type LanguageLink struct {
	Code string
	Name string
	URL  string
}

// SymbolCard is a symbol rendered as a grid tile.
type SymbolCard struct {
	// Glyph is the character itself; empty when Image is set.
	Glyph string
	// Image is the CDN path for emoji rendered as images.
	Image string
	Name  string
	URL   string
	// StyleClass is the CSS bucket class derived from the codepoint.
	StyleClass string
}

// HomeData feeds the homepage template.
type HomeData struct {
	Page           Page
	TopSymbols     []SymbolCard
	Collections    []CollectionCard
	Posts          []PostCard
	PopularQueries []QueryLink
}

// CollectionCard is a collection rendered as a carousel or grid tile.
type CollectionCard struct {
	Title string
	URL   string
	Glyph string
	Image string
}

// PostCard is a blog post rendered as a homepage card.
type PostCard struct {
	Title   string
	Summary string
	URL     string
	Likes   int
	Date    string
	Tags    []string
}

// QueryLink is one popular-search suggestion.
type QueryLink struct {
	Label string
	URL   string
}

// SymbolData feeds the symbol detail template.
type SymbolData struct {
	Page       Page
	Glyph      string
	Image      string
	Name       string
	Codepoint  string
	HTMLEntity string
	StyleClass string
	BlockName  string
	BlockURL   string
	// Related lists other symbols from the same block.
	Related []SymbolCard
}

// SearchData feeds the search results template.
type SearchData struct {
	Page    Page
	Query   string
	Total   int
	Results []SymbolCard
	PrevURL string
	NextURL string
	Popular []QueryLink
}

// CollectionsData feeds the collections index template.
type CollectionsData struct {
	Page        Page
	Collections []CollectionCard
}

// CollectionData feeds the single collection template.
type CollectionData struct {
	Page    Page
	Title   string
	Symbols []SymbolCard
}

// BlockRow is one row in the Unicode blocks index.
type BlockRow struct {
	Name  string
	Range string
	URL   string
}

// BlocksData feeds the blocks index template.
type BlocksData struct {
	Page   Page
	Blocks []BlockRow
}

// BlockData feeds the single block template.
type BlockData struct {
	Page    Page
	Name    string
	Range   string
	Symbols []SymbolCard
	PrevURL string
	NextURL string
}

// BlogData feeds the blog index template.
type BlogData struct {
	Page  Page
	Posts []PostCard
}

// ErrorData feeds the error template.
type ErrorData struct {
	Page    Page
	Heading string
	Body    string
	HomeURL string
}

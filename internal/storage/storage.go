package storage

import (
	"context"
	"errors"
	"time"

	"github.com/symbl-cc/symbl/internal/unicode"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Symbol is one character record in the dataset.
type Symbol struct {
	Codepoint unicode.Codepoint
	// Name is the official Unicode character name.
	Name string
	// Slug is the URL slug for emoji detail pages ("grinning-face");
	// empty for characters addressed by bare codepoint.
	Slug string
	// Block is the slug of the covering Unicode block.
	Block string
	// Emoji marks glyphs delivered as CDN images instead of native text.
	Emoji bool
	// Image is the CDN path of the rendered glyph; empty for text glyphs.
	Image string
	// TopRank orders the homepage top-symbols list; zero means unlisted.
	TopRank int
}

// PathSegment returns the detail page path segment under the language
// prefix: "1F600-grinning-face-emoji" for slugged emoji, "00B9" otherwise.
func (s Symbol) PathSegment() string {
	if s.Emoji && s.Slug != "" {
		return s.Codepoint.Hex() + "-" + s.Slug + "-emoji"
	}
	return s.Codepoint.Hex()
}

// Collection is a curated set of symbols ("Arrows", "Heart emojis").
type Collection struct {
	Slug  string
	Title string
	// Glyph previews the collection with a native character; Image is the
	// CDN alternative for collections previewed with an emoji image.
	Glyph string
	Image string
	// CarouselRank orders the homepage carousel; zero means not featured.
	CarouselRank int
}

// DaySymbol pairs a calendar day with its featured symbol.
type DaySymbol struct {
	// Day is the calendar date in YYYY-MM-DD form.
	Day    string
	Symbol Symbol
}

// Post is a blog entry surfaced as a card on the homepage.
type Post struct {
	Slug        string
	Title       string
	Summary     string
	Likes       int
	PublishedAt time.Time
	Tags        []string
}

// Store is the read surface the web handlers depend on.
type Store interface {
	SymbolByCodepoint(ctx context.Context, cp unicode.Codepoint) (Symbol, error)
	SymbolBySlug(ctx context.Context, slug string) (Symbol, error)
	TopSymbols(ctx context.Context, limit int) ([]Symbol, error)
	SymbolsInBlock(ctx context.Context, block string, limit, offset int) ([]Symbol, error)
	// SearchSymbols matches names case-insensitively, ranking prefix matches
	// before substring matches, and returns the page plus the total count.
	SearchSymbols(ctx context.Context, query string, limit, offset int) ([]Symbol, int, error)
	CountSymbols(ctx context.Context) (int, error)
	// SymbolAt returns the record at a stable offset in codepoint order,
	// which backs uniform random selection.
	SymbolAt(ctx context.Context, offset int) (Symbol, error)

	CarouselCollections(ctx context.Context, limit int) ([]Collection, error)
	Collections(ctx context.Context) ([]Collection, error)
	CollectionBySlug(ctx context.Context, slug string) (Collection, error)
	CollectionSymbols(ctx context.Context, slug string) ([]Symbol, error)

	// DaySymbolsBetween returns scheduled day symbols in [from, to],
	// ordered ascending by day. Unscheduled days are absent.
	DaySymbolsBetween(ctx context.Context, from, to string) ([]DaySymbol, error)

	PopularQueries(ctx context.Context, limit int) ([]string, error)
	RecentPosts(ctx context.Context, limit int) ([]Post, error)

	Close() error
}

// Package seed populates a dataset store with Unicode symbol records
// and the site's editorial fixtures.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/runenames"

	"github.com/symbl-cc/symbl/internal/storage"
	"github.com/symbl-cc/symbl/internal/storage/sqlite"
	unicodedata "github.com/symbl-cc/symbl/internal/unicode"
)

//go:embed fixtures/*.json
var fixtureFS embed.FS

// blockWorkers bounds concurrent block seeding. SQLite serializes
// writes anyway, so a small pool just keeps name lookups busy.
const blockWorkers = 4

// emojiImagePath is the CDN path pattern for emoji glyph images.
const emojiImagePath = "/images/emoji/%s.png"

type collectionFixture struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Glyph        string   `json:"glyph"`
	Image        string   `json:"image"`
	CarouselRank int      `json:"carousel_rank"`
	Members      []string `json:"members"`
}

type postFixture struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Likes       int      `json:"likes"`
	PublishedAt string   `json:"published_at"`
	Tags        []string `json:"tags"`
}

type editorialFixture struct {
	TopSymbols       []string      `json:"top_symbols"`
	PopularQueries   []string      `json:"popular_queries"`
	DayCalendarStart string        `json:"day_calendar_start"`
	DayCalendar      []string      `json:"day_calendar"`
	Posts            []postFixture `json:"posts"`
}

// Run seeds the full dataset: every codepoint in the curated blocks,
// then collections, top symbols, the day calendar, popular queries and
// blog posts from the embedded fixtures.
func Run(ctx context.Context, store *sqlite.Store, days int, logger *zap.Logger) error {
	if store == nil {
		return fmt.Errorf("store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	if err := seedBlocks(ctx, store, logger); err != nil {
		return err
	}

	editorial, err := loadEditorial()
	if err != nil {
		return err
	}
	if err := seedTopSymbols(ctx, store, editorial.TopSymbols); err != nil {
		return err
	}
	if err := seedCollections(ctx, store); err != nil {
		return err
	}
	if err := seedDayCalendar(ctx, store, editorial, days); err != nil {
		return err
	}
	if err := store.SetPopularQueries(ctx, editorial.PopularQueries); err != nil {
		return fmt.Errorf("seed popular queries: %w", err)
	}
	if err := seedPosts(ctx, store, editorial.Posts); err != nil {
		return err
	}

	count, err := store.CountSymbols(ctx)
	if err != nil {
		return fmt.Errorf("count symbols: %w", err)
	}
	logger.Info("seed complete",
		zap.Int("symbols", count),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// seedBlocks inserts every named codepoint from the curated blocks.
func seedBlocks(ctx context.Context, store *sqlite.Store, logger *zap.Logger) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(blockWorkers)

	for _, block := range unicodedata.Blocks {
		group.Go(func() error {
			inserted := 0
			for cp := block.Lo; cp <= block.Hi; cp++ {
				if !cp.Valid() {
					continue
				}
				name := runenames.Name(rune(cp))
				if name == "" || strings.HasPrefix(name, "<") {
					continue
				}
				symbol := storage.Symbol{
					Codepoint: cp,
					Name:      name,
					Block:     block.Slug,
				}
				if unicodedata.IsEmoji(cp) {
					symbol.Emoji = true
					symbol.Slug = slugify(name)
					symbol.Image = fmt.Sprintf(emojiImagePath, strings.ToLower(cp.Hex()))
				}
				if err := store.PutSymbol(ctx, symbol); err != nil {
					return fmt.Errorf("seed block %s: %w", block.Slug, err)
				}
				inserted++
			}
			logger.Debug("seeded block",
				zap.String("block", block.Slug),
				zap.Int("symbols", inserted),
			)
			return nil
		})
	}
	return group.Wait()
}

func seedTopSymbols(ctx context.Context, store *sqlite.Store, hexes []string) error {
	for rank, hex := range hexes {
		cp, ok := unicodedata.Parse(hex)
		if !ok {
			return fmt.Errorf("top symbol %q: invalid codepoint", hex)
		}
		symbol, err := store.SymbolByCodepoint(ctx, cp)
		if err != nil {
			return fmt.Errorf("top symbol %s: %w", cp.Format(), err)
		}
		symbol.TopRank = rank + 1
		if err := store.PutSymbol(ctx, symbol); err != nil {
			return fmt.Errorf("rank symbol %s: %w", cp.Format(), err)
		}
	}
	return nil
}

func seedCollections(ctx context.Context, store *sqlite.Store) error {
	raw, err := fixtureFS.ReadFile("fixtures/collections.json")
	if err != nil {
		return fmt.Errorf("read collections fixture: %w", err)
	}
	var fixtures []collectionFixture
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return fmt.Errorf("parse collections fixture: %w", err)
	}

	for _, fixture := range fixtures {
		collection := storage.Collection{
			Slug:         fixture.Slug,
			Title:        fixture.Title,
			Glyph:        fixture.Glyph,
			Image:        fixture.Image,
			CarouselRank: fixture.CarouselRank,
		}
		if err := store.PutCollection(ctx, collection); err != nil {
			return fmt.Errorf("seed collection %q: %w", fixture.Slug, err)
		}
		for position, hex := range fixture.Members {
			cp, ok := unicodedata.Parse(hex)
			if !ok {
				return fmt.Errorf("collection %q member %q: invalid codepoint", fixture.Slug, hex)
			}
			if err := store.PutCollectionSymbol(ctx, fixture.Slug, cp, position+1); err != nil {
				return fmt.Errorf("seed collection %q member %s: %w", fixture.Slug, cp.Format(), err)
			}
		}
	}
	return nil
}

// seedDayCalendar schedules one symbol per day for the given span,
// cycling through the fixture's calendar list.
func seedDayCalendar(ctx context.Context, store *sqlite.Store, editorial editorialFixture, days int) error {
	if len(editorial.DayCalendar) == 0 {
		return fmt.Errorf("day calendar fixture is empty")
	}
	start, err := time.Parse("2006-01-02", editorial.DayCalendarStart)
	if err != nil {
		return fmt.Errorf("parse calendar start: %w", err)
	}
	if days <= 0 {
		days = 366
	}

	for i := 0; i < days; i++ {
		hex := editorial.DayCalendar[i%len(editorial.DayCalendar)]
		cp, ok := unicodedata.Parse(hex)
		if !ok {
			return fmt.Errorf("day calendar entry %q: invalid codepoint", hex)
		}
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		if err := store.PutDaySymbol(ctx, day, cp); err != nil {
			return fmt.Errorf("seed day %s: %w", day, err)
		}
	}
	return nil
}

func seedPosts(ctx context.Context, store *sqlite.Store, fixtures []postFixture) error {
	for _, fixture := range fixtures {
		published, err := time.Parse("2006-01-02", fixture.PublishedAt)
		if err != nil {
			return fmt.Errorf("post %q: parse date: %w", fixture.Slug, err)
		}
		post := storage.Post{
			Slug:        fixture.Slug,
			Title:       fixture.Title,
			Summary:     fixture.Summary,
			Likes:       fixture.Likes,
			PublishedAt: published,
			Tags:        fixture.Tags,
		}
		if err := store.PutPost(ctx, post); err != nil {
			return fmt.Errorf("seed post %q: %w", fixture.Slug, err)
		}
	}
	return nil
}

func loadEditorial() (editorialFixture, error) {
	raw, err := fixtureFS.ReadFile("fixtures/editorial.json")
	if err != nil {
		return editorialFixture{}, fmt.Errorf("read editorial fixture: %w", err)
	}
	var fixture editorialFixture
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return editorialFixture{}, fmt.Errorf("parse editorial fixture: %w", err)
	}
	return fixture, nil
}

// slugify lowers a character name into a URL slug:
// "GRINNING FACE" becomes "grinning-face".
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/symbl-cc/symbl/internal/storage"
	"github.com/symbl-cc/symbl/internal/unicode"
)

const collectionColumns = "slug, title, glyph, image, carousel_rank"

// CarouselCollections returns the featured collections ordered by rank.
func (s *Store) CarouselCollections(ctx context.Context, limit int) ([]storage.Collection, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+collectionColumns+` FROM collections WHERE carousel_rank > 0 ORDER BY carousel_rank LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list carousel collections: %w", err)
	}
	return collectCollections(rows)
}

// Collections lists every collection alphabetically by title.
func (s *Store) Collections(ctx context.Context) ([]storage.Collection, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+collectionColumns+` FROM collections ORDER BY title`,
	)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collectCollections(rows)
}

// CollectionBySlug loads one collection.
func (s *Store) CollectionBySlug(ctx context.Context, slug string) (storage.Collection, error) {
	if err := s.ready(); err != nil {
		return storage.Collection{}, err
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return storage.Collection{}, fmt.Errorf("slug is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+collectionColumns+` FROM collections WHERE slug = ?`,
		slug,
	)
	collection, err := scanCollection(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.Collection{}, storage.ErrNotFound
		}
		return storage.Collection{}, fmt.Errorf("get collection %q: %w", slug, err)
	}
	return collection, nil
}

// CollectionSymbols lists a collection's members in curated order.
func (s *Store) CollectionSymbols(ctx context.Context, slug string) ([]storage.Symbol, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT s.codepoint, s.name, s.slug, s.block, s.emoji, s.image, s.top_rank
		 FROM collection_symbols cs
		 JOIN symbols s ON s.codepoint = cs.codepoint
		 WHERE cs.collection_slug = ?
		 ORDER BY cs.position`,
		slug,
	)
	if err != nil {
		return nil, fmt.Errorf("list collection symbols: %w", err)
	}
	return collectSymbols(rows)
}

// PutCollection upserts a collection record.
func (s *Store) PutCollection(ctx context.Context, collection storage.Collection) error {
	if err := s.ready(); err != nil {
		return err
	}
	collection.Slug = strings.TrimSpace(collection.Slug)
	if collection.Slug == "" {
		return fmt.Errorf("collection slug is required")
	}
	collection.Title = strings.TrimSpace(collection.Title)
	if collection.Title == "" {
		return fmt.Errorf("collection title is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO collections (slug, title, glyph, image, carousel_rank)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
		    title = excluded.title,
		    glyph = excluded.glyph,
		    image = excluded.image,
		    carousel_rank = excluded.carousel_rank`,
		collection.Slug,
		collection.Title,
		strings.TrimSpace(collection.Glyph),
		strings.TrimSpace(collection.Image),
		collection.CarouselRank,
	)
	if err != nil {
		return fmt.Errorf("put collection %q: %w", collection.Slug, err)
	}
	return nil
}

// PutCollectionSymbol places a symbol at a position within a collection.
func (s *Store) PutCollectionSymbol(ctx context.Context, slug string, cp unicode.Codepoint, position int) error {
	if err := s.ready(); err != nil {
		return err
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return fmt.Errorf("collection slug is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO collection_symbols (collection_slug, codepoint, position)
		 VALUES (?, ?, ?)
		 ON CONFLICT(collection_slug, codepoint) DO UPDATE SET
		    position = excluded.position`,
		slug,
		int64(cp),
		position,
	)
	if err != nil {
		return fmt.Errorf("put collection symbol %s in %q: %w", cp.Format(), slug, err)
	}
	return nil
}

func scanCollection(row rowScanner) (storage.Collection, error) {
	var collection storage.Collection
	if err := row.Scan(
		&collection.Slug,
		&collection.Title,
		&collection.Glyph,
		&collection.Image,
		&collection.CarouselRank,
	); err != nil {
		return storage.Collection{}, err
	}
	return collection, nil
}

func collectCollections(rows *sql.Rows) ([]storage.Collection, error) {
	defer func() {
		_ = rows.Close()
	}()

	collections := make([]storage.Collection, 0)
	for rows.Next() {
		collection, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		collections = append(collections, collection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collections: %w", err)
	}
	return collections, nil
}

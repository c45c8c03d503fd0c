package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/symbl-cc/symbl/internal/storage"
	"github.com/symbl-cc/symbl/internal/unicode"
)

const symbolColumns = "codepoint, name, slug, block, emoji, image, top_rank"

// SymbolByCodepoint loads one symbol record by codepoint.
func (s *Store) SymbolByCodepoint(ctx context.Context, cp unicode.Codepoint) (storage.Symbol, error) {
	if err := s.ready(); err != nil {
		return storage.Symbol{}, err
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+symbolColumns+` FROM symbols WHERE codepoint = ?`,
		int64(cp),
	)
	symbol, err := scanSymbol(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.Symbol{}, storage.ErrNotFound
		}
		return storage.Symbol{}, fmt.Errorf("get symbol %s: %w", cp.Format(), err)
	}
	return symbol, nil
}

// SymbolBySlug loads one emoji record by its URL slug.
func (s *Store) SymbolBySlug(ctx context.Context, slug string) (storage.Symbol, error) {
	if err := s.ready(); err != nil {
		return storage.Symbol{}, err
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return storage.Symbol{}, fmt.Errorf("slug is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+symbolColumns+` FROM symbols WHERE slug = ?`,
		slug,
	)
	symbol, err := scanSymbol(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.Symbol{}, storage.ErrNotFound
		}
		return storage.Symbol{}, fmt.Errorf("get symbol by slug %q: %w", slug, err)
	}
	return symbol, nil
}

// TopSymbols returns the homepage top list ordered by rank.
func (s *Store) TopSymbols(ctx context.Context, limit int) ([]storage.Symbol, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+symbolColumns+` FROM symbols WHERE top_rank > 0 ORDER BY top_rank LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list top symbols: %w", err)
	}
	return collectSymbols(rows)
}

// SymbolsInBlock pages through a block's symbols in codepoint order.
func (s *Store) SymbolsInBlock(ctx context.Context, block string, limit, offset int) ([]storage.Symbol, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	block = strings.TrimSpace(block)
	if block == "" {
		return nil, fmt.Errorf("block is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+symbolColumns+` FROM symbols WHERE block = ? ORDER BY codepoint LIMIT ? OFFSET ?`,
		block, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list block symbols: %w", err)
	}
	return collectSymbols(rows)
}

// SearchSymbols matches names case-insensitively. Prefix matches rank above
// substring matches; ties break on codepoint so paging is stable.
func (s *Store) SearchSymbols(ctx context.Context, query string, limit, offset int) ([]storage.Symbol, int, error) {
	if err := s.ready(); err != nil {
		return nil, 0, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, fmt.Errorf("query is required")
	}
	if limit <= 0 {
		return nil, 0, fmt.Errorf("limit must be positive")
	}
	if offset < 0 {
		offset = 0
	}

	needle := escapeLike(strings.ToLower(query))
	substring := "%" + needle + "%"
	prefix := needle + "%"

	var total int
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM symbols WHERE lower(name) LIKE ? ESCAPE '\'`,
		substring,
	)
	if err := row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count search results: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+symbolColumns+`
		 FROM symbols
		 WHERE lower(name) LIKE ? ESCAPE '\'
		 ORDER BY CASE WHEN lower(name) LIKE ? ESCAPE '\' THEN 0 ELSE 1 END, codepoint
		 LIMIT ? OFFSET ?`,
		substring, prefix, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("search symbols: %w", err)
	}
	symbols, err := collectSymbols(rows)
	if err != nil {
		return nil, 0, err
	}
	return symbols, total, nil
}

// CountSymbols reports the dataset size.
func (s *Store) CountSymbols(ctx context.Context) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var count int
	row := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM symbols`)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count symbols: %w", err)
	}
	return count, nil
}

// SymbolAt returns the record at a stable offset in codepoint order.
func (s *Store) SymbolAt(ctx context.Context, offset int) (storage.Symbol, error) {
	if err := s.ready(); err != nil {
		return storage.Symbol{}, err
	}
	if offset < 0 {
		return storage.Symbol{}, fmt.Errorf("offset must be non-negative")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+symbolColumns+` FROM symbols ORDER BY codepoint LIMIT 1 OFFSET ?`,
		offset,
	)
	symbol, err := scanSymbol(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.Symbol{}, storage.ErrNotFound
		}
		return storage.Symbol{}, fmt.Errorf("get symbol at offset %d: %w", offset, err)
	}
	return symbol, nil
}

// PutSymbol upserts one symbol record. The seed tool uses it; the web
// handlers never write.
func (s *Store) PutSymbol(ctx context.Context, symbol storage.Symbol) error {
	if err := s.ready(); err != nil {
		return err
	}
	if !symbol.Codepoint.Valid() {
		return fmt.Errorf("codepoint %d is not a valid scalar value", symbol.Codepoint)
	}
	symbol.Name = strings.TrimSpace(symbol.Name)
	if symbol.Name == "" {
		return fmt.Errorf("symbol name is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO symbols (codepoint, name, slug, block, emoji, image, top_rank)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(codepoint) DO UPDATE SET
		    name = excluded.name,
		    slug = excluded.slug,
		    block = excluded.block,
		    emoji = excluded.emoji,
		    image = excluded.image,
		    top_rank = excluded.top_rank`,
		int64(symbol.Codepoint),
		symbol.Name,
		strings.TrimSpace(symbol.Slug),
		strings.TrimSpace(symbol.Block),
		boolToInt(symbol.Emoji),
		strings.TrimSpace(symbol.Image),
		symbol.TopRank,
	)
	if err != nil {
		return fmt.Errorf("put symbol %s: %w", symbol.Codepoint.Format(), err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSymbol(row rowScanner) (storage.Symbol, error) {
	var symbol storage.Symbol
	var codepoint int64
	var emoji int64
	if err := row.Scan(
		&codepoint,
		&symbol.Name,
		&symbol.Slug,
		&symbol.Block,
		&emoji,
		&symbol.Image,
		&symbol.TopRank,
	); err != nil {
		return storage.Symbol{}, err
	}
	symbol.Codepoint = unicode.Codepoint(codepoint)
	symbol.Emoji = emoji != 0
	return symbol, nil
}

func collectSymbols(rows *sql.Rows) ([]storage.Symbol, error) {
	defer func() {
		_ = rows.Close()
	}()

	symbols := make([]storage.Symbol, 0)
	for rows.Next() {
		symbol, err := scanSymbol(rows)
		if err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		symbols = append(symbols, symbol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate symbols: %w", err)
	}
	return symbols, nil
}

// escapeLike protects user input used inside LIKE patterns.
func escapeLike(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `%`, `\%`)
	value = strings.ReplaceAll(value, `_`, `\_`)
	return value
}

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}

package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/symbl-cc/symbl/internal/storage"
	"github.com/symbl-cc/symbl/internal/unicode"
)

// DaySymbolsBetween returns scheduled day symbols within [from, to] inclusive,
// ordered ascending by day. Days without a schedule entry are simply absent.
func (s *Store) DaySymbolsBetween(ctx context.Context, from, to string) ([]storage.DaySymbol, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("from and to are required")
	}
	if from > to {
		return nil, fmt.Errorf("from %q is after to %q", from, to)
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT d.day, s.codepoint, s.name, s.slug, s.block, s.emoji, s.image, s.top_rank
		 FROM day_symbols d
		 JOIN symbols s ON s.codepoint = d.codepoint
		 WHERE d.day BETWEEN ? AND ?
		 ORDER BY d.day`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list day symbols: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	days := make([]storage.DaySymbol, 0)
	for rows.Next() {
		var (
			day   storage.DaySymbol
			cp    int64
			emoji int
		)
		if err := rows.Scan(
			&day.Day,
			&cp,
			&day.Symbol.Name,
			&day.Symbol.Slug,
			&day.Symbol.Block,
			&emoji,
			&day.Symbol.Image,
			&day.Symbol.TopRank,
		); err != nil {
			return nil, fmt.Errorf("scan day symbol: %w", err)
		}
		day.Symbol.Codepoint = unicode.Codepoint(cp)
		day.Symbol.Emoji = emoji != 0
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day symbols: %w", err)
	}
	return days, nil
}

// PutDaySymbol schedules a symbol for a calendar day.
func (s *Store) PutDaySymbol(ctx context.Context, day string, cp unicode.Codepoint) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return fmt.Errorf("invalid day %q: %w", day, err)
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO day_symbols (day, codepoint) VALUES (?, ?)
		 ON CONFLICT(day) DO UPDATE SET codepoint = excluded.codepoint`,
		day, int64(cp),
	)
	if err != nil {
		return fmt.Errorf("put day symbol %s: %w", day, err)
	}
	return nil
}

// PopularQueries returns the curated search suggestions in display order.
func (s *Store) PopularQueries(ctx context.Context, limit int) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT query FROM popular_queries ORDER BY position LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list popular queries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	queries := make([]string, 0, limit)
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			return nil, fmt.Errorf("scan popular query: %w", err)
		}
		queries = append(queries, query)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate popular queries: %w", err)
	}
	return queries, nil
}

// SetPopularQueries replaces the whole suggestion list.
func (s *Store) SetPopularQueries(ctx context.Context, queries []string) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin popular queries: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM popular_queries`); err != nil {
		return fmt.Errorf("clear popular queries: %w", err)
	}
	for i, query := range queries {
		query = strings.TrimSpace(query)
		if query == "" {
			return fmt.Errorf("popular query %d is empty", i)
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO popular_queries (position, query) VALUES (?, ?)`,
			i+1, query,
		); err != nil {
			return fmt.Errorf("insert popular query %q: %w", query, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit popular queries: %w", err)
	}
	return nil
}

// RecentPosts returns the newest blog posts with their tags.
func (s *Store) RecentPosts(ctx context.Context, limit int) ([]storage.Post, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT slug, title, summary, likes, published_at FROM posts
		 ORDER BY published_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	posts := make([]storage.Post, 0, limit)
	for rows.Next() {
		var (
			post      storage.Post
			published int64
		)
		if err := rows.Scan(&post.Slug, &post.Title, &post.Summary, &post.Likes, &published); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		post.PublishedAt = time.Unix(published, 0).UTC()
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	for i := range posts {
		tags, err := s.postTags(ctx, posts[i].Slug)
		if err != nil {
			return nil, err
		}
		posts[i].Tags = tags
	}
	return posts, nil
}

func (s *Store) postTags(ctx context.Context, slug string) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT tag FROM post_tags WHERE post_slug = ? ORDER BY tag`,
		slug,
	)
	if err != nil {
		return nil, fmt.Errorf("list post tags: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	tags := make([]string, 0)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scan post tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post tags: %w", err)
	}
	return tags, nil
}

// PutPost upserts a blog post and replaces its tags.
func (s *Store) PutPost(ctx context.Context, post storage.Post) error {
	if err := s.ready(); err != nil {
		return err
	}
	post.Slug = strings.TrimSpace(post.Slug)
	if post.Slug == "" {
		return fmt.Errorf("post slug is required")
	}
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		return fmt.Errorf("post title is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put post: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO posts (slug, title, summary, likes, published_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
		    title = excluded.title,
		    summary = excluded.summary,
		    likes = excluded.likes,
		    published_at = excluded.published_at`,
		post.Slug,
		post.Title,
		strings.TrimSpace(post.Summary),
		post.Likes,
		post.PublishedAt.Unix(),
	); err != nil {
		return fmt.Errorf("put post %q: %w", post.Slug, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM post_tags WHERE post_slug = ?`, post.Slug); err != nil {
		return fmt.Errorf("clear post tags: %w", err)
	}
	for _, tag := range post.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO post_tags (post_slug, tag) VALUES (?, ?)`,
			post.Slug, tag,
		); err != nil {
			return fmt.Errorf("insert post tag %q: %w", tag, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put post: %w", err)
	}
	return nil
}

package web

import (
	"github.com/symbl-cc/symbl/internal/storage"
	"github.com/symbl-cc/symbl/internal/web/routepath"
	"github.com/symbl-cc/symbl/internal/web/templates"
)

func symbolCards(lang string, symbols []storage.Symbol) []templates.SymbolCard {
	cards := make([]templates.SymbolCard, 0, len(symbols))
	for _, symbol := range symbols {
		card := templates.SymbolCard{
			Name:       symbol.Name,
			URL:        routepath.Symbol(lang, symbol.PathSegment()),
			StyleClass: symbol.Codepoint.StyleClass(),
		}
		if symbol.Image != "" {
			card.Image = symbol.Image
		} else {
			card.Glyph = symbol.Codepoint.String()
		}
		cards = append(cards, card)
	}
	return cards
}

func collectionCards(lang string, collections []storage.Collection) []templates.CollectionCard {
	cards := make([]templates.CollectionCard, 0, len(collections))
	for _, collection := range collections {
		cards = append(cards, templates.CollectionCard{
			Title: collection.Title,
			URL:   routepath.Collection(lang, collection.Slug),
			Glyph: collection.Glyph,
			Image: collection.Image,
		})
	}
	return cards
}

func postCards(lang string, posts []storage.Post) []templates.PostCard {
	cards := make([]templates.PostCard, 0, len(posts))
	for _, post := range posts {
		cards = append(cards, templates.PostCard{
			Title:   post.Title,
			Summary: post.Summary,
			URL:     routepath.Blog(lang) + "#" + post.Slug,
			Likes:   post.Likes,
			Date:    post.PublishedAt.Format("2006-01-02"),
			Tags:    post.Tags,
		})
	}
	return cards
}

func queryLinks(lang string, queries []string) []templates.QueryLink {
	links := make([]templates.QueryLink, 0, len(queries))
	for _, query := range queries {
		links = append(links, templates.QueryLink{
			Label: query,
			URL:   routepath.Search(lang, query, 1),
		})
	}
	return links
}

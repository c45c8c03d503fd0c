package web

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/symbl-cc/symbl/internal/errors"
	"github.com/symbl-cc/symbl/internal/platform/branding"
	"github.com/symbl-cc/symbl/internal/storage"
	"github.com/symbl-cc/symbl/internal/unicode"
	"github.com/symbl-cc/symbl/internal/web/i18n"
	"github.com/symbl-cc/symbl/internal/web/routepath"
	"github.com/symbl-cc/symbl/internal/web/templates"
)

const (
	topSymbolLimit    = 36
	carouselLimit     = 12
	popularQueryLimit = 12
	recentPostLimit   = 4
	relatedLimit      = 24
	searchPageSize    = 36
	blockPageSize     = 128
)

// handleRoot redirects the bare root to the visitor's best language.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	locale := i18n.Resolve(r)
	i18n.SetCookie(w, locale)
	http.Redirect(w, r, routepath.Home(locale.Code), http.StatusFound)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "OK")
}

// handleOpenSearch serves the browser search-engine descriptor, one
// document per language ("/specs/opensearch/en.xml").
func (h *Handler) handleOpenSearch(w http.ResponseWriter, r *http.Request) {
	code, found := strings.CutSuffix(r.PathValue("file"), ".xml")
	if !found {
		http.NotFound(w, r)
		return
	}
	locale, ok := i18n.ByCode(code)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/opensearchdescription+xml")
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<OpenSearchDescription xmlns="http://a9.com/-/spec/opensearch/1.1/">
  <ShortName>%s</ShortName>
  <Description>Symbols, emojis and special characters</Description>
  <Url type="text/html" template="/%s/search/?q={searchTerms}"/>
</OpenSearchDescription>
`, branding.AppName, locale.Code)
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.resolveLocale(r)
	if !ok {
		h.renderUnknownLanguage(w, r)
		return
	}
	ctx := r.Context()
	printer := i18n.Printer(locale)

	top, err := h.store.TopSymbols(ctx, topSymbolLimit)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("load top symbols", err))
		return
	}
	carousel, err := h.store.CarouselCollections(ctx, carouselLimit)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("load carousel collections", err))
		return
	}
	queries, err := h.store.PopularQueries(ctx, popularQueryLimit)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("load popular queries", err))
		return
	}
	posts, err := h.store.RecentPosts(ctx, recentPostLimit)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("load recent posts", err))
		return
	}

	data := templates.HomeData{
		Page:           h.newPage(r, locale, printer.Sprintf("title.home", branding.AppName), ""),
		TopSymbols:     symbolCards(locale.Code, top),
		Collections:    collectionCards(locale.Code, carousel),
		Posts:          postCards(locale.Code, posts),
		PopularQueries: queryLinks(locale.Code, queries),
	}
	h.render(w, r, http.StatusOK, "home.html", data)
}

// handleSymbol serves detail pages for both addressing forms: bare
// codepoints ("/en/00B9/") and slugged emoji ("/en/1F600-grinning-face-emoji/").
// Non-canonical forms redirect permanently to the canonical segment.
func (h *Handler) handleSymbol(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.resolveLocale(r)
	if !ok {
		h.renderUnknownLanguage(w, r)
		return
	}
	segment := r.PathValue("symbol")
	if reservedSegments.Contains(strings.ToLower(segment)) {
		h.renderNotFound(w, r, locale)
		return
	}

	cp, ok := parseSymbolSegment(segment)
	if !ok {
		// Slug-only addressing ("/en/grinning-face-emoji/") resolves by
		// dataset lookup and redirects to the canonical segment.
		if slug, isEmoji := strings.CutSuffix(segment, "-emoji"); isEmoji && slug != "" {
			if symbol, err := h.store.SymbolBySlug(r.Context(), slug); err == nil {
				http.Redirect(w, r, routepath.Symbol(locale.Code, symbol.PathSegment()), http.StatusMovedPermanently)
				return
			}
		}
		h.renderFailure(w, r, locale,
			errors.New(errors.CodeInvalidCodepoint, "unparsable symbol segment"))
		return
	}

	symbol, err := h.store.SymbolByCodepoint(r.Context(), cp)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("load symbol", err))
		return
	}

	if canonical := symbol.PathSegment(); canonical != segment {
		http.Redirect(w, r, routepath.Symbol(locale.Code, canonical), http.StatusMovedPermanently)
		return
	}

	printer := i18n.Printer(locale)
	block, _ := unicode.BlockOf(symbol.Codepoint)

	related, err := h.store.SymbolsInBlock(r.Context(), symbol.Block, relatedLimit, 0)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("load related symbols", err))
		return
	}
	// Drop the symbol itself from its related grid.
	filtered := related[:0]
	for _, s := range related {
		if s.Codepoint != symbol.Codepoint {
			filtered = append(filtered, s)
		}
	}

	data := templates.SymbolData{
		Page:       h.newPage(r, locale, printer.Sprintf("title.symbol", symbol.Codepoint.String(), symbol.Name, branding.AppName), ""),
		Glyph:      symbol.Codepoint.String(),
		Image:      symbol.Image,
		Name:       symbol.Name,
		Codepoint:  symbol.Codepoint.Format(),
		HTMLEntity: symbol.Codepoint.HTMLEntity(),
		StyleClass: symbol.Codepoint.StyleClass(),
		BlockName:  block.Name,
		BlockURL:   routepath.Block(locale.Code, symbol.Block, 1),
		Related:    symbolCards(locale.Code, filtered),
	}
	h.render(w, r, http.StatusOK, "symbol.html", data)
}

// parseSymbolSegment extracts the codepoint from a detail path segment,
// either bare hex ("00B9") or the slugged emoji form ("1F600-grinning-face-emoji").
func parseSymbolSegment(segment string) (unicode.Codepoint, bool) {
	hex := segment
	if strings.HasSuffix(segment, "-emoji") {
		if dash := strings.IndexByte(segment, '-'); dash > 0 {
			hex = segment[:dash]
		}
	}
	cp, ok := unicode.Parse(hex)
	if !ok || !cp.Valid() {
		return 0, false
	}
	return cp, true
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.resolveLocale(r)
	if !ok {
		h.renderUnknownLanguage(w, r)
		return
	}
	ctx := r.Context()
	printer := i18n.Printer(locale)

	query := strings.TrimSpace(r.URL.Query().Get(routepath.SearchQueryKey))
	if query == "" {
		http.Redirect(w, r, routepath.Home(locale.Code), http.StatusFound)
		return
	}

	// Codepoint queries ("U+1F600", "1F600") jump straight to the
	// symbol when the dataset has it.
	if cp, ok := unicode.Parse(query); ok && cp.Valid() {
		if symbol, err := h.store.SymbolByCodepoint(ctx, cp); err == nil {
			http.Redirect(w, r, routepath.Symbol(locale.Code, symbol.PathSegment()), http.StatusFound)
			return
		}
	}

	page := parsePage(r.URL.Query().Get(routepath.PageQueryKey))
	offset := (page - 1) * searchPageSize

	results, total, err := h.store.SearchSymbols(ctx, query, searchPageSize, offset)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("search symbols", err))
		return
	}

	var popular []templates.QueryLink
	if total == 0 {
		queries, err := h.store.PopularQueries(ctx, popularQueryLimit)
		if err == nil {
			popular = queryLinks(locale.Code, queries)
		}
	}

	data := templates.SearchData{
		Page:    h.newPage(r, locale, printer.Sprintf("title.search", query, branding.AppName), query),
		Query:   query,
		Total:   total,
		Results: symbolCards(locale.Code, results),
		Popular: popular,
	}
	if page > 1 {
		data.PrevURL = routepath.Search(locale.Code, query, page-1)
	}
	if offset+len(results) < total {
		data.NextURL = routepath.Search(locale.Code, query, page+1)
	}
	h.render(w, r, http.StatusOK, "search.html", data)
}

func (h *Handler) handleCollections(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.resolveLocale(r)
	if !ok {
		h.renderUnknownLanguage(w, r)
		return
	}
	printer := i18n.Printer(locale)

	collections, err := h.store.Collections(r.Context())
	if err != nil {
		h.renderFailure(w, r, locale, storeError("load collections", err))
		return
	}

	data := templates.CollectionsData{
		Page:        h.newPage(r, locale, printer.Sprintf("title.collections", branding.AppName), ""),
		Collections: collectionCards(locale.Code, collections),
	}
	h.render(w, r, http.StatusOK, "collections.html", data)
}

func (h *Handler) handleCollection(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.resolveLocale(r)
	if !ok {
		h.renderUnknownLanguage(w, r)
		return
	}
	ctx := r.Context()
	slug := r.PathValue("slug")

	collection, err := h.store.CollectionBySlug(ctx, slug)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("load collection", err))
		return
	}
	symbols, err := h.store.CollectionSymbols(ctx, slug)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("load collection symbols", err))
		return
	}

	data := templates.CollectionData{
		Page:    h.newPage(r, locale, collection.Title+" | "+branding.AppName, ""),
		Title:   collection.Title,
		Symbols: symbolCards(locale.Code, symbols),
	}
	h.render(w, r, http.StatusOK, "collection.html", data)
}

func (h *Handler) handleBlocks(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.resolveLocale(r)
	if !ok {
		h.renderUnknownLanguage(w, r)
		return
	}
	printer := i18n.Printer(locale)

	rows := make([]templates.BlockRow, 0, len(unicode.Blocks))
	for _, block := range unicode.Blocks {
		rows = append(rows, templates.BlockRow{
			Name:  block.Name,
			Range: printer.Sprintf("blocks.range", int(block.Lo), int(block.Hi)),
			URL:   routepath.Block(locale.Code, block.Slug, 1),
		})
	}

	data := templates.BlocksData{
		Page:   h.newPage(r, locale, printer.Sprintf("title.blocks", branding.AppName), ""),
		Blocks: rows,
	}
	h.render(w, r, http.StatusOK, "blocks.html", data)
}

func (h *Handler) handleBlock(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.resolveLocale(r)
	if !ok {
		h.renderUnknownLanguage(w, r)
		return
	}
	printer := i18n.Printer(locale)
	slug := r.PathValue("slug")

	block, ok := unicode.BlockBySlug(slug)
	if !ok {
		h.renderNotFound(w, r, locale)
		return
	}

	page := parsePage(r.URL.Query().Get(routepath.PageQueryKey))
	offset := (page - 1) * blockPageSize

	// Fetch one row past the page so a full final page gets no Next link.
	symbols, err := h.store.SymbolsInBlock(r.Context(), block.Slug, blockPageSize+1, offset)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("load block symbols", err))
		return
	}
	if len(symbols) == 0 && page > 1 {
		h.renderNotFound(w, r, locale)
		return
	}
	hasNext := len(symbols) > blockPageSize
	if hasNext {
		symbols = symbols[:blockPageSize]
	}

	data := templates.BlockData{
		Page:    h.newPage(r, locale, block.Name+" | "+branding.AppName, ""),
		Name:    block.Name,
		Range:   printer.Sprintf("blocks.range", int(block.Lo), int(block.Hi)),
		Symbols: symbolCards(locale.Code, symbols),
	}
	if page > 1 {
		data.PrevURL = routepath.Block(locale.Code, block.Slug, page-1)
	}
	if hasNext {
		data.NextURL = routepath.Block(locale.Code, block.Slug, page+1)
	}
	h.render(w, r, http.StatusOK, "block.html", data)
}

func (h *Handler) handleBlog(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.resolveLocale(r)
	if !ok {
		h.renderUnknownLanguage(w, r)
		return
	}
	printer := i18n.Printer(locale)

	posts, err := h.store.RecentPosts(r.Context(), 50)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("load posts", err))
		return
	}

	data := templates.BlogData{
		Page:  h.newPage(r, locale, printer.Sprintf("title.blog", branding.AppName), ""),
		Posts: postCards(locale.Code, posts),
	}
	h.render(w, r, http.StatusOK, "blog.html", data)
}

// handleRandom redirects to a uniformly random symbol detail page.
func (h *Handler) handleRandom(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.resolveLocale(r)
	if !ok {
		h.renderUnknownLanguage(w, r)
		return
	}
	ctx := r.Context()

	count, err := h.store.CountSymbols(ctx)
	if err != nil {
		h.renderFailure(w, r, locale, storeError("count symbols", err))
		return
	}
	if count == 0 {
		h.renderFailure(w, r, locale,
			errors.New(errors.CodeEmptyDataset, "no symbols loaded"))
		return
	}

	symbol, err := h.store.SymbolAt(ctx, h.pick(count))
	if err != nil {
		h.renderFailure(w, r, locale, storeError("pick random symbol", err))
		return
	}
	http.Redirect(w, r, routepath.Symbol(locale.Code, symbol.PathSegment()), http.StatusFound)
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// storeError classifies a store failure so the error page answers with
// the right status.
func storeError(message string, err error) error {
	if stderrors.Is(err, storage.ErrNotFound) {
		return errors.Wrap(errors.CodeNotFound, message, err)
	}
	return errors.Wrap(errors.CodeStorage, message, err)
}

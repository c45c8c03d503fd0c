// Package web hosts the public HTTP server rendering the symbol site.
package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/symbl-cc/symbl/internal/errors"
	"github.com/symbl-cc/symbl/internal/platform/branding"
	"github.com/symbl-cc/symbl/internal/platform/httpx"
	"github.com/symbl-cc/symbl/internal/storage"
	"github.com/symbl-cc/symbl/internal/web/i18n"
	"github.com/symbl-cc/symbl/internal/web/routepath"
	"github.com/symbl-cc/symbl/internal/web/static"
	"github.com/symbl-cc/symbl/internal/web/templates"
)

// reservedSegments are path segments under a language prefix that can
// never resolve as symbol pages.
var reservedSegments = mapset.NewSet(
	"search", "collections", "unicode", "blog", "random", "static",
)

// Handler serves every site page from the dataset store.
type Handler struct {
	store    storage.Store
	renderer *templates.Renderer
	logger   *zap.Logger
	// nowFn is injectable for day-symbol window tests.
	nowFn func() time.Time
	// pick chooses a random offset in [0, n) for the random-symbol route.
	pick func(n int) int
}

// Option adjusts handler construction.
type Option func(*Handler)

// WithClock fixes the handler's notion of the current time.
func WithClock(nowFn func() time.Time) Option {
	return func(h *Handler) { h.nowFn = nowFn }
}

// NewHandler builds the site's HTTP handler with all routes wired.
func NewHandler(store storage.Store, logger *zap.Logger, pick func(n int) int, opts ...Option) (http.Handler, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if pick == nil {
		return nil, fmt.Errorf("random picker is required")
	}

	renderer, err := templates.New()
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}

	h := &Handler{
		store:    store,
		renderer: renderer,
		logger:   logger,
		pick:     pick,
	}
	for _, opt := range opts {
		opt(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Root, h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.OpenSearchPattern, h.handleOpenSearch)
	mux.Handle(http.MethodGet+" "+routepath.Static+"{rest...}", static.Handler("/static/"))

	mux.HandleFunc(http.MethodGet+" "+routepath.HomePattern, h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.SearchPattern, h.handleSearch)
	mux.HandleFunc(http.MethodGet+" "+routepath.CollectionsPattern, h.handleCollections)
	mux.HandleFunc(http.MethodGet+" "+routepath.CollectionPattern, h.handleCollection)
	mux.HandleFunc(http.MethodGet+" "+routepath.BlocksPattern, h.handleBlocks)
	mux.HandleFunc(http.MethodGet+" "+routepath.BlockPattern, h.handleBlock)
	mux.HandleFunc(http.MethodGet+" "+routepath.BlogPattern, h.handleBlog)
	mux.HandleFunc(http.MethodGet+" "+routepath.RandomPattern, h.handleRandom)
	mux.HandleFunc(http.MethodGet+" "+routepath.SymbolPattern, h.handleSymbol)

	// Logging wraps Recover so panicking requests still get an access
	// log line with the recovered 500.
	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.Logging(logger),
		httpx.Recover(logger),
		httpx.Tracing("symbl/web"),
	), nil
}

func (h *Handler) clock() time.Time {
	if h.nowFn != nil {
		return h.nowFn()
	}
	return time.Now().UTC()
}

// resolveLocale maps the {lang} path segment to a locale.
func (h *Handler) resolveLocale(r *http.Request) (i18n.Locale, bool) {
	locale, ok := i18n.ByCode(r.PathValue("lang"))
	return locale, ok
}

// newPage assembles the chrome data shared by every rendered page,
// including the day-symbol window for the widget.
func (h *Handler) newPage(r *http.Request, locale i18n.Locale, title, query string) templates.Page {
	printer := i18n.Printer(locale)

	entries, err := daySymbolWindow(r.Context(), h.store, locale.Code, h.clock())
	if err != nil {
		// The widget is decorative; pages render without it.
		h.logger.Warn("day symbol window", zap.Error(err))
		entries = nil
	}
	dayJSON, err := daySymbolsJSON(entries)
	if err != nil {
		h.logger.Warn("day symbol json", zap.Error(err))
		dayJSON = "[]"
	}

	languages := make([]templates.LanguageLink, 0, len(i18n.Locales))
	for _, alt := range i18n.Locales {
		languages = append(languages, templates.LanguageLink{
			Code: alt.Code,
			Name: alt.Name,
			URL:  swapLang(r.URL.Path, alt.Code),
		})
	}

	return templates.Page{
		T:              printer,
		Lang:           locale.Code,
		Title:          title,
		Description:    printer.Sprintf("meta.description"),
		SearchQuery:    query,
		DaySymbolsJSON: dayJSON,
		Languages:      languages,
		AppName:        branding.AppName,
		Tagline:        branding.Tagline,
	}
}

// swapLang rewrites the language segment of a localized path. Paths
// without a language prefix fall back to the target homepage.
func swapLang(path, lang string) string {
	trimmed := strings.TrimPrefix(path, "/")
	slash := strings.IndexByte(trimmed, '/')
	if slash < 0 {
		return routepath.Home(lang)
	}
	if _, ok := i18n.ByCode(trimmed[:slash]); !ok {
		return routepath.Home(lang)
	}
	return "/" + lang + trimmed[slash:]
}

// render writes a page, degrading to a plain 500 if the template fails
// after the header was sent.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, page, data); err != nil {
		h.logger.Error("render page",
			zap.String("page", page),
			zap.Error(err),
			zap.String("request_id", httpx.RequestIDFrom(r.Context())),
		)
	}
}

// renderNotFound writes the localized 404 page.
func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request, locale i18n.Locale) {
	printer := i18n.Printer(locale)
	data := templates.ErrorData{
		Page:    h.newPage(r, locale, printer.Sprintf("title.not_found", branding.AppName), ""),
		Heading: printer.Sprintf("error.not_found.heading"),
		Body:    printer.Sprintf("error.not_found.body"),
		HomeURL: routepath.Home(locale.Code),
	}
	h.render(w, r, http.StatusNotFound, "error.html", data)
}

// renderUnknownLanguage answers requests whose {lang} segment is not a
// supported code.
func (h *Handler) renderUnknownLanguage(w http.ResponseWriter, r *http.Request) {
	h.renderFailure(w, r, i18n.Default(),
		errors.New(errors.CodeInvalidLanguage, "unknown language code"))
}

// renderFailure writes the localized error page for a handler failure,
// deriving the HTTP status from the error's domain code.
func (h *Handler) renderFailure(w http.ResponseWriter, r *http.Request, locale i18n.Locale, err error) {
	status := errors.HTTPStatusFor(err)
	if status == http.StatusNotFound {
		h.renderNotFound(w, r, locale)
		return
	}

	log := h.logger.Error
	if errors.IsCode(err, errors.CodeEmptyDataset) {
		// An unseeded dataset is an operational state, not a fault.
		log = h.logger.Warn
	}
	log("handler failure",
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("request_id", httpx.RequestIDFrom(r.Context())),
	)

	printer := i18n.Printer(locale)
	data := templates.ErrorData{
		Page:    h.newPage(r, locale, printer.Sprintf("error.internal.heading"), ""),
		Heading: printer.Sprintf("error.internal.heading"),
		Body:    printer.Sprintf("error.internal.body"),
		HomeURL: routepath.Home(locale.Code),
	}
	h.render(w, r, status, "error.html", data)
}

// Package routepath stores canonical HTTP paths for the site.
package routepath

import (
	"net/url"
	"strconv"
)

const (
	Root              = "/{$}"
	Health            = "/up"
	OpenSearchPattern = "/specs/opensearch/{file}"
	Static            = "/static/"

	HomePattern        = "/{lang}/{$}"
	SymbolPattern      = "/{lang}/{symbol}/{$}"
	SearchPattern      = "/{lang}/search/{$}"
	CollectionsPattern = "/{lang}/collections/{$}"
	CollectionPattern  = "/{lang}/collections/{slug}/{$}"
	BlocksPattern      = "/{lang}/unicode/blocks/{$}"
	BlockPattern       = "/{lang}/unicode/blocks/{slug}/{$}"
	BlogPattern        = "/{lang}/blog/{$}"
	RandomPattern      = "/{lang}/random/{$}"

	// SearchQueryKey is the search form's query parameter.
	SearchQueryKey = "q"
	// PageQueryKey selects a result page.
	PageQueryKey = "page"
)

// OpenSearch returns the localized search-description document route.
func OpenSearch(lang string) string {
	return "/specs/opensearch/" + escapeSegment(lang) + ".xml"
}

// Home returns the localized homepage route.
func Home(lang string) string {
	return "/" + escapeSegment(lang) + "/"
}

// Symbol returns the localized symbol detail route for a path segment
// produced by the dataset ("1F600-grinning-face-emoji" or "00B9").
func Symbol(lang, segment string) string {
	return Home(lang) + escapeSegment(segment) + "/"
}

// Search returns the localized search route for a query and page.
// Page 1 is canonical and carries no page parameter.
func Search(lang, query string, page int) string {
	values := url.Values{SearchQueryKey: []string{query}}
	if page > 1 {
		values.Set(PageQueryKey, strconv.Itoa(page))
	}
	return Home(lang) + "search/?" + values.Encode()
}

// Collections returns the localized collections index route.
func Collections(lang string) string {
	return Home(lang) + "collections/"
}

// Collection returns the localized collection detail route.
func Collection(lang, slug string) string {
	return Collections(lang) + escapeSegment(slug) + "/"
}

// Blocks returns the localized Unicode blocks index route.
func Blocks(lang string) string {
	return Home(lang) + "unicode/blocks/"
}

// Block returns the localized block detail route for a page.
func Block(lang, slug string, page int) string {
	route := Blocks(lang) + escapeSegment(slug) + "/"
	if page > 1 {
		route += "?" + PageQueryKey + "=" + strconv.Itoa(page)
	}
	return route
}

// Blog returns the localized blog index route.
func Blog(lang string) string {
	return Home(lang) + "blog/"
}

// Random returns the localized random-symbol route.
func Random(lang string) string {
	return Home(lang) + "random/"
}

func escapeSegment(segment string) string {
	return url.PathEscape(segment)
}

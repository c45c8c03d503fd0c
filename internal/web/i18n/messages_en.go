package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Page titles
	message.SetString(lang, "title.home", "%s | Symbols, Emojis and Alt Codes")
	message.SetString(lang, "title.symbol", "%s %s | %s")
	message.SetString(lang, "title.search", "Search results for %q | %s")
	message.SetString(lang, "title.collections", "Collections | %s")
	message.SetString(lang, "title.blocks", "Unicode blocks | %s")
	message.SetString(lang, "title.blog", "Blog | %s")
	message.SetString(lang, "title.not_found", "Page not found | %s")
	message.SetString(lang, "meta.description", "Discover the meaning of symbols, emojis and special characters. Copy and paste, alt codes, HTML entities and Unicode data.")

	// Navigation
	message.SetString(lang, "nav.collections", "Collections")
	message.SetString(lang, "nav.blocks", "Unicode blocks")
	message.SetString(lang, "nav.blog", "Blog")
	message.SetString(lang, "nav.random", "Random symbol")

	// Search
	message.SetString(lang, "search.placeholder", "Search for symbols, emojis, alt codes...")
	message.SetString(lang, "search.button", "Search")
	message.SetString(lang, "search.heading", "Search results for %q")
	message.SetString(lang, "search.count", "%d symbols found")
	message.SetString(lang, "search.empty", "Nothing found. Try a different name or a codepoint like U+1F600.")
	message.SetString(lang, "search.popular", "Popular searches")
	message.SetString(lang, "search.prev", "Previous")
	message.SetString(lang, "search.next", "Next")

	// Homepage sections
	message.SetString(lang, "home.symbol_of_day", "Symbol of the day")
	message.SetString(lang, "home.top_symbols", "Top symbols")
	message.SetString(lang, "home.collections", "Collections")
	message.SetString(lang, "home.from_blog", "From the blog")
	message.SetString(lang, "home.all_collections", "All collections")
	message.SetString(lang, "home.tools", "Tools")

	// Symbol detail page
	message.SetString(lang, "symbol.codepoint", "Unicode codepoint")
	message.SetString(lang, "symbol.block", "Unicode block")
	message.SetString(lang, "symbol.html_entity", "HTML entity")
	message.SetString(lang, "symbol.css_class", "Style bucket")
	message.SetString(lang, "symbol.copy", "Copy")
	message.SetString(lang, "symbol.more_in_block", "More in %s")

	// Collections
	message.SetString(lang, "collections.heading", "Symbol collections")
	message.SetString(lang, "collections.view", "View collection")

	// Blocks
	message.SetString(lang, "blocks.heading", "Unicode blocks")
	message.SetString(lang, "blocks.range", "U+%04X to U+%04X")

	// Blog
	message.SetString(lang, "blog.heading", "Blog")
	message.SetString(lang, "blog.likes", "%d likes")

	// Errors
	message.SetString(lang, "error.not_found.heading", "Page not found")
	message.SetString(lang, "error.not_found.body", "The symbol or page you are looking for does not exist.")
	message.SetString(lang, "error.method.heading", "Method not allowed")
	message.SetString(lang, "error.internal.heading", "Something went wrong")
	message.SetString(lang, "error.internal.body", "An unexpected error occurred. Please try again.")
	message.SetString(lang, "error.back_home", "Back to the homepage")

	// Footer
	message.SetString(lang, "footer.languages", "Languages")
	message.SetString(lang, "footer.about", "About")
	message.SetString(lang, "footer.rights", "Symbols and emoji reference.")
}

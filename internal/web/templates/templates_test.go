package templates

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func testPage() Page {
	return Page{
		T:           message.NewPrinter(language.English),
		Lang:        "en",
		Title:       "Test",
		AppName:     "SYMBL",
		Tagline:     "test",
		Description: "test page",
	}
}

func TestNewParsesEveryPage(t *testing.T) {
	t.Parallel()

	if _, err := New(); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	t.Parallel()

	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := r.Render(&bytes.Buffer{}, "nope.html", nil); err == nil {
		t.Fatal("Render(unknown) error = nil, want error")
	}
}

func TestRenderHome(t *testing.T) {
	t.Parallel()

	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	data := HomeData{
		Page: testPage(),
		TopSymbols: []SymbolCard{
			{Glyph: "♥", Name: "BLACK HEART SUIT", URL: "/en/2665/", StyleClass: "u2400"},
		},
		Collections: []CollectionCard{
			{Title: "Hearts", URL: "/en/collections/hearts/", Glyph: "❤"},
		},
	}
	if err := r.Render(&buf, "home.html", data); err != nil {
		t.Fatalf("Render(home) error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{"/en/2665/", "BLACK HEART SUIT", "window.daySymbols", "/en/search/", "SYMBL"} {
		if !strings.Contains(html, want) {
			t.Errorf("home output missing %q", want)
		}
	}
}

func TestRenderSymbolEscapesName(t *testing.T) {
	t.Parallel()

	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	data := SymbolData{
		Page:       testPage(),
		Glyph:      "<",
		Name:       "LESS-THAN SIGN <script>",
		Codepoint:  "U+003C",
		HTMLEntity: "&#60;",
		StyleClass: "u0000",
		BlockName:  "Basic Latin",
		BlockURL:   "/en/unicode/blocks/basic-latin/",
	}
	if err := r.Render(&buf, "symbol.html", data); err != nil {
		t.Fatalf("Render(symbol) error = %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Error("symbol name was not escaped")
	}
	if !strings.Contains(buf.String(), "U+003C") {
		t.Error("symbol output missing codepoint")
	}
}

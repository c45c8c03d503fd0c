package routepath

import "testing"

func TestSymbol(t *testing.T) {
	t.Parallel()

	got := Symbol("en", "1F600-grinning-face-emoji")
	want := "/en/1F600-grinning-face-emoji/"
	if got != want {
		t.Errorf("Symbol() = %q, want %q", got, want)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	got := Search("en", "heart arrow", 1)
	want := "/en/search/?q=heart+arrow"
	if got != want {
		t.Errorf("Search(page 1) = %q, want %q", got, want)
	}

	got = Search("de", "heart", 3)
	want = "/de/search/?page=3&q=heart"
	if got != want {
		t.Errorf("Search(page 3) = %q, want %q", got, want)
	}
}

func TestBlock(t *testing.T) {
	t.Parallel()

	got := Block("en", "basic-latin", 2)
	want := "/en/unicode/blocks/basic-latin/?page=2"
	if got != want {
		t.Errorf("Block() = %q, want %q", got, want)
	}
}

func TestOpenSearch(t *testing.T) {
	t.Parallel()

	got := OpenSearch("jp")
	want := "/specs/opensearch/jp.xml"
	if got != want {
		t.Errorf("OpenSearch() = %q, want %q", got, want)
	}
}

func TestEscapesSegments(t *testing.T) {
	t.Parallel()

	got := Collection("en", "hearts/../../etc")
	want := "/en/collections/hearts%2F..%2F..%2Fetc/"
	if got != want {
		t.Errorf("Collection() = %q, want %q", got, want)
	}
}

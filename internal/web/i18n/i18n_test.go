package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestByCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want language.Tag
		ok   bool
	}{
		{"en", language.English, true},
		{"EN", language.English, true},
		{"cn", language.SimplifiedChinese, true},
		{"jp", language.Japanese, true},
		{"kr", language.Korean, true},
		{"zz", language.Und, false},
		{"", language.Und, false},
	}

	for _, tt := range tests {
		locale, ok := ByCode(tt.code)
		if ok != tt.ok {
			t.Errorf("ByCode(%q) ok = %t, want %t", tt.code, ok, tt.ok)
			continue
		}
		if ok && locale.Tag != tt.want {
			t.Errorf("ByCode(%q) tag = %v, want %v", tt.code, locale.Tag, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"no header", "", "en"},
		{"german", "de-DE,de;q=0.9", "de"},
		{"japanese", "ja", "jp"},
		{"simplified chinese", "zh-CN,zh;q=0.8", "cn"},
		{"unsupported", "sw", "en"},
		{"garbage", ";;;", "en"},
		{"quality order", "sw;q=0.9, fr;q=0.8", "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/", nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			got := Resolve(r)
			if got.Code != tt.want {
				t.Errorf("Resolve() code = %q, want %q", got.Code, tt.want)
			}
		})
	}
}

func TestResolvePrecedence(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?lang=jp", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "de"})
	r.Header.Set("Accept-Language", "fr")
	if got := Resolve(r); got.Code != "jp" {
		t.Errorf("query param: Resolve() code = %q, want jp", got.Code)
	}

	r = httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "de"})
	r.Header.Set("Accept-Language", "fr")
	if got := Resolve(r); got.Code != "de" {
		t.Errorf("cookie: Resolve() code = %q, want de", got.Code)
	}

	r = httptest.NewRequest("GET", "/?lang=zz", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "zz"})
	r.Header.Set("Accept-Language", "fr")
	if got := Resolve(r); got.Code != "fr" {
		t.Errorf("fallthrough: Resolve() code = %q, want fr", got.Code)
	}
}

func TestSetCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	locale, _ := ByCode("kr")
	SetCookie(rr, locale)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("len(cookies) = %d, want 1", len(cookies))
	}
	if cookies[0].Name != CookieName || cookies[0].Value != "kr" {
		t.Errorf("cookie = %s=%s, want %s=kr", cookies[0].Name, cookies[0].Value, CookieName)
	}
	if cookies[0].Path != "/" {
		t.Errorf("cookie path = %q, want /", cookies[0].Path)
	}
}

func TestDefaultIsEnglish(t *testing.T) {
	t.Parallel()

	if Default().Code != "en" {
		t.Fatalf("Default().Code = %q, want en", Default().Code)
	}
}

func TestPrinterFormatsMessages(t *testing.T) {
	t.Parallel()

	p := Printer(Default())
	got := p.Sprintf("search.count", 3)
	if got != "3 symbols found" {
		t.Errorf("Sprintf(search.count) = %q, want %q", got, "3 symbols found")
	}
}

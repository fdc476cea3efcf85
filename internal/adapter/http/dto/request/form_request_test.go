package request

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormQueryRequest_ResolveQuery(t *testing.T) {
	if got := (FormQueryRequest{}).ResolveQuery(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}

	q := " 01001-000 "
	if got := (FormQueryRequest{Query: &q}).ResolveQuery(); got != q {
		t.Fatalf("query must be kept as typed, got %q", got)
	}

	long := strings.Repeat("1", 65)
	if got := (FormQueryRequest{Query: &long}).ResolveQuery(); got != strings.Repeat("1", MaxQueryLength) {
		t.Fatalf("oversized query must be clamped, got %d bytes", len(got))
	}
}

func TestFormSubmitRequest_ResolveCEP(t *testing.T) {
	if got := (FormSubmitRequest{CEP: "01001000"}).ResolveCEP(); got != "01001000" {
		t.Fatalf("unexpected cep %q", got)
	}

	exact := strings.Repeat("9", MaxQueryLength)
	if got := (FormSubmitRequest{CEP: exact}).ResolveCEP(); got != exact {
		t.Fatalf("input at the cap must be kept, got %d bytes", len(got))
	}

	// "ç" is two bytes; the cap falls in the middle of the last one.
	mixed := strings.Repeat("a", MaxQueryLength-1) + "çç"
	got := (FormSubmitRequest{CEP: mixed}).ResolveCEP()
	if !utf8.ValidString(got) || len(got) != MaxQueryLength-1 {
		t.Fatalf("clamp must stop on a rune boundary, got %q", got)
	}
}

package normalize

import (
	"reflect"
	"testing"
)

func TestTokens_LowercasesAndStripsPunctuation(t *testing.T) {
	got := Tokens("Merkez Bankası, faiz kararını açıkladı!", "tr")
	want := []string{"merkez", "bankası", "faiz", "kararını", "açıkladı"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokens_TurkishDottedI(t *testing.T) {
	got := Tokens("İstanbul IRMAK", "tr")
	want := []string{"istanbul", "ırmak"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Turkish casing: got %v, want %v", got, want)
	}
}

func TestTokens_DropsDigitOnlyTokens(t *testing.T) {
	got := Tokens("Dolar 2024 yılında 32,5 lirayı aştı", "tr")
	for _, tok := range got {
		if tok == "" {
			t.Fatalf("empty token in %v", got)
		}
	}
	want := []string{"dolar", "yılında", "lirayı", "aştı"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokens_ApostropheCollapses(t *testing.T) {
	got := Tokens("Türkiye'de enflasyon düştü.", "tr")
	if len(got) == 0 || got[0] != "türkiyede" {
		t.Fatalf("expected türkiyede first, got %v", got)
	}
}

func TestTokens_EmptyInput(t *testing.T) {
	if got := Tokens("   \t", "tr"); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
	if got := Tokens("42 ... 7", "en"); got != nil {
		t.Fatalf("expected nil for digits and punctuation, got %v", got)
	}
}

func TestTokens_Deterministic(t *testing.T) {
	in := "Piyasalar karara olumlu tepki verdi."
	a := Tokens(in, "tr")
	b := Tokens(in, "tr")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("tokenization not deterministic: %v vs %v", a, b)
	}
}

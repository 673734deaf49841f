// file: pkg/textnorm/textnorm_test.go
// version: 1.0.0
// guid: 7d1e5b02-3fa8-4c96-b1e4-2a90cd6573e8

package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Schmidt", "SCHMIDT"},
		{"Jürgen", "JURGEN"},
		{"Gómez", "GOMEZ"},
		{"O'Brien", "OBRIEN"},
		{"van der Berg", "VANDERBERG"},
		{"123-456", ""},
		{"   ", ""},
		{"Crème Brûlée", "CREMEBRULEE"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	inputs := []string{"Müller", "Łukasz", "Ñoño", "Škoda"}
	for _, in := range inputs {
		first := Normalize(in)
		second := Normalize(in)
		if first != second {
			t.Errorf("Normalize(%q) not deterministic: %q vs %q", in, first, second)
		}
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mueller GmbH", "mueller gmbh"},
		{"  Müller GmbH  ", "muller gmbh"},
		{"Hauptstraße 7", "hauptstraße 7"}, // ß has no combining mark to strip
		{"", ""},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("  Acme   Holding GmbH ")
	want := []string{"Acme", "Holding", "GmbH"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %v, want %v", got, want)
	}
	if len(Tokens("")) != 0 {
		t.Errorf("Tokens(\"\") should be empty")
	}
}

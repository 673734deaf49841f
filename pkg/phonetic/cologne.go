// file: pkg/phonetic/cologne.go
// version: 1.3.0
// guid: a7e31d90-4c68-4b25-9f1a-d8b06e5c2f47

package phonetic

import (
	"strings"

	"github.com/fzabel/dublette/pkg/textnorm"
)

// cologneUmlauts is applied before the generic normalization so that the
// German-specific transliterations survive the diacritic strip.
var cologneUmlauts = strings.NewReplacer(
	"Ä", "A", "ä", "A",
	"Ö", "O", "ö", "O",
	"Ü", "U", "ü", "U",
	"ß", "SS",
)

// EncodeCologne computes the Kölner Phonetik code of s.
//
// Letters map to digits per the Postel table, with context-sensitive rules
// for C, D/T, P, and X; H is silent. Immediately repeated digits collapse to
// one occurrence across the whole code, then every '0' is removed. Input
// that contains letters but reduces to nothing (all vowels) encodes to "0";
// input without any letters encodes to "".
//
//	EncodeCologne("Schmidt")  == "862"
//	EncodeCologne("Schmitt")  == "862"
//	EncodeCologne("Meyer")    == "67"
//	EncodeCologne("Breschnew") == "17863"
func EncodeCologne(s string) string {
	s = textnorm.Normalize(cologneUmlauts.Replace(s))
	if s == "" {
		return ""
	}

	var raw []byte
	for i := 0; i < len(s); i++ {
		var prev, next byte
		if i > 0 {
			prev = s[i-1]
		}
		if i+1 < len(s) {
			next = s[i+1]
		}
		raw = append(raw, cologneCode(s[i], prev, next, i == 0)...)
	}

	// collapse immediately repeated digits, then strip zeros
	var out []byte
	var last byte
	for i, d := range raw {
		if i > 0 && d == last {
			continue
		}
		last = d
		if d != '0' {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return "0"
	}
	return string(out)
}

// cologneCode maps one letter to its digit(s) given its neighbours.
// prev and next are zero at the string boundaries.
func cologneCode(c, prev, next byte, initial bool) string {
	switch c {
	case 'A', 'E', 'I', 'O', 'U', 'J', 'Y':
		return "0"
	case 'H':
		return ""
	case 'B':
		return "1"
	case 'P':
		if next == 'H' {
			return "3"
		}
		return "1"
	case 'D', 'T':
		if next == 'C' || next == 'S' || next == 'Z' {
			return "8"
		}
		return "2"
	case 'F', 'V', 'W':
		return "3"
	case 'G', 'K', 'Q':
		return "4"
	case 'C':
		if prev == 'S' || prev == 'Z' {
			return "8"
		}
		if initial {
			if next != 0 && strings.IndexByte("AHKLOQRUX", next) >= 0 {
				return "4"
			}
			return "8"
		}
		if next != 0 && strings.IndexByte("AHKOQUX", next) >= 0 {
			return "4"
		}
		return "8"
	case 'X':
		if prev == 'C' || prev == 'K' || prev == 'Q' {
			return "8"
		}
		return "48"
	case 'L':
		return "5"
	case 'M', 'N':
		return "6"
	case 'R':
		return "7"
	case 'S', 'Z':
		return "8"
	}
	return ""
}

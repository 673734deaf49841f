// file: pkg/phonetic/metaphone.go
// version: 1.2.0
// guid: e94c2a68-7b35-4d01-8f6c-52a1d09e47b3

package phonetic

import (
	"strings"

	"github.com/fzabel/dublette/pkg/textnorm"
)

const metaphoneMaxLen = 8

func isVowel(c byte) bool {
	return c == 'A' || c == 'E' || c == 'I' || c == 'O' || c == 'U'
}

// EncodeMetaphone returns a simplified Metaphone code of s, capped at 8
// characters. Initial clusters are rewritten first (KN/GN/PN/WR drop the
// first letter, AE becomes E, X becomes S, WH becomes W), then a left-to-
// right scan applies per-letter rules with up to two characters of
// lookahead. Vowels survive only at position 0 and doubled letters collapse.
//
// TH encodes to the literal '0' byte, an opaque marker for the theta sound.
// It has nothing to do with Cologne Phonetic's digit vocabulary.
func EncodeMetaphone(s string) string {
	s = textnorm.Normalize(s)
	if s == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(s, "KN"), strings.HasPrefix(s, "GN"),
		strings.HasPrefix(s, "PN"), strings.HasPrefix(s, "WR"):
		s = s[1:]
	case strings.HasPrefix(s, "AE"):
		s = s[1:]
	case strings.HasPrefix(s, "WH"):
		s = "W" + s[2:]
	case s[0] == 'X':
		s = "S" + s[1:]
	}

	var out []byte
	for i := 0; i < len(s) && len(out) < metaphoneMaxLen; i++ {
		c := s[i]
		if i > 0 && c == s[i-1] {
			continue // doubled letters collapse
		}
		var next, next2 byte
		if i+1 < len(s) {
			next = s[i+1]
		}
		if i+2 < len(s) {
			next2 = s[i+2]
		}

		switch c {
		case 'A', 'E', 'I', 'O', 'U', 'Y':
			if i == 0 {
				out = append(out, c)
			}
		case 'C':
			if next == 'H' {
				out = append(out, 'X')
				i++
			} else if next == 'I' || next == 'E' || next == 'Y' {
				out = append(out, 'S')
			} else {
				out = append(out, 'K')
			}
		case 'D':
			if next == 'G' && (next2 == 'E' || next2 == 'I' || next2 == 'Y') {
				out = append(out, 'J')
				i += 2
			} else {
				out = append(out, 'D')
			}
		case 'G':
			if next == 'H' {
				if i > 0 && !isVowel(s[i-1]) {
					i++ // silent mid-word after a consonant
				} else {
					out = append(out, 'K')
					i++
				}
			} else {
				out = append(out, 'K')
			}
		case 'P':
			if next == 'H' {
				out = append(out, 'F')
				i++
			} else {
				out = append(out, 'P')
			}
		case 'S':
			if next == 'H' {
				out = append(out, 'X')
				i++
			} else {
				out = append(out, 'S')
			}
		case 'T':
			if next == 'H' {
				out = append(out, '0')
				i++
			} else if next == 'I' && (next2 == 'O' || next2 == 'A') {
				out = append(out, 'X')
			} else {
				out = append(out, 'T')
			}
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

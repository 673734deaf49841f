// file: pkg/phonetic/soundex.go
// version: 1.1.0
// guid: 3b0d7f52-8e19-4c46-a2d7-60f4e8b1c935

package phonetic

import "github.com/fzabel/dublette/pkg/textnorm"

// soundexTable maps A-Z to the classic 6-bucket consonant codes; '0' marks
// vowels plus H, W, Y, which emit nothing and reset the duplicate tracker.
//
//	                  ABCDEFGHIJKLMNOPQRSTUVWXYZ
const soundexTable = "01230120022455012623010202"

func soundexCode(c byte) byte {
	b := soundexTable[c-'A']
	if b == '0' {
		return 0
	}
	return b
}

// EncodeSoundex returns the 4-character Soundex code of s: the first letter
// verbatim, then consonant codes, skipping a code equal to the immediately
// preceding emitted one. A vowel (or H, W, Y) between two identical
// consonants resets the tracker, so the second consonant counts again.
// Output is right-padded with '0'; empty or letterless input encodes to "".
//
//	EncodeSoundex("Robert") == "R163"
//	EncodeSoundex("Rupert") == "R163"
func EncodeSoundex(s string) string {
	s = textnorm.Normalize(s)
	if s == "" {
		return ""
	}

	code := make([]byte, 1, 4)
	code[0] = s[0]
	last := soundexCode(s[0])
	for i := 1; i < len(s) && len(code) < 4; i++ {
		c := soundexCode(s[i])
		if c == 0 {
			last = 0
			continue
		}
		if c != last {
			code = append(code, c)
		}
		last = c
	}
	for len(code) < 4 {
		code = append(code, '0')
	}
	return string(code)
}

// Package textstyle converts plain ASCII text to Unicode mathematical bold
// characters, which render as bold in plain-text fields such as LinkedIn
// messages, and folds them back.
package textstyle

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	boldUpperA rune = 0x1D400 // MATHEMATICAL BOLD CAPITAL A
	boldLowerA rune = 0x1D41A // MATHEMATICAL BOLD SMALL A
	boldDigit0 rune = 0x1D7CE // MATHEMATICAL BOLD DIGIT ZERO
)

// BoldRune maps an ASCII letter or digit to its bold counterpart. Any other
// rune is returned unchanged.
func BoldRune(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return boldUpperA + (r - 'A')
	case r >= 'a' && r <= 'z':
		return boldLowerA + (r - 'a')
	case r >= '0' && r <= '9':
		return boldDigit0 + (r - '0')
	default:
		return r
	}
}

// Bold returns s with every ASCII letter and digit replaced by its bold code
// point. It never fails; empty input yields empty output.
func Bold(s string) string {
	return strings.Map(BoldRune, s)
}

// Plain folds bold (and other compatibility) characters back to their base
// form using NFKC normalization.
func Plain(s string) string {
	return norm.NFKC.String(s)
}

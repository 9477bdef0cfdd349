package token

import (
	"strings"
	"unicode"
)

// IsIdentStart reports whether r may begin an identifier segment.
func IsIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsIdentRune reports whether r may continue an identifier segment.
// Subscript digits (h₁), primes (h') and combining marks are allowed after
// the first rune.
func IsIdentRune(r rune) bool {
	return IsIdentStart(r) || unicode.IsDigit(r) || IsSubscriptDigit(r) ||
		unicode.Is(unicode.Mn, r) || r == '\'' || r == '!' || r == '?'
}

// IsSubscriptDigit reports whether r is one of ₀ through ₉.
func IsSubscriptDigit(r rune) bool {
	return r >= '₀' && r <= '₉'
}

// IsPlainName reports whether name lexes back as a single IDENT token
// without guillemet quoting: one or more dot-separated identifier segments
// that do not spell a keyword.
func IsPlainName(name string) bool {
	if name == "" {
		return false
	}
	if LookupIdent(name) != IDENT {
		return false
	}
	if _, ok := LookupDynamicKeyword(name); ok {
		return false
	}
	for _, seg := range strings.Split(name, ".") {
		if !isSegment(seg) {
			return false
		}
	}
	return true
}

func isSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i, r := range seg {
		if i == 0 {
			if !IsIdentStart(r) {
				return false
			}
			continue
		}
		if !IsIdentRune(r) {
			return false
		}
	}
	return true
}

package helpers

import (
	"fmt"
	"strings"
	"unicode"
)

// MakeSlug normalizes a display name into a URL-safe slug: lowercase,
// whitespace runs become single hyphens, everything else non-alphanumeric is
// dropped.
func MakeSlug(name string) string {
	var b strings.Builder
	lastHyphen := true // trims leading hyphens
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// UniqueSlug derives a slug from name and appends -1, -2, ... until exists
// reports it free. exists is checked against the sibling scope by the caller.
func UniqueSlug(name string, exists func(slug string) (bool, error)) (string, error) {
	base := MakeSlug(name)
	if base == "" {
		base = "n-a"
	}
	candidate := base
	for i := 1; ; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

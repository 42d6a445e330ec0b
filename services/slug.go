package services

import (
	"fmt"
	"strings"

	"github.com/gosimple/unidecode"
)

// Slugify turns a title into a URL-safe slug: lowercase letters, digits and
// single hyphens only, no leading or trailing hyphen. Accented letters are
// transliterated to ASCII first so "Café" and "Cafe" map to the same slug.
func Slugify(title string) string {
	title = unidecode.Unidecode(title)
	title = strings.TrimSpace(strings.ToLower(title))
	if title == "" {
		return ""
	}

	var result strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range title {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			result.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_' || r == '/':
			if !lastHyphen {
				result.WriteRune('-')
				lastHyphen = true
			}
		}
		// anything else (punctuation, emoji) is dropped
	}

	return strings.TrimSuffix(result.String(), "-")
}

// UniqueSlug returns base if unused, otherwise base-2, base-3 and so on.
// exists reports whether a candidate slug is already taken.
func UniqueSlug(base string, exists func(string) (bool, error)) (string, error) {
	if base == "" {
		base = "untitled"
	}

	candidate := base
	for i := 2; ; i++ {
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

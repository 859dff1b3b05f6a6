package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a unique-candidate, URL-safe identifier from a
// title or name. Catalog content is mostly Russian, so Cyrillic is
// transliterated first.
//
// "Война и мир"  → "vojna-i-mir"
// "My Book"      → "my-book"
func GenerateSlug(input string) string {
	// Step 1: Transliterate Cyrillic to ASCII
	ascii := Transliterate(input)

	// Step 2: Lowercase
	lower := strings.ToLower(ascii)

	// Step 3: Replace spaces with hyphens
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	// Step 4: Drop everything except a-z, 0-9 and hyphens
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")

	// Step 5: Collapse hyphen runs, trim ends
	normalized := slugHyphenRuns.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

// Transliterate converts Cyrillic characters to their Latin
// counterparts (GOST-style, lowercase targets only — GenerateSlug
// lowercases afterwards anyway).
func Transliterate(input string) string {
	mappings := map[rune]string{
		'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
		'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
		'й': "j", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
		'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
		'у': "u", 'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch",
		'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
		'э': "e", 'ю': "yu", 'я': "ya",

		'А': "a", 'Б': "b", 'В': "v", 'Г': "g", 'Д': "d",
		'Е': "e", 'Ё': "e", 'Ж': "zh", 'З': "z", 'И': "i",
		'Й': "j", 'К': "k", 'Л': "l", 'М': "m", 'Н': "n",
		'О': "o", 'П': "p", 'Р': "r", 'С': "s", 'Т': "t",
		'У': "u", 'Ф': "f", 'Х': "h", 'Ц': "c", 'Ч': "ch",
		'Ш': "sh", 'Щ': "shch", 'Ъ': "", 'Ы': "y", 'Ь': "",
		'Э': "e", 'Ю': "yu", 'Я': "ya",
	}

	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		if replacement, ok := mappings[r]; ok {
			b.WriteString(replacement)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

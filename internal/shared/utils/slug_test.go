package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple latin title",
			input:    "My Book",
			expected: "my-book",
		},
		{
			name:     "cyrillic title",
			input:    "Война и мир",
			expected: "vojna-i-mir",
		},
		{
			name:     "mixed punctuation",
			input:    "Go, in Action! (2nd ed.)",
			expected: "go-in-action-2nd-ed",
		},
		{
			name:     "multiple spaces collapse",
			input:    "a   b    c",
			expected: "a-b-c",
		},
		{
			name:     "leading and trailing noise",
			input:    "  --Hello--  ",
			expected: "hello",
		},
		{
			name:     "soft and hard signs disappear",
			input:    "Объявление",
			expected: "obyavlenie",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only punctuation",
			input:    "!!!",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlugIsStable(t *testing.T) {
	// Same input always yields the same slug; uniqueness is enforced
	// at the store, not here.
	first := GenerateSlug("Мастер и Маргарита")
	second := GenerateSlug("Мастер и Маргарита")
	assert.Equal(t, first, second)
	assert.Equal(t, "master-i-margarita", first)
}

func TestTransliterate(t *testing.T) {
	assert.Equal(t, "privet", Transliterate("привет"))
	assert.Equal(t, "shchuka", Transliterate("щука"))
	assert.Equal(t, "unchanged ascii", Transliterate("unchanged ascii"))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Science", "science"},
		{"two words", "Science Fiction", "science-fiction"},
		{"punctuation dropped", "Mystery & Thriller!", "mystery-thriller"},
		{"accents folded", "Café Littéraire", "cafe-litteraire"},
		{"multiple spaces", "Graphic   Novels", "graphic-novels"},
		{"leading and trailing", "  History  ", "history"},
		{"already a slug", "young-adult", "young-adult"},
		{"digits kept", "Top 100 Books", "top-100-books"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

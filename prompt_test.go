package glyphswap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrompt(t *testing.T) {
	got := FormatPrompt("Swap {old} at {pos} for {new}; {old} goes.", "▲", "★", 3)
	assert.Equal(t, "Swap ▲ at 3 for ★; ▲ goes.", got)
}

func TestPromptTemplates(t *testing.T) {
	templates := PromptTemplates()
	assert.Len(t, templates, 4)
	for _, tmpl := range templates {
		for _, ph := range []string{"{old}", "{new}", "{pos}"} {
			assert.Contains(t, tmpl, ph)
		}
	}

	templates[0] = "changed"
	assert.NotEqual(t, "changed", PromptTemplates()[0])
}

func TestDefaultPrompt(t *testing.T) {
	a, b := NewRand(5), NewRand(5)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		p := DefaultPrompt(a, "A", "B", 2)
		assert.Equal(t, p, DefaultPrompt(b, "A", "B", 2))
		assert.Contains(t, p, "position 2")
		assert.False(t, strings.Contains(p, "{"), "placeholders filled")
		seen[p] = true
	}
	assert.Len(t, seen, 4, "every template is used")
}

package glyphswap

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Prompter produces the instruction text for a substitution. position is
// 1-indexed. Phrasing choices draw from r so a seeded run reproduces them.
type Prompter func(r *rand.Rand, oldSymbol, newSymbol string, position int) string

var promptTemplates = []string{
	"Substitute symbol {old} at position {pos} with symbol {new}. The video shows the old symbol fading out while the new symbol simultaneously fades in at the same position.",
	"Replace symbol {old} at position {pos} with symbol {new}. Animate the substitution with a cross-fade effect, where the old symbol gradually disappears as the new symbol appears.",
	"Substitute the symbol {old} at position {pos} with {new}. The substitution is shown by cross-fading: the original symbol fades out while the replacement symbol fades in at the same location.",
	"Replace the symbol {old} at position {pos} with symbol {new}. Show a smooth transition where both symbols are visible briefly during the cross-fade, with the old one fading out and the new one fading in.",
}

// PromptTemplates returns the instruction templates used by DefaultPrompt.
// Placeholders are {old}, {new} and {pos}.
func PromptTemplates() []string {
	out := make([]string, len(promptTemplates))
	copy(out, promptTemplates)
	return out
}

// FormatPrompt fills a template.
func FormatPrompt(template, oldSymbol, newSymbol string, position int) string {
	return strings.NewReplacer(
		"{old}", oldSymbol,
		"{new}", newSymbol,
		"{pos}", fmt.Sprint(position),
	).Replace(template)
}

// DefaultPrompt picks one of PromptTemplates uniformly.
func DefaultPrompt(r *rand.Rand, oldSymbol, newSymbol string, position int) string {
	return FormatPrompt(promptTemplates[r.IntN(len(promptTemplates))], oldSymbol, newSymbol, position)
}

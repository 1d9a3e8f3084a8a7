package glyphswap

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Symbol set names.
const (
	SetShapes  = "shapes"
	SetLetters = "letters"
	SetNumbers = "numbers"
	SetMixed   = "mixed"
	SetCustom  = "custom"
)

var symbolSets = map[string][]string{
	SetShapes: {"●", "▲", "■", "★", "◆", "♥", "◯", "△", "□", "☆", "◇", "♦", "▼", "▶", "◀"},
	SetLetters: {
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	},
	SetNumbers: {"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
	SetMixed:   {"●", "▲", "■", "★", "A", "B", "C", "1", "2", "3", "X", "Y", "Z"},
}

// SymbolSets returns the names of the built-in symbol sets, sorted.
func SymbolSets() []string {
	names := make([]string, 0, len(symbolSets))
	for name := range symbolSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog is the ordered, immutable set of candidate symbols for a run.
type Catalog struct {
	name    string
	symbols []string
	index   map[string]int
}

// LookupCatalog returns the built-in catalog with the given name.
func LookupCatalog(name string) (*Catalog, error) {
	symbols, ok := symbolSets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownSymbolSet, name, SymbolSets())
	}
	return NewCatalog(name, symbols)
}

// NewCatalog builds a catalog from symbols. Each symbol is NFC-normalized;
// empty and duplicate symbols are rejected.
func NewCatalog(name string, symbols []string) (*Catalog, error) {
	if len(symbols) == 0 {
		return nil, configErrorf("symbol catalog", "%s has no symbols", name)
	}
	c := &Catalog{
		name:    name,
		symbols: make([]string, 0, len(symbols)),
		index:   make(map[string]int, len(symbols)),
	}
	for _, s := range symbols {
		s = norm.NFC.String(s)
		if s == "" {
			return nil, configErrorf("symbol catalog", "%s contains an empty symbol", name)
		}
		if _, dup := c.index[s]; dup {
			return nil, configErrorf("symbol catalog", "%s contains %q twice", name, s)
		}
		c.index[s] = len(c.symbols)
		c.symbols = append(c.symbols, s)
	}
	return c, nil
}

// Name returns the catalog's category name.
func (c *Catalog) Name() string { return c.name }

// Len returns the number of symbols.
func (c *Catalog) Len() int { return len(c.symbols) }

// At returns the i-th symbol.
func (c *Catalog) At(i int) string { return c.symbols[i] }

// Symbols returns a copy of the symbols in catalog order.
func (c *Catalog) Symbols() []string {
	out := make([]string, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// Contains reports whether s is in the catalog.
func (c *Catalog) Contains(s string) bool {
	_, ok := c.index[s]
	return ok
}

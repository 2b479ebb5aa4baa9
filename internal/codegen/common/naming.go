package common

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Style selects one of the identifier shapes produced by Caser.
type Style int

const (
	Camel Style = iota
	Pascal
	Snake
	Kebab
)

func (s Style) String() string {
	switch s {
	case Camel:
		return "camel"
	case Pascal:
		return "pascal"
	case Snake:
		return "snake"
	case Kebab:
		return "kebab"
	default:
		return "unknown"
	}
}

// Names holds the four case variants derived from one raw name.
type Names struct {
	Camel  string
	Pascal string
	Snake  string
	Kebab  string
}

const (
	// digitPrefix is written in front of names that start with a digit.
	digitPrefix = "n"
	// letterPrefix is written in front of results that would not start with a letter.
	letterPrefix = "X"

	casingCacheSize = 4096
)

// Caser converts free-form names into identifiers. The camel variant is
// checked against the reserved words of the target language.
//
// One Caser is shared by every file of a batch run. The same animation,
// input and enum names recur across artboards and files, so the four
// variants of a raw name are built once and kept in a bounded LRU; the bound
// keeps memory flat on very large batches.
type Caser struct {
	reserved Reserved
	words    map[string]struct{}
	cache    *lru.Cache[string, Names]
}

func NewCaser(reserved Reserved) *Caser {
	words := make(map[string]struct{}, len(reserved.Words))
	for _, w := range reserved.Words {
		words[w] = struct{}{}
	}
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, Names](casingCacheSize)
	return &Caser{reserved: reserved, words: words, cache: cache}
}

// Convert returns raw in the requested style.
func (c *Caser) Convert(raw string, style Style) string {
	n := c.Variants(raw)
	switch style {
	case Pascal:
		return n.Pascal
	case Snake:
		return n.Snake
	case Kebab:
		return n.Kebab
	default:
		return n.Camel
	}
}

func (c *Caser) Camel(raw string) string  { return c.Convert(raw, Camel) }
func (c *Caser) Pascal(raw string) string { return c.Convert(raw, Pascal) }
func (c *Caser) Snake(raw string) string  { return c.Convert(raw, Snake) }
func (c *Caser) Kebab(raw string) string  { return c.Convert(raw, Kebab) }

// Variants returns all four case variants of raw.
func (c *Caser) Variants(raw string) Names {
	if n, ok := c.cache.Get(raw); ok {
		return n
	}
	n := Names{
		Camel:  convert(raw, Camel),
		Pascal: convert(raw, Pascal),
		Snake:  convert(raw, Snake),
		Kebab:  convert(raw, Kebab),
	}
	if _, ok := c.words[n.Camel]; ok {
		n.Camel += c.reserved.Suffix
	}
	c.cache.Add(raw, n)
	return n
}

func convert(raw string, style Style) string {
	tokens := tokenize(raw)
	leadingDigit := raw != "" && isDigit(raw[0])

	var b strings.Builder
	if leadingDigit {
		b.WriteString(digitPrefix)
	}
	for i, tok := range tokens {
		switch style {
		case Camel, Pascal:
			if i > 0 || style == Pascal || leadingDigit {
				b.WriteString(capitalize(tok))
			} else {
				b.WriteString(strings.ToLower(tok))
			}
		case Snake, Kebab:
			if i > 0 {
				if style == Snake {
					b.WriteByte('_')
				} else {
					b.WriteByte('-')
				}
			}
			b.WriteString(strings.ToLower(tok))
		}
	}

	out := b.String()
	if out == "" || !isLetter(out[0]) {
		out = letterPrefix + out
	}
	return out
}

// tokenize splits raw into ASCII alphanumeric runs. Space, underscore and
// hyphen end a token; any other byte is dropped without ending one.
func tokenize(raw string) []string {
	var tokens []string
	var cur []byte
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		switch {
		case isLetter(ch) || isDigit(ch):
			cur = append(cur, ch)
		case ch == ' ' || ch == '_' || ch == '-':
			if len(cur) > 0 {
				tokens = append(tokens, string(cur))
				cur = cur[:0]
			}
		}
	}
	if len(cur) > 0 {
		tokens = append(tokens, string(cur))
	}
	return tokens
}

func capitalize(tok string) string {
	return strings.ToUpper(tok[:1]) + strings.ToLower(tok[1:])
}

func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

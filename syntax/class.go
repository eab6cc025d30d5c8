package syntax

import (
	"slices"
	"strings"
)

// MetaKind identifies a predefined character class.
type MetaKind uint8

const (
	// MetaDigit is \d: ASCII decimal digits.
	MetaDigit MetaKind = iota + 1

	// MetaWord is \w: ASCII letters, digits and underscore.
	MetaWord

	// MetaSpace is \s: space, \t, \n, \v, \f and \r.
	MetaSpace
)

// metaByEscape maps the escape letter to its class.
var metaByEscape = map[rune]MetaKind{
	'd': MetaDigit,
	'w': MetaWord,
	's': MetaSpace,
}

// Matches reports whether r belongs to the class.
func (k MetaKind) Matches(r rune) bool {
	switch k {
	case MetaDigit:
		return isDigit(r)
	case MetaWord:
		return isDigit(r) || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == '_'
	case MetaSpace:
		return r == ' ' || ('\t' <= r && r <= '\r')
	}
	return false
}

// String returns the escape that denotes k.
func (k MetaKind) String() string {
	switch k {
	case MetaDigit:
		return `\d`
	case MetaWord:
		return `\w`
	case MetaSpace:
		return `\s`
	}
	return `\?`
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// Range is an inclusive character range. A single character has Lo == Hi.
type Range struct {
	Lo, Hi rune
}

// Contains reports whether r is in [Lo, Hi].
func (rg Range) Contains(r rune) bool {
	return rg.Lo <= r && r <= rg.Hi
}

// CharClass is a bracketed character class.
// A character matches when it falls in any range or meta class, or in none
// of them when Negated is set.
type CharClass struct {
	Ranges  []Range
	Metas   []MetaKind
	Negated bool
}

// Matches reports whether r is accepted by the class.
func (c *CharClass) Matches(r rune) bool {
	return c.contains(r) != c.Negated
}

func (c *CharClass) contains(r rune) bool {
	// ranges are sorted and merged by canonicalize
	_, found := slices.BinarySearchFunc(c.Ranges, r, func(rg Range, t rune) int {
		switch {
		case rg.Hi < t:
			return -1
		case rg.Lo > t:
			return 1
		}
		return 0
	})
	if found {
		return true
	}
	for _, k := range c.Metas {
		if k.Matches(r) {
			return true
		}
	}
	return false
}

// canonicalize sorts and merges ranges and drops duplicate metas.
func (c *CharClass) canonicalize() {
	slices.SortFunc(c.Ranges, func(a, b Range) int {
		if a.Lo != b.Lo {
			return int(a.Lo - b.Lo)
		}
		return int(a.Hi - b.Hi)
	})
	merged := c.Ranges[:0]
	for _, rg := range c.Ranges {
		if n := len(merged); n > 0 && rg.Lo <= merged[n-1].Hi+1 {
			merged[n-1].Hi = max(merged[n-1].Hi, rg.Hi)
			continue
		}
		merged = append(merged, rg)
	}
	c.Ranges = merged

	slices.Sort(c.Metas)
	c.Metas = slices.Compact(c.Metas)
}

// Size returns the number of distinct characters covered by Ranges.
// Metas and negation are ignored.
func (c *CharClass) Size() int {
	n := 0
	for _, rg := range c.Ranges {
		n += int(rg.Hi-rg.Lo) + 1
	}
	return n
}

func (c *CharClass) writeTo(b *strings.Builder) {
	b.WriteByte('[')
	if c.Negated {
		b.WriteByte('^')
	}
	for _, rg := range c.Ranges {
		writeLiteral(b, rg.Lo, true)
		if rg.Hi != rg.Lo {
			b.WriteByte('-')
			writeLiteral(b, rg.Hi, true)
		}
	}
	for _, k := range c.Metas {
		b.WriteString(k.String())
	}
	b.WriteByte(']')
}

package literal

import (
	"unicode/utf8"

	"github.com/coregx/wholematch/syntax"
)

// ExtractorConfig configures literal extraction limits.
//
// Exceeding any limit makes Extract give up and return nil; the pattern is
// then matched by the automaton instead.
type ExtractorConfig struct {
	// MaxLiterals limits the size of the language.
	// Default: 256.
	MaxLiterals int

	// MaxLiteralLen limits the length of each literal in bytes.
	// Default: 4096.
	MaxLiteralLen int

	// MaxClassSize limits the number of characters a class may expand to.
	// [abc] becomes ["a", "b", "c"]; [a-z] (26 chars) is not expanded.
	// Default: 16.
	MaxClassSize int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   256,
		MaxLiteralLen: 4096,
		MaxClassSize:  16,
	}
}

// maxDepth guards the recursion on deeply nested groups.
const maxDepth = 100

// Extractor computes the exact language of a pattern tree.
//
// Example:
//
//	node, _ := syntax.Parse("(cat|dog)s?")
//	seq := literal.New(literal.DefaultConfig()).Extract(node)
//	// seq = ["cat", "cats", "dog", "dogs"]
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
// Zero fields take their defaults.
func New(config ExtractorConfig) *Extractor {
	def := DefaultConfig()
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = def.MaxLiterals
	}
	if config.MaxLiteralLen <= 0 {
		config.MaxLiteralLen = def.MaxLiteralLen
	}
	if config.MaxClassSize <= 0 {
		config.MaxClassSize = def.MaxClassSize
	}
	return &Extractor{config: config}
}

// Extract returns the set of all strings node matches, deduplicated and
// sorted. It returns nil when that set is infinite or exceeds the limits.
//
// Handles these ops:
//   - OpLiteral: one single-character string
//   - OpCharClass: one string per member, for small non-negated classes
//   - OpConcat: cross product of the parts (empty concat is [""])
//   - OpAlternate: union of the branches
//   - OpGroup: the sub-pattern's language
//   - OpRepeat: x? is x plus ""; x* and x+ only when x is [""]
//
// OpAnyChar and OpMetaClass yield nil, and so does U+FFFD: the matcher
// reads every invalid input byte as U+FFFD, which no byte comparison can do.
func (e *Extractor) Extract(node *syntax.Node) *Seq {
	seq := e.extract(node, 0)
	if seq == nil {
		return nil
	}
	seq.Dedup()
	return seq
}

func (e *Extractor) extract(node *syntax.Node, depth int) *Seq {
	if depth > maxDepth {
		return nil
	}

	switch node.Op {
	case syntax.OpLiteral:
		if node.Rune == utf8.RuneError {
			return nil
		}
		return NewSeq(NewLiteral(utf8.AppendRune(nil, node.Rune)))

	case syntax.OpCharClass:
		return e.extractClass(&node.Class)

	case syntax.OpGroup:
		return e.extract(node.Sub[0], depth+1)

	case syntax.OpConcat:
		seq := NewSeq(NewLiteral(nil))
		for _, sub := range node.Sub {
			part := e.extract(sub, depth+1)
			if part == nil {
				return nil
			}
			part.Dedup()
			if !seq.Cross(part, e.config.MaxLiterals, e.config.MaxLiteralLen) {
				return nil
			}
		}
		return seq

	case syntax.OpAlternate:
		seq := NewSeq()
		for _, sub := range node.Sub {
			branch := e.extract(sub, depth+1)
			if branch == nil {
				return nil
			}
			seq.Union(branch)
			if seq.Len() > e.config.MaxLiterals {
				seq.Dedup()
				if seq.Len() > e.config.MaxLiterals {
					return nil
				}
			}
		}
		return seq

	case syntax.OpRepeat:
		return e.extractRepeat(node, depth)

	default:
		// '.', \d, \w and \s are too large to enumerate
		return nil
	}
}

func (e *Extractor) extractClass(class *syntax.CharClass) *Seq {
	if class.Negated || len(class.Metas) > 0 || class.Size() > e.config.MaxClassSize {
		return nil
	}
	seq := NewSeq()
	for _, rg := range class.Ranges {
		if rg.Contains(utf8.RuneError) {
			return nil
		}
		for r := rg.Lo; r <= rg.Hi; r++ {
			seq.Union(NewSeq(NewLiteral(utf8.AppendRune(nil, r))))
		}
	}
	if seq.Len() > e.config.MaxLiterals {
		return nil
	}
	return seq
}

func (e *Extractor) extractRepeat(node *syntax.Node, depth int) *Seq {
	if node.Min > 1 || (node.Max != 1 && node.Max != -1) {
		// bounded repetition is expanded by the normalizer
		return nil
	}
	sub := e.extract(node.Sub[0], depth+1)
	if sub == nil {
		return nil
	}
	sub.Dedup()

	if node.Max == -1 {
		// x* and x+ are finite only when x matches nothing but ""
		if sub.Len() == 1 && sub.ContainsEmpty() {
			return sub
		}
		if sub.IsEmpty() {
			if node.Min == 0 {
				return NewSeq(NewLiteral(nil))
			}
			return sub
		}
		return nil
	}

	if node.Min == 0 {
		sub.Union(NewSeq(NewLiteral(nil)))
		if sub.Len() > e.config.MaxLiterals {
			return nil
		}
	}
	return sub
}

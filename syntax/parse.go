package syntax

import (
	"fmt"
)

// DefaultMaxNesting is the deepest group nesting accepted by Parse.
const DefaultMaxNesting = 1000

// Parse normalizes pattern and parses the result.
func Parse(pattern string) (*Node, error) {
	normalized, err := Normalize(pattern)
	if err != nil {
		return nil, err
	}
	return ParseNormalized(normalized)
}

// ParseNormalized parses text that contains no bounded repetition.
// An unescaped '{' outside a class is reported as ErrUnexpectedToken.
func ParseNormalized(text string) (*Node, error) {
	return ParseNormalizedWithLimit(text, DefaultMaxNesting)
}

// ParseNormalizedWithLimit is like ParseNormalized but rejects groups nested
// more than maxNesting deep with ErrNestingTooDeep.
func ParseNormalizedWithLimit(text string, maxNesting int) (*Node, error) {
	p := &parser{text: text, src: []rune(text), maxNesting: maxNesting}
	node, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		// parseConcat only stops early on ')'
		return nil, p.errorf(ErrUnexpectedToken, p.pos, "unmatched ')'")
	}
	return node, nil
}

// parser is a recursive-descent parser with one character of lookahead.
// All state lives in the value, so sub-grammars can be exercised directly.
type parser struct {
	text string
	src  []rune
	pos  int

	depth      int // open groups at the cursor
	maxNesting int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune { return p.src[p.pos] }

// alternation := concatenation ('|' concatenation)*
func (p *parser) parseAlternation() (*Node, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	if p.eof() || p.peek() != '|' {
		return first, nil
	}
	branches := []*Node{first}
	for !p.eof() && p.peek() == '|' {
		p.pos++
		branch, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	return Alternate(branches...), nil
}

// concatenation := repetition*
func (p *parser) parseConcat() (*Node, error) {
	var subs []*Node
	for !p.eof() {
		if c := p.peek(); c == '|' || c == ')' {
			break
		}
		sub, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if len(subs) == 1 {
		return subs[0], nil
	}
	return Concat(subs...), nil
}

// repetition := atom ('*' | '+' | '?')?
func (p *parser) parseRepetition() (*Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.eof() {
		return atom, nil
	}
	lo, hi, ok := repeatBounds(p.peek())
	if !ok {
		return atom, nil
	}
	p.pos++
	if !p.eof() {
		if _, _, again := repeatBounds(p.peek()); again {
			return nil, p.errorf(ErrUnexpectedToken, p.pos, "nested repetition operator %q", p.peek())
		}
	}
	return Repeat(atom, lo, hi), nil
}

func repeatBounds(c rune) (lo, hi int, ok bool) {
	switch c {
	case '*':
		return 0, -1, true
	case '+':
		return 1, -1, true
	case '?':
		return 0, 1, true
	}
	return 0, 0, false
}

// atom := literal | '.' | charclass | '(' alternation ')' | escape
func (p *parser) parseAtom() (*Node, error) {
	start := p.pos
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '(':
		p.depth++
		if p.depth > p.maxNesting {
			return nil, p.errorf(ErrNestingTooDeep, start, "more than %d nested groups", p.maxNesting)
		}
		inner, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		p.depth--
		if p.eof() {
			return nil, p.errorf(ErrUnterminatedExpression, start, "missing ')'")
		}
		p.pos++
		return Group(inner), nil
	case '[':
		return p.parseClass(start)
	case '.':
		return &Node{Op: OpAnyChar}, nil
	case '\\':
		return p.parseEscape(start)
	case '*', '+', '?':
		return nil, p.errorf(ErrUnexpectedToken, start, "missing argument to repetition operator %q", c)
	case ']':
		return nil, p.errorf(ErrUnexpectedToken, start, "unmatched ']'")
	case '{':
		return nil, p.errorf(ErrUnexpectedToken, start, "bounded repetition must be normalized first")
	}
	return Literal(c), nil
}

// escape := '\' metachar_or_literal
func (p *parser) parseEscape(start int) (*Node, error) {
	if p.eof() {
		return nil, p.errorf(ErrUnterminatedExpression, start, "trailing backslash")
	}
	c := p.src[p.pos]
	p.pos++
	if k, ok := metaByEscape[c]; ok {
		return &Node{Op: OpMetaClass, Meta: k}, nil
	}
	return Literal(c), nil
}

// charclass := '[' '^'? classitem+ ']'
// classitem := char | char '-' char | escape
//
// A '-' that can't form a range (first or last item) is literal.
func (p *parser) parseClass(start int) (*Node, error) {
	var class CharClass
	if !p.eof() && p.peek() == '^' {
		class.Negated = true
		p.pos++
	}
	items := 0
	for {
		if p.eof() {
			return nil, p.errorf(ErrUnterminatedExpression, start, "missing ']'")
		}
		if p.peek() == ']' {
			if items == 0 {
				return nil, p.errorf(ErrUnexpectedToken, p.pos, "empty character class")
			}
			p.pos++
			break
		}
		itemPos := p.pos
		lo, meta, err := p.parseClassChar(start)
		if err != nil {
			return nil, err
		}
		items++
		if meta != 0 {
			if p.atRangeDash() {
				return nil, p.errorf(ErrInvalidRange, itemPos, "meta class %s can't start a range", meta)
			}
			class.Metas = append(class.Metas, meta)
			continue
		}
		hi := lo
		if p.atRangeDash() {
			p.pos++
			hiPos := p.pos
			var hiMeta MetaKind
			hi, hiMeta, err = p.parseClassChar(start)
			if err != nil {
				return nil, err
			}
			if hiMeta != 0 {
				return nil, p.errorf(ErrInvalidRange, hiPos, "meta class %s can't end a range", hiMeta)
			}
			if lo > hi {
				return nil, p.errorf(ErrInvalidRange, itemPos, "%q-%q", lo, hi)
			}
		}
		class.Ranges = append(class.Ranges, Range{Lo: lo, Hi: hi})
	}
	class.canonicalize()
	return &Node{Op: OpCharClass, Class: class}, nil
}

// atRangeDash reports whether the cursor is on a '-' that joins two class
// characters.
func (p *parser) atRangeDash() bool {
	return p.pos+1 < len(p.src) && p.src[p.pos] == '-' && p.src[p.pos+1] != ']'
}

// parseClassChar reads one class character or escape. meta is non-zero when
// the escape names a meta class.
func (p *parser) parseClassChar(classStart int) (c rune, meta MetaKind, err error) {
	c = p.src[p.pos]
	p.pos++
	if c != '\\' {
		return c, 0, nil
	}
	if p.eof() {
		return 0, 0, p.errorf(ErrUnterminatedExpression, classStart, "missing ']'")
	}
	c = p.src[p.pos]
	p.pos++
	if k, ok := metaByEscape[c]; ok {
		return 0, k, nil
	}
	return c, 0, nil
}

func (p *parser) errorf(kind error, pos int, format string, args ...any) error {
	return &Error{
		Kind:    kind,
		Pattern: p.text,
		Pos:     pos,
		Detail:  fmt.Sprintf(format, args...),
	}
}

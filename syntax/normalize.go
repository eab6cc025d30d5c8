package syntax

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultMaxRepeat is the largest bound accepted by Normalize.
const DefaultMaxRepeat = 1000

// maxExpansion caps the length, in characters, of a normalized pattern.
// Nested bounds multiply: ((a{1000}){1000}){1000} would be 10^9 characters.
const maxExpansion = 1 << 20

// unitKind classifies each character of the normalizer output so the atom
// scanner can tell syntax from literal text without re-lexing.
type unitKind uint8

const (
	kindLiteral   unitKind = iota // plain character outside a class
	kindSyntax                    // one of ( ) | * + ? . ] outside a class
	kindEscape                    // backslash that starts an escape
	kindEscaped                   // character following kindEscape
	kindClassOpen                 // [ that opens a class
	kindClassBody                 // anything inside a class, escapes included
	kindClassClose                // ] that closes a class
)

// Normalize rewrites every bounded repetition in pattern into primitive
// operators, using DefaultMaxRepeat as the bound limit.
//
//	a{2,3}     -> aaa?
//	a{2,}      -> aaa*
//	(dog){0,2} -> (dog)?(dog)?
//	x{0}       -> (removed)
//
// The result contains no bounded repetition, so normalizing it again is a
// no-op.
func Normalize(pattern string) (string, error) {
	return NormalizeWithLimit(pattern, DefaultMaxRepeat)
}

// NormalizeWithLimit is like Normalize but rejects bounds above maxRepeat.
func NormalizeWithLimit(pattern string, maxRepeat int) (string, error) {
	if !strings.ContainsRune(pattern, '{') {
		return pattern, nil
	}
	n := &normalizer{
		pattern:   pattern,
		src:       []rune(pattern),
		maxRepeat: maxRepeat,
	}
	if err := n.run(); err != nil {
		return "", err
	}
	return string(n.out), nil
}

type normalizer struct {
	pattern   string
	src       []rune
	pos       int
	maxRepeat int

	out   []rune
	kinds []unitKind // parallel to out
}

func (n *normalizer) run() error {
	for n.pos < len(n.src) {
		c := n.src[n.pos]
		switch c {
		case '\\':
			n.emit(c, kindEscape)
			n.pos++
			if n.pos < len(n.src) {
				n.emit(n.src[n.pos], kindEscaped)
				n.pos++
			}
		case '[':
			n.copyClass()
		case '{':
			if err := n.expand(); err != nil {
				return err
			}
		case '(', ')', '|', '*', '+', '?', '.', ']':
			n.emit(c, kindSyntax)
			n.pos++
		default:
			n.emit(c, kindLiteral)
			n.pos++
		}
	}
	return nil
}

func (n *normalizer) emit(c rune, k unitKind) {
	n.out = append(n.out, c)
	n.kinds = append(n.kinds, k)
}

// copyClass copies a bracketed class verbatim. An unterminated class runs to
// the end of input; the parser reports it.
func (n *normalizer) copyClass() {
	n.emit('[', kindClassOpen)
	n.pos++
	if n.pos < len(n.src) && n.src[n.pos] == '^' {
		n.emit('^', kindClassBody)
		n.pos++
	}
	for n.pos < len(n.src) {
		c := n.src[n.pos]
		n.pos++
		switch c {
		case ']':
			n.emit(c, kindClassClose)
			return
		case '\\':
			n.emit(c, kindClassBody)
			if n.pos < len(n.src) {
				n.emit(n.src[n.pos], kindClassBody)
				n.pos++
			}
		default:
			n.emit(c, kindClassBody)
		}
	}
}

// expand replaces the atom at the end of the output and the bound at n.pos
// with the equivalent primitive form.
func (n *normalizer) expand() error {
	bracePos := n.pos
	lo, hi, end, err := n.parseBound()
	if err != nil {
		return err
	}
	start, err := n.atomStart(bracePos)
	if err != nil {
		return err
	}

	optional := hi - lo
	if hi == -1 {
		optional = 1
	}
	if size := start + (len(n.out)-start)*(lo+optional) + optional; size > maxExpansion {
		return n.errorf(bracePos, "expansion exceeds %d characters", maxExpansion)
	}

	atom := slices.Clone(n.out[start:])
	atomKinds := slices.Clone(n.kinds[start:])
	n.out = n.out[:start]
	n.kinds = n.kinds[:start]

	for range lo {
		n.emitAtom(atom, atomKinds)
	}
	if hi == -1 {
		n.emitAtom(atom, atomKinds)
		n.emit('*', kindSyntax)
	} else {
		for range hi - lo {
			n.emitAtom(atom, atomKinds)
			n.emit('?', kindSyntax)
		}
	}

	n.pos = end
	if n.pos < len(n.src) && strings.ContainsRune("*+?{", n.src[n.pos]) {
		return n.errorf(n.pos, "repetition operator %q follows bounded repetition", n.src[n.pos])
	}
	return nil
}

func (n *normalizer) emitAtom(atom []rune, kinds []unitKind) {
	n.out = append(n.out, atom...)
	n.kinds = append(n.kinds, kinds...)
}

// parseBound parses {m}, {m,} or {m,n} starting at the opening brace and
// returns the bounds (hi == -1 when unbounded) and the offset past '}'.
func (n *normalizer) parseBound() (lo, hi, end int, err error) {
	i := n.pos + 1
	lo, i, ok := n.number(i)
	if !ok {
		return 0, 0, 0, n.errorf(n.pos, "missing lower bound")
	}
	hi = lo
	if i < len(n.src) && n.src[i] == ',' {
		i++
		hi = -1
		if i < len(n.src) && isDigit(n.src[i]) {
			hi, i, _ = n.number(i)
		}
	}
	if i >= len(n.src) || n.src[i] != '}' {
		return 0, 0, 0, n.errorf(n.pos, "missing closing brace")
	}
	if hi != -1 && lo > hi {
		return 0, 0, 0, n.errorf(n.pos, "minimum %d exceeds maximum %d", lo, hi)
	}
	if lo > n.maxRepeat || hi > n.maxRepeat {
		return 0, 0, 0, n.errorf(n.pos, "bound exceeds limit %d", n.maxRepeat)
	}
	return lo, hi, i + 1, nil
}

// number reads a decimal number at i. Values saturate well above any sane
// limit so overflow can't wrap.
func (n *normalizer) number(i int) (value, next int, ok bool) {
	const saturate = 1 << 30
	start := i
	for i < len(n.src) && isDigit(n.src[i]) {
		value = value*10 + int(n.src[i]-'0')
		if value > saturate {
			value = saturate
		}
		i++
	}
	return value, i, i > start
}

// atomStart scans the output right to left for the start of the atom that
// the bound applies to: a balanced group, a class, an escape or a single
// character.
func (n *normalizer) atomStart(bracePos int) (int, error) {
	last := len(n.out) - 1
	if last < 0 {
		return 0, n.errorf(bracePos, "bounded repetition has no atom")
	}
	switch n.kinds[last] {
	case kindLiteral:
		return last, nil
	case kindEscaped:
		return last - 1, nil
	case kindClassClose:
		for i := last - 1; i >= 0; i-- {
			if n.kinds[i] == kindClassOpen {
				return i, nil
			}
		}
	case kindSyntax:
		switch n.out[last] {
		case '.':
			return last, nil
		case ')':
			depth := 0
			for i := last; i >= 0; i-- {
				if n.kinds[i] != kindSyntax {
					continue
				}
				switch n.out[i] {
				case ')':
					depth++
				case '(':
					depth--
					if depth == 0 {
						return i, nil
					}
				}
			}
			return 0, n.errorf(bracePos, "unbalanced group before bound")
		}
	}
	return 0, n.errorf(bracePos, "bounded repetition has no atom")
}

func (n *normalizer) errorf(pos int, format string, args ...any) error {
	return &Error{
		Kind:    ErrMalformedQuantifier,
		Pattern: n.pattern,
		Pos:     pos,
		Detail:  fmt.Sprintf(format, args...),
	}
}

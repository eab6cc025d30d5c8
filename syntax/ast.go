// Package syntax turns pattern text into a tree of pattern nodes.
//
// Compilation of a pattern goes through two stages in this package:
//
//  1. Normalize rewrites bounded repetition ({m}, {m,}, {m,n}) into
//     copies of the repeated atom followed by *, + or ? operators.
//  2. ParseNormalized runs a recursive-descent parser over the rewritten
//     text and produces a *Node tree.
//
// Parse performs both stages. The resulting tree is immutable and carries
// no parent links; consumers walk it top-down.
//
// Supported syntax:
//
//	c          literal character
//	.          any character
//	a|b        alternation
//	(re)       grouping (no capture)
//	re* re+ re?  zero-or-more, one-or-more, zero-or-one
//	re{m} re{m,} re{m,n}  bounded repetition
//	[abc] [^a-z]  character class, negated class, ranges
//	\d \w \s   digit, word character, whitespace (also inside classes)
//	\x         any other escaped character matches itself
package syntax

import (
	"fmt"
	"strings"
)

// Op identifies the kind of a Node.
type Op uint8

const (
	// OpLiteral matches Node.Rune.
	OpLiteral Op = iota + 1

	// OpAnyChar matches any single character.
	OpAnyChar

	// OpCharClass matches one character against Node.Class.
	OpCharClass

	// OpMetaClass matches one character against Node.Meta.
	OpMetaClass

	// OpGroup is a parenthesized Sub[0]. It has no capture semantics.
	OpGroup

	// OpConcat matches Sub in order. An empty Sub matches the empty string.
	OpConcat

	// OpAlternate matches any one of Sub.
	OpAlternate

	// OpRepeat matches Sub[0] between Min and Max times; Max == -1 is unbounded.
	// After normalization only (0,1), (0,-1) and (1,-1) occur.
	OpRepeat
)

// String returns a human-readable name for the op.
func (op Op) String() string {
	switch op {
	case OpLiteral:
		return "Literal"
	case OpAnyChar:
		return "AnyChar"
	case OpCharClass:
		return "CharClass"
	case OpMetaClass:
		return "MetaClass"
	case OpGroup:
		return "Group"
	case OpConcat:
		return "Concat"
	case OpAlternate:
		return "Alternate"
	case OpRepeat:
		return "Repeat"
	default:
		return fmt.Sprintf("Op(%d)", op)
	}
}

// Node is a node of a parsed pattern tree.
// Which fields are meaningful depends on Op.
type Node struct {
	Op Op

	Rune  rune      // OpLiteral
	Class CharClass // OpCharClass
	Meta  MetaKind  // OpMetaClass

	Min, Max int // OpRepeat

	Sub []*Node // OpGroup, OpConcat, OpAlternate, OpRepeat
}

// IsLeaf reports whether n consumes exactly one character.
func (n *Node) IsLeaf() bool {
	switch n.Op {
	case OpLiteral, OpAnyChar, OpCharClass, OpMetaClass:
		return true
	}
	return false
}

// MatchesRune reports whether the leaf node n accepts r.
// It returns false for non-leaf nodes.
func (n *Node) MatchesRune(r rune) bool {
	switch n.Op {
	case OpLiteral:
		return n.Rune == r
	case OpAnyChar:
		return true
	case OpCharClass:
		return n.Class.Matches(r)
	case OpMetaClass:
		return n.Meta.Matches(r)
	}
	return false
}

// String renders n back into normalized pattern text.
// Parsing the result yields an equivalent tree.
func (n *Node) String() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	switch n.Op {
	case OpLiteral:
		writeLiteral(b, n.Rune, false)
	case OpAnyChar:
		b.WriteByte('.')
	case OpCharClass:
		n.Class.writeTo(b)
	case OpMetaClass:
		b.WriteString(n.Meta.String())
	case OpGroup:
		b.WriteByte('(')
		n.Sub[0].writeTo(b)
		b.WriteByte(')')
	case OpConcat:
		for _, sub := range n.Sub {
			// an alternation directly under a concat only comes from
			// hand-built trees; keep it scoped
			if sub.Op == OpAlternate {
				b.WriteByte('(')
				sub.writeTo(b)
				b.WriteByte(')')
				continue
			}
			sub.writeTo(b)
		}
	case OpAlternate:
		for i, sub := range n.Sub {
			if i > 0 {
				b.WriteByte('|')
			}
			sub.writeTo(b)
		}
	case OpRepeat:
		sub := n.Sub[0]
		if sub.IsLeaf() || sub.Op == OpGroup {
			sub.writeTo(b)
		} else {
			b.WriteByte('(')
			sub.writeTo(b)
			b.WriteByte(')')
		}
		b.WriteString(repeatOp(n.Min, n.Max))
	default:
		fmt.Fprintf(b, "<%s>", n.Op)
	}
}

func repeatOp(lo, hi int) string {
	switch {
	case lo == 0 && hi == 1:
		return "?"
	case lo == 0 && hi == -1:
		return "*"
	case lo == 1 && hi == -1:
		return "+"
	case hi == -1:
		return fmt.Sprintf("{%d,}", lo)
	case lo == hi:
		return fmt.Sprintf("{%d}", lo)
	default:
		return fmt.Sprintf("{%d,%d}", lo, hi)
	}
}

// metaChars are significant outside a class and need escaping to be literal.
const metaChars = `\.*+?|()[]{}`

// classMetaChars are significant inside a class.
const classMetaChars = `\]^-[`

func writeLiteral(b *strings.Builder, r rune, inClass bool) {
	special := metaChars
	if inClass {
		special = classMetaChars
	}
	if strings.ContainsRune(special, r) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

// Literal returns a node matching r.
func Literal(r rune) *Node { return &Node{Op: OpLiteral, Rune: r} }

// Concat returns a node matching subs in order.
func Concat(subs ...*Node) *Node { return &Node{Op: OpConcat, Sub: subs} }

// Alternate returns a node matching any of subs.
func Alternate(subs ...*Node) *Node { return &Node{Op: OpAlternate, Sub: subs} }

// Group returns a grouping node around sub.
func Group(sub *Node) *Node { return &Node{Op: OpGroup, Sub: []*Node{sub}} }

// Repeat returns a repetition of sub. Max == -1 means unbounded.
func Repeat(sub *Node, lo, hi int) *Node {
	return &Node{Op: OpRepeat, Min: lo, Max: hi, Sub: []*Node{sub}}
}

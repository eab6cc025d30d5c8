// Package literal extracts the exact finite language of a pattern, when it
// has one, so that whole-input matching can skip the automaton.
//
// Key concepts:
//   - A Literal is one concrete string of the language, as UTF-8 bytes
//   - A Seq is the set of all strings the pattern accepts (e.g. from cat|dog)
//   - A Seq is only produced when the language is finite and small
package literal

import (
	"bytes"
	"slices"
)

// Literal is one string accepted by a pattern.
type Literal struct {
	// Bytes contains the UTF-8 encoding of the string.
	Bytes []byte
}

// NewLiteral creates a new Literal from the given byte sequence.
//
// Example:
//
//	lit := literal.NewLiteral([]byte("hello"))
//	fmt.Println(lit.Len()) // Output: 5
func NewLiteral(b []byte) Literal {
	return Literal{Bytes: b}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// IsEmpty reports whether the literal is the empty string.
func (l Literal) IsEmpty() bool {
	return len(l.Bytes) == 0
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes}"
func (l Literal) String() string {
	return "literal{" + string(l.Bytes) + "}"
}

// Seq is a set of literals: the complete language of a pattern.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo")),
//	    literal.NewLiteral([]byte("bar")),
//	)
//	fmt.Println(seq.Len()) // Output: 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
// An empty Seq is the empty language, which no input matches.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// ContainsEmpty reports whether the empty string is in the sequence.
func (s *Seq) ContainsEmpty() bool {
	if s == nil {
		return false
	}
	for _, lit := range s.literals {
		if lit.IsEmpty() {
			return true
		}
	}
	return false
}

// Dedup sorts the literals and removes duplicates.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("b")),
//	    literal.NewLiteral([]byte("a")),
//	    literal.NewLiteral([]byte("b")),
//	)
//	seq.Dedup()
//	// seq = ["a", "b"]
func (s *Seq) Dedup() {
	if s == nil || len(s.literals) < 2 {
		return
	}
	slices.SortFunc(s.literals, func(a, b Literal) int {
		return bytes.Compare(a.Bytes, b.Bytes)
	})
	s.literals = slices.CompactFunc(s.literals, func(a, b Literal) bool {
		return bytes.Equal(a.Bytes, b.Bytes)
	})
}

// IsSubstringFree reports whether no literal occurs inside another one.
// Duplicates count as substrings, so call Dedup first.
//
// For a substring-free set, a match that starts at offset 0 and ends at the
// end of the input is the input itself, whichever literal is reported
// first by a multi-pattern search.
func (s *Seq) IsSubstringFree() bool {
	if s == nil {
		return true
	}
	for i, a := range s.literals {
		for j, b := range s.literals {
			if i != j && bytes.Contains(b.Bytes, a.Bytes) {
				return false
			}
		}
	}
	return true
}

// Union appends the literals of other to s.
func (s *Seq) Union(other *Seq) {
	if other == nil {
		return
	}
	s.literals = append(s.literals, other.literals...)
}

// Cross replaces s with every literal of s followed by every literal of other.
// Returns false, leaving s unchanged, if the product would hold more than
// maxLiterals literals or a literal longer than maxLen bytes.
//
// Example:
//
//	a := literal.NewSeq(literal.NewLiteral([]byte("a")), literal.NewLiteral([]byte("b")))
//	b := literal.NewSeq(literal.NewLiteral([]byte("x")), literal.NewLiteral([]byte("y")))
//	a.Cross(b, 64, 64)
//	// a = ["ax", "ay", "bx", "by"]
func (s *Seq) Cross(other *Seq, maxLiterals, maxLen int) bool {
	if s.Len()*other.Len() > maxLiterals {
		return false
	}

	product := make([]Literal, 0, s.Len()*other.Len())
	for _, left := range s.literals {
		for _, right := range other.literals {
			if left.Len()+right.Len() > maxLen {
				return false
			}
			b := make([]byte, 0, left.Len()+right.Len())
			b = append(b, left.Bytes...)
			b = append(b, right.Bytes...)
			product = append(product, Literal{Bytes: b})
		}
	}
	s.literals = product
	return true
}

// Bytes returns the literals as byte slices, in order.
func (s *Seq) Bytes() [][]byte {
	out := make([][]byte, s.Len())
	for i := range out {
		out[i] = s.literals[i].Bytes
	}
	return out
}

// String returns a debug representation of the sequence.
func (s *Seq) String() string {
	var b bytes.Buffer
	b.WriteByte('[')
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.literals[i].String())
	}
	b.WriteByte(']')
	return b.String()
}

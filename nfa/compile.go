package nfa

import (
	"errors"
	"fmt"

	"github.com/coregx/wholematch/syntax"
)

// CompilerConfig configures NFA compilation behavior
type CompilerConfig struct {
	// MaxStates caps the number of NFA states. Bounded repetition is
	// expanded before compilation, so this is what keeps patterns like
	// (a{1000}){1000} from exhausting memory.
	// Default: 100000
	MaxStates int

	// MaxRecursionDepth limits the depth of the pattern tree to prevent
	// stack overflow on hand-built trees. Parsed patterns are already
	// bounded by their group nesting limit.
	// Default: 5000
	MaxRecursionDepth int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxStates:         100_000,
		MaxRecursionDepth: 5000,
	}
}

// Compiler compiles pattern trees into Thompson NFAs.
// A Compiler is not safe for concurrent use; the NFAs it returns are.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	depth   int // current recursion depth
}

// NewCompiler creates a new NFA compiler with the given configuration
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxStates <= 0 {
		config.MaxStates = DefaultCompilerConfig().MaxStates
	}
	if config.MaxRecursionDepth <= 0 {
		config.MaxRecursionDepth = DefaultCompilerConfig().MaxRecursionDepth
	}
	return &Compiler{
		config:  config,
		builder: NewBuilder(),
	}
}

// NewDefaultCompiler creates a new NFA compiler with default configuration
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile parses pattern (bounded repetition included) and compiles it.
func (c *Compiler) Compile(pattern string) (*NFA, error) {
	node, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	nfa, err := c.CompileNode(node)
	if err != nil {
		var cerr *CompileError
		if errors.As(err, &cerr) {
			cerr.Pattern = pattern
		}
		return nil, err
	}
	return nfa, nil
}

// CompileNode compiles a parsed pattern tree into an NFA.
func (c *Compiler) CompileNode(node *syntax.Node) (*NFA, error) {
	c.builder = NewBuilder()
	c.depth = 0

	// Returns (start, end) state IDs for the compiled fragment
	start, end, err := c.compileNode(node)
	if err != nil {
		return nil, err
	}

	matchID := c.builder.AddMatch()
	if err := c.builder.Patch(end, matchID); err != nil {
		return nil, &CompileError{
			Err: fmt.Errorf("failed to connect to match state: %w", err),
		}
	}
	c.builder.SetStart(start)

	nfa, err := c.builder.Build()
	if err != nil {
		return nil, &CompileError{Err: err}
	}
	return nfa, nil
}

// compileNode recursively compiles one node.
// Returns (start, end) state IDs for the compiled fragment.
// 'end' always has a single unset target that the caller patches.
func (c *Compiler) compileNode(node *syntax.Node) (start, end StateID, err error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.config.MaxRecursionDepth {
		return InvalidState, InvalidState, &CompileError{
			Err: fmt.Errorf("%w: pattern tree deeper than %d", ErrTooComplex, c.config.MaxRecursionDepth),
		}
	}
	if c.builder.States() > c.config.MaxStates {
		return InvalidState, InvalidState, &CompileError{
			Err: fmt.Errorf("%w: more than %d states", ErrTooComplex, c.config.MaxStates),
		}
	}

	switch node.Op {
	case syntax.OpLiteral:
		id := c.builder.AddRune(node.Rune, InvalidState)
		return id, id, nil
	case syntax.OpAnyChar:
		id := c.builder.AddAny(InvalidState)
		return id, id, nil
	case syntax.OpCharClass:
		id := c.builder.AddClass(node.Class, InvalidState)
		return id, id, nil
	case syntax.OpMetaClass:
		class := syntax.CharClass{Metas: []syntax.MetaKind{node.Meta}}
		id := c.builder.AddClass(class, InvalidState)
		return id, id, nil
	case syntax.OpGroup:
		return c.compileNode(node.Sub[0])
	case syntax.OpConcat:
		return c.compileConcat(node.Sub)
	case syntax.OpAlternate:
		return c.compileAlternate(node.Sub)
	case syntax.OpRepeat:
		return c.compileRepeat(node.Sub[0], node.Min, node.Max)
	default:
		return InvalidState, InvalidState, &CompileError{
			Err: fmt.Errorf("%w: %s", ErrInvalidNode, node.Op),
		}
	}
}

// compileConcat chains fragments: each end is patched to the next start.
func (c *Compiler) compileConcat(subs []*syntax.Node) (start, end StateID, err error) {
	if len(subs) == 0 {
		return c.compileEmptyMatch()
	}

	start, end, err = c.compileNode(subs[0])
	if err != nil {
		return InvalidState, InvalidState, err
	}
	for _, sub := range subs[1:] {
		nextStart, nextEnd, err := c.compileNode(sub)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		if err := c.builder.Patch(end, nextStart); err != nil {
			return InvalidState, InvalidState, err
		}
		end = nextEnd
	}
	return start, end, nil
}

// compileAlternate compiles alternation (e.g., "a|b|c")
func (c *Compiler) compileAlternate(subs []*syntax.Node) (start, end StateID, err error) {
	if len(subs) == 0 {
		return InvalidState, InvalidState, &CompileError{
			Err: fmt.Errorf("%w: alternation without branches", ErrInvalidNode),
		}
	}
	if len(subs) == 1 {
		return c.compileNode(subs[0])
	}

	starts := make([]StateID, 0, len(subs))
	ends := make([]StateID, 0, len(subs))
	for _, sub := range subs {
		s, e, err := c.compileNode(sub)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		starts = append(starts, s)
		ends = append(ends, e)
	}

	split := c.buildSplitChain(starts)

	// all alternatives converge on one join state
	join := c.builder.AddEpsilon(InvalidState)
	for _, e := range ends {
		if err := c.builder.Patch(e, join); err != nil {
			return InvalidState, InvalidState, err
		}
	}
	return split, join, nil
}

// buildSplitChain builds Split(alt1, Split(alt2, Split(alt3, ...)))
func (c *Compiler) buildSplitChain(targets []StateID) StateID {
	if len(targets) == 1 {
		return targets[0]
	}
	right := c.buildSplitChain(targets[1:])
	return c.builder.AddSplit(targets[0], right)
}

func (c *Compiler) compileRepeat(sub *syntax.Node, lo, hi int) (start, end StateID, err error) {
	switch {
	case lo == 0 && hi == 1:
		return c.compileQuest(sub)
	case lo == 0 && hi == -1:
		return c.compileStar(sub)
	case lo == 1 && hi == -1:
		return c.compilePlus(sub)
	}
	return InvalidState, InvalidState, &CompileError{
		Err: fmt.Errorf("%w: repetition {%d,%d} was not normalized", ErrInvalidNode, lo, hi),
	}
}

// compileStar compiles a* (zero or more)
//
//	split -> [sub, end]
//	sub   -> split
func (c *Compiler) compileStar(sub *syntax.Node) (start, end StateID, err error) {
	subStart, subEnd, err := c.compileNode(sub)
	if err != nil {
		return InvalidState, InvalidState, err
	}

	end = c.builder.AddEpsilon(InvalidState)
	split := c.builder.AddSplit(subStart, end)
	if err := c.builder.Patch(subEnd, split); err != nil {
		return InvalidState, InvalidState, err
	}
	return split, end, nil
}

// compilePlus compiles a+ (one or more)
//
//	sub   -> split
//	split -> [sub, end]
func (c *Compiler) compilePlus(sub *syntax.Node) (start, end StateID, err error) {
	subStart, subEnd, err := c.compileNode(sub)
	if err != nil {
		return InvalidState, InvalidState, err
	}

	end = c.builder.AddEpsilon(InvalidState)
	split := c.builder.AddSplit(subStart, end)
	if err := c.builder.Patch(subEnd, split); err != nil {
		return InvalidState, InvalidState, err
	}
	return subStart, end, nil
}

// compileQuest compiles a? (zero or one)
//
//	split -> [sub, end]
//	sub   -> end
func (c *Compiler) compileQuest(sub *syntax.Node) (start, end StateID, err error) {
	subStart, subEnd, err := c.compileNode(sub)
	if err != nil {
		return InvalidState, InvalidState, err
	}

	end = c.builder.AddEpsilon(InvalidState)
	split := c.builder.AddSplit(subStart, end)
	if err := c.builder.Patch(subEnd, end); err != nil {
		return InvalidState, InvalidState, err
	}
	return split, end, nil
}

// compileEmptyMatch compiles the empty string as a lone epsilon state.
func (c *Compiler) compileEmptyMatch() (start, end StateID, err error) {
	id := c.builder.AddEpsilon(InvalidState)
	return id, id, nil
}

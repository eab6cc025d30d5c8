package meta

import (
	"errors"
	"log/slog"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/wholematch/literal"
	"github.com/coregx/wholematch/nfa"
	"github.com/coregx/wholematch/syntax"
)

// Engine is a compiled pattern together with the strategy that answers it.
//
// Thread safety: Engine is immutable after compilation. IsMatch may be
// called from multiple goroutines; scratch space comes from a pool.
type Engine struct {
	pattern  string
	config   Config
	nfa      *nfa.NFA
	pikevm   *nfa.PikeVM
	pool     *searchStatePool
	strategy Strategy
	literals *literal.Seq

	literal     string                 // for UseLiteral
	ahoCorasick *ahocorasick.Automaton // for UseAhoCorasick
}

// Compile compiles pattern with DefaultConfig.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig runs the pipeline normalize -> parse -> NFA and selects
// a strategy. The first failing stage aborts compilation.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	log := config.logger()

	normalized, err := syntax.NormalizeWithLimit(pattern, config.MaxRepeat)
	if err != nil {
		return nil, err
	}
	node, err := syntax.ParseNormalizedWithLimit(normalized, config.MaxNesting)
	if err != nil {
		return nil, err
	}

	compiler := nfa.NewCompiler(nfa.CompilerConfig{
		MaxStates: config.MaxStates,
		// each group level adds at most Group, Alternate, Concat and Repeat
		MaxRecursionDepth: 4*config.MaxNesting + 4,
	})
	nfaEngine, err := compiler.CompileNode(node)
	if err != nil {
		var cerr *nfa.CompileError
		if errors.As(err, &cerr) {
			cerr.Pattern = pattern
		}
		return nil, err
	}

	e := &Engine{
		pattern: pattern,
		config:  config,
		nfa:     nfaEngine,
		pikevm:  nfa.NewPikeVM(nfaEngine),
	}
	e.pool = newSearchStatePool(e.pikevm)

	if config.EnableLiteralFastPath {
		extractor := literal.New(literal.ExtractorConfig{MaxLiterals: config.MaxLiterals})
		e.literals = extractor.Extract(node)
	}
	e.strategy = SelectStrategy(e.literals, config)
	e.buildStrategy(log)

	log.Debug("compiled pattern",
		slog.String("pattern", pattern),
		slog.Int("states", nfaEngine.States()),
		slog.Int("literals", e.literals.Len()),
		slog.String("strategy", e.strategy.String()))
	return e, nil
}

// buildStrategy prepares the data the selected strategy needs. A strategy
// that cannot be built falls back to UseNFA.
func (e *Engine) buildStrategy(log *slog.Logger) {
	switch e.strategy {
	case UseLiteral:
		e.literal = string(e.literals.Get(0).Bytes)

	case UseAhoCorasick:
		builder := ahocorasick.NewBuilder()
		for _, lit := range e.literals.Bytes() {
			builder.AddPattern(lit)
		}
		auto, err := builder.Build()
		if err != nil {
			log.Debug("aho-corasick build failed, using NFA",
				slog.String("pattern", e.pattern),
				slog.Any("error", err))
			e.strategy = UseNFA
			return
		}
		e.ahoCorasick = auto
	}
}

// IsMatch reports whether input as a whole is accepted by the pattern.
func (e *Engine) IsMatch(input string) bool {
	switch e.strategy {
	case UseLiteral:
		return input == e.literal
	case UseAhoCorasick:
		return e.isMatchAhoCorasick(input)
	default:
		return e.isMatchNFA(input)
	}
}

func (e *Engine) isMatchNFA(input string) bool {
	state := e.pool.get()
	defer e.pool.put(state)
	return e.pikevm.IsMatchWithState(input, state.pikevm)
}

// isMatchAhoCorasick relies on the literal set being substring-free: any
// match that starts at 0 and ends at len(input) is input itself.
func (e *Engine) isMatchAhoCorasick(input string) bool {
	if input == "" {
		return false
	}
	m := e.ahoCorasick.Find([]byte(input), 0)
	return m != nil && m.Start == 0 && m.End == len(input)
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the execution strategy selected at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// NFA returns the compiled automaton. It is built for every strategy.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// Literals returns the exact language of the pattern, or nil when it is
// infinite, too large, or the fast path is disabled.
func (e *Engine) Literals() *literal.Seq {
	return e.literals
}

package literal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/wholematch/syntax"
)

func extract(t *testing.T, e *Extractor, pattern string) *Seq {
	t.Helper()
	node, err := syntax.Parse(pattern)
	require.NoError(t, err)
	return e.Extract(node)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string // nil means no finite language
	}{
		{"hello", []string{"hello"}},
		{"", []string{""}},
		{"cat|dog", []string{"cat", "dog"}},
		{"(cat|dog)s?", []string{"cat", "cats", "dog", "dogs"}},
		{"[abc]x", []string{"ax", "bx", "cx"}},
		{"a{2,3}", []string{"aa", "aaa"}},
		{"(a|b){2}", []string{"aa", "ab", "ba", "bb"}},
		{"a|a|a", []string{"a"}},
		{"a?", []string{"", "a"}},
		{"()*", []string{""}},
		{"(|)+", []string{""}},
		{"мир", []string{"мир"}},
		{`\.\*`, []string{".*"}},
		{"a*", nil},
		{"a+", nil},
		{"a.c", nil},
		{`\d`, nil},
		{"[^a]", nil},
		{"[a-z]", nil},
		{`[a\d]`, nil},
		{"(cat|.)", nil},
		{"a\uFFFD", nil},
		{"[\uFFFD]", nil},
	}

	e := New(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			seq := extract(t, e, tt.pattern)
			if tt.want == nil {
				assert.Nil(t, seq)
				return
			}
			require.NotNil(t, seq)
			assert.Equal(t, tt.want, strs(seq))
		})
	}
}

func TestExtract_Limits(t *testing.T) {
	e := New(ExtractorConfig{MaxLiterals: 8, MaxLiteralLen: 10, MaxClassSize: 3})

	// 2^3 = 8 fits, 2^4 = 16 does not
	assert.NotNil(t, extract(t, e, "[ab][ab][ab]"))
	assert.Nil(t, extract(t, e, "[ab][ab][ab][ab]"))

	assert.NotNil(t, extract(t, e, "[abc]"))
	assert.Nil(t, extract(t, e, "[abcd]"))

	assert.NotNil(t, extract(t, e, strings.Repeat("x", 10)))
	assert.Nil(t, extract(t, e, strings.Repeat("x", 11)))

	assert.Nil(t, extract(t, e, "a|b|c|d|e|f|g|h|i"))
	// duplicates do not count against the limit
	assert.NotNil(t, extract(t, e, "a|a|a|a|a|a|a|a|a|b"))
}

func TestExtract_Depth(t *testing.T) {
	e := New(DefaultConfig())
	deep := strings.Repeat("(", maxDepth+5) + "a" + strings.Repeat(")", maxDepth+5)
	assert.Nil(t, extract(t, e, deep))
}

func TestExtract_Unnormalized(t *testing.T) {
	e := New(DefaultConfig())
	assert.Nil(t, e.Extract(syntax.Repeat(syntax.Literal('a'), 2, 3)))
	assert.Equal(t, 0, e.Extract(syntax.Alternate()).Len())
}

func TestNew_Defaults(t *testing.T) {
	e := New(ExtractorConfig{})
	assert.Equal(t, DefaultConfig(), e.config)
}

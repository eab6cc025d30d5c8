package wholematch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchCase struct {
	input string
	want  bool
}

func runCases(t *testing.T, pattern string, cases []matchCase) {
	t.Helper()
	m, err := Compile(pattern)
	require.NoError(t, err, "compile %q", pattern)
	for _, c := range cases {
		assert.Equal(t, c.want, m.Test(c.input), "pattern %q input %q", pattern, c.input)
	}
}

func TestAcceptance(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		cases   []matchCase
	}{
		{"simple char", "a", []matchCase{{"a", true}, {"", false}, {"aa", false}}},
		{"simple word", "test", []matchCase{{"test", true}, {"tes", false}, {"testt", false}}},
		{"split", "a|b", []matchCase{{"a", true}, {"b", true}, {"ab", false}}},
		{"split words", "cat|dog", []matchCase{{"cat", true}, {"dog", true}, {"cow", false}}},
		{"cycle split", "a*|b*", []matchCase{
			{"a", true}, {"aa", true}, {"b", true}, {"bb", true}, {"c", false}, {"ab", false},
		}},
		{"cycle split words", "cat*|dog*", []matchCase{
			{"cat", true}, {"catt", true}, {"dog", true}, {"dogg", true}, {"catcat", false},
		}},
		{"grouped cycle split", "(cat)*|(dog)*", []matchCase{
			{"", true}, {"cat", true}, {"catcat", true}, {"dog", true}, {"dogdog", true}, {"catdog", false},
		}},
		{"nested groups", "(cat|(dog|doggy))*|bird", []matchCase{
			{"bird", true}, {"birdbird", false}, {"cat", true}, {"catcat", true},
			{"dog", true}, {"dogdog", true}, {"doggydoggy", true}, {"catdoggy", true},
		}},
		{"star", "a*", []matchCase{{"", true}, {"a", true}, {"aa", true}, {"aaa", true}}},
		{"star then char", "a*b", []matchCase{{"aaab", true}, {"ab", true}, {"b", true}, {"a", false}}},
		{"char then star", "ab*", []matchCase{{"ab", true}, {"abb", true}, {"a", true}}},
		{"plus", "a+", []matchCase{{"", false}, {"a", true}, {"aa", true}}},
		{"multi or", "a|b|c", []matchCase{{"a", true}, {"b", true}, {"c", true}, {"", false}}},
		{"multi or words", "cat|dog|bird", []matchCase{{"cat", true}, {"dog", true}, {"bird", true}, {"", false}}},
		{"quest", "a?", []matchCase{{"", true}, {"a", true}, {"aa", false}}},
		{"quest inside", "tes?t", []matchCase{{"test", true}, {"tet", true}, {"tesst", false}}},
		{"quest quest star", "a?a?a*", []matchCase{
			{"a", true}, {"aa", true}, {"aaa", true},
			{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
			{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaab", false},
		}},
		{"optional group", "(test)?", []matchCase{{"", true}, {"test", true}, {"testtest", false}}},
		{"optional group alternation", "((cat)?|dog*)", []matchCase{
			{"", true}, {"cat", true}, {"catcat", false}, {"dog", true}, {"dogg", true},
		}},
		{"dot star", "test.*", []matchCase{{"test", true}, {"teste", true}, {"tester", true}, {"tes", false}}},
		{"dot plus", `.+@.+\.com`, []matchCase{{"user@test.com", true}, {"@test.com", false}}},
		{"escaped star", `\*`, []matchCase{{"*", true}, {"a", false}}},
		{"escaped dot", `\.`, []matchCase{{".", true}, {"a", false}}},
		{"class", "[abc]", []matchCase{{"a", true}, {"b", true}, {"c", true}, {"d", false}}},
		{"class plus", "[abc]+", []matchCase{
			{"", false}, {"a", true}, {"ab", true}, {"aa", true}, {"ca", true}, {"cc", true},
		}},
		{"class in group", "([abc]+|d)ef", []matchCase{
			{"aef", true}, {"def", true}, {"aaef", true}, {"abcef", true}, {"abdef", false},
		}},
		{"class escapes", `[\.,]+`, []matchCase{{".,.", true}, {"a", false}}},
		{"negated class", "[^abc]", []matchCase{{"a", false}, {"b", false}, {"c", false}, {"d", true}}},
		{"min max class", "[^abc]{1,3}", []matchCase{
			{"", false}, {"d", true}, {"dd", true}, {"ddd", true}, {"dddd", false}, {"e", true},
		}},
		{"min unbounded group", "(dog){1,}", []matchCase{{"", false}, {"dog", true}, {"dogdog", true}}},
		{"digit", `\d`, []matchCase{{"a", false}, {"1", true}, {"11", false}}},
		{"digit star", `\d*`, []matchCase{{"", true}, {"1", true}, {"12", true}, {"123", true}}},
		{"word plus", `\w+`, []matchCase{{"", false}, {"a", true}, {"ab", true}, {"abc", true}}},
		{"range exact", "[4-7]{2}", []matchCase{
			{"54", true}, {"76", true}, {"15", false}, {"98", false},
		}},
		{"range bounded", "[b-m]{2,3}", []matchCase{
			{"bhi", true}, {"gkl", true}, {"cde", true}, {"abc", false}, {"Bde", false},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runCases(t, tt.pattern, tt.cases)
		})
	}
}

func TestAcceptance_Complex(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		runCases(t, `[\w\.+-]+@[\w\.-]+\.[\w\.-]+`, []matchCase{
			{"admin@domain.com", true},
			{"cooldude-42@gmail.net", true},
			{"@gmail.net", false},
			{"admin@domain", false},
		})
	})

	t.Run("ipv4", func(t *testing.T) {
		runCases(t, `((25[0-5]|2[0-4]\d|[01]?\d\d)\.){3}(25[0-5]|2[0-4]\d|[01]?\d\d)`, []matchCase{
			{"255.201.199.255", true},
			{"192.168.100.200", true},
			{"256.1.1.1", false},
			{"1.2.3", false},
		})
	})

	t.Run("uri", func(t *testing.T) {
		runCases(t, `[\w]+://[^/\s?#]+[^\s?#]+(\?[^\s#]*)?(#[^\s]*)?`, []matchCase{
			{"http://google.de", true},
			{"http://wr ong.de", false},
			{"://google.de", false},
			{"http://google.de?query=test", true},
			{"https://example.org/path#frag", true},
		})
	})
}

// TestScenarios covers whole-input semantics end to end
func TestScenarios(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "abcd", false},
		{"abc", "xabc", false},
		{"a{2,3}", "aa", true},
		{"a{2,3}", "aaaa", false},
		{"a{0}", "", true},
		{"a{0}b", "b", true},
		{"a{0,0}", "a", false},
		{"x{3}", "xxx", true},
		{"(ab){2,}", "ababab", true},
		{"(ab){2,}", "ab", false},
		{`\s+`, " \t\n", true},
		{`\s`, "x", false},
		{"a}", "a}", true},
		{`a\{2\}`, "a{2}", true},
		{"[{]{2}", "{{", true},
		{"[a-]", "-", true},
		{"[-a]", "-", true},
		{"привет|мир", "мир", true},
		{".", "é", true},
		{"", "", true},
		{"()", "", true},
		{"(|a)", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			m, err := Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Test(tt.input))
		})
	}
}

func TestMatcher_Accessors(t *testing.T) {
	m := MustCompile("cat|dog")
	assert.Equal(t, "cat|dog", m.String())
	assert.Equal(t, "UseAhoCorasick", m.Strategy().String())

	m = MustCompile(`\w+`)
	assert.Equal(t, "UseNFA", m.Strategy().String())
}

func TestMustCompile_Panics(t *testing.T) {
	assert.PanicsWithValue(t,
		"wholematch: Compile(`(a`): error parsing pattern \"(a\" at offset 0: unterminated expression: missing ')'",
		func() { MustCompile("(a") })
}

func TestCompileWithConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxRepeat = 3
	_, err := CompileWithConfig("a{4}", config)
	require.Error(t, err)

	m, err := CompileWithConfig("a{3}", config)
	require.NoError(t, err)
	assert.True(t, m.Test("aaa"))
}

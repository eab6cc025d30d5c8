package wholematch_test

import (
	"errors"
	"fmt"

	"github.com/coregx/wholematch"
	"github.com/coregx/wholematch/syntax"
)

func Example() {
	m := wholematch.MustCompile(`(\d{1,3}\.){3}\d{1,3}`)
	fmt.Println(m.Test("192.168.0.1"))
	fmt.Println(m.Test("192.168.0"))
	fmt.Println(m.Test("address 192.168.0.1"))
	// Output:
	// true
	// false
	// false
}

func ExampleCompile() {
	_, err := wholematch.Compile("a{3,2}")
	fmt.Println(errors.Is(err, syntax.ErrMalformedQuantifier))
	// Output: true
}

func ExampleMatcher_Test() {
	m := wholematch.MustCompile("cat|dog")
	fmt.Println(m.Test("cat"))
	fmt.Println(m.Test("catdog"))
	fmt.Println(m.Strategy())
	// Output:
	// true
	// false
	// UseAhoCorasick
}

func ExampleCompileWithConfig() {
	config := wholematch.DefaultConfig()
	config.MaxRepeat = 10
	_, err := wholematch.CompileWithConfig("a{1,20}", config)
	fmt.Println(errors.Is(err, syntax.ErrMalformedQuantifier))
	// Output: true
}

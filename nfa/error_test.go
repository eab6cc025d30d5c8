package nfa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileError(t *testing.T) {
	tests := []struct {
		name string
		err  *CompileError
		want string
	}{
		{
			name: "with pattern",
			err:  &CompileError{Pattern: "a*", Err: ErrTooComplex},
			want: `NFA compilation failed for pattern "a*": pattern too complex`,
		},
		{
			name: "without pattern",
			err:  &CompileError{Err: ErrInvalidNode},
			want: "NFA compilation failed: invalid pattern node",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.Equal(t, tt.err.Err, errors.Unwrap(tt.err))
		})
	}
}

func TestBuildError(t *testing.T) {
	err := &BuildError{Message: "bad", StateID: 3}
	assert.Equal(t, "NFA build error at state 3: bad", err.Error())

	err = &BuildError{Message: "bad", StateID: InvalidState}
	assert.Equal(t, "NFA build error: bad", err.Error())
}

package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfigValues verifies DefaultConfig returns expected field values.
func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, 1000, c.MaxRepeat)
	assert.Equal(t, 1000, c.MaxNesting)
	assert.Equal(t, 100_000, c.MaxStates)
	assert.True(t, c.EnableLiteralFastPath)
	assert.Equal(t, 256, c.MaxLiterals)
	assert.Nil(t, c.Logger)
	require.NoError(t, c.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(c *Config)
		wantField string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"zero repeat", func(c *Config) { c.MaxRepeat = 0 }, ""},
		{"negative repeat", func(c *Config) { c.MaxRepeat = -1 }, "MaxRepeat"},
		{"huge repeat", func(c *Config) { c.MaxRepeat = 100_001 }, "MaxRepeat"},
		{"minimum nesting", func(c *Config) { c.MaxNesting = 1 }, ""},
		{"zero nesting", func(c *Config) { c.MaxNesting = 0 }, "MaxNesting"},
		{"huge nesting", func(c *Config) { c.MaxNesting = 100_001 }, "MaxNesting"},
		{"minimum states", func(c *Config) { c.MaxStates = 2 }, ""},
		{"too few states", func(c *Config) { c.MaxStates = 1 }, "MaxStates"},
		{"too many states", func(c *Config) { c.MaxStates = 10_000_001 }, "MaxStates"},
		{"zero literals", func(c *Config) { c.MaxLiterals = 0 }, "MaxLiterals"},
		{"too many literals", func(c *Config) { c.MaxLiterals = 10_001 }, "MaxLiterals"},
		{"literals ignored without fast path", func(c *Config) {
			c.EnableLiteralFastPath = false
			c.MaxLiterals = 0
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.wantField, cerr.Field)
			assert.Contains(t, cerr.Error(), "wholematch: invalid config: "+tt.wantField)
		})
	}
}

func TestCompileWithConfig_InvalidConfig(t *testing.T) {
	_, err := CompileWithConfig("a", Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

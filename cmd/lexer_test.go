package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"SIZE a", []string{"SIZE", "a"}},
		{"  add\tfruits  apple pear ", []string{"add", "fruits", "apple", "pear"}},
		{`add s "hello world"`, []string{"add", "s", "hello world"}},
		{`add s ""`, []string{"add", "s", ""}},
		{`add s "say \"hi\"" "back\\slash"`, []string{"add", "s", `say "hi"`, `back\slash`}},
		{"add s -10 120", []string{"add", "s", "-10", "120"}},
		{"add s ∪ ∩", []string{"add", "s", "∪", "∩"}},
	}
	for _, tt := range tests {
		argv, err := splitArgs(tt.line)
		require.NoError(t, err, "line %q", tt.line)
		assert.Equal(t, tt.want, argv, "line %q", tt.line)
	}
}

func TestSplitArgsUnterminatedQuote(t *testing.T) {
	_, err := splitArgs(`add s "open`)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "abc", unquote(`"abc"`))
	assert.Equal(t, `a"b`, unquote(`"a\"b"`))
	assert.Equal(t, `a\b`, unquote(`"a\\b"`))
	assert.Equal(t, "", unquote(`""`))
}

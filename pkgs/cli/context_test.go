package cli

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/tern/pkgs/argv"
)

// contextFor builds a Context the way the dispatcher would for a single
// command declaring the given flags.
func contextFor(t *testing.T, flags []*Flag, tokens []string) *Context {
	t.Helper()

	positionals, occurrences := argv.Extract(tokens)
	command := &Command{Name: "cmd", Flags: flags}
	return newContext(positionals, occurrences, []*Command{command}, nil)
}

func TestIntFlagRoundTrip(t *testing.T) {
	age := NewFlag("age", Int)

	tests := []struct {
		name     string
		tokens   []string
		want     int
		wantCode string
	}{
		{
			name:   "value via lookahead",
			tokens: []string{"--age", "10"},
			want:   10,
		},
		{
			name:   "value via equals",
			tokens: []string{"--age=10"},
			want:   10,
		},
		{
			name:   "last occurrence wins",
			tokens: []string{"--age", "10", "--age", "20"},
			want:   20,
		},
		{
			name:     "flag without value",
			tokens:   []string{"--age"},
			wantCode: ErrFlagArgument,
		},
		{
			name:     "unparseable value",
			tokens:   []string{"--age", "x"},
			wantCode: ErrFlagValueType,
		},
		{
			name:     "flag absent",
			tokens:   []string{"other"},
			wantCode: ErrFlagNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := contextFor(t, []*Flag{age}, tt.tokens)

			got, err := ctx.IntFlag("age")
			if tt.wantCode != "" {
				assert.True(t, IsErrorType(err, tt.wantCode), "got %v, want code %s", err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccessorTypeMismatch(t *testing.T) {
	ctx := contextFor(t, []*Flag{NewFlag("age", Int)}, []string{"--age", "10"})

	_, err := ctx.StringFlag("age")
	assert.True(t, IsErrorType(err, ErrFlagType))

	_, err = ctx.FloatFlag("age")
	assert.True(t, IsErrorType(err, ErrFlagType))
}

func TestAccessorUndefinedFlag(t *testing.T) {
	ctx := contextFor(t, []*Flag{NewFlag("age", Int)}, []string{"--age", "10"})

	_, err := ctx.IntFlag("unknown")
	assert.True(t, IsErrorType(err, ErrFlagUndefined))
}

func TestStringFlag(t *testing.T) {
	name := NewFlag("name", String)

	ctx := contextFor(t, []*Flag{name}, []string{"--name", "tern"})
	got, err := ctx.StringFlag("name")
	require.NoError(t, err)
	assert.Equal(t, "tern", got)

	// Empty value after '=' is present, not missing.
	ctx = contextFor(t, []*Flag{name}, []string{"--name="})
	got, err = ctx.StringFlag("name")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFloatFlag(t *testing.T) {
	ctx := contextFor(t, []*Flag{NewFlag("ratio", Float)}, []string{"--ratio", "1.23"})

	got, err := ctx.FloatFlag("ratio")
	require.NoError(t, err)
	assert.Equal(t, 1.23, got)
}

func TestBoolFlagPresence(t *testing.T) {
	bye := NewFlag("bye", Bool)

	tests := []struct {
		name   string
		tokens []string
		want   bool
	}{
		{"present", []string{"--bye"}, true},
		{"present with trailing value", []string{"--bye", "world"}, true},
		{"present via equals", []string{"--bye=whatever"}, true},
		{"absent", []string{"hello"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := contextFor(t, []*Flag{bye}, tt.tokens)
			assert.Equal(t, tt.want, ctx.BoolFlag("bye"))
		})
	}
}

func TestBoolFlagNeverErrors(t *testing.T) {
	ctx := contextFor(t, []*Flag{NewFlag("name", String)}, []string{"--name", "x"})

	// Undeclared and wrongly-typed names both read as plain absence.
	assert.False(t, ctx.BoolFlag("unknown"))
	assert.False(t, ctx.BoolFlag("name"))
}

func TestFlagAccessByAlias(t *testing.T) {
	age := NewFlag("age", Int).Alias("a")

	ctx := contextFor(t, []*Flag{age}, []string{"-a", "30"})

	byName, err := ctx.IntFlag("age")
	require.NoError(t, err)
	byAlias, err := ctx.IntFlag("a")
	require.NoError(t, err)
	assert.Equal(t, 30, byName)
	assert.Equal(t, byName, byAlias)
}

func TestAncestorFlagsVisible(t *testing.T) {
	parent := &Command{Name: "parent", Flags: []*Flag{NewFlag("verbose", Bool)}}
	child := &Command{Name: "child", Flags: []*Flag{NewFlag("count", Int)}}

	_, occurrences := argv.Extract([]string{"--verbose", "--count", "2"})
	ctx := newContext(nil, occurrences, []*Command{parent, child}, nil)

	assert.True(t, ctx.BoolFlag("verbose"), "ancestor flag must stay visible")
	count, err := ctx.IntFlag("count")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDescendantShadowsAncestorFlag(t *testing.T) {
	// Same name, different types: the descendant's descriptor decides.
	parent := &Command{Name: "parent", Flags: []*Flag{NewFlag("level", String)}}
	child := &Command{Name: "child", Flags: []*Flag{NewFlag("level", Int)}}

	_, occurrences := argv.Extract([]string{"--level", "3"})
	ctx := newContext(nil, occurrences, []*Command{parent, child}, nil)

	level, err := ctx.IntFlag("level")
	require.NoError(t, err)
	assert.Equal(t, 3, level)

	_, err = ctx.StringFlag("level")
	assert.True(t, IsErrorType(err, ErrFlagType), "ancestor type must be shadowed")
}

func TestFlagErrorValue(t *testing.T) {
	ctx := contextFor(t, []*Flag{NewFlag("age", Int)}, []string{"--age", "x"})

	_, err := ctx.IntFlag("age")
	require.Error(t, err)

	var flagErr *FlagError
	require.ErrorAs(t, err, &flagErr)
	assert.Equal(t, ErrFlagValueType, flagErr.Type)
	assert.Equal(t, "age", flagErr.Flag)

	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr, "parse cause must be wrapped")

	assert.True(t, errors.Is(err, &FlagError{Type: ErrFlagValueType}))
	assert.False(t, errors.Is(err, &FlagError{Type: ErrFlagNotFound}))
}

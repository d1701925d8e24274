// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	require.NoError(t, err)
	return opts
}

func TestPositionalsOK(t *testing.T) {
	o := mustParse(t, "reads.fa", "4", "out.tsv")
	assert.Equal(t, "reads.fa", o.Input)
	assert.Equal(t, 4, o.K)
	assert.Equal(t, "out.tsv", o.Output)
	assert.True(t, o.Header)
	assert.False(t, o.Upper)
}

func TestFlagsBeforePositionals(t *testing.T) {
	o := mustParse(t, "--upper", "--no-header", "--quiet", "-", "2", "-")
	assert.True(t, o.Upper)
	assert.False(t, o.Header)
	assert.True(t, o.Quiet)
	assert.Equal(t, "-", o.Input)
	assert.Equal(t, "-", o.Output)
}

func TestErrorWrongArgCount(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"reads.fa"},
		{"reads.fa", "4"},
		{"reads.fa", "4", "out.tsv", "extra"},
	} {
		_, err := ParseArgs(newFS(), args)
		assert.Error(t, err, "args=%v", args)
	}
}

func TestErrorNonIntegerK(t *testing.T) {
	for _, k := range []string{"two", "2.5", "", "4x"} {
		_, err := ParseArgs(newFS(), []string{"reads.fa", k, "out.tsv"})
		assert.Error(t, err, "k=%q", k)
	}
}

func TestErrorNonPositiveK(t *testing.T) {
	for _, k := range []string{"0", "-3"} {
		_, err := ParseArgs(newFS(), []string{"reads.fa", k, "out.tsv"})
		assert.Error(t, err, "k=%q", k)
	}
}

func TestErrorUnknownFlag(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--bogus", "reads.fa", "4", "out.tsv"})
	assert.Error(t, err)
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"})
	require.NoError(t, err)
	assert.True(t, o.Version)
}

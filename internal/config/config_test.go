package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gralex/gralex/internal/langcore/charset"
	"github.com/stretchr/testify/assert"
)

func Test_Default(t *testing.T) {
	assert := assert.New(t)

	opts := Default()
	assert.Equal(32767, opts.MaxDfaStates)
	assert.True(opts.AllowPriorityTiebreak)

	cs, err := opts.Charset()
	assert.NoError(err)
	assert.Equal(charset.Ascii, cs)
}

func Test_Load_OverridesDefaults(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".gralex.toml")
	contents := `
max_dfa_states = 100
charset = "bmp"
allow_priority_tiebreak = false
debug = true
ignored_chars = " \t"
`
	err := os.WriteFile(path, []byte(contents), 0644)
	assert.NoError(err)

	opts, err := Load(path)
	assert.NoError(err)
	assert.Equal(100, opts.MaxDfaStates)
	assert.False(opts.AllowPriorityTiebreak)
	assert.True(opts.Debug)

	cs, err := opts.Charset()
	assert.NoError(err)
	assert.Equal(charset.BMP, cs)

	ignored := opts.IgnoredCharSet()
	assert.True(ignored[' '])
	assert.True(ignored['\t'])
	assert.False(ignored['\n'])
}

func Test_Load_MissingFileIsError(t *testing.T) {
	_, err := Load("/no/such/path/.gralex.toml")
	assert.Error(t, err)
}

func Test_Load_BadCharsetNameErrorsOnResolve(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".gralex.toml")
	err := os.WriteFile(path, []byte(`charset = "klingon"`), 0644)
	assert.NoError(err)

	opts, err := Load(path)
	assert.NoError(err)

	_, err = opts.Charset()
	assert.Error(err)
}

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/helpers/errors"
)

// TestReadDefaultConfig tests the read default config function.
func TestReadDefaultConfig(t *testing.T) {
	c, err := ReadDefaultConfig()
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, Default().LogLevel, c.LogLevel)
	assert.Equal(t, "snake", c.NamingConvention)

	t.Run("Case", func(t *testing.T) {
		require.NotNil(t, c.Case)
		assert.Equal(t, DefaultCase(), c.Case)
	})
}

// TestReadNamedConfig tests reading the config file.
func TestReadNamedConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "helpers-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	t.Run("Valid", func(t *testing.T) {
		content := []byte(`log_level: debug
naming_convention: camelize
case:
  delimiters: " -_"
  lowercase_first: true
`)
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "helpers.yaml"), content, 0600))

		c, err := ReadNamedConfig("helpers", dir)
		require.NoError(t, err)

		assert.Equal(t, "debug", c.LogLevel)
		assert.Equal(t, "camelize", c.NamingConvention)
		assert.Equal(t, " -_", c.Case.Delimiters)
		assert.Equal(t, DefaultDelimiter, c.Case.Delimiter)
		assert.True(t, c.Case.LowercaseFirst)
		assert.False(t, c.Case.NormalizeCase)
	})

	t.Run("InvalidConvention", func(t *testing.T) {
		content := []byte("naming_convention: pascal\n")
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "invalid.yaml"), content, 0600))

		_, err := ReadNamedConfig("invalid", dir)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, errors.ClassConfigValidation))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := ReadNamedConfig("not-existing", dir)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, errors.ClassConfigRead))
	})
}

// TestValidate tests the config validation.
func TestValidate(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	t.Run("EmptyValues", func(t *testing.T) {
		h := &Helpers{Case: &Case{Delimiter: "-"}}
		assert.NoError(t, h.Validate())
	})

	t.Run("NoCase", func(t *testing.T) {
		h := Default()
		h.Case = nil
		assert.Error(t, h.Validate())
	})

	t.Run("UnknownLevel", func(t *testing.T) {
		h := Default()
		h.LogLevel = "verbose"
		err := h.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, errors.ClassConfigValidation))
	})
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

func (s *sample) Validate() error {
	if s.Level < 0 {
		return errors.New("level must not be negative")
	}
	return nil
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "from-env")
	path := writeFile(t, "name: ${SAMPLE_NAME}\nlevel: 2\n")

	var s sample
	require.NoError(t, Load(path, &s))
	assert.Equal(t, sample{Name: "from-env", Level: 2}, s)
}

func TestLoad_Missing(t *testing.T) {
	var s sample
	err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &s)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Validates(t *testing.T) {
	path := writeFile(t, "level: -1\n")
	var s sample
	err := Load(path, &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoadOptional_MissingKeepsDefaults(t *testing.T) {
	s := sample{Name: "default", Level: 1}
	found, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &s)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, sample{Name: "default", Level: 1}, s)
}

func TestLoadOptional_OverlaysFile(t *testing.T) {
	path := writeFile(t, "level: 5\n")
	s := sample{Name: "default", Level: 1}
	found, err := LoadOptional(path, &s)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample{Name: "default", Level: 5}, s)
}

func TestLoadOptional_BadYAML(t *testing.T) {
	path := writeFile(t, "level: [\n")
	var s sample
	_, err := LoadOptional(path, &s)
	assert.Error(t, err)
}

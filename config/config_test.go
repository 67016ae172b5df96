package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mlwelles/fznGen/generator"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, generator.DefaultOptions(), cfg.GeneratorOptions())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fznGen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("crate: crate::flatzinc\nlog_level: debug\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "crate::flatzinc", cfg.Crate)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, Default().Derive, cfg.Derive)
		assert.Equal(t, Default().ModelParam, cfg.ModelParam)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParse(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		cfg, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("all fields", func(t *testing.T) {
		cfg, err := Parse([]byte(`
crate: crate::fzn
derive: "#[derive(Clone, Debug, PartialEq)]"
model_param: "&Model"
log_level: warn
`))
		require.NoError(t, err)
		assert.Equal(t, generator.Options{
			Crate:      "crate::fzn",
			Derive:     "#[derive(Clone, Debug, PartialEq)]",
			ModelParam: "&Model",
		}, cfg.GeneratorOptions())
	})

	errorTests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "crates: crate::fzn\n"},
		{"bad crate", "crate: crate/fzn\n"},
		{"bad derive", "derive: derive(Clone)\n"},
		{"empty model param", "model_param: \"  \"\n"},
		{"bad level", "log_level: loud\n"},
		{"not yaml", "crate: [\n"},
	}
	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/stretchr/testify/assert"
)

func setupConfigTest(t *testing.T) (*config.Config, *i18n.Translations, string, func()) {
	tmpDir, err := os.MkdirTemp("", "matepr-config-test-*")
	assert.NoError(t, err)

	tmpConfigPath := filepath.Join(tmpDir, "config.json")

	cfg := &config.Config{
		PathFile:        tmpConfigPath,
		Language:        "es",
		DefaultProvider: "basic",
		Ollama: config.OllamaConfig{
			BaseURL: config.DefaultOllamaURL,
			Model:   "llama2",
		},
	}

	translations, err := i18n.NewTranslations("es", "")
	assert.NoError(t, err)

	cleanup := func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Error al limpiar directorio temporal: %v", err)
		}
	}

	return cfg, translations, tmpConfigPath, cleanup
}

func TestCreateCommand(t *testing.T) {
	t.Run("should expose all config subcommands", func(t *testing.T) {
		cfg, translations, _, cleanup := setupConfigTest(t)
		defer cleanup()

		cmd := NewConfigCommandFactory().CreateCommand(translations, cfg)

		assert.Equal(t, "config", cmd.Name)

		names := make([]string, 0, len(cmd.Commands))
		for _, sub := range cmd.Commands {
			names = append(names, sub.Name)
		}
		assert.ElementsMatch(t, []string{"show", "set-lang", "set-provider", "set-model", "set-ollama-url", "set-token"}, names)
	})
}

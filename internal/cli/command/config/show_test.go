package config

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestShowCommand(t *testing.T) {
	t.Run("should display configuration without secrets", func(t *testing.T) {
		// arrange
		cfg, translations, _, cleanup := setupConfigTest(t)
		cfg.GitHubToken = "ghp_super_secret"
		cfg.AIProviders = map[string]config.AIProviderConfig{
			"openai": {APIKey: "sk-secret", Model: "gpt-4o-mini"},
		}
		assert.NoError(t, config.SaveConfig(cfg))
		defer cleanup()

		oldStdout := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w

		cmd := NewConfigCommandFactory().newShowCommand(translations, cfg)

		app := &cli.Command{Commands: []*cli.Command{cmd}}
		ctx := context.Background()

		// act
		err := app.Run(ctx, []string{"config", "show"})

		if err := w.Close(); err != nil {
			assert.NoError(t, err)
		}
		os.Stdout = oldStdout
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			assert.NoError(t, err)
		}
		output := buf.String()

		// assert
		assert.NoError(t, err)

		assert.Contains(t, output, "Configuración actual")
		assert.Contains(t, output, "basic")
		assert.Contains(t, output, "gpt-4o-mini")
		assert.Contains(t, output, config.DefaultOllamaURL)

		// Los secretos no se muestran nunca
		assert.NotContains(t, output, "ghp_super_secret")
		assert.NotContains(t, output, "sk-secret")
	})

	t.Run("should display configuration with nothing set", func(t *testing.T) {
		// Arrange
		cfg, translations, _, cleanup := setupConfigTest(t)
		assert.NoError(t, config.SaveConfig(cfg))
		defer cleanup()

		cmd := NewConfigCommandFactory().newShowCommand(translations, cfg)

		app := &cli.Command{Commands: []*cli.Command{cmd}}
		ctx := context.Background()

		// Act
		err := app.Run(ctx, []string{"config", "show"})

		// Assert
		assert.NoError(t, err)
	})
}

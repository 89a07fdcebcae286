package summarize

import (
	"context"
	"errors"
	"testing"

	"github.com/mate-labs/matepr/internal/config"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/mate-labs/matepr/internal/infrastructure/ai/basic"
	"github.com/mate-labs/matepr/internal/infrastructure/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func setupSummarizeTest(t *testing.T) (*config.Config, *i18n.Translations, *di.Container) {
	t.Helper()

	cfg := &config.Config{
		Language:        "en",
		DefaultProvider: "basic",
		GitHubToken:     "ghp_test_token",
		Ollama: config.OllamaConfig{
			BaseURL: config.DefaultOllamaURL,
			Model:   "llama2",
		},
	}

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	container := di.NewContainer(cfg, translations)
	require.NoError(t, container.RegisterAIProvider(basic.NewFactory()))

	return cfg, translations, container
}

func runSummarize(t *testing.T, cfg *config.Config, translations *i18n.Translations, container *di.Container, args ...string) error {
	t.Helper()

	factory := NewSummarizeCommand(container)
	cmd := factory.CreateCommand(translations, cfg)
	app := &cli.Command{
		Commands: []*cli.Command{cmd},
	}

	return app.Run(context.Background(), append([]string{"matepr"}, args...))
}

func TestCreateCommand(t *testing.T) {
	cfg, translations, container := setupSummarizeTest(t)

	cmd := NewSummarizeCommand(container).CreateCommand(translations, cfg)

	assert.Equal(t, "summarize", cmd.Name)
	assert.Contains(t, cmd.Aliases, "s")

	var flagNames []string
	for _, flag := range cmd.Flags {
		flagNames = append(flagNames, flag.Names()...)
	}
	assert.Contains(t, flagNames, "repo")
	assert.Contains(t, flagNames, "pr-number")
	assert.Contains(t, flagNames, "provider")
	assert.Contains(t, flagNames, "output")
	assert.Contains(t, flagNames, "model")
	assert.Contains(t, flagNames, "ollama-url")
	assert.Contains(t, flagNames, "token")
	assert.Contains(t, flagNames, "lang")
}

func TestSummarizeCommand_UnknownProvider(t *testing.T) {
	cfg, translations, container := setupSummarizeTest(t)

	err := runSummarize(t, cfg, translations, container,
		"summarize", "--repo", "octo/demo", "--pr-number", "7", "--provider", "skynet")

	require.Error(t, err)
	var appErr *domainErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainErrors.TypeConfiguration, appErr.Type)
}

func TestSummarizeCommand_MissingToken(t *testing.T) {
	cfg, translations, container := setupSummarizeTest(t)
	cfg.GitHubToken = ""

	err := runSummarize(t, cfg, translations, container,
		"summarize", "--repo", "octo/demo", "--pr-number", "7")

	require.Error(t, err)
	var appErr *domainErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainErrors.TypeAuth, appErr.Type)
}

func TestApplyModelOverride(t *testing.T) {
	t.Run("debería pisar el modelo de ollama", func(t *testing.T) {
		cfg := &config.Config{Ollama: config.OllamaConfig{Model: "llama2"}}
		cmd := commandWithModel(t, "mistral")

		applyModelOverride(cmd, cfg, string(config.ProviderOllama))

		assert.Equal(t, "mistral", cfg.Ollama.Model)
		assert.Empty(t, cfg.AIProviders)
	})

	t.Run("debería pisar el modelo de un proveedor remoto", func(t *testing.T) {
		cfg := &config.Config{
			AIProviders: map[string]config.AIProviderConfig{
				"openai": {APIKey: "sk-test", Model: "gpt-4o-mini"},
			},
		}
		cmd := commandWithModel(t, "gpt-4o")

		applyModelOverride(cmd, cfg, "openai")

		assert.Equal(t, "gpt-4o", cfg.AIProviders["openai"].Model)
		assert.Equal(t, "sk-test", cfg.AIProviders["openai"].APIKey)
	})

	t.Run("debería inicializar el mapa de proveedores si está vacío", func(t *testing.T) {
		cfg := &config.Config{}
		cmd := commandWithModel(t, "gemini-2.0-flash")

		applyModelOverride(cmd, cfg, "gemini")

		assert.Equal(t, "gemini-2.0-flash", cfg.AIProviders["gemini"].Model)
	})
}

// commandWithModel arma un cli.Command ya parseado con el flag --model seteado.
func commandWithModel(t *testing.T, model string) *cli.Command {
	t.Helper()

	var parsed *cli.Command
	cmd := &cli.Command{
		Name: "summarize",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "model"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			parsed = c
			return nil
		},
	}
	app := &cli.Command{Commands: []*cli.Command{cmd}}
	require.NoError(t, app.Run(context.Background(), []string{"matepr", "summarize", "--model", model}))
	require.NotNil(t, parsed)

	return parsed
}

package ollama

import (
	"context"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/domain/ports"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/mate-labs/matepr/internal/infrastructure/ai"
	"github.com/mate-labs/matepr/internal/services/cost"
)

// Factory construye summarizers respaldados por un servidor ollama local.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Name() string {
	return ProviderName
}

// ValidateConfig no exige API key, solo que haya una URL base. La
// configuración normalizada siempre trae la URL local por defecto.
func (f *Factory) ValidateConfig(cfg *config.Config) error {
	if cfg.Ollama.BaseURL == "" {
		return domainErrors.NewAppError(
			domainErrors.TypeConfiguration,
			"ollama base URL is not configured",
			nil,
		).WithSuggestion("Run: matepr config set-ollama-url " + config.DefaultOllamaURL)
	}
	return nil
}

func (f *Factory) CreateSummarizer(ctx context.Context, cfg *config.Config, t *i18n.Translations) (ports.PRSummarizer, error) {
	if err := f.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	client := NewOllamaClient(cfg.Ollama.BaseURL, cfg.ModelFor(ProviderName))
	return ai.NewSummarizer(client, cost.NewCalculator(), cfg.Language), nil
}

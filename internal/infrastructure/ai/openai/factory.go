package openai

import (
	"context"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/domain/ports"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/mate-labs/matepr/internal/infrastructure/ai"
	"github.com/mate-labs/matepr/internal/services/cost"
)

// Factory construye summarizers respaldados por la API de OpenAI.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Name() string {
	return ProviderName
}

func (f *Factory) ValidateConfig(cfg *config.Config) error {
	if cfg.APIKeyFor(ProviderName) == "" {
		return domainErrors.ErrAPIKeyMissing.WithContext("provider", ProviderName)
	}
	return nil
}

func (f *Factory) CreateSummarizer(ctx context.Context, cfg *config.Config, t *i18n.Translations) (ports.PRSummarizer, error) {
	apiKey := cfg.APIKeyFor(ProviderName)
	if apiKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing.
			WithContext("provider", ProviderName).
			WithSuggestion(t.GetMessage("error.missing_api_key", 0, map[string]interface{}{
				"Provider": ProviderName,
			}))
	}

	providerCfg := cfg.AIProviders[ProviderName]
	client, err := NewOpenAIClient(apiKey, cfg.ModelFor(ProviderName), providerCfg.Temperature, providerCfg.MaxTokens)
	if err != nil {
		return nil, err
	}
	return ai.NewSummarizer(client, cost.NewCalculator(), cfg.Language), nil
}

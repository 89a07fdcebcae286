package basic

import (
	"context"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/domain/ports"
	"github.com/mate-labs/matepr/internal/i18n"
)

// Factory construye el summarizer heurístico. No necesita configuración.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Name() string {
	return ProviderName
}

func (f *Factory) ValidateConfig(cfg *config.Config) error {
	return nil
}

func (f *Factory) CreateSummarizer(ctx context.Context, cfg *config.Config, t *i18n.Translations) (ports.PRSummarizer, error) {
	return NewBasicSummarizer(), nil
}

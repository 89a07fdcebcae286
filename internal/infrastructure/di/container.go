package di

import (
	"context"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/mate-labs/matepr/internal/infrastructure/ai/registry"
	"github.com/mate-labs/matepr/internal/infrastructure/vcs/github"
	"github.com/mate-labs/matepr/internal/services"
)

// Container gestiona las dependencias de la aplicación
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	// Registries
	aiRegistry *registry.Registry
	vcsFactory *github.GitHubProviderFactory
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
		aiRegistry:   registry.NewRegistry(),
		vcsFactory:   github.NewGitHubProviderFactory(),
	}
}

// RegisterAIProvider registra un proveedor de IA
func (c *Container) RegisterAIProvider(factory registry.ProviderFactory) error {
	return c.aiRegistry.Register(factory)
}

// GetAIRegistry retorna el registro de proveedores de IA
func (c *Container) GetAIRegistry() *registry.Registry {
	return c.aiRegistry
}

// GetConfig retorna la configuración
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetTranslations retorna las traducciones
func (c *Container) GetTranslations() *i18n.Translations {
	return c.translations
}

// CreateSummaryService arma el pipeline completo para un repo y un proveedor.
// El repo y el proveedor cambian por invocación, así que acá no se cachea
// nada: cada llamada construye un servicio nuevo. Las opciones extra se
// aplican al final, la CLI las usa para engancharse al progreso.
//
// Si provider viene vacío se usa el proveedor por defecto de la configuración.
func (c *Container) CreateSummaryService(ctx context.Context, repo, provider string, opts ...services.SummaryOption) (*services.SummaryService, error) {
	providerName := c.config.ProviderOrDefault(provider)

	aiFactory, err := c.aiRegistry.Get(providerName)
	if err != nil {
		return nil, err
	}

	vcsClient, err := c.vcsFactory.CreateClient(ctx, repo, c.config, c.translations)
	if err != nil {
		return nil, err
	}

	summarizer, err := aiFactory.CreateSummarizer(ctx, c.config, c.translations)
	if err != nil {
		return nil, err
	}

	serviceOpts := append([]services.SummaryOption{
		services.WithVCSClient(vcsClient),
		services.WithSummarizer(summarizer),
		services.WithTranslations(c.translations),
		services.WithConfig(c.config),
	}, opts...)

	return services.NewSummaryService(serviceOpts...), nil
}

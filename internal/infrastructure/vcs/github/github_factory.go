package github

import (
	"context"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/domain/ports"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/i18n"
)

// GitHubProviderFactory construye clientes de GitHub para el contenedor de
// dependencias.
type GitHubProviderFactory struct{}

func NewGitHubProviderFactory() *GitHubProviderFactory {
	return &GitHubProviderFactory{}
}

// CreateClient crea el cliente para el repo dado usando el token de la
// configuración.
func (f *GitHubProviderFactory) CreateClient(
	_ context.Context,
	repo string,
	cfg *config.Config,
	trans *i18n.Translations,
) (ports.VCSClient, error) {
	return NewGitHubClient(repo, cfg.GitHubToken, trans)
}

// ValidateConfig chequea que haya token antes de intentar cualquier llamada.
func (f *GitHubProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.GitHubToken == "" {
		return domainErrors.ErrTokenMissing
	}
	return nil
}

// Name retorna el nombre del proveedor.
func (f *GitHubProviderFactory) Name() string {
	return "github"
}

// Package registry mantiene el catálogo de proveedores de IA disponibles.
// Cada proveedor se registra con una fábrica y el resto de la aplicación los
// resuelve por nombre, así agregar un proveedor nuevo no toca el pipeline.
package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/domain/ports"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/i18n"
)

// ProviderFactory sabe construir un PRSummarizer para un proveedor concreto.
type ProviderFactory interface {
	// CreateSummarizer construye el summarizer con la configuración dada. El
	// idioma del resumen sale de cfg.Language. El contexto se usa solo para
	// crear clientes de SDKs que lo piden, no ata la vida del summarizer.
	CreateSummarizer(ctx context.Context, cfg *config.Config, t *i18n.Translations) (ports.PRSummarizer, error)
	// Name devuelve el nombre con el que se registra el proveedor.
	Name() string
	// ValidateConfig chequea que la configuración alcance para usar el
	// proveedor, sin crear ningún cliente todavía.
	ValidateConfig(cfg *config.Config) error
}

// Registry es el registro de fábricas de proveedores. Es seguro para uso
// concurrente.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

// NewRegistry crea un registro vacío.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]ProviderFactory),
	}
}

// Register agrega una fábrica al registro. Falla si ya había una registrada
// con el mismo nombre.
func (r *Registry) Register(factory ProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := factory.Name()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("la fábrica del proveedor %s ya está registrada", name)
	}
	r.factories[name] = factory
	return nil
}

// Get devuelve la fábrica del proveedor pedido. Si no existe devuelve un
// error de configuración con la lista de proveedores disponibles.
func (r *Registry) Get(name string) (ProviderFactory, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, domainErrors.NewAppError(
			domainErrors.TypeConfiguration,
			fmt.Sprintf("AI provider %q is not registered", name),
			nil,
		).WithContext("provider", name).
			WithSuggestion(fmt.Sprintf("Available providers: %s", strings.Join(r.List(), ", ")))
	}
	return factory, nil
}

// List devuelve los nombres de los proveedores registrados, ordenados.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered indica si hay una fábrica registrada con ese nombre.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

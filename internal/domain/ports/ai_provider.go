package ports

import (
	"context"

	"github.com/mate-labs/matepr/internal/domain/models"
)

// TextGenerator define la capacidad mínima de un backend LLM: recibir un
// prompt y devolver texto libre. Los proveedores que reportan consumo de
// tokens lo devuelven en el segundo valor, los demás devuelven nil.
type TextGenerator interface {
	// GenerateText envía el prompt al modelo y devuelve la respuesta cruda.
	GenerateText(ctx context.Context, prompt string) (string, *models.TokenUsage, error)

	// GetModelName retorna el nombre del modelo actual (ej: "gpt-4o-mini")
	GetModelName() string

	// GetProviderName retorna el nombre del proveedor (ej: "openai", "ollama")
	GetProviderName() string
}

// PRSummarizer define la interfaz para generar el resumen de un PR.
// El texto resultante se trata como markdown opaco.
type PRSummarizer interface {
	SummarizePR(ctx context.Context, pr models.PRContext) (models.Summary, error)
}

package ports

import (
	"context"

	"github.com/mate-labs/matepr/internal/domain/models"
)

// SummaryService define la interfaz del servicio de resumen de Pull Requests.
type SummaryService interface {
	SummarizePR(ctx context.Context, prNumber int) (models.Summary, error)
}

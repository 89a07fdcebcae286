package ports

import (
	"context"

	"github.com/mate-labs/matepr/internal/domain/models"
)

// VCSClient define los métodos comunes para leer Pull Requests desde la API
// de un sistema de control de versiones. Solo lecturas, nunca escrituras.
type VCSClient interface {
	// GetPR obtiene los datos del PR (título, descripción, archivos y commits).
	GetPR(ctx context.Context, prNumber int) (models.PRContext, error)
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/domain/models"
	"github.com/mate-labs/matepr/internal/domain/ports"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/mate-labs/matepr/internal/logger"
)

// summaryVCSClient define lo que el servicio necesita del proveedor de
// hosting.
type summaryVCSClient interface {
	GetPR(ctx context.Context, prNumber int) (models.PRContext, error)
}

// summaryProvider define lo que el servicio necesita del proveedor de IA.
type summaryProvider interface {
	SummarizePR(ctx context.Context, pr models.PRContext) (models.Summary, error)
}

// SummaryService orquesta el pipeline completo: traer el PR, generar el
// resumen y devolverlo. Secuencial y sin reintentos: cualquier falla corta el
// run entero, nunca se produce un resumen parcial.
type SummaryService struct {
	vcsClient  summaryVCSClient
	summarizer summaryProvider
	trans      *i18n.Translations
	config     *config.Config
	progress   func(models.ProgressEvent)
}

var _ ports.SummaryService = (*SummaryService)(nil)

type SummaryOption func(*SummaryService)

func WithVCSClient(vcs summaryVCSClient) SummaryOption {
	return func(s *SummaryService) {
		s.vcsClient = vcs
	}
}

func WithSummarizer(p summaryProvider) SummaryOption {
	return func(s *SummaryService) {
		s.summarizer = p
	}
}

func WithTranslations(t *i18n.Translations) SummaryOption {
	return func(s *SummaryService) {
		s.trans = t
	}
}

func WithConfig(cfg *config.Config) SummaryOption {
	return func(s *SummaryService) {
		s.config = cfg
	}
}

// WithProgress registra un callback que recibe un evento antes de cada paso
// del pipeline. Lo usa la CLI para actualizar el spinner.
func WithProgress(fn func(models.ProgressEvent)) SummaryOption {
	return func(s *SummaryService) {
		s.progress = fn
	}
}

func NewSummaryService(opts ...SummaryOption) *SummaryService {
	s := &SummaryService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SummarizePR corre el pipeline para un número de PR. El chequeo de
// credenciales va primero: sin cliente de VCS no se toca ningún proveedor
// de IA.
func (s *SummaryService) SummarizePR(ctx context.Context, prNumber int) (models.Summary, error) {
	log := logger.FromContext(ctx)
	log.Info("summarizing PR", "pr_number", prNumber)

	if s.vcsClient == nil {
		log.Error("VCS client not configured")
		return models.Summary{}, domainErrors.ErrTokenMissing
	}
	if s.summarizer == nil {
		log.Error("AI provider not configured")
		return models.Summary{}, domainErrors.ErrAPIKeyMissing
	}

	s.notifyProgress(models.ProgressEvent{Stage: models.StageFetchingPR, PRNumber: prNumber})

	pr, err := s.vcsClient.GetPR(ctx, prNumber)
	if err != nil {
		log.Error("failed to get PR data",
			"error", err,
			"pr_number", prNumber)
		return models.Summary{}, s.wrapError(err, prNumber, "error.get_pr", domainErrors.TypeNetwork)
	}

	log.Debug("PR data fetched",
		"pr_number", pr.Number,
		"title", pr.Title,
		"files_count", len(pr.Files),
		"commits_count", len(pr.Commits))

	s.notifyProgress(models.ProgressEvent{Stage: models.StageGeneratingSummary, PRNumber: prNumber, Files: pr.Files})

	summary, err := s.summarizer.SummarizePR(ctx, pr)
	if err != nil {
		log.Error("failed to generate summary",
			"error", err,
			"pr_number", prNumber)
		return models.Summary{}, s.wrapError(err, prNumber, "error.summary_failed", domainErrors.TypeProvider)
	}

	log.Info("summary generated",
		"pr_number", prNumber,
		"provider", summary.Provider,
		"model", summary.Model,
		"chars", len(summary.Text))
	return summary, nil
}

func (s *SummaryService) notifyProgress(event models.ProgressEvent) {
	if s.progress != nil {
		s.progress(event)
	}
}

// wrapError deja pasar los errores del dominio tal cual, para no pisarles el
// tipo, y envuelve el resto con un mensaje localizado.
func (s *SummaryService) wrapError(err error, prNumber int, messageID string, errType domainErrors.ErrorType) error {
	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	message := fmt.Sprintf("PR #%d", prNumber)
	if s.trans != nil {
		message = s.trans.GetMessage(messageID, 0, map[string]interface{}{"PRNumber": prNumber})
	}
	return domainErrors.NewAppError(errType, message, err)
}

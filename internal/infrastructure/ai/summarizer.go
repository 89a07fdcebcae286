package ai

import (
	"context"
	"strings"
	"time"

	"github.com/mate-labs/matepr/internal/domain/models"
	"github.com/mate-labs/matepr/internal/domain/ports"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/logger"
	"github.com/mate-labs/matepr/internal/services/cost"
)

// Summarizer adapta cualquier TextGenerator al contrato PRSummarizer: arma el
// prompt a partir del PRContext, se lo manda al generador y envuelve la
// respuesta en un Summary con métricas de uso.
type Summarizer struct {
	generator  ports.TextGenerator
	calculator *cost.Calculator
	lang       string
}

// NewSummarizer crea un Summarizer sobre el generador de texto dado.
func NewSummarizer(generator ports.TextGenerator, calculator *cost.Calculator, lang string) *Summarizer {
	return &Summarizer{
		generator:  generator,
		calculator: calculator,
		lang:       lang,
	}
}

// SummarizePR genera el resumen del PR usando el proveedor configurado.
// No hay reintentos: si el proveedor falla, el error sube tal cual.
func (s *Summarizer) SummarizePR(ctx context.Context, pr models.PRContext) (models.Summary, error) {
	log := logger.FromContext(ctx)

	prompt := BuildSummaryPrompt(pr, s.lang)
	log.Debug("prompt construido",
		"provider", s.generator.GetProviderName(),
		"model", s.generator.GetModelName(),
		"prompt_chars", len(prompt),
	)

	start := time.Now()
	text, usage, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return models.Summary{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return models.Summary{}, domainErrors.ErrEmptyAIResponse
	}

	if usage != nil {
		usage.Model = s.generator.GetModelName()
		usage.DurationMs = time.Since(start).Milliseconds()
		if s.calculator != nil {
			usage.CostUSD = s.calculator.EstimateCost(
				s.generator.GetProviderName(),
				usage.Model,
				usage.InputTokens,
				usage.OutputTokens,
			)
		}
	}

	return models.Summary{
		Text:     text,
		Provider: s.generator.GetProviderName(),
		Model:    s.generator.GetModelName(),
		Usage:    usage,
	}, nil
}

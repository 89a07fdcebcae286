// Package gemini implementa el generador de texto sobre el SDK oficial de
// Gemini.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/mate-labs/matepr/internal/domain/models"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/infrastructure/ai"
	"github.com/mate-labs/matepr/internal/logger"
)

// ProviderName es el nombre con el que se registra este proveedor.
const ProviderName = "gemini"

// GeminiClient envuelve el SDK de Gemini e implementa el puerto
// TextGenerator.
type GeminiClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewGeminiClient crea el cliente y configura el modelo generativo con la
// instrucción de sistema y la temperatura dadas.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, temperature float64) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing.WithContext("provider", ProviderName)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeProvider, "could not create the gemini client", err).
			WithContext("provider", ProviderName)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(float32(temperature))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(ai.SummarySystemPrompt)},
	}

	return &GeminiClient{
		client:    client,
		model:     model,
		modelName: modelName,
	}, nil
}

// GenerateText manda el prompt al modelo y concatena las partes de todos los
// candidatos en un solo texto.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, *models.TokenUsage, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", nil, domainErrors.NewAppError(domainErrors.TypeValidation, "prompt is empty", nil)
	}

	log := logger.FromContext(ctx)
	log.Debug("llamando a la API de gemini", "model", c.modelName)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", nil, c.mapAPIError(err)
	}

	text := formatResponse(resp)
	if strings.TrimSpace(text) == "" {
		return "", nil, domainErrors.ErrEmptyAIResponse.WithContext("provider", ProviderName)
	}

	var usage *models.TokenUsage
	if resp.UsageMetadata != nil {
		usage = &models.TokenUsage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return text, usage, nil
}

func (c *GeminiClient) GetModelName() string {
	return c.modelName
}

func (c *GeminiClient) GetProviderName() string {
	return ProviderName
}

// Close libera la conexión del SDK.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// formatResponse junta el texto de todos los candidatos de la respuesta.
func formatResponse(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}

// mapAPIError traduce los errores del SDK a errores del dominio.
func (c *GeminiClient) mapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return domainErrors.ErrProviderKeyInvalid.
				WithError(err).
				WithContext("provider", ProviderName)
		case apiErr.Code == http.StatusTooManyRequests:
			return domainErrors.ErrProviderRateLimited.
				WithError(err).
				WithContext("provider", ProviderName)
		case apiErr.Code == http.StatusNotFound:
			return domainErrors.ErrModelNotFound.
				WithError(err).
				WithContext("provider", ProviderName).
				WithContext("model", c.modelName)
		case apiErr.Code >= http.StatusInternalServerError:
			return domainErrors.ErrProviderUnavailable.
				WithError(err).
				WithContext("provider", ProviderName)
		}
	}
	return domainErrors.ErrProviderUnavailable.
		WithError(err).
		WithContext("provider", ProviderName)
}

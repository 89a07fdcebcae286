// Package openai implementa el generador de texto contra la API de chat
// completions de OpenAI, o cualquier backend compatible con ese contrato.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mate-labs/matepr/internal/domain/models"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/infrastructure/ai"
	"github.com/mate-labs/matepr/internal/infrastructure/httpclient"
	"github.com/mate-labs/matepr/internal/logger"
)

const (
	// ProviderName es el nombre con el que se registra este proveedor.
	ProviderName = "openai"

	// DefaultBaseURL es el endpoint oficial. Se puede pisar para apuntar a
	// backends compatibles.
	DefaultBaseURL = "https://api.openai.com"

	chatCompletionsPath = "/v1/chat/completions"
	requestTimeout      = 120 * time.Second
)

// OpenAIClient habla con la API de chat completions e implementa el puerto
// TextGenerator.
type OpenAIClient struct {
	httpClient  httpclient.HTTPClient
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

// NewOpenAIClient crea el cliente con el cliente HTTP real.
func NewOpenAIClient(apiKey, model string, temperature float64, maxTokens int) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing.WithContext("provider", ProviderName)
	}
	return &OpenAIClient{
		httpClient:  httpclient.NewDefaultHTTPClient(requestTimeout),
		apiKey:      apiKey,
		model:       model,
		baseURL:     DefaultBaseURL,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// NewOpenAIClientWithHTTP crea el cliente inyectando el cliente HTTP y la URL
// base, pensado para los tests.
func NewOpenAIClientWithHTTP(apiKey, model, baseURL string, httpClient httpclient.HTTPClient) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing.WithContext("provider", ProviderName)
	}
	return &OpenAIClient{
		httpClient:  httpClient,
		apiKey:      apiKey,
		model:       model,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		temperature: 0.3,
	}, nil
}

// GenerateText manda el prompt como mensaje de usuario junto con el mensaje
// de sistema fijo y devuelve el texto de la primera choice.
func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string) (string, *models.TokenUsage, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", nil, domainErrors.NewAppError(domainErrors.TypeValidation, "prompt is empty", nil)
	}

	log := logger.FromContext(ctx)

	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: ai.SummarySystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
	}
	if c.maxTokens > 0 {
		reqBody.MaxTokens = c.maxTokens
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", nil, domainErrors.NewAppError(domainErrors.TypeInternal, "could not encode the request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(payload))
	if err != nil {
		return "", nil, domainErrors.NewAppError(domainErrors.TypeInternal, "could not build the request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.Debug("llamando a la API de openai", "model", c.model, "url", c.baseURL+chatCompletionsPath)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, domainErrors.ErrProviderUnavailable.
			WithError(err).
			WithContext("provider", ProviderName)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, domainErrors.NewAppError(domainErrors.TypeNetwork, "could not read the provider response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", nil, c.mapAPIError(resp.StatusCode, body)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", nil, domainErrors.NewAppError(domainErrors.TypeProvider, "could not decode the provider response", err)
	}
	if len(completion.Choices) == 0 {
		return "", nil, domainErrors.ErrEmptyAIResponse.WithContext("provider", ProviderName)
	}

	usage := &models.TokenUsage{
		InputTokens:  completion.Usage.PromptTokens,
		OutputTokens: completion.Usage.CompletionTokens,
		TotalTokens:  completion.Usage.TotalTokens,
	}
	return completion.Choices[0].Message.Content, usage, nil
}

func (c *OpenAIClient) GetModelName() string {
	return c.model
}

func (c *OpenAIClient) GetProviderName() string {
	return ProviderName
}

// mapAPIError traduce los códigos de estado de la API a errores del dominio.
func (c *OpenAIClient) mapAPIError(status int, body []byte) error {
	message := strings.TrimSpace(string(body))
	var errResp apiErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		message = errResp.Error.Message
	}

	apiErr := fmt.Errorf("openai API: %s", message)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domainErrors.ErrProviderKeyInvalid.
			WithError(apiErr).
			WithContext("provider", ProviderName).
			WithContext("status", status)
	case status == http.StatusTooManyRequests:
		return domainErrors.ErrProviderRateLimited.
			WithError(apiErr).
			WithContext("provider", ProviderName)
	case status == http.StatusNotFound:
		return domainErrors.ErrModelNotFound.
			WithError(apiErr).
			WithContext("provider", ProviderName).
			WithContext("model", c.model)
	case status >= http.StatusInternalServerError:
		return domainErrors.ErrProviderUnavailable.
			WithError(apiErr).
			WithContext("provider", ProviderName).
			WithContext("status", status)
	default:
		return domainErrors.NewAppError(
			domainErrors.TypeProvider,
			fmt.Sprintf("openai API returned status %d", status),
			apiErr,
		).WithContext("provider", ProviderName)
	}
}

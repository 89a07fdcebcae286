// Package ollama implementa el generador de texto contra un servidor ollama
// corriendo en la máquina local. No requiere API key ni conexión a internet.
package ollama

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
	"github.com/mate-labs/matepr/internal/infrastructure/httpclient"
	"github.com/mate-labs/matepr/internal/logger"
)

const (
	// ProviderName es el nombre con el que se registra este proveedor.
	ProviderName = "ollama"

	generatePath = "/api/generate"

	// Los modelos locales pueden tardar varios minutos en una máquina sin
	// GPU, así que el timeout es bien generoso.
	requestTimeout = 10 * time.Minute
)

// OllamaClient habla con la API de generación de ollama e implementa el
// puerto TextGenerator.
type OllamaClient struct {
	httpClient httpclient.HTTPClient
	baseURL    string
	model      string
}

// NewOllamaClient crea el cliente con el cliente HTTP real apuntando a la URL
// base dada, por ejemplo http://localhost:11434.
func NewOllamaClient(baseURL, model string) *OllamaClient {
	return &OllamaClient{
		httpClient: httpclient.NewDefaultHTTPClient(requestTimeout),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
	}
}

// NewOllamaClientWithHTTP crea el cliente inyectando el cliente HTTP, pensado
// para los tests.
func NewOllamaClientWithHTTP(baseURL, model string, httpClient httpclient.HTTPClient) *OllamaClient {
	return &OllamaClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
	}
}

// GenerateText manda el prompt al endpoint de generación con stream apagado y
// devuelve la respuesta completa en un solo texto.
func (c *OllamaClient) GenerateText(ctx context.Context, prompt string) (string, *models.TokenUsage, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", nil, domainErrors.NewAppError(domainErrors.TypeValidation, "prompt is empty", nil)
	}

	log := logger.FromContext(ctx)

	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", nil, domainErrors.NewAppError(domainErrors.TypeInternal, "could not encode the request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(payload))
	if err != nil {
		return "", nil, domainErrors.NewAppError(domainErrors.TypeInternal, "could not build the request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug("llamando al servidor de ollama", "model", c.model, "url", c.baseURL+generatePath)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// El caso típico es connection refused porque el servidor no está
		// corriendo.
		return "", nil, domainErrors.ErrProviderUnavailable.
			WithError(err).
			WithContext("provider", ProviderName).
			WithContext("url", c.baseURL)
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

	var generated generateResponse
	if err := json.Unmarshal(body, &generated); err != nil {
		return "", nil, domainErrors.NewAppError(domainErrors.TypeProvider, "could not decode the provider response", err)
	}

	usage := &models.TokenUsage{
		InputTokens:  generated.PromptEvalCount,
		OutputTokens: generated.EvalCount,
		TotalTokens:  generated.PromptEvalCount + generated.EvalCount,
	}
	return generated.Response, usage, nil
}

func (c *OllamaClient) GetModelName() string {
	return c.model
}

func (c *OllamaClient) GetProviderName() string {
	return ProviderName
}

// mapAPIError traduce los códigos de estado de ollama a errores del dominio.
// Un 404 acá casi siempre significa que el modelo no está bajado.
func (c *OllamaClient) mapAPIError(status int, body []byte) error {
	message := strings.TrimSpace(string(body))
	var errResp apiErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
	}

	apiErr := fmt.Errorf("ollama API: %s", message)
	switch {
	case status == http.StatusNotFound:
		return domainErrors.ErrModelNotFound.
			WithError(apiErr).
			WithContext("provider", ProviderName).
			WithContext("model", c.model).
			WithSuggestion(fmt.Sprintf("Pull the model first: ollama pull %s", c.model))
	case status >= http.StatusInternalServerError:
		return domainErrors.ErrProviderUnavailable.
			WithError(apiErr).
			WithContext("provider", ProviderName).
			WithContext("status", status)
	default:
		return domainErrors.NewAppError(
			domainErrors.TypeProvider,
			fmt.Sprintf("ollama API returned status %d", status),
			apiErr,
		).WithContext("provider", ProviderName)
	}
}

// Package httpclient define la abstracción mínima sobre el cliente HTTP que
// usan los proveedores de IA, así los tests pueden inyectar clientes falsos.
package httpclient

import (
	"net/http"
	"time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type DefaultHTTPClient struct {
	Client *http.Client
}

// NewDefaultHTTPClient crea el cliente HTTP real con el timeout dado. Los
// proveedores locales como ollama pueden tardar bastante en generar, así que
// el timeout lo decide cada cliente.
func NewDefaultHTTPClient(timeout time.Duration) *DefaultHTTPClient {
	return &DefaultHTTPClient{
		Client: &http.Client{Timeout: timeout},
	}
}

func (c *DefaultHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.Client.Do(req)
}

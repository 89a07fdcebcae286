package models

type (
	// Summary es la salida del proveedor para un PR. El texto se trata como
	// markdown opaco, no se parsea en secciones.
	Summary struct {
		Text     string
		Provider string
		Model    string
		Usage    *TokenUsage
	}

	// TokenUsage contiene las métricas de consumo reportadas por el proveedor.
	TokenUsage struct {
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		TotalTokens  int     `json:"total_tokens"`
		CostUSD      float64 `json:"cost_usd,omitempty"`
		Model        string  `json:"model,omitempty"`
		DurationMs   int64   `json:"duration_ms,omitempty"`
	}
)

package ollama

// Tipos del wire format de la API local de ollama. Las duraciones que
// devuelve la API vienen en nanosegundos.

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
	TotalDuration   int64  `json:"total_duration"`
}

type apiErrorResponse struct {
	Error string `json:"error"`
}

package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeValidation    ErrorType = "VALIDATION"
	TypeAuth          ErrorType = "AUTH"
	TypeNotFound      ErrorType = "NOT_FOUND"
	TypeNetwork       ErrorType = "NETWORK"
	TypeRateLimit     ErrorType = "RATE_LIMIT"
	TypeProvider      ErrorType = "PROVIDER_UNAVAILABLE"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Credential and configuration errors. Una credencial ausente es un error de
// autenticación, no de configuración: el run tiene que cortarse antes de
// tocar la red.
var (
	ErrTokenMissing = NewAppError(TypeAuth, "GitHub token is missing", nil).
			WithSuggestion("Set the GITHUB_TOKEN environment variable or run: matepr config set-token <token>")

	ErrAPIKeyMissing = NewAppError(TypeAuth, "LLM API key is missing", nil).
				WithSuggestion("Set the API key for your provider, e.g. OPENAI_API_KEY or GEMINI_API_KEY")

	ErrConfigMissing = NewAppError(TypeConfiguration, "Configuration is missing", nil).
				WithSuggestion("Run any matepr command once to create ~/.matepr/config.json")
)

// Validation errors
var (
	ErrInvalidRepoFormat = NewAppError(TypeValidation, "invalid repository format", nil).
				WithSuggestion("Use the owner/name format, e.g. golang/go")

	ErrInvalidPRNumber = NewAppError(TypeValidation, "invalid PR number", nil).
				WithSuggestion("PR numbers are positive integers, e.g. --pr-number 42")
)

// GitHub API errors
var (
	ErrGitHubTokenInvalid = NewAppError(TypeAuth, "GitHub token is invalid or expired", nil).
				WithSuggestion("Generate a new token at: https://github.com/settings/tokens\nThen run: matepr config set-token <token>")

	ErrGitHubInsufficientPerms = NewAppError(TypeAuth, "GitHub token has insufficient permissions", nil).
					WithSuggestion("Token needs 'repo' scope for private repositories.\nRegenerate at: https://github.com/settings/tokens")

	ErrRepositoryNotFound = NewAppError(TypeNotFound, "repository or PR not found", nil).
				WithSuggestion("Check the owner/name spelling and that your token can see the repository")

	ErrGitHubRateLimit = NewAppError(TypeRateLimit, "GitHub API rate limit exceeded", nil).
				WithSuggestion("Wait a few minutes or use a personal access token for higher limits")

	ErrGitHubUnreachable = NewAppError(TypeNetwork, "could not reach the GitHub API", nil).
				WithSuggestion("Check your network connection and try again")
)

// Provider errors
var (
	ErrProviderKeyInvalid = NewAppError(TypeAuth, "provider API key is invalid", nil).
				WithSuggestion("Check the API key for your provider and run: matepr config show")

	ErrProviderRateLimited = NewAppError(TypeRateLimit, "provider quota exceeded or rate limited", nil).
				WithSuggestion("Wait a few minutes and try again, or check your API quota")

	ErrProviderUnavailable = NewAppError(TypeProvider, "LLM backend is unreachable", nil).
				WithSuggestion("If using ollama, make sure the server is running: ollama serve")

	ErrModelNotFound = NewAppError(TypeNotFound, "model not found on the provider", nil).
				WithSuggestion("For ollama, pull the model first: ollama pull <model>")

	ErrProviderNotSupported = NewAppError(TypeConfiguration, "provider not supported", nil).
				WithSuggestion("Supported providers: basic, openai, gemini, ollama")

	ErrEmptyAIResponse = NewAppError(TypeProvider, "provider returned an empty response", nil).
				WithSuggestion("This is likely a temporary issue, please try again")
)

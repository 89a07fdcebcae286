package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("original error")
	appErr := ErrRepositoryNotFound.WithError(baseErr)

	if appErr.Err != baseErr {
		t.Errorf("Expected underlying error to be %v, got %v", baseErr, appErr.Err)
	}

	if appErr.Type != TypeNotFound {
		t.Errorf("Expected type %s, got %s", TypeNotFound, appErr.Type)
	}
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrRepositoryNotFound.WithContext("repo", "golang/go").WithContext("pr_number", 42)

	if appErr.Context["repo"] != "golang/go" {
		t.Errorf("Expected repo context 'golang/go', got %v", appErr.Context["repo"])
	}

	if appErr.Context["pr_number"] != 42 {
		t.Errorf("Expected pr_number context 42, got %v", appErr.Context["pr_number"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name: "Simple error without underlying error",
			err:  ErrTokenMissing,
			contains: []string{
				"AUTH",
				"GitHub token is missing",
			},
		},
		{
			name: "Error with underlying error",
			err:  ErrGitHubUnreachable.WithError(errors.New("connection refused")),
			contains: []string{
				"NETWORK",
				"could not reach the GitHub API",
				"connection refused",
			},
		},
		{
			name: "Provider error keeps its kind in the message",
			err:  ErrProviderUnavailable.WithError(errors.New("dial tcp: connect")),
			contains: []string{
				"PROVIDER_UNAVAILABLE",
				"LLM backend is unreachable",
				"dial tcp",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(errMsg, substr) {
					t.Errorf("Expected error message to contain %q, got: %s", substr, errMsg)
				}
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	baseErr := errors.New("base error")
	appErr := ErrGitHubRateLimit.WithError(baseErr)

	unwrapped := appErr.Unwrap()
	if unwrapped != baseErr {
		t.Errorf("Expected unwrapped error to be %v, got %v", baseErr, unwrapped)
	}

	// Test errors.Is functionality
	if !errors.Is(appErr, baseErr) {
		t.Error("errors.Is should work with AppError")
	}
}

func TestAppError_ChainedContext(t *testing.T) {
	appErr := ErrProviderRateLimited.
		WithError(errors.New("429 too many requests")).
		WithContext("provider", "openai").
		WithContext("model", "gpt-4o-mini")

	if appErr.Context["provider"] != "openai" {
		t.Errorf("Expected provider context, got %v", appErr.Context["provider"])
	}

	if appErr.Context["model"] != "gpt-4o-mini" {
		t.Errorf("Expected model context, got %v", appErr.Context["model"])
	}

	// Ensure we didn't modify the original error
	if ErrProviderRateLimited.Context != nil {
		t.Error("Original error should not have context")
	}
}

func TestSentinelTypes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want ErrorType
	}{
		{"missing token is auth", ErrTokenMissing, TypeAuth},
		{"missing api key is auth", ErrAPIKeyMissing, TypeAuth},
		{"invalid token is auth", ErrGitHubTokenInvalid, TypeAuth},
		{"unknown repo is not found", ErrRepositoryNotFound, TypeNotFound},
		{"github throttling is rate limit", ErrGitHubRateLimit, TypeRateLimit},
		{"provider throttling is rate limit", ErrProviderRateLimited, TypeRateLimit},
		{"unreachable backend is provider unavailable", ErrProviderUnavailable, TypeProvider},
		{"bad repo format is validation", ErrInvalidRepoFormat, TypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.want {
				t.Errorf("Expected type %s, got %s", tt.want, tt.err.Type)
			}
		})
	}
}

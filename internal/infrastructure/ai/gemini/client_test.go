package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/mate-labs/matepr/internal/errors"
)

func TestNewGeminiClient_MissingKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "gemini-1.5-flash", 0.3)

	require.Error(t, err)
	var appErr *domainErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainErrors.TypeAuth, appErr.Type)
}

func TestFormatResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("## TL;DR\n"), genai.Text("Arregla el loop.")},
				},
			},
			{Content: nil},
		},
	}

	got := formatResponse(resp)

	assert.Equal(t, "## TL;DR\nArregla el loop.", got)
}

func TestFormatResponse_Empty(t *testing.T) {
	assert.Equal(t, "", formatResponse(&genai.GenerateContentResponse{}))
}

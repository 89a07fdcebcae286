package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mate-labs/matepr/internal/domain/models"
)

func samplePR() models.PRContext {
	return models.PRContext{
		Repo:         "octocat/hello",
		Number:       7,
		Title:        "Fix off-by-one",
		Description:  "Fixes the loop bound in the main parser loop.",
		Author:       "dev",
		State:        "open",
		BaseBranch:   "main",
		HeadBranch:   "fix/loop-bound",
		Additions:    3,
		Deletions:    1,
		ChangedFiles: 1,
		Files: []models.ChangedFile{
			{Path: "src/loop.c", Status: "modified", Additions: 3, Deletions: 1},
		},
		Commits: []models.CommitInfo{
			{SHA: "abc1234", Message: "fix loop bound", Author: "dev"},
		},
	}
}

func TestBuildSummaryPrompt_ContainsPRData(t *testing.T) {
	// Arrange
	pr := samplePR()

	// Act
	prompt := BuildSummaryPrompt(pr, "en")

	// Assert: los datos del PR tienen que aparecer tal cual
	assert.Contains(t, prompt, "PR #7: Fix off-by-one")
	assert.Contains(t, prompt, "Repository: octocat/hello")
	assert.Contains(t, prompt, "Author: dev")
	assert.Contains(t, prompt, "Branch: fix/loop-bound -> main")
	assert.Contains(t, prompt, "Fixes the loop bound in the main parser loop.")
	assert.Contains(t, prompt, "Stats: 1 files changed, +3/-1")
	assert.Contains(t, prompt, "- src/loop.c (modified, +3/-1)")
	assert.Contains(t, prompt, "- abc1234: fix loop bound")

	// y las secciones pedidas también
	assert.Contains(t, prompt, "## TL;DR")
	assert.Contains(t, prompt, "## Files Changed")
	assert.Contains(t, prompt, "## Risk Level")
	assert.Contains(t, prompt, "## Suggested Reviewers")
	assert.Contains(t, prompt, "## Key Changes")
	assert.Contains(t, prompt, "## Testing Notes")
}

func TestBuildSummaryPrompt_Deterministic(t *testing.T) {
	pr := samplePR()

	first := BuildSummaryPrompt(pr, "en")
	second := BuildSummaryPrompt(pr, "en")

	assert.Equal(t, first, second)
}

func TestBuildSummaryPrompt_SpanishTemplate(t *testing.T) {
	pr := samplePR()

	prompt := BuildSummaryPrompt(pr, "es")

	assert.Contains(t, prompt, "Che, ¿me armás un resumen")
	assert.Contains(t, prompt, "## Nivel de Riesgo")
	// El bloque de datos no cambia con el idioma
	assert.Contains(t, prompt, "- src/loop.c (modified, +3/-1)")
}

func TestGetSummaryPromptTemplate_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, summaryPromptTemplateEN, GetSummaryPromptTemplate("en"))
	assert.Equal(t, summaryPromptTemplateES, GetSummaryPromptTemplate("es"))
	assert.Equal(t, summaryPromptTemplateEN, GetSummaryPromptTemplate("fr"))
	assert.Equal(t, summaryPromptTemplateEN, GetSummaryPromptTemplate(""))
}

func TestFormatPRContent_CapsFilesAndCommits(t *testing.T) {
	// Arrange
	pr := samplePR()
	pr.Files = nil
	for i := 0; i < 25; i++ {
		pr.Files = append(pr.Files, models.ChangedFile{
			Path:      fmt.Sprintf("internal/pkg/file%02d.go", i),
			Status:    "modified",
			Additions: 1,
		})
	}
	pr.Commits = nil
	for i := 0; i < 12; i++ {
		pr.Commits = append(pr.Commits, models.CommitInfo{
			SHA:     fmt.Sprintf("sha%04d", i),
			Message: fmt.Sprintf("commit %d", i),
		})
	}

	// Act
	content := FormatPRContent(pr)

	// Assert
	assert.Contains(t, content, "internal/pkg/file19.go")
	assert.NotContains(t, content, "internal/pkg/file20.go")
	assert.Contains(t, content, "... and 5 more files")

	assert.Contains(t, content, "sha0009: commit 9")
	assert.NotContains(t, content, "sha0010")
	assert.Contains(t, content, "... and 2 more commits")
}

func TestFormatPRContent_TruncatesDescription(t *testing.T) {
	pr := samplePR()
	pr.Description = strings.Repeat("x", 600)

	content := FormatPRContent(pr)

	assert.Contains(t, content, strings.Repeat("x", 500)+"...")
	assert.NotContains(t, content, strings.Repeat("x", 501))
}

func TestFormatPRContent_OmitsEmptySections(t *testing.T) {
	pr := models.PRContext{Number: 1, Title: "Empty PR"}

	content := FormatPRContent(pr)

	require.Contains(t, content, "PR #1: Empty PR")
	assert.NotContains(t, content, "Description:")
	assert.NotContains(t, content, "Files changed:")
	assert.NotContains(t, content, "Commits:")
	assert.NotContains(t, content, "Labels:")
}

func TestTruncateRunes_MultibyteSafe(t *testing.T) {
	s := strings.Repeat("ñ", 600)

	got := truncateRunes(s, 500)

	assert.Equal(t, strings.Repeat("ñ", 500)+"...", got)
	assert.Equal(t, "corto", truncateRunes("corto", 500))
}

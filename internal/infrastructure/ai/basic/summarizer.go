// Package basic implementa el resumen heurístico que no llama a ningún LLM.
// Sirve como fallback cuando no hay API keys configuradas ni un servidor
// local corriendo, y es el proveedor por defecto.
package basic

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mate-labs/matepr/internal/domain/models"
	"github.com/mate-labs/matepr/internal/logger"
)

// ProviderName es el nombre con el que se registra este proveedor.
const ProviderName = "basic"

var highRiskKeywords = []string{
	"auth", "authentication", "security", "password", "token", "credential",
	"payment", "billing", "charge", "transaction",
	"database", "migration", "schema", "sql",
	"config", "environment", "secret", "key",
}

var mediumRiskKeywords = []string{
	"api", "endpoint", "route", "controller",
	"deploy", "infrastructure", "docker", "kubernetes",
	"test", "testing", "spec",
}

var criticalExtensions = []string{".py", ".js", ".ts", ".java", ".go", ".rb"}

const (
	maxSuggestedReviewers = 3
	maxMajorFiles         = 10
	maxFileTypes          = 5
)

// BasicSummarizer genera el resumen con reglas fijas sobre los datos del PR.
// Implementa el puerto PRSummarizer directamente, sin pasar por un generador
// de texto.
type BasicSummarizer struct{}

func NewBasicSummarizer() *BasicSummarizer {
	return &BasicSummarizer{}
}

// SummarizePR arma el resumen heurístico. Es determinístico: el mismo PR
// produce siempre el mismo texto.
func (s *BasicSummarizer) SummarizePR(ctx context.Context, pr models.PRContext) (models.Summary, error) {
	logger.FromContext(ctx).Debug("generando resumen heurístico", "pr_number", pr.Number)

	return models.Summary{
		Text:     renderSummary(pr),
		Provider: ProviderName,
	}, nil
}

// assessRiskLevel clasifica el riesgo del PR mirando palabras clave en el
// título, la descripción y los nombres de archivo, más la cantidad de
// archivos de código tocados.
func assessRiskLevel(files []models.ChangedFile, title, description string) (string, string) {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.ToLower(f.Path))
	}
	allContent := strings.ToLower(title+" "+description) + " " + strings.Join(names, " ")

	highRiskCount := 0
	for _, keyword := range highRiskKeywords {
		if strings.Contains(allContent, keyword) {
			highRiskCount++
		}
	}
	mediumRiskCount := 0
	for _, keyword := range mediumRiskKeywords {
		if strings.Contains(allContent, keyword) {
			mediumRiskCount++
		}
	}

	criticalFiles := 0
	for _, f := range files {
		for _, ext := range criticalExtensions {
			if strings.HasSuffix(f.Path, ext) {
				criticalFiles++
				break
			}
		}
	}

	switch {
	case highRiskCount > 0 || criticalFiles > 10:
		return "High", fmt.Sprintf("Touches %d high-risk areas or %d critical files", highRiskCount, criticalFiles)
	case mediumRiskCount > 2 || criticalFiles > 5:
		return "Medium", fmt.Sprintf("Moderate changes affecting %d areas", mediumRiskCount)
	default:
		return "Low", "Limited scope, low-risk changes"
	}
}

// suggestReviewers propone equipos según patrones en los paths. Devuelve a lo
// sumo tres sugerencias, siempre en el mismo orden.
func suggestReviewers(files []models.ChangedFile) []string {
	anyPathContains := func(fragments ...string) bool {
		for _, f := range files {
			name := strings.ToLower(f.Path)
			for _, fragment := range fragments {
				if strings.Contains(name, fragment) {
					return true
				}
			}
		}
		return false
	}

	var suggestions []string
	if anyPathContains("auth", "security") {
		suggestions = append(suggestions, "security-team")
	}
	if anyPathContains("test") {
		suggestions = append(suggestions, "qa-team")
	}
	if anyPathContains("frontend", "ui") {
		suggestions = append(suggestions, "frontend-team")
	}
	if anyPathContains("backend", "api") {
		suggestions = append(suggestions, "backend-team")
	}

	if len(suggestions) > maxSuggestedReviewers {
		suggestions = suggestions[:maxSuggestedReviewers]
	}
	return suggestions
}

type fileTypeCount struct {
	ext   string
	count int
}

// fileTypeCounts agrupa los archivos por extensión, ordenados por cantidad
// descendente. El desempate es alfabético para que la salida sea estable.
func fileTypeCounts(files []models.ChangedFile) []fileTypeCount {
	counts := make(map[string]int)
	for _, f := range files {
		ext := filepath.Ext(f.Path)
		if ext == "" {
			ext = "no extension"
		}
		counts[ext]++
	}

	result := make([]fileTypeCount, 0, len(counts))
	for ext, count := range counts {
		result = append(result, fileTypeCount{ext: ext, count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].count != result[j].count {
			return result[i].count > result[j].count
		}
		return result[i].ext < result[j].ext
	})
	return result
}

func renderSummary(pr models.PRContext) string {
	riskLevel, riskReasoning := assessRiskLevel(pr.Files, pr.Title, pr.Description)
	reviewers := suggestReviewers(pr.Files)

	var b strings.Builder
	fmt.Fprintf(&b, "# PR Summary: %s\n\n", pr.Title)

	b.WriteString("## TL;DR\n")
	fmt.Fprintf(&b, "%s by @%s - %d files changed (+%d/-%d lines)\n\n",
		pr.Title, pr.Author, pr.ChangedFiles, pr.Additions, pr.Deletions)

	b.WriteString("## Files Changed + Purpose\n")
	fmt.Fprintf(&b, "- **Total Files**: %d\n", pr.ChangedFiles)
	fmt.Fprintf(&b, "- **Lines Changed**: +%d additions, -%d deletions\n", pr.Additions, pr.Deletions)
	if types := fileTypeCounts(pr.Files); len(types) > 0 {
		if len(types) > maxFileTypes {
			types = types[:maxFileTypes]
		}
		parts := make([]string, len(types))
		for i, tc := range types {
			parts[i] = fmt.Sprintf("%s: %d", tc.ext, tc.count)
		}
		fmt.Fprintf(&b, "- **File Types**: %s\n", strings.Join(parts, ", "))
	}

	b.WriteString("\n### Major Files:\n")
	majorFiles := make([]models.ChangedFile, len(pr.Files))
	copy(majorFiles, pr.Files)
	sort.SliceStable(majorFiles, func(i, j int) bool {
		return majorFiles[i].TotalChanges() > majorFiles[j].TotalChanges()
	})
	if len(majorFiles) > maxMajorFiles {
		majorFiles = majorFiles[:maxMajorFiles]
	}
	for _, f := range majorFiles {
		fmt.Fprintf(&b, "- `%s` (%s, +%d/-%d)\n", f.Path, f.Status, f.Additions, f.Deletions)
	}

	b.WriteString("\n## Risk Level\n")
	fmt.Fprintf(&b, "**%s** - %s\n\n", riskLevel, riskReasoning)

	b.WriteString("## Suggested Reviewers\n")
	if len(reviewers) > 0 {
		for _, reviewer := range reviewers {
			fmt.Fprintf(&b, "- @%s\n", reviewer)
		}
	} else {
		b.WriteString("- Review based on file ownership\n")
	}

	b.WriteString("\n## Key Changes\n")
	fmt.Fprintf(&b, "- %d files modified\n", pr.ChangedFiles)
	fmt.Fprintf(&b, "- %d commits\n", len(pr.Commits))
	fmt.Fprintf(&b, "- Base: `%s` ← Head: `%s`\n", pr.BaseBranch, pr.HeadBranch)
	if len(pr.Labels) > 0 {
		fmt.Fprintf(&b, "- Labels: %s\n", strings.Join(pr.Labels, ", "))
	}

	b.WriteString("\n## Testing Notes\n")
	b.WriteString("- Review changes in critical files\n")
	b.WriteString("- Test affected functionality\n")
	b.WriteString("- Verify no breaking changes\n")
	b.WriteString("- Check for proper error handling\n")

	return b.String()
}

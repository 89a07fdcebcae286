package ai

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mate-labs/matepr/internal/domain/models"
)

const (
	// maxPromptFiles limita cuántos archivos entran al prompt para no
	// reventar la ventana de contexto en PRs gigantes.
	maxPromptFiles = 20
	// maxPromptCommits limita cuántos commits se listan en el prompt.
	maxPromptCommits = 10
	// maxDescriptionChars trunca descripciones largas de PR.
	maxDescriptionChars = 500
)

// BuildSummaryPrompt arma el prompt completo para resumir un PR en el idioma
// pedido. Es una función pura: el mismo PRContext con el mismo idioma produce
// siempre exactamente el mismo string, sin importar cuántas veces se llame.
func BuildSummaryPrompt(pr models.PRContext, lang string) string {
	return fmt.Sprintf(GetSummaryPromptTemplate(lang), FormatPRContent(pr))
}

// FormatPRContent serializa los datos del PR en el bloque de texto que se
// inserta dentro del template. Las etiquetas del bloque van siempre en inglés,
// el idioma solo cambia las instrucciones del template.
func FormatPRContent(pr models.PRContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PR #%d: %s\n", pr.Number, pr.Title)
	if pr.Repo != "" {
		fmt.Fprintf(&b, "Repository: %s\n", pr.Repo)
	}
	if pr.Author != "" {
		fmt.Fprintf(&b, "Author: %s\n", pr.Author)
	}
	if pr.HeadBranch != "" && pr.BaseBranch != "" {
		fmt.Fprintf(&b, "Branch: %s -> %s\n", pr.HeadBranch, pr.BaseBranch)
	}
	if len(pr.Labels) > 0 {
		fmt.Fprintf(&b, "Labels: %s\n", strings.Join(pr.Labels, ", "))
	}

	if description := truncateRunes(pr.Description, maxDescriptionChars); description != "" {
		fmt.Fprintf(&b, "\nDescription:\n%s\n", description)
	}

	fmt.Fprintf(&b, "\nStats: %d files changed, +%d/-%d\n", pr.ChangedFiles, pr.Additions, pr.Deletions)

	if len(pr.Files) > 0 {
		b.WriteString("\nFiles changed:\n")
		for i, file := range pr.Files {
			if i >= maxPromptFiles {
				fmt.Fprintf(&b, "... and %d more files\n", len(pr.Files)-maxPromptFiles)
				break
			}
			fmt.Fprintf(&b, "- %s (%s, +%d/-%d)\n", file.Path, file.Status, file.Additions, file.Deletions)
		}
	}

	if len(pr.Commits) > 0 {
		b.WriteString("\nCommits:\n")
		for i, commit := range pr.Commits {
			if i >= maxPromptCommits {
				fmt.Fprintf(&b, "... and %d more commits\n", len(pr.Commits)-maxPromptCommits)
				break
			}
			fmt.Fprintf(&b, "- %s: %s\n", commit.SHA, commit.Message)
		}
	}

	return b.String()
}

// truncateRunes corta el texto a maxChars runas, agregando "..." si hubo corte.
// Se corta por runas y no por bytes para no partir caracteres multibyte.
func truncateRunes(s string, maxChars int) string {
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	return string([]rune(s)[:maxChars]) + "..."
}

package ai

// SummarySystemPrompt es el mensaje de sistema que se manda a los proveedores
// que soportan chat por roles. Siempre va en inglés, sin importar el idioma
// configurado para el resumen.
const SummarySystemPrompt = "You are a helpful assistant that summarizes GitHub Pull Requests for code review."

const summaryPromptTemplateEN = `Hey, could you put together a review-ready summary of this Pull Request? I need these sections:

	## TL;DR
	One sentence saying what the PR does.

	## Files Changed
	The changed files grouped by type or purpose.

	## Risk Level
	Low, Medium or High, with a short reasoning.

	## Suggested Reviewers
	Which teams or profiles should take a look, based on the files touched.

	## Key Changes
	- The main modifications as bullet points

	## Testing Notes
	What should be tested before merging.

	Format the whole thing as Markdown.

	Here is the PR:
	%s

	Thanks a bunch, you rock!`

const summaryPromptTemplateES = `Che, ¿me armás un resumen listo para revisar de este Pull Request? Necesito estas secciones:

	## TL;DR
	Una sola oración contando qué hace el PR.

	## Archivos Modificados
	Los archivos modificados agrupados por tipo o propósito.

	## Nivel de Riesgo
	Bajo, Medio o Alto, con una justificación breve.

	## Revisores Sugeridos
	Qué equipos o perfiles deberían mirarlo, según los archivos tocados.

	## Cambios Clave
	- Las modificaciones principales en bullets

	## Notas de Testing
	Qué conviene probar antes de mergear.

	Formateá todo como Markdown.

	Acá va el PR:
	%s

	¡Gracias, máquina!`

// GetSummaryPromptTemplate devuelve el template del prompt según el idioma.
// Si el idioma no está soportado cae al template en inglés.
func GetSummaryPromptTemplate(lang string) string {
	switch lang {
	case "es":
		return summaryPromptTemplateES
	default:
		return summaryPromptTemplateEN
	}
}

package usecase

import (
	"fmt"
	"strings"

	"yujuris-api/internal/domain/entity"
)

// maxPromptExcerpt bounds each reference line in the prompt.
const maxPromptExcerpt = 300

// BuildLegalPrompt renders the question and the gathered references into the
// single prompt sent to the model.
func BuildLegalPrompt(q entity.Query, snippets []entity.Snippet) string {
	var sb strings.Builder
	sb.WriteString("Tu es un assistant juridique expert spécialisé en droit OHADA et droit ivoirien.\n")
	sb.WriteString("Réponds à la question suivante en te basant sur les sources juridiques fournies.\n\n")
	fmt.Fprintf(&sb, "Question: %s\n", q.Text)
	fmt.Fprintf(&sb, "Pays: %s\nDomaine: %s\n\n", q.Jurisdiction, q.Domain)

	sb.WriteString("Sources juridiques disponibles:\n")
	for _, s := range snippets {
		excerpt := s.Excerpt
		if excerpt == "" {
			excerpt = s.Content
		}
		fmt.Fprintf(&sb, "- %s: %s\n", s.Title, truncateRunes(excerpt, maxPromptExcerpt))
	}

	sb.WriteString("\nInstructions:\n")
	fmt.Fprintf(&sb, "1. Fournis une réponse complète et précise en %s\n", q.Locale.LanguageName())
	sb.WriteString("2. Cite les articles et textes juridiques pertinents\n")
	sb.WriteString("3. Structure ta réponse avec des sections claires\n")
	sb.WriteString("4. Inclus des conseils pratiques si approprié\n")
	sb.WriteString("5. Mentionne les références OHADA quand c'est pertinent\n")
	sb.WriteString("6. Utilise un ton professionnel mais accessible\n\n")
	sb.WriteString("Réponse:\n")
	return sb.String()
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

package llm

import (
	"fmt"
	"strings"
	"time"

	"brme/pkg/datemath"
)

const systemPrompt = "Você extrai eventos de calendário em pt-BR. Responda APENAS com JSON válido."

// BuildPrompt renders the user message for one sentence.
func BuildPrompt(text string, now time.Time, loc *time.Location, timezoneName, offset string) string {
	var sb strings.Builder
	sb.WriteString("Extraia um evento de calendário.\n")
	sb.WriteString("Responda SOMENTE com JSON puro.\n")
	sb.WriteString("Campos: title, start, end, timezone, location, notes.\n")
	fmt.Fprintf(&sb, "Formato start/end: YYYY-MM-DDTHH:mm:00%s\n", offset)
	sb.WriteString("Se não houver duração, use 1 hora.\n")
	sb.WriteString("Use data_base_agora para termos relativos.\n\n")
	fmt.Fprintf(&sb, "timezone: %s\n", timezoneName)
	fmt.Fprintf(&sb, "tzOffset: %s\n", offset)
	fmt.Fprintf(&sb, "data_base_agora: %s\n", datemath.FormatTimestamp(now, loc, offset))
	fmt.Fprintf(&sb, "Texto: %q", text)
	return sb.String()
}

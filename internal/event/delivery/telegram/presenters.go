package telegram

import (
	"errors"
	"fmt"
	"strings"

	"brme/internal/event"
	"brme/internal/temporal"
)

const (
	msgEmptyPayload = "Me diga o evento. Ex: brme amanhã 14h reunião com João"
	msgRateLimited  = "⏳ Muitas mensagens em pouco tempo. Tente de novo em instantes."
	msgFailure      = "❌ Não consegui criar o evento: %s"
	msgHelp         = "Envie uma mensagem começando com \"brme\" seguida do evento.\n\n" +
		"Exemplos:\n" +
		"• brme amanhã 14h reunião com João\n" +
		"• brme hoje 18h academia\n" +
		"• brme sexta 9:30 dentista\n" +
		"• brme 20/02 às 15 entrega do projeto"
)

func createdReply(out event.CreateOutput) string {
	return formatReply("✅ Evento criado!", out.Event, out.Calendar.HTMLLink)
}

func resolvedReply(out event.ResolveOutput) string {
	return formatReply("✅ Evento interpretado!", out.Event, "")
}

func formatReply(header string, ev temporal.ResolvedEvent, link string) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	fmt.Fprintf(&b, "📌 %s\n", ev.Title)
	fmt.Fprintf(&b, "🕒 %s → %s\n", ev.Start, ev.End)
	if ev.Location != "" {
		fmt.Fprintf(&b, "📍 %s\n", ev.Location)
	}
	if link != "" {
		fmt.Fprintf(&b, "🔗 %s", link)
	}
	return strings.TrimRight(b.String(), "\n")
}

// failureReply maps errors to what the user should read.
func failureReply(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, temporal.ErrNoTemporalCueFound):
		msg = temporal.HintNoCue
	case errors.Is(err, temporal.ErrEstimatorUnavailable):
		msg = "o interpretador de datas está indisponível, tente novamente"
	case errors.Is(err, event.ErrCalendarUnavailable):
		msg = "o Google Calendar recusou o evento"
	}
	return fmt.Sprintf(msgFailure, msg)
}

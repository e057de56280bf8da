package http

import (
	"fmt"
	"strings"
	"time"

	"brme/internal/event"
	"brme/internal/model"
	"brme/internal/temporal"
)

// --- Request DTOs ---

type resolveReq struct {
	Text string `json:"text" binding:"required,max=1000"`
	// BaseDate is RFC3339; empty means the server clock.
	BaseDate string `json:"base_date"`
	Format   string `json:"-"`
}

const formatICS = "ics"

func (r resolveReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	if r.Format != "" && r.Format != formatICS {
		return fmt.Errorf("unsupported format %q", r.Format)
	}
	return nil
}

func (r resolveReq) toInput() (event.ResolveInput, error) {
	base, err := parseBaseDate(r.BaseDate)
	if err != nil {
		return event.ResolveInput{}, err
	}
	return event.ResolveInput{Text: r.Text, BaseDate: base}, nil
}

// ---

type createReq struct {
	Text       string `json:"text" binding:"required,max=1000"`
	BaseDate   string `json:"base_date"`
	CalendarID string `json:"calendar_id" binding:"max=255"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	return nil
}

func (r createReq) toInput() (event.CreateInput, error) {
	base, err := parseBaseDate(r.BaseDate)
	if err != nil {
		return event.CreateInput{}, err
	}
	return event.CreateInput{Text: r.Text, BaseDate: base, CalendarID: r.CalendarID}, nil
}

func parseBaseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errInvalidBaseDate
	}
	return t, nil
}

// --- Response DTOs ---

type resolveResp struct {
	temporal.ResolvedEvent
	Rule       string `json:"rule"`
	Normalized string `json:"normalized"`
}

func (h *handler) newResolveResp(out event.ResolveOutput) resolveResp {
	return resolveResp{
		ResolvedEvent: out.Event,
		Rule:          string(out.Rule),
		Normalized:    out.Normalized,
	}
}

type calendarResp struct {
	ID         string `json:"id"`
	CalendarID string `json:"calendar_id"`
	HTMLLink   string `json:"html_link,omitempty"`
}

type createResp struct {
	temporal.ResolvedEvent
	Rule     string       `json:"rule"`
	Calendar calendarResp `json:"calendar"`
}

func (h *handler) newCreateResp(out event.CreateOutput) createResp {
	return createResp{
		ResolvedEvent: out.Event,
		Rule:          string(out.Rule),
		Calendar:      newCalendarResp(out.Calendar),
	}
}

func newCalendarResp(ev model.CalendarEvent) calendarResp {
	return calendarResp{
		ID:         ev.ID,
		CalendarID: ev.CalendarID,
		HTMLLink:   ev.HTMLLink,
	}
}

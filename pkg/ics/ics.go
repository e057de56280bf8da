// Package ics renders resolved events as iCalendar documents.
package ics

import (
	"errors"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	ProductID   = "-//brme//resolver//PT"
	ContentType = "text/calendar; charset=utf-8"
)

var ErrInvalidRange = errors.New("ics: event end must be after start")

// Event is the subset of a VEVENT brme produces.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// Encode serializes events into a PUBLISH calendar. Events without a UID get a random one.
func Encode(now time.Time, events ...Event) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	for _, ev := range events {
		if !ev.End.After(ev.Start) {
			return "", ErrInvalidRange
		}

		uid := ev.UID
		if uid == "" {
			uid = uuid.NewString()
		}

		vevent := cal.AddEvent(uid)
		vevent.SetDtStampTime(now.UTC())
		vevent.SetStartAt(ev.Start)
		vevent.SetEndAt(ev.End)
		vevent.SetSummary(ev.Summary)
		if ev.Location != "" {
			vevent.SetLocation(ev.Location)
		}
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}
	}

	return cal.Serialize(), nil
}

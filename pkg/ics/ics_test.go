package ics_test

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brme/pkg/ics"
)

func TestEncode(t *testing.T) {
	loc := time.FixedZone("-03:00", -3*3600)
	start := time.Date(2025, 1, 7, 14, 0, 0, 0, loc)

	out, err := ics.Encode(start, ics.Event{
		UID:      "evt-1@brme",
		Summary:  "reunião com João",
		Location: "Escritório",
		Start:    start,
		End:      start.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "METHOD:PUBLISH")

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)

	ev := cal.Events()[0]
	assert.Equal(t, "evt-1@brme", ev.GetProperty(ical.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "reunião com João", ev.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "Escritório", ev.GetProperty(ical.ComponentPropertyLocation).Value)

	gotStart, err := ev.GetStartAt()
	require.NoError(t, err)
	assert.True(t, gotStart.Equal(start), "start %s", gotStart)

	gotEnd, err := ev.GetEndAt()
	require.NoError(t, err)
	assert.True(t, gotEnd.Equal(start.Add(time.Hour)), "end %s", gotEnd)
}

func TestEncode_GeneratesUIDAndOmitsEmptyFields(t *testing.T) {
	start := time.Date(2025, 1, 7, 17, 0, 0, 0, time.UTC)

	out, err := ics.Encode(start, ics.Event{Summary: "Lembrete", Start: start, End: start.Add(time.Hour)})
	require.NoError(t, err)

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	ev := cal.Events()[0]
	assert.NotEmpty(t, ev.GetProperty(ical.ComponentPropertyUniqueId).Value)
	assert.Nil(t, ev.GetProperty(ical.ComponentPropertyLocation))
	assert.Nil(t, ev.GetProperty(ical.ComponentPropertyDescription))
}

func TestEncode_RejectsEmptyRange(t *testing.T) {
	start := time.Date(2025, 1, 7, 17, 0, 0, 0, time.UTC)
	_, err := ics.Encode(start, ics.Event{Start: start, End: start})
	assert.ErrorIs(t, err, ics.ErrInvalidRange)
}

package output_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/galkatzh/JAMD-events/internal/calendar"
	"github.com/galkatzh/JAMD-events/internal/output"
)

func sampleEvents() []calendar.Event {
	location := time.FixedZone("IST", 2*60*60)
	return []calendar.Event{
		{
			Title:       "Spring Concert",
			DetailURL:   "https://www.jamd.ac.il/event/spring-concert",
			Location:    "Main Hall",
			DateDisplay: "05/03/2026 - 18:00",
			Start:       time.Date(2026, time.March, 5, 18, 0, 0, 0, location),
			HasStart:    true,
		},
		{
			Title:       "Undated Exhibition",
			DetailURL:   "https://www.jamd.ac.il/event/exhibition",
			DateDisplay: "TBD",
		},
	}
}

func TestEncodeICSCarriesCalendarAndEventProperties(testInstance *testing.T) {
	serialized := output.EncodeICS(sampleEvents())

	require.Contains(testInstance, serialized, "BEGIN:VCALENDAR")
	require.Contains(testInstance, serialized, "PRODID:-//JAMD Calendar Scraper//EN")
	require.Contains(testInstance, serialized, "METHOD:PUBLISH")
	require.Contains(testInstance, serialized, "X-WR-CALNAME:JAMD Events")
	require.Contains(testInstance, serialized, "X-WR-TIMEZONE:Asia/Jerusalem")
	require.Contains(testInstance, serialized, "SUMMARY:Spring Concert")
	require.Contains(testInstance, serialized, "LOCATION:Main Hall")
	require.Contains(testInstance, serialized, "STATUS:CONFIRMED")
	require.Contains(testInstance, serialized, "DTSTART:20260305T160000Z")
	require.Contains(testInstance, serialized, "DTEND:20260305T170000Z")
}

func TestEncodeICSSkipsEventsWithoutStartTimes(testInstance *testing.T) {
	serialized := output.EncodeICS(sampleEvents())
	require.NotContains(testInstance, serialized, "Undated Exhibition")
}

func TestEncodeICSIsDeterministic(testInstance *testing.T) {
	firstSerialization := output.EncodeICS(sampleEvents())
	secondSerialization := output.EncodeICS(sampleEvents())
	require.Equal(testInstance, firstSerialization, secondSerialization)
}

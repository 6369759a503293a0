package output

import (
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/galkatzh/JAMD-events/internal/calendar"
)

const (
	calendarProductIdentifierConstant = "-//JAMD Calendar Scraper//EN"
	calendarNameConstant              = "JAMD Events"
	calendarTimezoneConstant          = "Asia/Jerusalem"
	calendarUIDDomainSuffixConstant   = "@jamd.ac.il"
	uidComponentSeparatorConstant     = "|"
	defaultEventDurationConstant      = time.Hour
)

// EncodeICS serializes the events that carry start times into an iCalendar document.
//
// Event identifiers and timestamps are derived from the event data itself so
// an unchanged upstream calendar serializes to identical bytes run after run.
func EncodeICS(events []calendar.Event) string {
	icsCalendar := ics.NewCalendar()
	icsCalendar.SetMethod(ics.MethodPublish)
	icsCalendar.SetProductId(calendarProductIdentifierConstant)
	icsCalendar.SetCalscale("GREGORIAN")
	icsCalendar.SetXWRCalName(calendarNameConstant)
	icsCalendar.SetXWRTimezone(calendarTimezoneConstant)

	for _, event := range events {
		if !event.HasStart {
			continue
		}

		icsEvent := icsCalendar.AddEvent(eventUID(event))
		icsEvent.SetDtStampTime(event.Start.UTC())
		icsEvent.SetStartAt(event.Start.UTC())
		icsEvent.SetEndAt(event.Start.Add(defaultEventDurationConstant).UTC())
		icsEvent.SetSummary(event.Title)
		icsEvent.SetStatus(ics.ObjectStatusConfirmed)

		if description := eventDescription(event); len(description) > 0 {
			icsEvent.SetDescription(description)
		}
		if len(event.Location) > 0 {
			icsEvent.SetLocation(event.Location)
		}
		if len(event.DetailURL) > 0 {
			icsEvent.SetURL(event.DetailURL)
		}
	}

	return icsCalendar.Serialize()
}

// eventUID derives a stable identifier from the event URL and start time.
func eventUID(event calendar.Event) string {
	uidSource := event.DetailURL + uidComponentSeparatorConstant + event.StartRFC3339()
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(uidSource)).String() + calendarUIDDomainSuffixConstant
}

func eventDescription(event calendar.Event) string {
	if len(event.Description) > 0 {
		return event.Description
	}
	return event.DateDisplay
}

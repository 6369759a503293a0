package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	siteBaseURLConstant = "https://www.jamd.ac.il"

	eventContainerSelectorConstant = "div.view-item-calendar_event"
	titleLinkSelectorConstant      = "div.views-field-title a"
	dateFieldSelectorConstant      = "div.views-field-field-event-date-1 span.date-display-single"
	locationSelectorConstant       = "div.views-field-field-event-location div.field-content"
	parentCellSelectorConstant     = "td"

	hrefAttributeNameConstant     = "href"
	contentAttributeNameConstant  = "content"
	dataDateAttributeNameConstant = "data-date"

	calendarTimezoneNameConstant  = "Asia/Jerusalem"
	fallbackTimezoneOffsetSeconds = 2 * 60 * 60

	dateWithTimeLayoutConstant         = "2006-01-02T15:04"
	dateOnlyLayoutConstant             = "2006-01-02"
	localDateTimeLayoutConstant        = "2006-01-02T15:04:05"
	fragmentParseErrorTemplateConstant = "failed to parse calendar fragment: %w"
)

var displayTimePattern = regexp.MustCompile(`(\d{1,2}:\d{2})`)

// calendarLocation resolves the site timezone, falling back to a fixed +02:00 offset.
var calendarLocation = func() *time.Location {
	location, loadError := time.LoadLocation(calendarTimezoneNameConstant)
	if loadError != nil {
		return time.FixedZone(calendarTimezoneNameConstant, fallbackTimezoneOffsetSeconds)
	}
	return location
}()

// Parser extracts events from calendar HTML fragments.
type Parser struct {
	siteBaseURL string
}

// NewParser constructs a Parser resolving relative links against siteBaseURL.
func NewParser(siteBaseURL string) *Parser {
	if len(siteBaseURL) == 0 {
		siteBaseURL = siteBaseURLConstant
	}
	return &Parser{siteBaseURL: strings.TrimRight(siteBaseURL, "/")}
}

// ParseEvents extracts all events found in the supplied HTML fragment.
//
// Entries without a title are dropped. Entries whose start time cannot be
// resolved are kept with HasStart unset so downstream writers can decide.
func (parser *Parser) ParseEvents(fragment string) ([]Event, error) {
	document, parseError := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if parseError != nil {
		return nil, fmt.Errorf(fragmentParseErrorTemplateConstant, parseError)
	}

	events := make([]Event, 0)
	document.Find(eventContainerSelectorConstant).Each(func(_ int, eventSelection *goquery.Selection) {
		parsedEvent, hasTitle := parser.parseEvent(eventSelection)
		if !hasTitle {
			return
		}
		events = append(events, parsedEvent)
	})

	return events, nil
}

func (parser *Parser) parseEvent(eventSelection *goquery.Selection) (Event, bool) {
	parsedEvent := Event{}

	titleLink := eventSelection.Find(titleLinkSelectorConstant).First()
	parsedEvent.Title = strings.TrimSpace(titleLink.Text())
	if len(parsedEvent.Title) == 0 {
		return Event{}, false
	}

	if linkTarget, linkExists := titleLink.Attr(hrefAttributeNameConstant); linkExists {
		parsedEvent.DetailURL = parser.absoluteURL(linkTarget)
	}

	dateSpan := eventSelection.Find(dateFieldSelectorConstant).First()
	parsedEvent.DateDisplay = strings.TrimSpace(dateSpan.Text())

	if machineReadable, machineReadableExists := dateSpan.Attr(contentAttributeNameConstant); machineReadableExists {
		if startTime, parsedOK := parseMachineReadableTime(machineReadable); parsedOK {
			parsedEvent.Start = startTime
			parsedEvent.HasStart = true
		}
	}

	if !parsedEvent.HasStart {
		if startTime, parsedOK := parser.parseCellDate(eventSelection, parsedEvent.DateDisplay); parsedOK {
			parsedEvent.Start = startTime
			parsedEvent.HasStart = true
		}
	}

	locationContent := eventSelection.Find(locationSelectorConstant).First()
	parsedEvent.Location = strings.TrimSpace(locationContent.Text())

	return parsedEvent, true
}

// parseCellDate recovers the start time from the surrounding calendar cell
// when the date span carries no machine-readable content attribute.
func (parser *Parser) parseCellDate(eventSelection *goquery.Selection, dateDisplay string) (time.Time, bool) {
	parentCell := eventSelection.Closest(parentCellSelectorConstant)
	cellDate, cellDateExists := parentCell.Attr(dataDateAttributeNameConstant)
	if !cellDateExists || len(cellDate) == 0 {
		return time.Time{}, false
	}

	timeMatch := displayTimePattern.FindString(dateDisplay)
	if len(timeMatch) > 0 {
		startTime, parseError := time.ParseInLocation(dateWithTimeLayoutConstant, cellDate+"T"+timeMatch, calendarLocation)
		if parseError == nil {
			return startTime, true
		}
	}

	startTime, parseError := time.ParseInLocation(dateOnlyLayoutConstant, cellDate, calendarLocation)
	if parseError != nil {
		return time.Time{}, false
	}
	return startTime, true
}

func (parser *Parser) absoluteURL(linkTarget string) string {
	trimmedTarget := strings.TrimSpace(linkTarget)
	if len(trimmedTarget) == 0 {
		return ""
	}
	if strings.HasPrefix(trimmedTarget, "http://") || strings.HasPrefix(trimmedTarget, "https://") {
		return trimmedTarget
	}
	if !strings.HasPrefix(trimmedTarget, "/") {
		trimmedTarget = "/" + trimmedTarget
	}
	return parser.siteBaseURL + trimmedTarget
}

func parseMachineReadableTime(machineReadable string) (time.Time, bool) {
	trimmedValue := strings.TrimSpace(machineReadable)
	if len(trimmedValue) == 0 {
		return time.Time{}, false
	}

	if startTime, parseError := time.Parse(time.RFC3339, trimmedValue); parseError == nil {
		return startTime, true
	}

	startTime, parseError := time.ParseInLocation(localDateTimeLayoutConstant, trimmedValue, calendarLocation)
	if parseError != nil {
		return time.Time{}, false
	}
	return startTime, true
}

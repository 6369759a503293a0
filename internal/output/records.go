package output

import "github.com/galkatzh/JAMD-events/internal/calendar"

// EventRecord is the flat serialization shape shared by the CSV and JSON artifacts.
type EventRecord struct {
	Title       string `json:"title"`
	DateTime    string `json:"datetime,omitempty"`
	DateDisplay string `json:"date_display,omitempty"`
	Location    string `json:"location,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// BuildRecords converts events into serialization records, preserving order.
func BuildRecords(events []calendar.Event) []EventRecord {
	records := make([]EventRecord, 0, len(events))
	for _, event := range events {
		records = append(records, EventRecord{
			Title:       event.Title,
			DateTime:    event.StartRFC3339(),
			DateDisplay: event.DateDisplay,
			Location:    event.Location,
			URL:         event.DetailURL,
			Description: event.Description,
		})
	}
	return records
}

package calendar

import "time"

// Event describes a single calendar entry extracted from the events site.
type Event struct {
	Title       string
	DetailURL   string
	Location    string
	DateDisplay string
	Description string
	Start       time.Time
	HasStart    bool
}

// StartRFC3339 renders the start time for serialization, or an empty string when unresolved.
func (event Event) StartRFC3339() string {
	if !event.HasStart {
		return ""
	}
	return event.Start.Format(time.RFC3339)
}

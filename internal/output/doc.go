// Package output renders scraped events into the committed artifact files:
// an iCalendar feed plus CSV and JSON exports.
package output

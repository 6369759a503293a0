// Package calendar fetches and parses the jamd.ac.il public events calendar.
//
// The site renders its calendar through a Drupal Views AJAX endpoint that
// returns a JSON array of rendering commands whose payloads are HTML
// fragments. The fetcher speaks that protocol month by month and the parser
// extracts structured events from the fragments.
package calendar

// Package scrape wires the scrape command: fetch the events calendar,
// parse it, and write the committed artifacts.
package scrape

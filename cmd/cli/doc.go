// Package cli assembles the jamd-events command-line application: the Cobra
// root command, configuration loading, structured logging, and the scrape,
// publish, and sync subcommands.
package cli

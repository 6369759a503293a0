package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/galkatzh/JAMD-events/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the jamd-events command-line application.
func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}

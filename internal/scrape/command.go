package scrape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	commandUseConstant                    = "scrape"
	commandShortDescriptionConstant       = "Fetch upcoming calendar events and write the artifact files"
	commandLongDescriptionConstant        = "scrape downloads the upcoming months of the events calendar, parses every event, and writes the iCalendar, CSV, and JSON artifacts."
	commandExecutionErrorTemplateConstant = "calendar scrape failed: %w"
	unexpectedArgumentsMessageConstant    = "scrape does not accept positional arguments"
	flagMonthsNameConstant                = "months"
	flagMonthsDescriptionConstant         = "Number of months to scrape starting with the current one"
	flagOutputDirectoryNameConstant       = "output-dir"
	flagOutputDirectoryDescription        = "Directory receiving the generated artifact files"
	flagEnrichDetailsNameConstant         = "enrich-details"
	flagEnrichDetailsDescriptionConstant  = "Visit each event page and capture its description"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the effective scrape configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the Cobra command for calendar scraping.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
}

// Build constructs the scrape command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().Int(flagMonthsNameConstant, 0, flagMonthsDescriptionConstant)
	command.Flags().String(flagOutputDirectoryNameConstant, "", flagOutputDirectoryDescription)
	command.Flags().Bool(flagEnrichDetailsNameConstant, false, flagEnrichDetailsDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	configuration := builder.resolveConfiguration(command)
	logger := builder.resolveLogger()

	service := NewService(logger, configuration)
	if _, runError := service.Run(command.Context()); runError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration(command *cobra.Command) CommandConfiguration {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	if command.Flags().Changed(flagMonthsNameConstant) {
		monthsValue, _ := command.Flags().GetInt(flagMonthsNameConstant)
		configuration.MonthsAhead = monthsValue
	}
	if command.Flags().Changed(flagOutputDirectoryNameConstant) {
		outputDirectoryValue, _ := command.Flags().GetString(flagOutputDirectoryNameConstant)
		configuration.OutputDirectory = strings.TrimSpace(outputDirectoryValue)
	}
	if command.Flags().Changed(flagEnrichDetailsNameConstant) {
		enrichDetailsValue, _ := command.Flags().GetBool(flagEnrichDetailsNameConstant)
		configuration.EnrichDetails = enrichDetailsValue
	}

	return configuration
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galkatzh/JAMD-events/internal/execshell"
	"github.com/galkatzh/JAMD-events/internal/publish"
	"github.com/galkatzh/JAMD-events/internal/scrape"
	"github.com/galkatzh/JAMD-events/internal/utils"
	"github.com/galkatzh/JAMD-events/internal/workflow"
)

const (
	syncCommandUseConstant                 = "sync"
	syncCommandShortDescriptionConstant    = "Scrape the calendar and publish changed artifacts in one run"
	syncCommandLongDescriptionConstant     = "sync runs the scrape and publish operations in sequence: it refreshes the artifact files and commits and pushes them when they changed. This is the operation the scheduled workflow runs."
	syncUnexpectedArgumentsMessageConstant = "sync does not accept positional arguments"
	syncFlagDryRunNameConstant             = "dry-run"
	syncFlagDryRunDescriptionConstant      = "Scrape and stage artifacts without committing or pushing"
	scrapeOperationNameConstant            = "scrape-events"
	publishOperationNameConstant           = "publish-artifacts"
	scrapedSummaryTemplateConstant         = "scraped %d events into %d artifacts\n"
	publishedSummaryMessageConstant        = "published artifact changes\n"
	noChangesSummaryMessageConstant        = "no artifact changes\n"
)

var errUnexpectedSyncArguments = errors.New(syncUnexpectedArgumentsMessageConstant)

func (application *Application) buildSyncCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   syncCommandUseConstant,
		Short: syncCommandShortDescriptionConstant,
		Long:  syncCommandLongDescriptionConstant,
		RunE:  application.runSyncCommand,
	}

	command.Flags().Bool(syncFlagDryRunNameConstant, false, syncFlagDryRunDescriptionConstant)

	return command
}

func (application *Application) runSyncCommand(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedSyncArguments
	}

	dryRunValue, _ := command.Flags().GetBool(syncFlagDryRunNameConstant)

	scrapeService := scrape.NewService(application.logger, application.configuration.Tools.Scrape)

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, executorError := execshell.NewShellExecutor(application.logger, commandRunner)
	if executorError != nil {
		return executorError
	}
	shellExecutor.SetCommandEventObserver(newGitActivityObserver(outputWriter))

	publishService, publishServiceError := publish.NewService(application.logger, shellExecutor, application.configuration.Tools.Publish)
	if publishServiceError != nil {
		return publishServiceError
	}

	operations := []workflow.Operation{
		workflow.OperationFunc{
			OperationName: scrapeOperationNameConstant,
			Run: func(executionContext context.Context, environment *workflow.Environment) error {
				outcome, scrapeError := scrapeService.Run(executionContext)
				if scrapeError != nil {
					return scrapeError
				}
				fmt.Fprintf(outputWriter, scrapedSummaryTemplateConstant, outcome.EventCount, len(outcome.ArtifactPaths))
				return nil
			},
		},
		workflow.OperationFunc{
			OperationName: publishOperationNameConstant,
			Run: func(executionContext context.Context, environment *workflow.Environment) error {
				publishResult, publishError := publishService.Run(executionContext, environment.DryRun)
				if publishError != nil {
					return publishError
				}
				if publishResult.Committed {
					fmt.Fprint(outputWriter, publishedSummaryMessageConstant)
				} else {
					fmt.Fprint(outputWriter, noChangesSummaryMessageConstant)
				}
				return nil
			},
		},
	}

	executor := workflow.NewExecutor(operations, &workflow.Environment{Logger: application.logger, DryRun: dryRunValue})

	executionContext := application.commandContextAccessor.WithDryRun(command.Context(), dryRunValue)

	return executor.Execute(executionContext)
}

package publish

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/galkatzh/JAMD-events/internal/execshell"
	"github.com/galkatzh/JAMD-events/internal/gitrepo"
)

const (
	commandUseConstant                    = "publish"
	commandShortDescriptionConstant       = "Commit changed artifact files and push them to the remote"
	commandLongDescriptionConstant        = "publish stages the generated artifact files, commits them with a fixed author identity when they changed, and pushes the commit. A clean tree is a successful no-op."
	commandExecutionErrorTemplateConstant = "artifact publish failed: %w"
	unexpectedArgumentsMessageConstant    = "publish does not accept positional arguments"
	flagDryRunNameConstant                = "dry-run"
	flagDryRunDescriptionConstant         = "Show what would be committed without committing or pushing"
	flagRemoteNameConstant                = "remote"
	flagRemoteDescriptionConstant         = "Name of the remote receiving the published commit"
	flagBranchNameConstant                = "branch"
	flagBranchDescriptionConstant         = "Branch to push; empty pushes the current branch"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the effective publish configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the Cobra command for artifact publishing.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	GitExecutor           gitrepo.GitExecutor
}

// Build constructs the publish command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().Bool(flagDryRunNameConstant, false, flagDryRunDescriptionConstant)
	command.Flags().String(flagRemoteNameConstant, "", flagRemoteDescriptionConstant)
	command.Flags().String(flagBranchNameConstant, "", flagBranchDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	configuration := builder.resolveConfiguration(command)
	dryRunValue, _ := command.Flags().GetBool(flagDryRunNameConstant)

	logger := builder.resolveLogger()
	gitExecutor, executorError := builder.resolveGitExecutor(logger)
	if executorError != nil {
		return executorError
	}

	service, serviceError := NewService(logger, gitExecutor, configuration)
	if serviceError != nil {
		return serviceError
	}

	if _, runError := service.Run(command.Context(), dryRunValue); runError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration(command *cobra.Command) CommandConfiguration {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	if command.Flags().Changed(flagRemoteNameConstant) {
		remoteValue, _ := command.Flags().GetString(flagRemoteNameConstant)
		configuration.RemoteName = strings.TrimSpace(remoteValue)
	}
	if command.Flags().Changed(flagBranchNameConstant) {
		branchValue, _ := command.Flags().GetString(flagBranchNameConstant)
		configuration.BranchName = strings.TrimSpace(branchValue)
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

func (builder *CommandBuilder) resolveGitExecutor(logger *zap.Logger) (gitrepo.GitExecutor, error) {
	if builder.GitExecutor != nil {
		return builder.GitExecutor, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner)
	if creationError != nil {
		return nil, creationError
	}

	return shellExecutor, nil
}

package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
)

const (
	gitRevParseSubcommandNameConstant = "rev-parse"
	gitWorkTreeFlagConstant           = "--is-inside-work-tree"
	gitVerifyFlagConstant             = "--verify"
	gitStatusSubcommandNameConstant   = "status"
	gitAddSubcommandNameConstant      = "add"
	gitDiffSubcommandNameConstant     = "diff"
	gitCommitSubcommandNameConstant   = "commit"
	gitPushSubcommandNameConstant     = "push"
)

const (
	gitWorkTreeStartTemplateConstant            = "Analyzing repository at %s"
	gitWorkTreeSuccessTemplateConstant          = "%s is a Git repository"
	gitWorkTreeFailureTemplateConstant          = "Could not confirm %s is a Git repository (exit code %d%s)"
	gitWorkTreeExecutionFailureTemplateConstant = "Could not analyze %s: %s"
	gitRevisionStartTemplateConstant            = "Resolving revision in %s"
	gitRevisionSuccessTemplateConstant          = "Resolved revision in %s"
	gitRevisionFailureTemplateConstant          = "Failed to resolve revision in %s (exit code %d%s)"
	gitRevisionExecutionFailureTemplateConstant = "Unable to resolve revision in %s: %s"
	gitStatusStartTemplateConstant              = "Reviewing working tree status in %s"
	gitStatusSuccessTemplateConstant            = "Collected working tree status for %s"
	gitStatusFailureTemplateConstant            = "Failed to review working tree status in %s (exit code %d%s)"
	gitStatusExecutionFailureTemplateConstant   = "Unable to review working tree status in %s: %s"
	gitAddStartTemplateConstant                 = "Staging changes in %s"
	gitAddSuccessTemplateConstant               = "Staged changes in %s"
	gitAddFailureTemplateConstant               = "Failed to stage changes in %s (exit code %d%s)"
	gitAddExecutionFailureTemplateConstant      = "Unable to stage changes in %s: %s"
	gitDiffStartTemplateConstant                = "Summarizing staged changes in %s"
	gitDiffSuccessTemplateConstant              = "Summarized staged changes in %s"
	gitDiffFailureTemplateConstant              = "Failed to summarize staged changes in %s (exit code %d%s)"
	gitDiffExecutionFailureTemplateConstant     = "Unable to summarize staged changes in %s: %s"
	gitCommitStartTemplateConstant              = "Creating commit in %s"
	gitCommitSuccessTemplateConstant            = "Created commit in %s"
	gitCommitFailureTemplateConstant            = "Failed to create commit in %s (exit code %d%s)"
	gitCommitExecutionFailureTemplateConstant   = "Unable to create commit in %s: %s"
	gitPushStartTemplateConstant                = "Pushing commits from %s"
	gitPushSuccessTemplateConstant              = "Pushed commits from %s"
	gitPushFailureTemplateConstant              = "Failed to push commits from %s (exit code %d%s)"
	gitPushExecutionFailureTemplateConstant     = "Unable to push commits from %s: %s"
)

// gitSubcommandMessageTemplates groups the lifecycle templates for one git subcommand.
type gitSubcommandMessageTemplates struct {
	start            string
	success          string
	failure          string
	executionFailure string
}

var gitSubcommandMessageMapping = map[string]gitSubcommandMessageTemplates{
	gitStatusSubcommandNameConstant: {
		start:            gitStatusStartTemplateConstant,
		success:          gitStatusSuccessTemplateConstant,
		failure:          gitStatusFailureTemplateConstant,
		executionFailure: gitStatusExecutionFailureTemplateConstant,
	},
	gitAddSubcommandNameConstant: {
		start:            gitAddStartTemplateConstant,
		success:          gitAddSuccessTemplateConstant,
		failure:          gitAddFailureTemplateConstant,
		executionFailure: gitAddExecutionFailureTemplateConstant,
	},
	gitDiffSubcommandNameConstant: {
		start:            gitDiffStartTemplateConstant,
		success:          gitDiffSuccessTemplateConstant,
		failure:          gitDiffFailureTemplateConstant,
		executionFailure: gitDiffExecutionFailureTemplateConstant,
	},
	gitCommitSubcommandNameConstant: {
		start:            gitCommitStartTemplateConstant,
		success:          gitCommitSuccessTemplateConstant,
		failure:          gitCommitFailureTemplateConstant,
		executionFailure: gitCommitExecutionFailureTemplateConstant,
	},
	gitPushSubcommandNameConstant: {
		start:            gitPushStartTemplateConstant,
		success:          gitPushSuccessTemplateConstant,
		failure:          gitPushFailureTemplateConstant,
		executionFailure: gitPushExecutionFailureTemplateConstant,
	},
}

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name == CommandGit {
		return formatter.describeGitMessage(command, result, failure, stage)
	}
	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	if subcommand == gitRevParseSubcommandNameConstant {
		return formatter.describeGitRevParseMessage(command, result, failure, stage)
	}

	templates, templatesExist := gitSubcommandMessageMapping[subcommand]
	if !templatesExist {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(templates.start, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(templates.success, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(templates.failure, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(templates.executionFailure, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitRevParseMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(command.Details.Arguments, gitWorkTreeFlagConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitWorkTreeStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitWorkTreeSuccessTemplateConstant, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitWorkTreeFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		default:
			return fmt.Sprintf(gitWorkTreeExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitRevisionStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitRevisionSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitRevisionFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitRevisionExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.describeCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeCommandLabel(command ShellCommand) string {
	argumentsLabel := emptyStringConstant
	if len(command.Details.Arguments) > 0 {
		argumentsLabel = commandArgumentsJoinSeparatorConstant + strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant)
	}
	return fmt.Sprintf(commandLabelTemplateConstant, command.Name, argumentsLabel)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	if len(command.Details.WorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return command.Details.WorkingDirectory
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func containsArgument(arguments []string, wantedArgument string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == wantedArgument {
			return true
		}
	}
	return false
}

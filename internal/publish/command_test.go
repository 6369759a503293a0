package publish

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galkatzh/JAMD-events/internal/execshell"
)

const (
	testArtifactDirectoryConstant = "site"
	testBranchOverrideConstant    = "artifacts"
)

// recordingGitExecutor fakes git by dispatching on the joined arguments.
type recordingGitExecutor struct {
	stagedChanges    bool
	recordedCommands [][]string
}

func (executor *recordingGitExecutor) ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, append([]string{}, details.Arguments...))
	joinedArguments := strings.Join(details.Arguments, " ")

	switch {
	case strings.Contains(joinedArguments, "--is-inside-work-tree"):
		return execshell.ExecutionResult{StandardOutput: "true\n"}, nil
	case strings.Contains(joinedArguments, "--cached --quiet"):
		if executor.stagedChanges {
			result := execshell.ExecutionResult{ExitCode: 1}
			command := execshell.ShellCommand{Name: execshell.CommandGit, Details: details}
			return result, execshell.CommandFailedError{Command: command, Result: result}
		}
		return execshell.ExecutionResult{}, nil
	case strings.Contains(joinedArguments, "--verify HEAD"):
		return execshell.ExecutionResult{StandardOutput: "abc123\n"}, nil
	default:
		return execshell.ExecutionResult{}, nil
	}
}

func (executor *recordingGitExecutor) commandsMatching(fragment string) [][]string {
	matches := make([][]string, 0)
	for _, arguments := range executor.recordedCommands {
		if strings.Contains(strings.Join(arguments, " "), fragment) {
			matches = append(matches, arguments)
		}
	}
	return matches
}

func TestBuildRegistersFlags(testInstance *testing.T) {
	builder := &CommandBuilder{}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	require.Equal(testInstance, commandUseConstant, command.Use)
	require.NotNil(testInstance, command.Flags().Lookup(flagDryRunNameConstant))
	require.NotNil(testInstance, command.Flags().Lookup(flagRemoteNameConstant))
	require.NotNil(testInstance, command.Flags().Lookup(flagBranchNameConstant))
}

func TestRunRejectsPositionalArguments(testInstance *testing.T) {
	builder := &CommandBuilder{GitExecutor: &recordingGitExecutor{}}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	runError := command.RunE(command, []string{"unexpected"})
	require.ErrorIs(testInstance, runError, errUnexpectedArguments)
}

func TestRunStagesArtifactsFromConfiguredDirectory(testInstance *testing.T) {
	executor := &recordingGitExecutor{stagedChanges: false}
	builder := &CommandBuilder{
		GitExecutor: executor,
		ConfigurationProvider: func() CommandConfiguration {
			configuration := DefaultCommandConfiguration()
			configuration.ArtifactDirectory = testArtifactDirectoryConstant
			return configuration
		},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetContext(context.Background())

	require.NoError(testInstance, command.RunE(command, nil))

	stageCommands := executor.commandsMatching("add --")
	require.Len(testInstance, stageCommands, 1)
	require.Contains(testInstance, stageCommands[0], testArtifactDirectoryConstant+"/calendar_events.ics")
	require.Contains(testInstance, stageCommands[0], testArtifactDirectoryConstant+"/calendar_events.csv")
	require.Contains(testInstance, stageCommands[0], testArtifactDirectoryConstant+"/calendar_events.json")
}

func TestRunPushesToFlagOverriddenBranch(testInstance *testing.T) {
	executor := &recordingGitExecutor{stagedChanges: true}
	builder := &CommandBuilder{GitExecutor: executor}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetContext(context.Background())
	require.NoError(testInstance, command.Flags().Set(flagBranchNameConstant, testBranchOverrideConstant))

	require.NoError(testInstance, command.RunE(command, nil))

	pushCommands := executor.commandsMatching("push")
	require.Len(testInstance, pushCommands, 1)
	require.Contains(testInstance, pushCommands[0], testBranchOverrideConstant)
}

func TestRunDryRunSkipsCommitAndPush(testInstance *testing.T) {
	executor := &recordingGitExecutor{stagedChanges: true}
	builder := &CommandBuilder{GitExecutor: executor}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetContext(context.Background())
	require.NoError(testInstance, command.Flags().Set(flagDryRunNameConstant, "true"))

	require.NoError(testInstance, command.RunE(command, nil))

	require.Empty(testInstance, executor.commandsMatching("commit"))
	require.Empty(testInstance, executor.commandsMatching("push"))
}

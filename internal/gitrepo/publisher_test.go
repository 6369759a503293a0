package gitrepo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/galkatzh/JAMD-events/internal/execshell"
	"github.com/galkatzh/JAMD-events/internal/gitrepo"
)

const (
	testRepositoryPathConstant = "/tmp/events-repository"
	testCommitSubjectConstant  = "Update JAMD calendar events"
	testRemoteNameConstant     = "origin"
	testBranchNameConstant     = "main"
	testAuthorNameConstant     = "JAMD Events Bot"
	testAuthorEmailConstant    = "bot@users.noreply.github.com"
	testDiffStatOutputConstant = " calendar_events.ics | 4 ++--\n 1 file changed"
)

// scriptedGitExecutor fakes git by dispatching on the leading arguments.
type scriptedGitExecutor struct {
	insideWorkTree   bool
	stagedChanges    bool
	headExists       bool
	diffStatOutput   string
	recordedCommands [][]string
}

func (executor *scriptedGitExecutor) ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, append([]string{}, details.Arguments...))
	joinedArguments := strings.Join(details.Arguments, " ")

	command := execshell.ShellCommand{Name: execshell.CommandGit, Details: details}
	failure := func(exitCode int) (execshell.ExecutionResult, error) {
		result := execshell.ExecutionResult{ExitCode: exitCode}
		return result, execshell.CommandFailedError{Command: command, Result: result}
	}

	switch {
	case strings.Contains(joinedArguments, "--is-inside-work-tree"):
		if !executor.insideWorkTree {
			return failure(128)
		}
		return execshell.ExecutionResult{StandardOutput: "true\n"}, nil
	case strings.HasPrefix(joinedArguments, "add "):
		return execshell.ExecutionResult{}, nil
	case strings.Contains(joinedArguments, "--cached --quiet"):
		if executor.stagedChanges {
			return failure(1)
		}
		return execshell.ExecutionResult{}, nil
	case strings.Contains(joinedArguments, "--cached --stat"):
		return execshell.ExecutionResult{StandardOutput: executor.diffStatOutput}, nil
	case strings.Contains(joinedArguments, "--verify HEAD"):
		if !executor.headExists {
			return failure(128)
		}
		return execshell.ExecutionResult{StandardOutput: "abc123\n"}, nil
	default:
		return execshell.ExecutionResult{}, nil
	}
}

func (executor *scriptedGitExecutor) commandsMatching(fragment string) [][]string {
	matches := make([][]string, 0)
	for _, arguments := range executor.recordedCommands {
		if strings.Contains(strings.Join(arguments, " "), fragment) {
			matches = append(matches, arguments)
		}
	}
	return matches
}

func buildPublisher(testInstance *testing.T, executor *scriptedGitExecutor) *gitrepo.Publisher {
	testInstance.Helper()
	repositoryManager, managerError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, managerError)
	publisher, publisherError := gitrepo.NewPublisher(zap.NewNop(), repositoryManager)
	require.NoError(testInstance, publisherError)
	return publisher
}

func buildPublishOptions(dryRun bool) gitrepo.PublishOptions {
	return gitrepo.PublishOptions{
		RepositoryPath: testRepositoryPathConstant,
		ArtifactPaths:  []string{"calendar_events.ics", "calendar_events.csv", "calendar_events.json"},
		Identity:       gitrepo.CommitIdentity{Name: testAuthorNameConstant, Email: testAuthorEmailConstant},
		CommitSubject:  testCommitSubjectConstant,
		RemoteName:     testRemoteNameConstant,
		BranchName:     testBranchNameConstant,
		DryRun:         dryRun,
	}
}

func TestPublisherShortCircuitsWhenNothingChanged(testInstance *testing.T) {
	executor := &scriptedGitExecutor{insideWorkTree: true, stagedChanges: false, headExists: true}
	publisher := buildPublisher(testInstance, executor)

	publishResult, publishError := publisher.Publish(context.Background(), buildPublishOptions(false))
	require.NoError(testInstance, publishError)
	require.False(testInstance, publishResult.Committed)
	require.Empty(testInstance, executor.commandsMatching("commit"))
	require.Empty(testInstance, executor.commandsMatching("push"))
}

func TestPublisherCommitsWithDiffStatBodyWhenHeadExists(testInstance *testing.T) {
	executor := &scriptedGitExecutor{
		insideWorkTree: true,
		stagedChanges:  true,
		headExists:     true,
		diffStatOutput: testDiffStatOutputConstant,
	}
	publisher := buildPublisher(testInstance, executor)

	publishResult, publishError := publisher.Publish(context.Background(), buildPublishOptions(false))
	require.NoError(testInstance, publishError)
	require.True(testInstance, publishResult.Committed)
	require.Contains(testInstance, publishResult.CommitMessage, testCommitSubjectConstant)
	require.Contains(testInstance, publishResult.CommitMessage, "calendar_events.ics | 4 ++--")

	commitCommands := executor.commandsMatching("commit --author")
	require.Len(testInstance, commitCommands, 1)
	require.Contains(testInstance, strings.Join(commitCommands[0], " "), "user.name="+testAuthorNameConstant)

	pushCommands := executor.commandsMatching("push")
	require.Len(testInstance, pushCommands, 1)
	require.Equal(testInstance, []string{"push", testRemoteNameConstant, testBranchNameConstant}, pushCommands[0])
}

func TestPublisherOmitsDiffStatInEmptyRepositories(testInstance *testing.T) {
	executor := &scriptedGitExecutor{insideWorkTree: true, stagedChanges: true, headExists: false}
	publisher := buildPublisher(testInstance, executor)

	publishResult, publishError := publisher.Publish(context.Background(), buildPublishOptions(false))
	require.NoError(testInstance, publishError)
	require.True(testInstance, publishResult.Committed)
	require.Equal(testInstance, testCommitSubjectConstant, publishResult.CommitMessage)
	require.Empty(testInstance, executor.commandsMatching("--cached --stat"))
}

func TestPublisherDryRunSkipsCommitAndPush(testInstance *testing.T) {
	executor := &scriptedGitExecutor{
		insideWorkTree: true,
		stagedChanges:  true,
		headExists:     true,
		diffStatOutput: testDiffStatOutputConstant,
	}
	publisher := buildPublisher(testInstance, executor)

	publishResult, publishError := publisher.Publish(context.Background(), buildPublishOptions(true))
	require.NoError(testInstance, publishError)
	require.False(testInstance, publishResult.Committed)
	require.Contains(testInstance, publishResult.CommitMessage, testCommitSubjectConstant)
	require.Len(testInstance, executor.commandsMatching("status --porcelain"), 1)
	require.Empty(testInstance, executor.commandsMatching("commit --author"))
	require.Empty(testInstance, executor.commandsMatching("push"))
}

func TestPublisherRejectsNonRepositories(testInstance *testing.T) {
	executor := &scriptedGitExecutor{insideWorkTree: false}
	publisher := buildPublisher(testInstance, executor)

	_, publishError := publisher.Publish(context.Background(), buildPublishOptions(false))
	require.Error(testInstance, publishError)
	require.Contains(testInstance, publishError.Error(), "not a git repository")
}

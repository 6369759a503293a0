package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/galkatzh/JAMD-events/internal/execshell"
)

const (
	gitRevParseSubcommandConstant     = "rev-parse"
	gitWorkTreeFlagConstant           = "--is-inside-work-tree"
	gitVerifyFlagConstant             = "--verify"
	gitHeadReferenceConstant          = "HEAD"
	gitStatusSubcommandConstant       = "status"
	gitPorcelainFlagConstant          = "--porcelain"
	gitAddSubcommandConstant          = "add"
	gitPathSeparatorFlagConstant      = "--"
	gitDiffSubcommandConstant         = "diff"
	gitCachedFlagConstant             = "--cached"
	gitQuietFlagConstant              = "--quiet"
	gitStatFlagConstant               = "--stat"
	gitCommitSubcommandConstant       = "commit"
	gitConfigFlagConstant             = "-c"
	gitUserNameConfigTemplateConstant = "user.name=%s"
	gitUserEmailConfigTemplate        = "user.email=%s"
	gitAuthorFlagTemplateConstant     = "--author=%s <%s>"
	gitMessageFlagConstant            = "-m"
	gitPushSubcommandConstant         = "push"

	executorNotConfiguredMessageConstant = "repository manager requires a git executor"
	trueLiteralConstant                  = "true"
)

// ErrGitExecutorNotConfigured indicates the manager was constructed without an executor.
var ErrGitExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// GitExecutor abstracts git command execution for testability.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// CommitIdentity is the fixed author identity used for published commits.
type CommitIdentity struct {
	Name  string
	Email string
}

// RepositoryManager exposes the git operations needed by the publisher.
type RepositoryManager struct {
	gitExecutor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager backed by the provided executor.
func NewRepositoryManager(gitExecutor GitExecutor) (*RepositoryManager, error) {
	if gitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RepositoryManager{gitExecutor: gitExecutor}, nil
}

// CheckIsRepository reports whether the directory sits inside a git work tree.
func (manager *RepositoryManager) CheckIsRepository(executionContext context.Context, repositoryPath string) bool {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitWorkTreeFlagConstant},
		WorkingDirectory: repositoryPath,
	}
	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return false
	}
	return strings.TrimSpace(executionResult.StandardOutput) == trueLiteralConstant
}

// StatusChanges lists porcelain status lines for the provided paths.
func (manager *RepositoryManager) StatusChanges(executionContext context.Context, repositoryPath string, filePaths []string) ([]string, error) {
	commandArguments := append([]string{gitStatusSubcommandConstant, gitPorcelainFlagConstant, gitPathSeparatorFlagConstant}, filePaths...)
	commandDetails := execshell.CommandDetails{Arguments: commandArguments, WorkingDirectory: repositoryPath}
	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return nil, executionError
	}

	trimmedOutput := strings.TrimSpace(executionResult.StandardOutput)
	if len(trimmedOutput) == 0 {
		return nil, nil
	}
	return strings.Split(trimmedOutput, "\n"), nil
}

// StageFiles adds the provided paths to the index.
func (manager *RepositoryManager) StageFiles(executionContext context.Context, repositoryPath string, filePaths []string) error {
	commandArguments := append([]string{gitAddSubcommandConstant, gitPathSeparatorFlagConstant}, filePaths...)
	commandDetails := execshell.CommandDetails{Arguments: commandArguments, WorkingDirectory: repositoryPath}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	return executionError
}

// HasStagedChanges reports whether the index differs from HEAD.
func (manager *RepositoryManager) HasStagedChanges(executionContext context.Context, repositoryPath string) (bool, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitDiffSubcommandConstant, gitCachedFlagConstant, gitQuietFlagConstant},
		WorkingDirectory: repositoryPath,
	}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError == nil {
		return false, nil
	}

	// diff --quiet signals differences through exit code 1.
	var failedError execshell.CommandFailedError
	if errors.As(executionError, &failedError) && failedError.Result.ExitCode == 1 {
		return true, nil
	}
	return false, executionError
}

// StagedDiffStat returns the diffstat of the staged changes.
func (manager *RepositoryManager) StagedDiffStat(executionContext context.Context, repositoryPath string) (string, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitDiffSubcommandConstant, gitCachedFlagConstant, gitStatFlagConstant},
		WorkingDirectory: repositoryPath,
	}
	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// HasCommits reports whether the repository has any commit reachable from HEAD.
func (manager *RepositoryManager) HasCommits(executionContext context.Context, repositoryPath string) bool {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitVerifyFlagConstant, gitHeadReferenceConstant},
		WorkingDirectory: repositoryPath,
	}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	return executionError == nil
}

// CreateCommit records the staged changes with the fixed author identity.
func (manager *RepositoryManager) CreateCommit(executionContext context.Context, repositoryPath string, identity CommitIdentity, commitMessage string) error {
	commandArguments := []string{
		gitConfigFlagConstant, fmt.Sprintf(gitUserNameConfigTemplateConstant, identity.Name),
		gitConfigFlagConstant, fmt.Sprintf(gitUserEmailConfigTemplate, identity.Email),
		gitCommitSubcommandConstant,
		fmt.Sprintf(gitAuthorFlagTemplateConstant, identity.Name, identity.Email),
		gitMessageFlagConstant, commitMessage,
	}
	commandDetails := execshell.CommandDetails{Arguments: commandArguments, WorkingDirectory: repositoryPath}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	return executionError
}

// Push publishes commits to the remote. An empty branch pushes the current HEAD.
func (manager *RepositoryManager) Push(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error {
	commandArguments := []string{gitPushSubcommandConstant, remoteName}
	if len(branchName) > 0 {
		commandArguments = append(commandArguments, branchName)
	}
	commandDetails := execshell.CommandDetails{Arguments: commandArguments, WorkingDirectory: repositoryPath}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	return executionError
}

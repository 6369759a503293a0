package gitrepo

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	publisherManagerMissingMessageConstant = "publisher requires a repository manager"
	publisherLoggerMissingMessageConstant  = "publisher requires a logger"
	notARepositoryErrorTemplateConstant    = "%s is not a git repository"
	stageErrorTemplateConstant             = "failed to stage artifacts: %w"
	changeDetectionErrorTemplateConstant   = "failed to detect staged changes: %w"
	statusErrorTemplateConstant            = "failed to list artifact status: %w"
	diffStatErrorTemplateConstant          = "failed to summarize staged changes: %w"
	commitErrorTemplateConstant            = "failed to commit artifacts: %w"
	pushErrorTemplateConstant              = "failed to push artifacts: %w"
	commitMessageBodySeparatorConstant     = "\n\n"

	noChangesInfoMessageConstant      = "no artifact changes to commit"
	dryRunInfoMessageConstant         = "dry run: skipping commit and push"
	publishedInfoMessageConstant      = "published artifact changes"
	publisherLogFieldPathsConstant    = "paths"
	publisherLogFieldRemoteConstant   = "remote"
	publisherLogFieldBranchConstant   = "branch"
	publisherLogFieldDiffStatConstant = "diffstat"
	publisherLogFieldStatusConstant   = "status"
)

// Construction errors for the publisher.
var (
	ErrRepositoryManagerNotConfigured = errors.New(publisherManagerMissingMessageConstant)
	ErrPublisherLoggerNotConfigured   = errors.New(publisherLoggerMissingMessageConstant)
)

// PublishOptions carries the per-run publish parameters.
type PublishOptions struct {
	RepositoryPath string
	ArtifactPaths  []string
	Identity       CommitIdentity
	CommitSubject  string
	RemoteName     string
	BranchName     string
	DryRun         bool
}

// PublishResult reports what the publisher did.
type PublishResult struct {
	Committed     bool
	CommitMessage string
}

// Publisher commits and pushes artifact changes, treating a clean tree as success.
type Publisher struct {
	repositoryManager *RepositoryManager
	logger            *zap.Logger
}

// NewPublisher constructs a Publisher.
func NewPublisher(logger *zap.Logger, repositoryManager *RepositoryManager) (*Publisher, error) {
	if logger == nil {
		return nil, ErrPublisherLoggerNotConfigured
	}
	if repositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	return &Publisher{repositoryManager: repositoryManager, logger: logger}, nil
}

// Publish stages the artifacts and commits and pushes them when they changed.
//
// A clean index after staging short-circuits to success without creating a
// commit. When the repository already has commits, the staged diffstat is
// appended to the commit message body.
func (publisher *Publisher) Publish(executionContext context.Context, options PublishOptions) (PublishResult, error) {
	if !publisher.repositoryManager.CheckIsRepository(executionContext, options.RepositoryPath) {
		return PublishResult{}, fmt.Errorf(notARepositoryErrorTemplateConstant, options.RepositoryPath)
	}

	if stageError := publisher.repositoryManager.StageFiles(executionContext, options.RepositoryPath, options.ArtifactPaths); stageError != nil {
		return PublishResult{}, fmt.Errorf(stageErrorTemplateConstant, stageError)
	}

	hasChanges, changeDetectionError := publisher.repositoryManager.HasStagedChanges(executionContext, options.RepositoryPath)
	if changeDetectionError != nil {
		return PublishResult{}, fmt.Errorf(changeDetectionErrorTemplateConstant, changeDetectionError)
	}
	if !hasChanges {
		publisher.logger.Info(noChangesInfoMessageConstant, zap.Strings(publisherLogFieldPathsConstant, options.ArtifactPaths))
		return PublishResult{}, nil
	}

	commitMessage := options.CommitSubject
	if publisher.repositoryManager.HasCommits(executionContext, options.RepositoryPath) {
		diffStat, diffStatError := publisher.repositoryManager.StagedDiffStat(executionContext, options.RepositoryPath)
		if diffStatError != nil {
			return PublishResult{}, fmt.Errorf(diffStatErrorTemplateConstant, diffStatError)
		}
		if len(diffStat) > 0 {
			commitMessage = commitMessage + commitMessageBodySeparatorConstant + diffStat
		}
	}

	if options.DryRun {
		statusLines, statusError := publisher.repositoryManager.StatusChanges(executionContext, options.RepositoryPath, options.ArtifactPaths)
		if statusError != nil {
			return PublishResult{}, fmt.Errorf(statusErrorTemplateConstant, statusError)
		}
		publisher.logger.Info(
			dryRunInfoMessageConstant,
			zap.Strings(publisherLogFieldStatusConstant, statusLines),
			zap.String(publisherLogFieldDiffStatConstant, commitMessage),
		)
		return PublishResult{CommitMessage: commitMessage}, nil
	}

	if commitError := publisher.repositoryManager.CreateCommit(executionContext, options.RepositoryPath, options.Identity, commitMessage); commitError != nil {
		return PublishResult{}, fmt.Errorf(commitErrorTemplateConstant, commitError)
	}

	if pushError := publisher.repositoryManager.Push(executionContext, options.RepositoryPath, options.RemoteName, options.BranchName); pushError != nil {
		return PublishResult{}, fmt.Errorf(pushErrorTemplateConstant, pushError)
	}

	publisher.logger.Info(
		publishedInfoMessageConstant,
		zap.String(publisherLogFieldRemoteConstant, options.RemoteName),
		zap.String(publisherLogFieldBranchConstant, options.BranchName),
	)

	return PublishResult{Committed: true, CommitMessage: commitMessage}, nil
}

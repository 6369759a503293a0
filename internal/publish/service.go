package publish

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/galkatzh/JAMD-events/internal/gitrepo"
	"github.com/galkatzh/JAMD-events/internal/output"
)

// Service publishes the generated artifacts through the repository publisher.
type Service struct {
	logger        *zap.Logger
	configuration CommandConfiguration
	publisher     *gitrepo.Publisher
}

// NewService assembles a publish service over the supplied git executor.
func NewService(logger *zap.Logger, gitExecutor gitrepo.GitExecutor, configuration CommandConfiguration) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	repositoryManager, managerError := gitrepo.NewRepositoryManager(gitExecutor)
	if managerError != nil {
		return nil, managerError
	}

	publisher, publisherError := gitrepo.NewPublisher(logger, repositoryManager)
	if publisherError != nil {
		return nil, publisherError
	}

	return &Service{
		logger:        logger,
		configuration: configuration.sanitize(),
		publisher:     publisher,
	}, nil
}

// Run stages the artifact files and commits and pushes them when they changed.
func (service *Service) Run(executionContext context.Context, dryRun bool) (gitrepo.PublishResult, error) {
	artifactPaths := make([]string, 0, len(output.ArtifactNames))
	for _, artifactName := range output.ArtifactNames {
		artifactPaths = append(artifactPaths, filepath.Join(service.configuration.ArtifactDirectory, artifactName))
	}

	publishOptions := gitrepo.PublishOptions{
		RepositoryPath: service.configuration.RepositoryPath,
		ArtifactPaths:  artifactPaths,
		Identity: gitrepo.CommitIdentity{
			Name:  service.configuration.AuthorName,
			Email: service.configuration.AuthorEmail,
		},
		CommitSubject: service.configuration.CommitSubject,
		RemoteName:    service.configuration.RemoteName,
		BranchName:    service.configuration.BranchName,
		DryRun:        dryRun,
	}

	return service.publisher.Publish(executionContext, publishOptions)
}

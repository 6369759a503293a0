package publish

import "strings"

const (
	defaultRepositoryPathConstant    = "."
	defaultArtifactDirectoryConstant = "."
	defaultRemoteNameConstant        = "origin"
	defaultAuthorNameConstant        = "github-actions[bot]"
	defaultAuthorEmailConstant       = "41898282+github-actions[bot]@users.noreply.github.com"
	defaultCommitSubjectConstant     = "Update calendar events"

	repositoryPathConfigurationKeyConstant    = "repository_path"
	artifactDirectoryConfigurationKeyConstant = "artifact_directory"
	remoteConfigurationKeyConstant            = "remote"
	branchConfigurationKeyConstant            = "branch"
	authorNameConfigurationKeyConstant        = "author_name"
	authorEmailConfigurationKeyConstant       = "author_email"
	commitSubjectConfigurationKeyConstant     = "commit_subject"
	configurationKeySeparatorConstant         = "."
)

// CommandConfiguration captures configuration values for the publish command.
type CommandConfiguration struct {
	RepositoryPath    string `mapstructure:"repository_path"`
	ArtifactDirectory string `mapstructure:"artifact_directory"`
	RemoteName        string `mapstructure:"remote"`
	BranchName        string `mapstructure:"branch"`
	AuthorName        string `mapstructure:"author_name"`
	AuthorEmail       string `mapstructure:"author_email"`
	CommitSubject     string `mapstructure:"commit_subject"`
}

// DefaultCommandConfiguration provides baseline configuration values for publishing.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		RepositoryPath:    defaultRepositoryPathConstant,
		ArtifactDirectory: defaultArtifactDirectoryConstant,
		RemoteName:        defaultRemoteNameConstant,
		AuthorName:        defaultAuthorNameConstant,
		AuthorEmail:       defaultAuthorEmailConstant,
		CommitSubject:     defaultCommitSubjectConstant,
	}
}

// DefaultConfigurationValues exposes viper defaults for the publish configuration subtree.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + configurationKeySeparatorConstant + repositoryPathConfigurationKeyConstant:    defaults.RepositoryPath,
		configurationKeyPrefix + configurationKeySeparatorConstant + artifactDirectoryConfigurationKeyConstant: defaults.ArtifactDirectory,
		configurationKeyPrefix + configurationKeySeparatorConstant + remoteConfigurationKeyConstant:            defaults.RemoteName,
		configurationKeyPrefix + configurationKeySeparatorConstant + branchConfigurationKeyConstant:            defaults.BranchName,
		configurationKeyPrefix + configurationKeySeparatorConstant + authorNameConfigurationKeyConstant:        defaults.AuthorName,
		configurationKeyPrefix + configurationKeySeparatorConstant + authorEmailConfigurationKeyConstant:       defaults.AuthorEmail,
		configurationKeyPrefix + configurationKeySeparatorConstant + commitSubjectConfigurationKeyConstant:     defaults.CommitSubject,
	}
}

// sanitize trims configuration values and applies defaults for empty ones.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.RepositoryPath = strings.TrimSpace(configuration.RepositoryPath)
	sanitized.ArtifactDirectory = strings.TrimSpace(configuration.ArtifactDirectory)
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	sanitized.BranchName = strings.TrimSpace(configuration.BranchName)
	sanitized.AuthorName = strings.TrimSpace(configuration.AuthorName)
	sanitized.AuthorEmail = strings.TrimSpace(configuration.AuthorEmail)
	sanitized.CommitSubject = strings.TrimSpace(configuration.CommitSubject)

	if len(sanitized.RepositoryPath) == 0 {
		sanitized.RepositoryPath = defaultRepositoryPathConstant
	}
	if len(sanitized.ArtifactDirectory) == 0 {
		sanitized.ArtifactDirectory = defaultArtifactDirectoryConstant
	}
	if len(sanitized.RemoteName) == 0 {
		sanitized.RemoteName = defaultRemoteNameConstant
	}
	if len(sanitized.AuthorName) == 0 {
		sanitized.AuthorName = defaultAuthorNameConstant
	}
	if len(sanitized.AuthorEmail) == 0 {
		sanitized.AuthorEmail = defaultAuthorEmailConstant
	}
	if len(sanitized.CommitSubject) == 0 {
		sanitized.CommitSubject = defaultCommitSubjectConstant
	}

	return sanitized
}

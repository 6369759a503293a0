package publish

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCommandConfigurationValues(testInstance *testing.T) {
	configuration := DefaultCommandConfiguration()

	require.Equal(testInstance, ".", configuration.RepositoryPath)
	require.Equal(testInstance, ".", configuration.ArtifactDirectory)
	require.Equal(testInstance, "origin", configuration.RemoteName)
	require.Empty(testInstance, configuration.BranchName)
	require.Equal(testInstance, "github-actions[bot]", configuration.AuthorName)
	require.Equal(testInstance, "Update calendar events", configuration.CommitSubject)
}

func TestSanitizeAppliesDefaultsAndTrimsValues(testInstance *testing.T) {
	testCases := []struct {
		name                  string
		configuration         CommandConfiguration
		expectedRemoteName    string
		expectedAuthorName    string
		expectedCommitSubject string
	}{
		{
			name:                  "empty configuration falls back to defaults",
			configuration:         CommandConfiguration{},
			expectedRemoteName:    "origin",
			expectedAuthorName:    "github-actions[bot]",
			expectedCommitSubject: "Update calendar events",
		},
		{
			name: "surrounding whitespace is trimmed",
			configuration: CommandConfiguration{
				RemoteName:    " upstream ",
				AuthorName:    " Calendar Bot ",
				CommitSubject: " Refresh events ",
			},
			expectedRemoteName:    "upstream",
			expectedAuthorName:    "Calendar Bot",
			expectedCommitSubject: "Refresh events",
		},
		{
			name: "whitespace-only values fall back to defaults",
			configuration: CommandConfiguration{
				RemoteName:    "   ",
				AuthorName:    "   ",
				CommitSubject: "   ",
			},
			expectedRemoteName:    "origin",
			expectedAuthorName:    "github-actions[bot]",
			expectedCommitSubject: "Update calendar events",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			sanitized := testCase.configuration.sanitize()

			require.Equal(testInstance, testCase.expectedRemoteName, sanitized.RemoteName)
			require.Equal(testInstance, testCase.expectedAuthorName, sanitized.AuthorName)
			require.Equal(testInstance, testCase.expectedCommitSubject, sanitized.CommitSubject)
		})
	}
}

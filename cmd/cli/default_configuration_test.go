package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/galkatzh/JAMD-events/cmd/cli"
)

type embeddedConfigurationDocument struct {
	Common struct {
		LogLevel  string `yaml:"log_level"`
		LogFormat string `yaml:"log_format"`
	} `yaml:"common"`
	Tools struct {
		Scrape struct {
			EndpointURL    string `yaml:"endpoint_url"`
			SiteBaseURL    string `yaml:"site_base_url"`
			MonthsAhead    int    `yaml:"months_ahead"`
			RequestTimeout string `yaml:"request_timeout"`
		} `yaml:"scrape"`
		Publish struct {
			Remote        string `yaml:"remote"`
			AuthorName    string `yaml:"author_name"`
			AuthorEmail   string `yaml:"author_email"`
			CommitSubject string `yaml:"commit_subject"`
		} `yaml:"publish"`
	} `yaml:"tools"`
}

func TestEmbeddedDefaultConfigurationParsesAsYAML(testInstance *testing.T) {
	configurationContent, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, "yaml", configurationType)
	require.NotEmpty(testInstance, configurationContent)

	var document embeddedConfigurationDocument
	require.NoError(testInstance, yaml.Unmarshal(configurationContent, &document))

	require.Equal(testInstance, "info", document.Common.LogLevel)
	require.Equal(testInstance, "structured", document.Common.LogFormat)
	require.Equal(testInstance, "https://www.jamd.ac.il/views/ajax", document.Tools.Scrape.EndpointURL)
	require.Equal(testInstance, "https://www.jamd.ac.il", document.Tools.Scrape.SiteBaseURL)
	require.Equal(testInstance, 13, document.Tools.Scrape.MonthsAhead)
	require.Equal(testInstance, "origin", document.Tools.Publish.Remote)
	require.Equal(testInstance, "github-actions[bot]", document.Tools.Publish.AuthorName)
	require.Equal(testInstance, "Update calendar events", document.Tools.Publish.CommitSubject)
}

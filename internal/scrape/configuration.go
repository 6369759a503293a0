package scrape

import (
	"strings"
	"time"
)

const (
	defaultEndpointURLConstant     = "https://www.jamd.ac.il/views/ajax"
	defaultSiteBaseURLConstant     = "https://www.jamd.ac.il"
	defaultMonthsAheadConstant     = 13
	defaultRequestTimeoutConstant  = 10 * time.Second
	defaultOutputDirectoryConstant = "."

	endpointURLConfigurationKeyConstant     = "endpoint_url"
	siteBaseURLConfigurationKeyConstant     = "site_base_url"
	monthsAheadConfigurationKeyConstant     = "months_ahead"
	requestTimeoutConfigurationKeyConstant  = "request_timeout"
	outputDirectoryConfigurationKeyConstant = "output_directory"
	enrichDetailsConfigurationKeyConstant   = "enrich_details"
	configurationKeySeparatorConstant       = "."
)

// CommandConfiguration captures configuration values for the scrape command.
type CommandConfiguration struct {
	EndpointURL     string        `mapstructure:"endpoint_url"`
	SiteBaseURL     string        `mapstructure:"site_base_url"`
	MonthsAhead     int           `mapstructure:"months_ahead"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	OutputDirectory string        `mapstructure:"output_directory"`
	EnrichDetails   bool          `mapstructure:"enrich_details"`
}

// DefaultCommandConfiguration provides baseline configuration values for scraping.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		EndpointURL:     defaultEndpointURLConstant,
		SiteBaseURL:     defaultSiteBaseURLConstant,
		MonthsAhead:     defaultMonthsAheadConstant,
		RequestTimeout:  defaultRequestTimeoutConstant,
		OutputDirectory: defaultOutputDirectoryConstant,
	}
}

// DefaultConfigurationValues exposes viper defaults for the scrape configuration subtree.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + configurationKeySeparatorConstant + endpointURLConfigurationKeyConstant:     defaults.EndpointURL,
		configurationKeyPrefix + configurationKeySeparatorConstant + siteBaseURLConfigurationKeyConstant:     defaults.SiteBaseURL,
		configurationKeyPrefix + configurationKeySeparatorConstant + monthsAheadConfigurationKeyConstant:     defaults.MonthsAhead,
		configurationKeyPrefix + configurationKeySeparatorConstant + requestTimeoutConfigurationKeyConstant:  defaults.RequestTimeout.String(),
		configurationKeyPrefix + configurationKeySeparatorConstant + outputDirectoryConfigurationKeyConstant: defaults.OutputDirectory,
		configurationKeyPrefix + configurationKeySeparatorConstant + enrichDetailsConfigurationKeyConstant:   defaults.EnrichDetails,
	}
}

// sanitize trims configuration values and applies defaults for empty ones.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.EndpointURL = strings.TrimSpace(configuration.EndpointURL)
	sanitized.SiteBaseURL = strings.TrimSpace(configuration.SiteBaseURL)
	sanitized.OutputDirectory = strings.TrimSpace(configuration.OutputDirectory)

	if sanitized.MonthsAhead < 1 {
		sanitized.MonthsAhead = defaultMonthsAheadConstant
	}
	if sanitized.RequestTimeout <= 0 {
		sanitized.RequestTimeout = defaultRequestTimeoutConstant
	}
	if len(sanitized.OutputDirectory) == 0 {
		sanitized.OutputDirectory = defaultOutputDirectoryConstant
	}

	return sanitized
}

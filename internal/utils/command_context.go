package utils

import "context"

const (
	configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")
	dryRunContextKeyConstant                = commandContextKey("dryRun")
)

type commandContextKey string

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathAvailable := executionContext.Value(configurationFilePathContextKeyConstant).(string)
	if !configurationFilePathAvailable {
		return "", false
	}
	return configurationFilePath, true
}

// WithDryRun attaches the dry-run execution flag to the provided context.
func (accessor CommandContextAccessor) WithDryRun(parentContext context.Context, dryRunEnabled bool) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, dryRunContextKeyConstant, dryRunEnabled)
}

// DryRun extracts the dry-run execution flag from the provided context.
func (accessor CommandContextAccessor) DryRun(executionContext context.Context) (bool, bool) {
	if executionContext == nil {
		return false, false
	}
	dryRunEnabled, dryRunAvailable := executionContext.Value(dryRunContextKeyConstant).(bool)
	if !dryRunAvailable {
		return false, false
	}
	return dryRunEnabled, true
}

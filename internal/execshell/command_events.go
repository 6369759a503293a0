package execshell

// CommandEventObserver is notified as git subprocesses start and finish.
// The sync command hooks its console progress output in here.
type CommandEventObserver interface {
	CommandStarted(command ShellCommand)
	CommandCompleted(command ShellCommand, result ExecutionResult)
	CommandExecutionFailed(command ShellCommand, failure error)
}

// discardCommandEvents is installed until a caller registers an observer.
type discardCommandEvents struct{}

func (discardCommandEvents) CommandStarted(ShellCommand)                    {}
func (discardCommandEvents) CommandCompleted(ShellCommand, ExecutionResult) {}
func (discardCommandEvents) CommandExecutionFailed(ShellCommand, error)     {}

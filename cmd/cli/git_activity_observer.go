package cli

import (
	"fmt"
	"io"

	"github.com/galkatzh/JAMD-events/internal/execshell"
)

const gitActivityLineTemplateConstant = "%s\n"

// gitActivityObserver mirrors git command lifecycle messages to the command
// output so scheduled runs show repository activity inline.
type gitActivityObserver struct {
	writer    io.Writer
	formatter execshell.CommandMessageFormatter
}

func newGitActivityObserver(writer io.Writer) *gitActivityObserver {
	return &gitActivityObserver{writer: writer}
}

// CommandStarted announces the git command about to run.
func (observer *gitActivityObserver) CommandStarted(command execshell.ShellCommand) {
	fmt.Fprintf(observer.writer, gitActivityLineTemplateConstant, observer.formatter.BuildStartedMessage(command))
}

// CommandCompleted reports successful completions. Non-zero exits stay quiet:
// change detection relies on them and they are not failures of the run.
func (observer *gitActivityObserver) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if result.ExitCode != 0 {
		return
	}
	fmt.Fprintf(observer.writer, gitActivityLineTemplateConstant, observer.formatter.BuildSuccessMessage(command))
}

// CommandExecutionFailed reports commands that could not be started at all.
func (observer *gitActivityObserver) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	fmt.Fprintf(observer.writer, gitActivityLineTemplateConstant, observer.formatter.BuildExecutionFailureMessage(command, failure))
}

// Package task resolves the free-text instruction that drives a run.
package task

// DefaultInstruction is used when the command line carries no task of its own.
const DefaultInstruction = "Go to google.com and check the page title"

// FromArgs picks the instruction from the positional arguments (everything
// after the program name). The first argument is taken verbatim when present,
// with no trimming or validation; otherwise DefaultInstruction is returned.
func FromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return DefaultInstruction
}

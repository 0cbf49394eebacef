// Package exit implements the exit builtin.
package exit

import "github.com/Shivaah/core-utils/pkg/core"

// Run executes the exit builtin: it prints a farewell message and
// tells the shell to stop. Arguments are ignored.
func Run(stdio *core.Stdio, args []string) (int, bool) {
	stdio.Println("Goodbye!")
	return core.ExitSuccess, true
}

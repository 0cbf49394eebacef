// Package echo implements the echo builtin.
package echo

import (
	"strings"

	"github.com/Shivaah/core-utils/pkg/core"
)

// Run executes the echo builtin: it writes its arguments to stdout
// joined by single spaces, with surrounding whitespace trimmed.
func Run(stdio *core.Stdio, args []string) (int, bool) {
	stdio.Println(strings.TrimSpace(strings.Join(args, " ")))
	return core.ExitSuccess, false
}

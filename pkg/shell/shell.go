// Package shell implements the interactive command loop: it reads
// lines from input, tokenizes them, and dispatches to the builtins.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Shivaah/core-utils/pkg/builtins/echo"
	"github.com/Shivaah/core-utils/pkg/builtins/exit"
	"github.com/Shivaah/core-utils/pkg/builtins/ls"
	"github.com/Shivaah/core-utils/pkg/config"
	"github.com/Shivaah/core-utils/pkg/core"
)

// Kind identifies one of the builtin commands. The command set is
// closed: dispatch goes through this enum rather than open-ended
// string matching.
type Kind int

const (
	KindEcho Kind = iota
	KindExit
	KindLs
)

// handler is the execution contract every builtin satisfies: an exit
// code plus a flag telling the shell to stop.
type handler func(stdio *core.Stdio, args []string) (int, bool)

// kinds maps command names to their Kind.
var kinds = map[string]Kind{
	"echo": KindEcho,
	"exit": KindExit,
	"ls":   KindLs,
}

// handlers maps each Kind to its implementation.
var handlers = map[Kind]handler{
	KindEcho: echo.Run,
	KindExit: exit.Run,
	KindLs:   ls.Run,
}

// Scan splits a trimmed input line into tokens on single spaces.
// Consecutive spaces yield empty tokens; there is no quoting or
// escaping.
func Scan(line string) []string {
	return strings.Split(line, " ")
}

// Invocation is one parsed command line.
type Invocation struct {
	Name string
	Args []string
}

// Resolve separates the command name from its arguments. It reports
// false when there is nothing to run, as on a blank line.
func Resolve(tokens []string) (Invocation, bool) {
	if len(tokens) == 0 || tokens[0] == "" {
		return Invocation{}, false
	}
	return Invocation{Name: tokens[0], Args: tokens[1:]}, true
}

// Shell is the interactive dispatch loop. It holds no state across
// invocations; every command execution is independent.
type Shell struct {
	stdio       *core.Stdio
	prompt      string
	interactive bool
	in          *bufio.Reader
}

// New builds a shell reading from stdio.In. The prompt is shown only
// when input comes from a terminal and cfg.Quiet is unset.
func New(stdio *core.Stdio, cfg *config.Config) *Shell {
	return &Shell{
		stdio:       stdio,
		prompt:      cfg.Prompt,
		interactive: !cfg.Quiet && isTerminal(stdio.In),
		in:          bufio.NewReader(stdio.In),
	}
}

// Run drives the read-dispatch loop until exit is invoked or input is
// exhausted. Only a failure to read input is returned as an error;
// command failures are reported on stderr and the loop continues.
func (s *Shell) Run() error {
	for {
		if s.interactive {
			s.stdio.Print(s.prompt)
		}
		line, ok, err := s.readLine()
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if !ok {
			return nil
		}
		if stop := s.dispatch(line); stop {
			return nil
		}
	}
}

// readLine reads the next input line, trimmed of surrounding
// whitespace, with no bound on line length. ok is false at end of
// input; a final line missing its newline is still returned.
func (s *Shell) readLine() (line string, ok bool, err error) {
	line, err = s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if line == "" {
		return "", false, nil
	}
	return strings.TrimSpace(line), true, nil
}

// dispatch parses and executes one line, reporting whether the shell
// should stop.
func (s *Shell) dispatch(line string) bool {
	inv, ok := Resolve(Scan(line))
	if !ok {
		return false
	}
	kind, known := kinds[inv.Name]
	if !known {
		s.stdio.Errorf("command not found : %s\n", inv.Name)
		return false
	}
	_, stop := handlers[kind](s.stdio, inv.Args)
	return stop
}

// isTerminal reports whether r reads from an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

package shell_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Shivaah/core-utils/pkg/config"
	"github.com/Shivaah/core-utils/pkg/core"
	"github.com/Shivaah/core-utils/pkg/shell"
	"github.com/Shivaah/core-utils/pkg/testutil"
)

func runSession(t *testing.T, input string) (stdout, stderr string, err error) {
	t.Helper()
	stdio, out, errBuf := testutil.CaptureStdio(input)
	sh := shell.New(stdio, config.DefaultConfig())
	err = sh.Run()
	return out.String(), errBuf.String(), err
}

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"command_with_argument", "echo hi", []string{"echo", "hi"}},
		{"bare_command", "ls", []string{"ls"}},
		{"empty_line", "", []string{""}},
		{"consecutive_spaces_empty_tokens", "a  b", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shell.Scan(tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("Scan(%q) = %q, want %q", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Scan(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolve(t *testing.T) {
	inv, ok := shell.Resolve([]string{"echo", "hi", "there"})
	if !ok {
		t.Fatal("Resolve rejected a well-formed command")
	}
	if inv.Name != "echo" {
		t.Errorf("name = %q, want %q", inv.Name, "echo")
	}
	if len(inv.Args) != 2 || inv.Args[0] != "hi" || inv.Args[1] != "there" {
		t.Errorf("args = %q, want [hi there]", inv.Args)
	}

	if _, ok := shell.Resolve(nil); ok {
		t.Error("Resolve accepted an empty token list")
	}
	if _, ok := shell.Resolve([]string{""}); ok {
		t.Error("Resolve accepted a blank command name")
	}
}

func TestSessionEchoThenExit(t *testing.T) {
	out, errOut, err := runSession(t, "echo hello\nexit\n")
	testutil.AssertNoError(t, err)
	testutil.AssertOutput(t, out, "hello\nGoodbye!\n")
	testutil.AssertOutput(t, errOut, "")
}

func TestSessionUnknownCommandContinues(t *testing.T) {
	out, errOut, err := runSession(t, "foo\necho ok\n")
	testutil.AssertNoError(t, err)
	testutil.AssertOutput(t, out, "ok\n")
	testutil.AssertOutput(t, errOut, "command not found : foo\n")
}

func TestSessionBlankLinesIgnored(t *testing.T) {
	out, errOut, err := runSession(t, "\n   \necho done\n")
	testutil.AssertNoError(t, err)
	testutil.AssertOutput(t, out, "done\n")
	testutil.AssertOutput(t, errOut, "")
}

func TestSessionEndsCleanlyAtEOF(t *testing.T) {
	out, errOut, err := runSession(t, "echo a\n")
	testutil.AssertNoError(t, err)
	testutil.AssertOutput(t, out, "a\n")
	testutil.AssertOutput(t, errOut, "")
}

func TestSessionEmptyInput(t *testing.T) {
	out, errOut, err := runSession(t, "")
	testutil.AssertNoError(t, err)
	testutil.AssertOutput(t, out, "")
	testutil.AssertOutput(t, errOut, "")
}

func TestSessionInputAfterExitIsNotExecuted(t *testing.T) {
	out, _, err := runSession(t, "exit\necho never\n")
	testutil.AssertNoError(t, err)
	testutil.AssertOutput(t, out, "Goodbye!\n")
}

func TestSessionMultiSpaceEchoPreservedByteForByte(t *testing.T) {
	out, _, err := runSession(t, "echo a   b\nexit\n")
	testutil.AssertNoError(t, err)
	testutil.AssertOutput(t, out, "a   b\nGoodbye!\n")
}

func TestSessionSurroundingWhitespaceTrimmed(t *testing.T) {
	out, errOut, err := runSession(t, "   echo hi   \n")
	testutil.AssertNoError(t, err)
	testutil.AssertOutput(t, out, "hi\n")
	testutil.AssertOutput(t, errOut, "")
}

func TestSessionLongInputLine(t *testing.T) {
	// Well past bufio's default 64KiB token limit
	payload := strings.Repeat("a", 70*1024)
	out, errOut, err := runSession(t, "echo "+payload+"\nexit\n")
	testutil.AssertNoError(t, err)
	testutil.AssertOutput(t, out, payload+"\nGoodbye!\n")
	testutil.AssertOutput(t, errOut, "")
}

func TestSessionLsListsFixture(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, map[string]string{"f.txt": "data"})

	out, errOut, err := runSession(t, "ls "+dir+"\nexit\n")
	testutil.AssertNoError(t, err)
	testutil.AssertOutput(t, out, dir+"/f.txt\nGoodbye!\n")
	testutil.AssertOutput(t, errOut, "")
}

func TestSessionLsErrorDoesNotStopLoop(t *testing.T) {
	out, errOut, err := runSession(t, "ls /nonexistent\necho still here\n")
	testutil.AssertNoError(t, err)
	testutil.AssertOutput(t, out, "still here\n")
	testutil.AssertOutput(t, errOut, "no such file or directory: /nonexistent\n")
}

type errReader struct{ err error }

func (r errReader) Read(p []byte) (int, error) { return 0, r.err }

func TestSessionReadFailurePropagates(t *testing.T) {
	sentinel := errors.New("broken pipe")
	out := &strings.Builder{}
	stdio := &core.Stdio{In: errReader{err: sentinel}, Out: out, Err: out}

	err := shell.New(stdio, config.DefaultConfig()).Run()
	if err == nil {
		t.Fatal("expected a read failure to propagate")
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("error %v does not wrap the read failure", err)
	}
	if !strings.Contains(err.Error(), "read input") {
		t.Errorf("error %v missing read context", err)
	}
}

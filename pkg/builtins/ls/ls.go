// Package ls implements the ls builtin.
//
// With no flags it prints entry paths space-joined on a single line.
// With -l it prints one line per entry showing file type, permission
// triads, owner uid, group gid, size, and path.
package ls

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/Shivaah/core-utils/pkg/core"
	"github.com/Shivaah/core-utils/pkg/core/permutil"
)

// validFlags is the set of recognized option letters.
const validFlags = "l"

// Entry is a point-in-time metadata snapshot of one directory entry.
type Entry struct {
	Path string
	Mode uint32 // raw st_mode bits: file type plus permissions
	UID  uint32
	GID  uint32
	Size int64
}

// FS is the filesystem surface the lister needs. The local
// implementation talks to the OS; tests substitute fakes to exercise
// enumeration error paths deterministically.
type FS interface {
	// ReadDirNames returns the names of the entries in the directory
	// at path, in the order the underlying API yields them.
	ReadDirNames(path string) ([]string, error)
	// Lstat returns a metadata snapshot for the file at path without
	// following symlinks. The returned entry's Path is the path
	// argument verbatim.
	Lstat(path string) (Entry, error)
}

// LocalFS implements FS against the host filesystem.
type LocalFS struct{}

// ReadDirNames returns the directory's entry names in kernel order.
// No sorting is applied.
func (LocalFS) ReadDirNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}

// Lstat snapshots mode, ownership, and size for the file at path.
func (LocalFS) Lstat(path string) (Entry, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return Entry{}, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}
	return Entry{
		Path: path,
		Mode: uint32(st.Mode),
		UID:  st.Uid,
		GID:  st.Gid,
		Size: st.Size,
	}, nil
}

// Run executes the ls builtin against the host filesystem.
func Run(stdio *core.Stdio, args []string) (int, bool) {
	return RunOn(stdio, LocalFS{}, args)
}

// RunOn executes the ls builtin against fsys. Listing failures never
// stop the shell; the second return value is always false.
func RunOn(stdio *core.Stdio, fsys FS, args []string) (int, bool) {
	req := parseArgs(args)

	if bad, ok := invalidFlag(req.flags); ok {
		stdio.Errorf("ls : invalid option - '%c'\n", bad)
		return core.ExitUsage, false
	}

	names, err := fsys.ReadDirNames(req.path)
	if err != nil {
		stdio.Errorf("%s\n", describeAccessError(err, req.path))
		return core.ExitFailure, false
	}

	entries := make([]Entry, 0, len(names))
	var entryErrs []error
	for _, name := range names {
		e, err := fsys.Lstat(entryPath(req.path, name))
		if err != nil {
			entryErrs = append(entryErrs, err)
			continue
		}
		entries = append(entries, e)
	}

	// Any per-entry failure discards the whole listing: partial
	// results are never shown.
	if len(entryErrs) > 0 {
		for _, err := range entryErrs {
			stdio.Errorf("%v\n", err)
		}
		return core.ExitFailure, false
	}

	if hasFlag(req.flags, 'l') {
		for _, e := range entries {
			stdio.Printf("%s %d %d %d %s\n", permutil.ModeString(e.Mode), e.UID, e.GID, e.Size, e.Path)
		}
		return core.ExitSuccess, false
	}

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	stdio.Println(strings.Join(paths, " "))
	return core.ExitSuccess, false
}

// request is one parsed ls invocation.
type request struct {
	path  string
	flags []rune
}

// parseArgs interprets the argument list. Only the first argument is
// ever inspected for flags; a bare "-" is a literal path, not a flag
// marker.
func parseArgs(args []string) request {
	req := request{path: "."}
	if len(args) == 0 {
		return req
	}
	first := args[0]
	if len(first) > 1 && strings.HasPrefix(first, "-") {
		req.flags = dedupFlags(first[1:])
		if len(args) > 1 {
			req.path = args[1]
		}
		return req
	}
	req.path = first
	return req
}

// dedupFlags collapses repeated option letters, keeping first-occurrence
// order so the invalid flag reported is the first one typed.
func dedupFlags(s string) []rune {
	seen := make(map[rune]bool)
	flags := make([]rune, 0, len(s))
	for _, f := range s {
		if seen[f] {
			continue
		}
		seen[f] = true
		flags = append(flags, f)
	}
	return flags
}

// invalidFlag returns the first flag letter outside the recognized set.
func invalidFlag(flags []rune) (rune, bool) {
	for _, f := range flags {
		if !strings.ContainsRune(validFlags, f) {
			return f, true
		}
	}
	return 0, false
}

func hasFlag(flags []rune, want rune) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

// entryPath joins the target path and an entry name verbatim. Paths
// are not cleaned, so listing "." renders entries as "./name".
func entryPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

// describeAccessError maps a top-level access failure to its
// user-facing message. Anything neither missing nor forbidden is
// reported as a non-directory, which covers ls on a regular file.
func describeAccessError(err error, path string) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "no such file or directory: " + path
	case errors.Is(err, fs.ErrPermission):
		return "permission denied to view contents of: " + path
	default:
		return "file is not a directory: " + path
	}
}

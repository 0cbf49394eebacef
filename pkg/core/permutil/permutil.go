// Package permutil decodes raw Unix mode bits into the pieces a long
// listing displays: rwx permission triads and the leading file-type glyph.
package permutil

import "golang.org/x/sys/unix"

// Triad holds one 3-bit read/write/execute group for owner, group or other.
type Triad uint32

// Bit tests within a triad.
const (
	bitRead  = 0o4
	bitWrite = 0o2
	bitExec  = 0o1
)

// Readable reports whether the read bit is set.
func (t Triad) Readable() bool { return t&bitRead != 0 }

// Writable reports whether the write bit is set.
func (t Triad) Writable() bool { return t&bitWrite != 0 }

// Executable reports whether the execute bit is set.
func (t Triad) Executable() bool { return t&bitExec != 0 }

// String renders the triad as three characters from {r,-}{w,-}{x,-}.
func (t Triad) String() string {
	s := [3]byte{'-', '-', '-'}
	if t.Readable() {
		s[0] = 'r'
	}
	if t.Writable() {
		s[1] = 'w'
	}
	if t.Executable() {
		s[2] = 'x'
	}
	return string(s[:])
}

// Owner extracts the owner triad from raw mode bits.
func Owner(mode uint32) Triad { return Triad((mode & 0o700) >> 6) }

// Group extracts the group triad from raw mode bits.
func Group(mode uint32) Triad { return Triad((mode & 0o070) >> 3) }

// Other extracts the other triad from raw mode bits.
func Other(mode uint32) Triad { return Triad(mode & 0o007) }

// TypeChar maps the file-type bits of a raw mode to its listing glyph.
// Symlinks and sockets share 's'.
func TypeChar(mode uint32) byte {
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return 'd'
	case unix.S_IFLNK:
		return 's'
	case unix.S_IFBLK:
		return 'b'
	case unix.S_IFCHR:
		return 'c'
	case unix.S_IFSOCK:
		return 's'
	case unix.S_IFIFO:
		return 'p'
	default:
		return '-'
	}
}

// ModeString renders the 10-character mode column of a long listing:
// the type glyph followed by the owner, group and other triads.
func ModeString(mode uint32) string {
	buf := make([]byte, 0, 10)
	buf = append(buf, TypeChar(mode))
	buf = append(buf, Owner(mode).String()...)
	buf = append(buf, Group(mode).String()...)
	buf = append(buf, Other(mode).String()...)
	return string(buf)
}

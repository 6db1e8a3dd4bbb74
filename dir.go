// Package pathfs provides directory and file path values that parse and render
// Unix, Windows, UNC, Cygwin and stream wrapper notations on any platform.
package pathfs

import (
	"slices"
	"strings"
)

// Dir is a directory location: a prefix followed by an ordered list of segments.
// Segments never contain empty strings. "." and ".." are kept literally until Resolve.
//
// Methods that modify a Dir modify the receiver and return it for chaining.
// Sub, Up and Clone return independent copies.
type Dir struct {
	platform Platform
	prefix   Prefix
	segments []string
}

// NewDir builds a Dir from a prefix and segments for platform p.
// A segment containing separators of p is split into several segments and
// empty segments are dropped.
func (p Platform) NewDir(prefix Prefix, segments ...string) *Dir {
	d := &Dir{platform: p, prefix: prefix, segments: make([]string, 0, len(segments))}
	for _, s := range segments {
		d.segments = append(d.segments, splitSegments(s, p.isSeparator)...)
	}
	return d
}

// CurrentDir returns the empty relative directory "./" for platform p.
func (p Platform) CurrentDir() *Dir {
	return &Dir{platform: p, segments: []string{}}
}

func (d *Dir) Platform() Platform {
	return d.platform
}

func (d *Dir) Prefix() Prefix {
	return d.prefix
}

// Segments returns a copy of the directory names from the root to the leaf.
func (d *Dir) Segments() []string {
	return slices.Clone(d.segments)
}

// Depth returns the number of segments.
func (d *Dir) Depth() int {
	return len(d.segments)
}

// Name returns the last segment, or "" for a directory without segments.
func (d *Dir) Name() string {
	if len(d.segments) == 0 {
		return ""
	}
	return d.segments[len(d.segments)-1]
}

func (d *Dir) IsRelative() bool {
	return d.prefix.kind == PrefixNone
}

func (d *Dir) IsAbsolute() bool {
	return !d.IsRelative()
}

func (d *Dir) IsWrapped() bool {
	return d.prefix.kind == PrefixWrapped
}

// Wrapper returns the stream wrapper scheme, e.g. "vfs", or "" if d is not wrapped.
func (d *Dir) Wrapper() string {
	return d.prefix.Wrapper()
}

func (d *Dir) IsCygwin() bool {
	return d.prefix.kind == PrefixCygwin
}

func (d *Dir) IsUNC() bool {
	return d.prefix.kind == PrefixUNC
}

// Drive returns the drive letter of a drive, cygwin or wrapped drive path.
func (d *Dir) Drive() string {
	return d.prefix.Letter()
}

// Clone returns a deep copy of d.
func (d *Dir) Clone() *Dir {
	return &Dir{platform: d.platform, prefix: d.prefix, segments: slices.Clone(d.segments)}
}

// Equals reports whether d and o have the same prefix and segments.
func (d *Dir) Equals(o *Dir) bool {
	return d.prefix.Equals(o.prefix) && slices.Equal(d.segments, o.segments)
}

// Append adds the segments of rel to d. The string ".." removes the last segment
// and does nothing when d has no segments. Any prefix of rel is ignored and
// "." segments are skipped.
func (d *Dir) Append(rel string) *Dir {
	if rel == ".." {
		return d.ascend()
	}
	_, segments := d.platform.parse(rel)
	d.push(segments)
	return d
}

// AppendDir adds the segments of other to d as if other were relative.
func (d *Dir) AppendDir(other *Dir) *Dir {
	d.push(other.segments)
	return d
}

func (d *Dir) push(segments []string) {
	for _, s := range segments {
		if s == "." {
			continue
		}
		d.segments = append(d.segments, s)
	}
}

func (d *Dir) ascend() *Dir {
	if len(d.segments) > 0 {
		d.segments = d.segments[:len(d.segments)-1 : len(d.segments)-1]
	}
	return d
}

// Sub returns a copy of d with rel appended.
func (d *Dir) Sub(rel string) *Dir {
	return d.Clone().Append(rel)
}

// Up returns a copy of d without its last segment.
// Up of a directory without segments is an equal copy.
func (d *Dir) Up() *Dir {
	return d.Clone().ascend()
}

// Slice keeps the segments selected by start and the optional length.
// A negative start counts from the end. A negative length stops that many
// segments before the end. Indices out of range are clamped.
func (d *Dir) Slice(start int, length ...int) *Dir {
	n := len(d.segments)
	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)
	end := n
	if len(length) > 0 {
		if l := length[0]; l < 0 {
			end = max(n+l, start)
		} else {
			end = min(start+l, n)
		}
	}
	d.segments = slices.Clone(d.segments[start:end])
	return d
}

// WrapWith wraps d in the stream wrapper scheme, replacing an existing wrapper.
func (d *Dir) WrapWith(wrapper string) *Dir {
	wrapper = strings.TrimSuffix(wrapper, "://")
	style := d.prefix.style
	d.prefix = Wrapped(wrapper, d.prefix)
	d.prefix.style = style
	return d
}

// MakeRelative drops the prefix, including a wrapper or cygwin mount, and keeps the segments.
func (d *Dir) MakeRelative() *Dir {
	d.prefix = NoPrefix()
	return d
}

// Resolve makes d absolute against cwd when d is relative, then collapses
// "." and ".." segments lexically. ".." at the start of the path is dropped.
// A nil cwd only collapses.
func (d *Dir) Resolve(cwd *Dir) *Dir {
	if d.IsRelative() && cwd != nil {
		d.prefix = cwd.prefix
		d.segments = append(slices.Clone(cwd.segments), d.segments...)
	}
	d.segments = collapse(d.segments)
	return d
}

func collapse(segments []string) []string {
	stack := make([]string, 0, len(segments))
	for _, s := range segments {
		switch s {
		case ".":
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, s)
		}
	}
	return stack
}

// MakeRelativeTo turns d into the path of d relative to base, e.g. "./Graph/".
// Both are collapsed first. If d equals base the result is "./".
// It fails with ErrNotASubpath unless d is base or nested under base.
func (d *Dir) MakeRelativeTo(base *Dir) (*Dir, error) {
	self := d.Clone().Resolve(nil)
	other := base.Clone().Resolve(nil)
	if !self.startsWith(other) {
		return nil, newNotASubpathError(self.String(), other.String())
	}
	d.prefix = NoPrefix()
	if len(self.segments) == len(other.segments) {
		d.segments = []string{}
		return d, nil
	}
	d.segments = append([]string{"."}, self.segments[len(other.segments):]...)
	return d, nil
}

// IsSubdirectoryOf reports whether d is nested strictly under parent.
// A directory is never a subdirectory of itself.
func (d *Dir) IsSubdirectoryOf(parent *Dir) bool {
	self := d.Clone().Resolve(nil)
	other := parent.Clone().Resolve(nil)
	return len(self.segments) > len(other.segments) && self.startsWith(other)
}

// startsWith reports whether d has the prefix of base and begins with all of its segments.
// The platform and the notation the paths were written in do not matter.
func (d *Dir) startsWith(base *Dir) bool {
	n := len(base.segments)
	return d.prefix.Equals(base.prefix) && len(d.segments) >= n && slices.Equal(d.segments[:n], base.segments)
}

// File returns a file named name inside a copy of d.
func (d *Dir) File(name string) *File {
	return NewFile(d, name)
}

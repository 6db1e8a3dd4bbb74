package pathfs

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// File is a file location: the containing directory, a name and an optional extension.
// The directory is owned by the File and copied whenever it is handed in or out.
type File struct {
	dir       *Dir
	name      string
	extension string
	hasExt    bool
}

// ParseFile parses raw as a file path on the native platform.
func ParseFile(raw string) (*File, error) {
	return Native.ParseFile(raw)
}

// ParseFile parses raw as a file path using the dialect rules of p.
// The part after the last separator is the file name. A name without
// directory is placed in the empty relative directory "./".
func (p Platform) ParseFile(raw string) (*File, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, newMalformedPathError(raw, "empty path")
	}
	i := p.lastSeparator(raw)
	if i == len(raw)-1 {
		return nil, newMalformedPathError(raw, "file path must not end with a directory separator")
	}
	if i < 0 {
		f := &File{dir: p.CurrentDir()}
		f.SetName(raw)
		return f, nil
	}
	dir, err := p.ParseDir(raw[:i+1])
	if err != nil {
		return nil, err
	}
	f := &File{dir: dir}
	f.SetName(raw[i+1:])
	return f, nil
}

// lastSeparator returns the index of the separator before the file name, or -1.
// In cygwin paths a backslash escaping whitespace or a doubled backslash is part of a name.
func (p Platform) lastSeparator(raw string) int {
	if !cygwinPattern.MatchString(raw) {
		return strings.LastIndexFunc(raw, func(r rune) bool {
			return r == '/' || (r == '\\' && (p == Windows || isWindowsStyle(raw)))
		})
	}
	last := -1
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '/':
			last = i
		case '\\':
			if i+1 < len(raw) && raw[i+1] == '\\' {
				i++
				continue
			}
			if next, _ := utf8.DecodeRuneInString(raw[i+1:]); i+1 < len(raw) && unicode.IsSpace(next) {
				continue
			}
			last = i
		}
	}
	return last
}

// isWindowsStyle reports whether raw uses a prefix that splits on backslashes on every platform.
func isWindowsStyle(raw string) bool {
	return uncPattern.MatchString(raw) || drivePattern.MatchString(raw) ||
		cygwinPattern.MatchString(raw) || wrapperPattern.MatchString(raw)
}

// NewFile returns a file named name inside a copy of dir.
func NewFile(dir *Dir, name string) *File {
	f := &File{dir: dir.Clone()}
	f.SetName(name)
	return f
}

// Dir returns a copy of the containing directory.
func (f *File) Dir() *Dir {
	return f.dir.Clone()
}

// SetDir moves f into a copy of dir.
func (f *File) SetDir(dir *Dir) *File {
	f.dir = dir.Clone()
	return f
}

// Name returns the file name including the extension.
func (f *File) Name() string {
	if f.hasExt {
		return f.name + "." + f.extension
	}
	return f.name
}

// BaseName returns the file name without the extension.
func (f *File) BaseName() string {
	return f.name
}

// Extension returns the extension without the leading dot.
func (f *File) Extension() (ext string, ok bool) {
	return f.extension, f.hasExt
}

// SetName sets name and extension from s. The last "." separates the extension.
func (f *File) SetName(s string) *File {
	if i := strings.LastIndex(s, "."); i >= 0 {
		f.name, f.extension, f.hasExt = s[:i], s[i+1:], true
	} else {
		f.name, f.extension, f.hasExt = s, "", false
	}
	return f
}

// SetExtension replaces the extension. A leading dot in ext is ignored.
func (f *File) SetExtension(ext string) *File {
	f.extension, f.hasExt = strings.TrimPrefix(ext, "."), true
	return f
}

func (f *File) RemoveExtension() *File {
	f.extension, f.hasExt = "", false
	return f
}

// Clone returns a deep copy of f.
func (f *File) Clone() *File {
	c := *f
	c.dir = f.dir.Clone()
	return &c
}

func (f *File) IsRelative() bool {
	return f.dir.IsRelative()
}

func (f *File) IsAbsolute() bool {
	return f.dir.IsAbsolute()
}

// OSPath renders f in the given dialect. FlagWithoutTrailingSlash is ignored.
func (f *File) OSPath(dialect Platform, flags Flag) (string, error) {
	dir, err := f.dir.OSPath(dialect, flags&^FlagWithoutTrailingSlash)
	if err != nil {
		return "", err
	}
	return dir + f.Name(), nil
}

func (f *File) String() string {
	return f.dir.String() + f.Name()
}

// Resolve resolves the containing directory against cwd.
func (f *File) Resolve(cwd *Dir) *File {
	f.dir.Resolve(cwd)
	return f
}

// MakeRelativeTo makes the containing directory relative to base.
func (f *File) MakeRelativeTo(base *Dir) (*File, error) {
	if _, err := f.dir.MakeRelativeTo(base); err != nil {
		return nil, err
	}
	return f, nil
}

// WrapWith wraps the containing directory in the stream wrapper scheme.
func (f *File) WrapWith(wrapper string) *File {
	f.dir.WrapWith(wrapper)
	return f
}

// FindExtension returns a copy of f with the first candidate extension that exists in fsys.
// When no candidate exists it fails with a *FileNotFoundError listing every attempted extension.
func (f *File) FindExtension(fsys FS, candidates ...string) (*File, error) {
	var probeErr error
	tried := make([]string, 0, len(candidates))
	for _, ext := range candidates {
		c := f.Clone().SetExtension(ext)
		tried = append(tried, strings.TrimPrefix(ext, "."))
		ok, err := fsys.Exists(c.String())
		if err != nil {
			probeErr = multierror.Append(probeErr, err)
			continue
		}
		if ok {
			return c, nil
		}
	}
	return nil, &FileNotFoundError{Name: f.dir.String() + f.name, Extensions: tried, Cause: probeErr}
}

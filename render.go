package pathfs

import (
	"strings"
)

// OSPath renders d in the given dialect.
//
// Wrapped and cygwin paths always use "/" as separator. A UNC path cannot be
// rendered in the unix dialect and fails with ErrUnsupportedDialect.
func (d *Dir) OSPath(dialect Platform, flags Flag) (string, error) {
	prefix, sep, err := d.prefix.render(dialect, flags)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(prefix)
	if d.IsRelative() && len(d.segments) == 0 {
		b.WriteString(".")
		if !flags.has(FlagWithoutTrailingSlash) {
			b.WriteString(sep)
		}
		return b.String(), nil
	}
	b.WriteString(strings.Join(d.segments, sep))
	if len(d.segments) > 0 && !flags.has(FlagWithoutTrailingSlash) {
		b.WriteString(sep)
	}
	return b.String(), nil
}

// MustOSPath is like OSPath but panics if d cannot be rendered in dialect.
func (d *Dir) MustOSPath(dialect Platform, flags Flag) string {
	s, err := d.OSPath(dialect, flags)
	if err != nil {
		panic(err)
	}
	return s
}

// String renders d in the dialect of its platform with a trailing separator.
// A UNC path on the unix platform is rendered in the windows dialect.
func (d *Dir) String() string {
	s, err := d.OSPath(d.platform, 0)
	if err != nil {
		return d.MustOSPath(Windows, 0)
	}
	return s
}

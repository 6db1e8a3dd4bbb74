package pathfs

import (
	"strings"
)

// PrefixKind identifies the root designator of a path.
type PrefixKind int

const (
	PrefixNone PrefixKind = iota
	PrefixUnixRoot
	PrefixDrive
	PrefixUNC
	PrefixCygwin
	PrefixWrapped
)

func (k PrefixKind) String() string {
	switch k {
	case PrefixUnixRoot:
		return "unix-root"
	case PrefixDrive:
		return "drive"
	case PrefixUNC:
		return "unc"
	case PrefixCygwin:
		return "cygwin"
	case PrefixWrapped:
		return "wrapped"
	default:
		return "none"
	}
}

type driveStyle int

const (
	driveStyleUnset driveStyle = iota
	driveStyleWindows
	driveStyleUnix
)

// Prefix is the root designator of a path: a drive letter, a UNC host, the unix root,
// a cygwin mount or a stream wrapper around one of these.
// The zero value is the prefix of a relative path.
type Prefix struct {
	kind PrefixKind
	// drive letter for PrefixDrive and PrefixCygwin, host for PrefixUNC, scheme for PrefixWrapped
	value string
	// inner prefix of PrefixWrapped
	inner *Prefix
	// drive style the path was parsed with, used by wrapped drives when no style flag is given
	style driveStyle
}

func NoPrefix() Prefix {
	return Prefix{}
}

func UnixRoot() Prefix {
	return Prefix{kind: PrefixUnixRoot}
}

func Drive(letter string) Prefix {
	return Prefix{kind: PrefixDrive, value: letter}
}

func UNC(host string) Prefix {
	return Prefix{kind: PrefixUNC, value: host}
}

func Cygwin(letter string) Prefix {
	return Prefix{kind: PrefixCygwin, value: letter}
}

// Wrapped returns a stream wrapper prefix around inner.
// Parsing "vfs:///project/" yields an inner PrefixUnixRoot and "phar://my.phar/"
// an inner PrefixNone, so the slash after "://" survives rendering.
// Only PrefixNone, PrefixUnixRoot and PrefixDrive can be wrapped; other inner kinds are
// reduced to the closest wrappable prefix.
func Wrapped(wrapper string, inner Prefix) Prefix {
	switch inner.kind {
	case PrefixWrapped:
		inner = *inner.inner
	case PrefixCygwin:
		inner = Drive(strings.ToUpper(inner.value))
	case PrefixUNC:
		inner = UnixRoot()
	}
	in := inner
	return Prefix{kind: PrefixWrapped, value: wrapper, inner: &in}
}

func (p Prefix) Kind() PrefixKind {
	return p.kind
}

// Letter returns the drive letter of a drive, cygwin or wrapped drive prefix.
func (p Prefix) Letter() string {
	switch p.kind {
	case PrefixDrive, PrefixCygwin:
		return p.value
	case PrefixWrapped:
		return p.inner.Letter()
	}
	return ""
}

// Host returns the host name of a UNC prefix.
func (p Prefix) Host() string {
	if p.kind == PrefixUNC {
		return p.value
	}
	return ""
}

// Wrapper returns the scheme of a wrapped prefix without "://".
func (p Prefix) Wrapper() string {
	if p.kind == PrefixWrapped {
		return p.value
	}
	return ""
}

// Inner returns the prefix inside a wrapper, or p itself when it is not wrapped.
func (p Prefix) Inner() Prefix {
	if p.kind == PrefixWrapped {
		return *p.inner
	}
	return p
}

// Equals reports whether p and o designate the same root. Drive and cygwin
// letters compare case-insensitively and the parsed drive style is ignored.
func (p Prefix) Equals(o Prefix) bool {
	if p.kind != o.kind {
		return false
	}
	switch p.kind {
	case PrefixDrive, PrefixCygwin:
		if !strings.EqualFold(p.value, o.value) {
			return false
		}
	default:
		if p.value != o.value {
			return false
		}
	}
	if p.kind == PrefixWrapped {
		return p.inner.Equals(*o.inner)
	}
	return true
}

func (p Prefix) render(dialect Platform, flags Flag) (prefix string, sep string, err error) {
	switch p.kind {
	case PrefixNone:
		return "", dialect.Separator(), nil
	case PrefixUnixRoot:
		return dialect.Separator(), dialect.Separator(), nil
	case PrefixCygwin:
		return "/cygdrive/" + p.value + "/", "/", nil
	case PrefixDrive:
		if dialect == Windows {
			if flags.has(FlagCygwin) {
				return "/cygdrive/" + strings.ToLower(p.value) + "/", "/", nil
			}
			return p.value + `:\`, `\`, nil
		}
		if flags.has(FlagDriveWindowsStyle) && !flags.has(FlagDriveUnixStyle) {
			return p.value + ":/", "/", nil
		}
		return "/" + p.value + ":/", "/", nil
	case PrefixUNC:
		if dialect != Windows {
			return "", "", newUnsupportedDialectError(`\\`+p.value+`\`, "unc prefix cannot be rendered in the unix dialect")
		}
		return `\\` + p.value + `\`, `\`, nil
	case PrefixWrapped:
		inner := ""
		switch p.inner.kind {
		case PrefixUnixRoot:
			inner = "/"
		case PrefixDrive:
			if p.resolveStyle(flags) == driveStyleUnix {
				inner = "/" + p.inner.value + ":/"
			} else {
				inner = p.inner.value + ":/"
			}
		}
		return p.value + "://" + inner, "/", nil
	}
	return "", dialect.Separator(), nil
}

// resolveStyle returns the drive style requested by flags, falling back to the parsed style.
func (p Prefix) resolveStyle(flags Flag) driveStyle {
	switch {
	case flags.has(FlagDriveUnixStyle):
		return driveStyleUnix
	case flags.has(FlagDriveWindowsStyle):
		return driveStyleWindows
	}
	return p.style
}

package pathfs

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	cygwinPattern            = regexp.MustCompile(`(?i)^/cygdrive/([a-z])/`)
	wrapperPattern           = regexp.MustCompile(`^([a-z0-9.]+)://`)
	uncPattern               = regexp.MustCompile(`^\\\\([^\\/]+)(?:[\\/]|$)`)
	drivePattern             = regexp.MustCompile(`(?i)^[/\\]?([a-z]):[/\\]`)
	wrappedDriveUnixStyle    = regexp.MustCompile(`(?i)^/([a-z]):/`)
	wrappedDriveWindowsStyle = regexp.MustCompile(`(?i)^([a-z]):/`)
)

// ParseDir parses raw as a directory path on the native platform.
// raw must end with a directory separator.
func ParseDir(raw string) (*Dir, error) {
	return Native.ParseDir(raw)
}

// ParseDir parses raw as a directory path using the dialect rules of p.
// raw must end with "/" or "\".
func (p Platform) ParseDir(raw string) (*Dir, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, newMalformedPathError(raw, "empty path")
	}
	if !strings.HasSuffix(raw, "/") && !strings.HasSuffix(raw, `\`) {
		return nil, newMalformedPathError(raw, "directory path must end with a directory separator")
	}
	prefix, segments := p.parse(raw)
	return &Dir{platform: p, prefix: prefix, segments: segments}, nil
}

func (p Platform) parse(raw string) (Prefix, []string) {
	if m := cygwinPattern.FindStringSubmatch(raw); m != nil {
		rest := normalizeCygwinBackslashes(raw[len(m[0]):])
		return Cygwin(m[1]), splitSegments(rest, isSlash)
	}

	if m := wrapperPattern.FindStringSubmatch(raw); m != nil {
		rest := strings.ReplaceAll(raw[len(m[0]):], `\`, "/")
		inner, style := NoPrefix(), driveStyleUnset
		if d := wrappedDriveUnixStyle.FindStringSubmatch(rest); d != nil {
			inner, style = Drive(d[1]), driveStyleUnix
			rest = rest[len(d[0]):]
		} else if d := wrappedDriveWindowsStyle.FindStringSubmatch(rest); d != nil {
			inner, style = Drive(d[1]), driveStyleWindows
			rest = rest[len(d[0]):]
		} else if strings.HasPrefix(rest, "/") {
			inner = UnixRoot()
		}
		prefix := Wrapped(m[1], inner)
		prefix.style = style
		return prefix, splitSegments(rest, isSlash)
	}

	if m := uncPattern.FindStringSubmatch(raw); m != nil {
		return UNC(m[1]), splitSegments(raw[len(m[0]):], Windows.isSeparator)
	}

	if m := drivePattern.FindStringSubmatch(raw); m != nil {
		prefix := Drive(m[1])
		prefix.style = driveStyleWindows
		if raw[0] == '/' || raw[0] == '\\' {
			prefix.style = driveStyleUnix
		}
		return prefix, splitSegments(raw[len(m[0]):], Windows.isSeparator)
	}

	if strings.HasPrefix(raw, "/") || (p == Windows && strings.HasPrefix(raw, `\`)) {
		return UnixRoot(), splitSegments(raw[1:], p.isSeparator)
	}

	return NoPrefix(), splitSegments(raw, p.isSeparator)
}

func isSlash(r rune) bool {
	return r == '/'
}

// splitSegments splits s at every separator and drops empty segments.
func splitSegments(s string, isSeparator func(rune) bool) []string {
	segments := strings.FieldsFunc(s, isSeparator)
	if segments == nil {
		return []string{}
	}
	return segments
}

// normalizeCygwinBackslashes turns backslashes into slashes except when
// a backslash escapes whitespace or is doubled.
func normalizeCygwinBackslashes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	rs := []rune(s)
	var b strings.Builder
	for i := 0; i < len(rs); i++ {
		if rs[i] != '\\' {
			b.WriteRune(rs[i])
			continue
		}
		switch {
		case i+1 < len(rs) && rs[i+1] == '\\':
			b.WriteString(`\\`)
			i++
		case i+1 < len(rs) && unicode.IsSpace(rs[i+1]):
			b.WriteRune('\\')
		default:
			b.WriteRune('/')
		}
	}
	return b.String()
}

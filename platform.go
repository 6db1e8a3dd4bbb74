package pathfs

import (
	"runtime"
)

// Platform selects the path dialect used for parsing and rendering.
type Platform int

const (
	Unix Platform = iota
	Windows
)

// Native is the platform of the running process. It is detected once at start-up.
var Native = detectPlatform(runtime.GOOS)

func detectPlatform(goos string) Platform {
	if goos == "windows" {
		return Windows
	}
	return Unix
}

func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	default:
		return "unix"
	}
}

// Separator returns the directory separator of the platform.
func (p Platform) Separator() string {
	if p == Windows {
		return `\`
	}
	return "/"
}

func (p Platform) isSeparator(r rune) bool {
	if p == Windows {
		return r == '/' || r == '\\'
	}
	return r == '/'
}

// Flag modifies how a path is rendered by OSPath.
type Flag uint

const (
	// FlagWithoutTrailingSlash omits the trailing directory separator.
	FlagWithoutTrailingSlash Flag = 1 << iota
	// FlagDriveWindowsStyle renders drive letters as C:/ in the unix dialect and in wrapped paths.
	FlagDriveWindowsStyle
	// FlagDriveUnixStyle renders drive letters as /C:/ in the unix dialect and in wrapped paths.
	// Without a drive style flag the unix dialect uses /C:/ and wrapped drives keep the style they were parsed with.
	FlagDriveUnixStyle
	// FlagCygwin renders drive letters as /cygdrive/c/ in the windows dialect.
	FlagCygwin
)

func (f Flag) has(flag Flag) bool {
	return f&flag != 0
}

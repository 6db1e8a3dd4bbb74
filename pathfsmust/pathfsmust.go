// Package pathfsmust wraps the pathfs package with panic-based error handling.
//
// It is meant for paths known to be valid when the program is written, such as
// constants and test fixtures. Every function panics where the corresponding
// pathfs function returns an error.
package pathfsmust

import (
	"github.com/Jumpaku/go-pathfs"
)

// ParseDir parses raw as a directory path of the native platform.
//
// It panics if raw is not a directory path.
func ParseDir(raw string) *pathfs.Dir {
	return orPanic(pathfs.ParseDir(raw))
}

// ParseDirOn parses raw as a directory path of the platform p.
//
// It panics if raw is not a directory path.
func ParseDirOn(p pathfs.Platform, raw string) *pathfs.Dir {
	return orPanic(p.ParseDir(raw))
}

// ParseFile parses raw as a file path of the native platform.
//
// It panics if raw is not a file path.
func ParseFile(raw string) *pathfs.File {
	return orPanic(pathfs.ParseFile(raw))
}

// ParseFileOn parses raw as a file path of the platform p.
//
// It panics if raw is not a file path.
func ParseFileOn(p pathfs.Platform, raw string) *pathfs.File {
	return orPanic(p.ParseFile(raw))
}

// MakeRelativeTo returns d relative to base.
//
// It panics if d is not nested under base.
func MakeRelativeTo(d, base *pathfs.Dir) *pathfs.Dir {
	return orPanic(d.MakeRelativeTo(base))
}

// MakeFileRelativeTo returns f relative to base.
//
// It panics if f is not nested under base.
func MakeFileRelativeTo(f *pathfs.File, base *pathfs.Dir) *pathfs.File {
	return orPanic(f.MakeRelativeTo(base))
}

// Cwd returns the working directory of fsys.
//
// It panics if the working directory cannot be determined.
func Cwd(fsys pathfs.FS) *pathfs.Dir {
	return orPanic(pathfs.Cwd(fsys))
}

// Create creates d and its missing ancestors.
//
// It panics if any directory cannot be created.
func Create(d *pathfs.Dir, fsys pathfs.FS, cfg pathfs.Config) {
	check(d.Create(fsys, cfg))
}

// LoadConfig reads a Config from the TOML file at path.
//
// It panics if the file cannot be read or decoded.
func LoadConfig(path string) pathfs.Config {
	return orPanic(pathfs.LoadConfig(path))
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

// orPanic returns v when err is nil.
func orPanic[T any](v T, err error) T {
	check(err)
	return v
}

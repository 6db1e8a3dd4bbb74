//go:build !linux && !darwin

package osfs

import (
	"io/fs"

	"github.com/Jumpaku/go-pathfs"
)

// times falls back to the modification time where access and change times are not exposed.
func times(info fs.FileInfo) pathfs.Times {
	return pathfs.Times{ModTime: info.ModTime(), AccessTime: info.ModTime(), ChangeTime: info.ModTime()}
}

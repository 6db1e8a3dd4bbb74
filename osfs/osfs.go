// Package osfs implements pathfs.FS on the local operating system filesystem.
package osfs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/Jumpaku/go-pathfs"
	pathfserrors "github.com/Jumpaku/go-pathfs/errors"
	"github.com/sirupsen/logrus"
)

// FS accesses the local filesystem through the os package.
type FS struct{}

var _ pathfs.FS = FS{}

func New() FS {
	return FS{}
}

func (FS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (FS) ListEntries(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (FS) IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (FS) Getwd() (string, error) {
	return os.Getwd()
}

func (FS) Mkdir(path string, mode fs.FileMode) error {
	logrus.WithFields(logrus.Fields{"path": path, "mode": mode}).Debug("mkdir")
	if err := os.Mkdir(path, mode); err != nil {
		return err
	}
	// Mkdir is subject to the process umask.
	return os.Chmod(path, mode)
}

func (FS) Remove(path string) error {
	logrus.WithField("path", path).Debug("remove")
	return os.Remove(path)
}

func (FS) Stat(path string) (pathfs.Times, error) {
	info, err := os.Stat(path)
	if err != nil {
		return pathfs.Times{}, err
	}
	return times(info), nil
}

// Cwd returns the process working directory as a Dir.
func Cwd() (*pathfs.Dir, error) {
	return pathfs.Cwd(New())
}

// TempDir returns the default directory for temporary files as a Dir.
func TempDir() (*pathfs.Dir, error) {
	p := os.TempDir()
	if p == "" {
		return nil, pathfserrors.NewFilesystemError(p, "no temporary directory", nil)
	}
	if last := p[len(p)-1]; last != '/' && last != '\\' {
		p += string(os.PathSeparator)
	}
	return pathfs.ParseDir(p)
}

package pathfs

import (
	"errors"
	"io/fs"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// FS is the filesystem a Dir or File is looked up in.
// Paths are passed in the rendering of the Dir or File (String).
type FS interface {
	Exists(path string) (bool, error)
	ListEntries(path string) ([]string, error)
	IsDirectory(path string) (bool, error)
	Getwd() (string, error)
	Mkdir(path string, mode fs.FileMode) error
	Remove(path string) error
	Stat(path string) (Times, error)
}

// Times holds the timestamps of a filesystem entry.
type Times struct {
	ModTime    time.Time
	AccessTime time.Time
	ChangeTime time.Time
}

// Cwd returns the working directory of fsys as a Dir of the native platform.
func Cwd(fsys FS) (*Dir, error) {
	return cwdOn(Native, fsys)
}

func cwdOn(p Platform, fsys FS) (*Dir, error) {
	wd, err := fsys.Getwd()
	if err != nil {
		return nil, newFilesystemError("", "failed to get working directory", err)
	}
	if wd == "" || (wd[len(wd)-1] != '/' && wd[len(wd)-1] != '\\') {
		wd += p.Separator()
	}
	return p.ParseDir(wd)
}

// ResolveIn resolves d against the working directory of fsys.
func (d *Dir) ResolveIn(fsys FS) (*Dir, error) {
	if d.IsAbsolute() {
		return d.Resolve(nil), nil
	}
	cwd, err := cwdOn(d.platform, fsys)
	if err != nil {
		return nil, err
	}
	return d.Resolve(cwd), nil
}

func (d *Dir) Exists(fsys FS) (bool, error) {
	ok, err := fsys.Exists(d.String())
	if err != nil {
		return false, newFilesystemError(d.String(), "failed to check existence", err)
	}
	return ok, nil
}

func (d *Dir) IsDirectory(fsys FS) (bool, error) {
	ok, err := fsys.IsDirectory(d.String())
	if err != nil {
		return false, newFilesystemError(d.String(), "failed to check directory", err)
	}
	return ok, nil
}

// Entries lists the names of the entries of d.
func (d *Dir) Entries(fsys FS) ([]string, error) {
	names, err := fsys.ListEntries(d.String())
	if err != nil {
		return nil, newFilesystemError(d.String(), "failed to list entries", err)
	}
	return names, nil
}

func (d *Dir) Stat(fsys FS) (Times, error) {
	t, err := fsys.Stat(d.String())
	if err != nil {
		return Times{}, newFilesystemError(d.String(), "failed to stat", err)
	}
	return t, nil
}

// Create creates d and every missing ancestor with the directory mode of cfg.
func (d *Dir) Create(fsys FS, cfg Config) error {
	mode := cfg.EffectiveDirMode()
	for i := 0; i <= len(d.segments); i++ {
		ancestor := d.Clone().Slice(0, i)
		if ancestor.IsRelative() && ancestor.Depth() == 0 {
			continue
		}
		p := ancestor.String()
		ok, err := fsys.Exists(p)
		if err != nil {
			return newFilesystemError(p, "failed to check existence", err)
		}
		if ok {
			continue
		}
		logrus.WithFields(logrus.Fields{"path": p, "mode": mode}).Debug("create directory")
		if err := fsys.Mkdir(p, mode); err != nil {
			return newFilesystemError(p, "failed to create directory", err)
		}
	}
	return nil
}

// Delete removes d with all its contents. A directory that does not exist or
// cannot be written reports false without error.
func (d *Dir) Delete(fsys FS) (bool, error) {
	ok, err := d.Exists(fsys)
	if err != nil || !ok {
		return false, err
	}
	if err := d.deleteTree(fsys); err != nil {
		if errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist) {
			logrus.WithField("path", d.String()).Debug("directory not deletable")
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (d *Dir) deleteTree(fsys FS) error {
	names, err := d.Entries(fsys)
	if err != nil {
		return err
	}
	var result error
	for _, name := range names {
		sub := d.Sub(name)
		isDir, err := sub.IsDirectory(fsys)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if isDir {
			if err := sub.deleteTree(fsys); err != nil {
				result = multierror.Append(result, err)
			}
			continue
		}
		p := d.String() + name
		if err := fsys.Remove(p); err != nil {
			result = multierror.Append(result, newFilesystemError(p, "failed to remove file", err))
		}
	}
	if result != nil {
		return result
	}
	if err := fsys.Remove(d.String()); err != nil {
		return newFilesystemError(d.String(), "failed to remove directory", err)
	}
	return nil
}

func (f *File) Exists(fsys FS) (bool, error) {
	ok, err := fsys.Exists(f.String())
	if err != nil {
		return false, newFilesystemError(f.String(), "failed to check existence", err)
	}
	return ok, nil
}

func (f *File) Stat(fsys FS) (Times, error) {
	t, err := fsys.Stat(f.String())
	if err != nil {
		return Times{}, newFilesystemError(f.String(), "failed to stat", err)
	}
	return t, nil
}

// Delete removes f. A file that does not exist or cannot be written reports false without error.
func (f *File) Delete(fsys FS) (bool, error) {
	if err := fsys.Remove(f.String()); err != nil {
		if errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, newFilesystemError(f.String(), "failed to remove file", err)
	}
	return true, nil
}

// Package gdrive implements pathfs.FS on a Google Drive folder tree.
//
// Paths are absolute Unix-root paths ("/a/b/") interpreted relative to the
// root folder given to New. Segments are resolved to files by name, one
// folder level at a time.
package gdrive

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/Jumpaku/go-pathfs"
	pathfserrors "github.com/Jumpaku/go-pathfs/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const mimeTypeGoogleAppFolder = "application/vnd.google-apps.folder"

const (
	driveFileFields  = "parents,id,name,mimeType,modifiedTime,createdTime,viewedByMeTime"
	driveFilesFields = "nextPageToken,files(parents,id,name,mimeType,modifiedTime,createdTime,viewedByMeTime)"
)

// FS accesses the folder tree under a Drive folder.
type FS struct {
	service     *drive.Service
	rootID      string
	moveToTrash bool
}

var _ pathfs.FS = (*FS)(nil)

// New creates a new FS rooted at the folder rootID.
// Removed entries are moved to the trash when moveToTrash is true and deleted permanently otherwise.
func New(service *drive.Service, rootID string, moveToTrash bool) *FS {
	return &FS{service: service, rootID: rootID, moveToTrash: moveToTrash}
}

func (s *FS) Exists(path string) (bool, error) {
	_, found, err := s.lookup(path)
	return found, err
}

func (s *FS) ListEntries(path string) ([]string, error) {
	dir, err := s.find(path)
	if err != nil {
		return nil, err
	}
	if dir.MimeType != mimeTypeGoogleAppFolder {
		return nil, fmt.Errorf("'%s' is not a directory: %w", path, fs.ErrInvalid)
	}
	files, err := findAllIn(s.service, dir.Id)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names, nil
}

func (s *FS) IsDirectory(path string) (bool, error) {
	file, found, err := s.lookup(path)
	if err != nil || !found {
		return false, err
	}
	return file.MimeType == mimeTypeGoogleAppFolder, nil
}

// Getwd returns the root folder. Relative paths resolve against it.
func (s *FS) Getwd() (string, error) {
	return "/", nil
}

// Mkdir creates a folder. Drive has no permission bits, so mode is not applied.
func (s *FS) Mkdir(path string, mode fs.FileMode) error {
	parts, err := validateAndSplitPath(path)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return fmt.Errorf("'%s' already exists: %w", path, fs.ErrExist)
	}
	parent, err := s.findParts(path, parts[:len(parts)-1])
	if err != nil {
		return err
	}
	name := parts[len(parts)-1]
	existing, err := findAllByNameIn(s.service, parent.Id, name)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("'%s' already exists: %w", path, fs.ErrExist)
	}
	logrus.WithFields(logrus.Fields{"path": path, "parent": parent.Id, "mode": mode}).Debug("create drive folder")
	_, err = createDirIn(s.service, parent.Id, name)
	return err
}

// Remove removes a file or an empty folder.
func (s *FS) Remove(path string) error {
	file, err := s.find(path)
	if err != nil {
		return err
	}
	if file.Id == s.rootID {
		return fmt.Errorf("root folder is not removable: %w", fs.ErrPermission)
	}
	if file.MimeType == mimeTypeGoogleAppFolder {
		exists, err := existsIn(s.service, file.Id)
		if err != nil {
			return fmt.Errorf("failed to check if directory is empty: %w", err)
		}
		if exists {
			return fmt.Errorf("directory '%s' is not empty: %w", path, pathfserrors.ErrFilesystemOperation)
		}
	}
	logrus.WithFields(logrus.Fields{"path": path, "id": file.Id, "trash": s.moveToTrash}).Debug("remove drive file")
	return remove(s.service, file.Id, s.moveToTrash)
}

// Stat reports modifiedTime, viewedByMeTime and createdTime as modification, access and change times.
func (s *FS) Stat(path string) (pathfs.Times, error) {
	file, err := s.find(path)
	if err != nil {
		return pathfs.Times{}, err
	}
	return pathfs.Times{
		ModTime:    parseTime(file.ModifiedTime),
		AccessTime: parseTime(file.ViewedByMeTime),
		ChangeTime: parseTime(file.CreatedTime),
	}, nil
}

func (s *FS) find(path string) (*drive.File, error) {
	file, found, err := s.lookup(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("'%s' not found: %w", path, fs.ErrNotExist)
	}
	return file, nil
}

func (s *FS) lookup(path string) (file *drive.File, found bool, err error) {
	parts, err := validateAndSplitPath(path)
	if err != nil {
		return nil, false, err
	}
	file, err = s.findParts(path, parts)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return file, true, nil
}

func (s *FS) findParts(path string, parts []string) (*drive.File, error) {
	file, found, err := findByID(s.service, s.rootID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("root '%s' not found: %w", s.rootID, fs.ErrNotExist)
	}
	for _, p := range parts {
		if file.MimeType != mimeTypeGoogleAppFolder {
			return nil, fmt.Errorf("'%s' is not a directory in '%s': %w", file.Name, path, fs.ErrNotExist)
		}
		files, err := findAllByNameIn(s.service, file.Id, p)
		if err != nil {
			return nil, fmt.Errorf("failed to find '%s' in '%s': %w", p, file.Id, err)
		}
		switch len(files) {
		case 0:
			return nil, fmt.Errorf("'%s' not found in '%s': %w", p, path, fs.ErrNotExist)
		case 1:
			file = files[0]
		default:
			return nil, pathfserrors.NewFilesystemError(path, fmt.Sprintf("multiple entries named '%s'", p), nil)
		}
	}
	return file, nil
}

// validateAndSplitPath accepts absolute paths in either separator, as rendered on any platform.
func validateAndSplitPath(path string) (parts []string, err error) {
	if path == "" {
		return nil, pathfserrors.NewMalformedPathError(path, "empty path")
	}
	if path[0] != '/' && path[0] != '\\' {
		return nil, pathfserrors.NewMalformedPathError(path, "path must be absolute")
	}
	for _, p := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if p == "." || p == ".." {
			return nil, pathfserrors.NewMalformedPathError(path, "relative path components are not allowed")
		}
		parts = append(parts, p)
	}
	return parts, nil
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return s
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func newDriveError(msg string, err error) error {
	return pathfserrors.NewAPIError(msg, err)
}

func queryFileInfo(s *drive.Service, query string) (results []*drive.File, err error) {
	err = s.Files.List().
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(query).
		Fields(driveFilesFields).
		Pages(context.Background(), func(list *drive.FileList) error {
			results = append(results, list.Files...)
			return nil
		})
	if err != nil {
		return nil, newDriveError("failed to query files", err)
	}
	return results, nil
}

func findAllByNameIn(s *drive.Service, parentID string, name string) (files []*drive.File, err error) {
	q := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", escapeQuery(name), parentID)
	return queryFileInfo(s, q)
}

func findAllIn(s *drive.Service, parentID string) (files []*drive.File, err error) {
	q := fmt.Sprintf("'%s' in parents and trashed = false", parentID)
	return queryFileInfo(s, q)
}

func existsIn(s *drive.Service, parentID string) (found bool, err error) {
	q := fmt.Sprintf("'%s' in parents and trashed = false", parentID)
	res, err := s.Files.List().
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(q).
		Fields(driveFilesFields).
		PageSize(1).
		Do()
	if err != nil {
		return false, newDriveError("failed to list files", err)
	}
	return len(res.Files) != 0, nil
}

func findByID(s *drive.Service, fileID string) (file *drive.File, found bool, err error) {
	file, err = s.Files.Get(fileID).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Do()
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) && gErr.Code == 404 {
			return nil, false, nil
		}
		return nil, false, newDriveError("failed to get file", err)
	}
	return file, true, nil
}

func createDirIn(s *drive.Service, parentID, name string) (file *drive.File, err error) {
	file, err = s.Files.Create(&drive.File{
		Name:     name,
		MimeType: mimeTypeGoogleAppFolder,
		Parents:  []string{parentID},
	}).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Do()
	if err != nil {
		return nil, newDriveError("failed to create directory", err)
	}
	return file, nil
}

func remove(s *drive.Service, fileID string, moveToTrash bool) error {
	if moveToTrash {
		_, err := s.Files.Update(fileID, &drive.File{Trashed: true}).
			SupportsAllDrives(true).
			Do()
		if err != nil {
			return newDriveError("failed to move file to trash", err)
		}
		return nil
	}
	if err := s.Files.Delete(fileID).SupportsAllDrives(true).Do(); err != nil {
		return newDriveError("failed to delete file", err)
	}
	return nil
}

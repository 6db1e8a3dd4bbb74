package pathfs

import (
	"github.com/Jumpaku/go-pathfs/errors"
)

var (
	ErrMalformedPath       = errors.ErrMalformedPath
	ErrNotASubpath         = errors.ErrNotASubpath
	ErrFileNotFound        = errors.ErrFileNotFound
	ErrFilesystemOperation = errors.ErrFilesystemOperation
	ErrUnsupportedDialect  = errors.ErrUnsupportedDialect
)

// FileNotFoundError is returned by File.FindExtension.
type FileNotFoundError = errors.FileNotFoundError

func newMalformedPathError(input, msg string) error {
	return errors.NewMalformedPathError(input, msg)
}

func newNotASubpathError(path, base string) error {
	return errors.NewNotASubpathError(path, base)
}

func newUnsupportedDialectError(input, msg string) error {
	return errors.NewUnsupportedDialectError(input, msg)
}

func newFilesystemError(path, msg string, cause error) error {
	return errors.NewFilesystemError(path, msg, cause)
}

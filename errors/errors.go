package errors

import (
	"errors"
)

var (
	ErrMalformedPath       = errors.New("malformed path")
	ErrNotASubpath         = errors.New("not a subpath")
	ErrFileNotFound        = errors.New("file not found")
	ErrFilesystemOperation = errors.New("filesystem operation failed")
	ErrUnsupportedDialect  = errors.New("unsupported dialect")
	ErrAPIError            = errors.New("api error")
	ErrIOError             = errors.New("io error")
)

type wrapError struct {
	underlying error
	input      string
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

// NewMalformedPathError reports an input string that cannot be parsed as a path.
func NewMalformedPathError(input, msg string) error {
	return &wrapError{
		underlying: ErrMalformedPath,
		input:      input,
		msg:        msg,
	}
}

// NewNotASubpathError reports that path is not nested under base.
func NewNotASubpathError(path, base string) error {
	return &wrapError{
		underlying: ErrNotASubpath,
		input:      path,
		msg:        "not nested under " + base,
	}
}

// NewUnsupportedDialectError reports a prefix that cannot be expressed in the requested dialect.
func NewUnsupportedDialectError(input, msg string) error {
	return &wrapError{
		underlying: ErrUnsupportedDialect,
		input:      input,
		msg:        msg,
	}
}

// NewFilesystemError wraps a failed operating system call on path.
func NewFilesystemError(path, msg string, cause error) error {
	return &wrapError{
		underlying: ErrFilesystemOperation,
		input:      path,
		msg:        msg,
		cause:      cause,
	}
}

func NewAPIError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrAPIError,
		msg:        msg,
		cause:      cause,
	}
}

func NewIOError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrIOError,
		msg:        msg,
		cause:      cause,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error()
	if err.input != "" {
		message += ": " + quote(err.input)
	}
	if err.msg != "" {
		message += ": " + err.msg
	}
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}

// Input returns the literal input string carried by err, if any.
func Input(err error) (input string, ok bool) {
	var we *wrapError
	if !errors.As(err, &we) || we.input == "" {
		return "", false
	}
	return we.input, true
}

// FileNotFoundError is returned when none of the candidate extensions of a file exist.
type FileNotFoundError struct {
	Name       string
	Extensions []string
	Cause      error
}

var _ error = (*FileNotFoundError)(nil)

func (err *FileNotFoundError) Error() string {
	message := ErrFileNotFound.Error() + ": " + quote(err.Name) + ": tried extensions ["
	for i, ext := range err.Extensions {
		if i > 0 {
			message += ", "
		}
		message += ext
	}
	message += "]"
	if err.Cause != nil {
		message += ": " + err.Cause.Error()
	}
	return message
}

func (err *FileNotFoundError) Unwrap() []error {
	if err.Cause == nil {
		return []error{ErrFileNotFound}
	}
	return []error{ErrFileNotFound, err.Cause}
}

func quote(s string) string {
	return "'" + s + "'"
}

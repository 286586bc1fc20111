package github

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v66/github"
)

// ErrIsDirectory is returned when a file operation targets a path that
// resolves to a directory. The message is part of the gateway contract.
var ErrIsDirectory = errors.New("Path is a directory, not a file")

// ArgError marks a malformed or missing request argument, distinct from
// upstream API failures. The adapters map it to a client error.
type ArgError struct {
	msg string
}

func (e *ArgError) Error() string { return e.msg }

// ArgErrorf builds an ArgError. Adapters use it when decoding request
// arguments so validation failures classify the same way everywhere.
func ArgErrorf(format string, args ...any) error {
	return &ArgError{msg: fmt.Sprintf(format, args...)}
}

func argErrorf(format string, args ...any) error {
	return ArgErrorf(format, args...)
}

// IsArgError reports whether err marks a caller mistake rather than an
// upstream failure.
func IsArgError(err error) bool {
	var ae *ArgError
	return errors.As(err, &ae)
}

// IsNotFound reports whether err is a GitHub API 404 response. The
// create_or_update_file pre-check swallows exactly this condition; other
// failures (auth, network, server errors) propagate.
func IsNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) {
		return false
	}
	return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}

package conf

import "errors"

var (
	// ErrNotFound is returned by Load when the target file does not exist.
	ErrNotFound = errors.New("config file not found")

	// ErrNoPath is returned by Load and Save when no path is supplied and
	// none was bound at construction.
	ErrNoPath = errors.New("no config file path specified")

	// ErrParse is returned by Load when the file content is not a valid
	// document in the detected format. The underlying codec error is
	// wrapped alongside it.
	ErrParse = errors.New("config parse failed")
)

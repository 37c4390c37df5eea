package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrNoPreviousWord means a merge rule fired with an empty word list.
	// Only a broken rule table can cause it, so composition aborts.
	ErrNoPreviousWord = errors.New("merge rule fired with no previous word")

	// ErrMissingVersion means a dictionary manifest carries neither a
	// "format" nor a "version" field.
	ErrMissingVersion = errors.New("dictionary manifest missing format version")

	// ErrUnsupportedVersion means a dictionary manifest declares a format
	// version other than 3. The dictionary is skipped, not fatal.
	ErrUnsupportedVersion = errors.New("unsupported dictionary format version")

	ErrNotFound = errors.New("not found")
)

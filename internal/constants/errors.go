package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'ptcg config set-key' to add one")
	ErrConfigNotFound     = errors.New("configuration file not found")
)

// Validation errors.
var (
	ErrCardIDRequired = errors.New("card ID is required")
	ErrSetIDRequired  = errors.New("set ID is required")
	ErrInvalidPage    = errors.New("page must be a positive integer")
)

// File system errors.
var (
	ErrNotRegularFile             = errors.New("path is not a regular file")
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
)

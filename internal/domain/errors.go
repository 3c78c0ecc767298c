package domain

import "errors"

var (
	ErrImageNotFound      = errors.New("image not found")
	ErrImageAlreadyExists = errors.New("image already uploaded")
	ErrUnsupportedFormat  = errors.New("unsupported image format")
	ErrContentRace        = errors.New("content created concurrently")
	ErrCompressionBudget  = errors.New("compression could not reach size budget")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrInvalidQuality     = errors.New("invalid quality selector")
	ErrInvalidSortOrder   = errors.New("invalid sort order")
	ErrNoFilesProvided    = errors.New("image files are required")
	ErrFileTooLarge       = errors.New("file exceeds maximum upload size")
	ErrNotAnImage         = errors.New("only image files are allowed")
)

package domain

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrDuplicateIdentifier = errors.New("project identifier already exists")
	ErrMissingArgument     = errors.New("missing required argument")
)

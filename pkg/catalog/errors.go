package catalog

import "errors"

// Domain errors for catalog operations. ErrTemplateLoad marks a single
// template that failed validation and was skipped; ErrNoTemplates means
// the catalog ended up empty and the process cannot serve.
var (
	ErrManifestInvalid  = errors.New("catalog manifest is invalid")
	ErrTemplateLoad     = errors.New("template failed to load")
	ErrTemplateNotFound = errors.New("template not found")
	ErrNoTemplates      = errors.New("no loadable templates in catalog")
)

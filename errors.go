package emailcreation

import "errors"

var (
	ErrCatalogNotSet   = errors.New("template catalog not set")
	ErrGeneratorNotSet = errors.New("content generator not set")
	ErrResolverNotSet  = errors.New("image resolver not set")
)

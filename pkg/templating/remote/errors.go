package remote

import "errors"

var (
	ErrTemplateNotFound   = errors.New("remote: template not found")
	ErrLoadFailed         = errors.New("remote: failed to load template")
	ErrInvalidFrontmatter = errors.New("remote: invalid frontmatter")
)

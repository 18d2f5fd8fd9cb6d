package blob

import (
	fsstore "familytree/internal/infra/blob/fs"
)

// NewFilesystem returns a blob.Store rooted at the given directory.
func NewFilesystem(root string) (Store, error) { return fsstore.New(root) }

// Package manifest defines the immutable manifest value types that hold an
// artifact's full version history
package manifest

import "errors"

var (
	// ErrVersionNotFound indicates a missing version for an index or instant
	ErrVersionNotFound = errors.New("manifest: version not found")

	// ErrUnknownAsset indicates an asset id absent from the latest version
	ErrUnknownAsset = errors.New("manifest: unknown asset id")

	// ErrAlreadyExists indicates an item already present in a bundle
	ErrAlreadyExists = errors.New("manifest: the item already exists")

	// ErrDoesNotExist indicates an item or component absent from a bundle
	ErrDoesNotExist = errors.New("manifest: the item does not exist")
)

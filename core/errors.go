package core

import (
	"errors"
)

var (
	// ErrDescriptorLoad marks a group descriptor that is missing or unparsable.
	ErrDescriptorLoad = errors.New("descriptor load failed")
	// ErrGeometryLoad marks a geometry payload that is missing or unparsable.
	ErrGeometryLoad = errors.New("geometry load failed")
	// ErrKeyNotFound marks a metadata lookup miss.
	ErrKeyNotFound = errors.New("metadata key not found")
	// ErrTreeTooDeep marks a descriptor tree deeper than the builder allows.
	ErrTreeTooDeep = errors.New("mesh tree exceeds maximum depth")
	// ErrUnsupportedVersion marks a descriptor written by a newer schema.
	ErrUnsupportedVersion = errors.New("unsupported descriptor version")
)

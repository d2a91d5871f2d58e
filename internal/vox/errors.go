package vox

import "errors"

// Sentinel errors for container decoding.
var (
	// ErrInvalidSignature indicates the buffer does not begin with the
	// 4-byte "VOX " container signature.
	ErrInvalidSignature = errors.New("invalid container signature")
	// ErrNoSizeChunk indicates no usable SIZE chunk was found among the
	// top-level chunks of a container.
	ErrNoSizeChunk = errors.New("no SIZE chunk in container")
)

// Package vox decodes the chunked binary container format used for
// voxel-model assets. Decoding is deliberately single-level: chunk children
// are skipped, never descended into, because the pipeline only needs the
// top-level SIZE chunk to recover a model's voxel-grid extents.
package vox

import (
	"encoding/binary"
	"fmt"
)

// Signature is the 4-byte ASCII magic that opens every container file.
const Signature = "VOX "

// sizeTag marks the chunk whose content carries the voxel-grid extents.
const sizeTag = "SIZE"

// headerLen is the fixed byte length of a chunk header: 4-byte tag plus
// two little-endian int32 lengths (content, children).
const headerLen = 12

// preambleLen is the byte length of the container preamble: the signature
// followed by a 4-byte version that is read but never validated.
const preambleLen = 8

// Dimensions holds the voxel-grid extents of one model.
type Dimensions struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

// String formats dimensions as "XxYxZ" for logs and table output.
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.X, d.Y, d.Z)
}

// DefaultDimensions is the canonical fallback used whenever a container
// cannot be decoded. Nothing downstream depends on the specific digits;
// there must be exactly one such value so manifests stay deterministic.
var DefaultDimensions = Dimensions{X: 10, Y: 10, Z: 10}

// Chunk is one top-level record of a container: a 4-character tag and its
// raw content bytes. Children bytes are accounted for during the walk but
// never retained.
type Chunk struct {
	Tag     string
	Content []byte
}

// Decode validates the container preamble and walks the flat sequence of
// top-level chunks. Truncation is tolerated: the walk stops as soon as a
// full chunk header no longer fits and returns whatever was collected,
// because creators save files while the watcher is running and short reads
// are routine. Only a bad signature is an error.
func Decode(data []byte) ([]Chunk, error) {
	if len(data) < len(Signature) || string(data[:len(Signature)]) != Signature {
		return nil, ErrInvalidSignature
	}

	var chunks []Chunk
	off := preambleLen
	for off+headerLen <= len(data) {
		tag := string(data[off : off+4])
		contentLen := int(int32(binary.LittleEndian.Uint32(data[off+4 : off+8])))
		childrenLen := int(int32(binary.LittleEndian.Uint32(data[off+8 : off+12])))

		// Hostile or corrupt lengths clamp to the remaining buffer the
		// same way truncation does: decode what is addressable.
		if contentLen < 0 {
			contentLen = 0
		}
		if childrenLen < 0 {
			childrenLen = 0
		}

		start := off + headerLen
		end := start + contentLen
		if end > len(data) || end < start {
			end = len(data)
		}
		chunks = append(chunks, Chunk{Tag: tag, Content: data[start:end]})

		off = end + childrenLen
		if off > len(data) || off < end {
			off = len(data)
		}
	}
	return chunks, nil
}

// FindDimensions returns the extents from the first SIZE chunk in the
// sequence. The chunk content must hold at least three little-endian
// int32 values (x, y, z); a missing or short chunk yields ErrNoSizeChunk.
func FindDimensions(chunks []Chunk) (Dimensions, error) {
	for _, c := range chunks {
		if c.Tag != sizeTag {
			continue
		}
		if len(c.Content) < 12 {
			return Dimensions{}, fmt.Errorf("SIZE chunk content %d bytes: %w", len(c.Content), ErrNoSizeChunk)
		}
		return Dimensions{
			X: int32(binary.LittleEndian.Uint32(c.Content[0:4])),
			Y: int32(binary.LittleEndian.Uint32(c.Content[4:8])),
			Z: int32(binary.LittleEndian.Uint32(c.Content[8:12])),
		}, nil
	}
	return Dimensions{}, ErrNoSizeChunk
}

// ReadDimensions decodes a container buffer and extracts its voxel-grid
// extents in one step.
func ReadDimensions(data []byte) (Dimensions, error) {
	chunks, err := Decode(data)
	if err != nil {
		return Dimensions{}, err
	}
	return FindDimensions(chunks)
}

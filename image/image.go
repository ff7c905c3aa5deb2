// Package image lays out assembled code as a fixed size bootable image.
package image

import (
	"io"
	"iter"
	"slices"

	"github.com/ezrec/bitasm/internal"
)

// Profile describes the layout of an image: content, padded with Fill up
// to Size-len(Signature) bytes, followed by Signature.
type Profile struct {
	Size      int
	Signature []byte
	Fill      byte
}

// BootSector is the canonical 512 byte boot sector profile.
var BootSector = Profile{
	Size:      512,
	Signature: []byte{0x55, 0xAA},
	Fill:      0x00,
}

// Threshold is the content size the padding fills up to.
func (p Profile) Threshold() int {
	return max(p.Size-len(p.Signature), 0)
}

// Oversize is true if content does not fit before the signature. Such an
// image is still produced, and is larger than the profile size.
func (p Profile) Oversize(content []byte) bool {
	return len(content) > p.Threshold()
}

// Seq yields the image bytes.
func (p Profile) Seq(content []byte) iter.Seq[byte] {
	return internal.Concat(
		slices.Values(content),
		internal.Repeat(p.Fill, p.Threshold()-len(content)),
		slices.Values(p.Signature),
	)
}

// Bytes returns the complete image.
func (p Profile) Bytes(content []byte) []byte {
	return slices.Collect(p.Seq(content))
}

// Write writes the complete image to w.
func (p Profile) Write(w io.Writer, content []byte) (n int, err error) {
	return w.Write(p.Bytes(content))
}

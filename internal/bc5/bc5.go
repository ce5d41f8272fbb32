// Package bc5 composes two independently-encoded bc4 blocks into the
// 16-byte two-channel format (spec.md §5): channel 0's block followed by
// channel 1's block, with no cross-channel interaction.
package bc5

import "github.com/deepteams/bcn/internal/bc4"

// Block is the 16-byte wire format: bc4.Block for channel 0, then
// bc4.Block for channel 1.
type Block [16]byte

// Pack concatenates the two channel blocks.
func Pack(ch0, ch1 bc4.Block) Block {
	var b Block
	copy(b[0:8], ch0[:])
	copy(b[8:16], ch1[:])
	return b
}

// Unpack splits a Block back into its two channel blocks.
func Unpack(b Block) (ch0, ch1 bc4.Block) {
	copy(ch0[:], b[0:8])
	copy(ch1[:], b[8:16])
	return
}

// EncodeBlock independently BC4-encodes each channel's 16 values.
func EncodeBlock(values0, values1 [16]uint8) Block {
	return Pack(bc4.EncodeBlock(values0), bc4.EncodeBlock(values1))
}

// DecodeBlock independently BC4-decodes each channel.
func DecodeBlock(b Block) (values0, values1 [16]uint8) {
	ch0, ch1 := Unpack(b)
	return bc4.DecodeBlock(ch0), bc4.DecodeBlock(ch1)
}

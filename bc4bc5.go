package bcn

import (
	"github.com/deepteams/bcn/internal/bc4"
	"github.com/deepteams/bcn/internal/bc5"
)

// EncodeBC4Block encodes one 4x4 block's single channel into 8 wire bytes.
// channel picks the channel read (0=R, 1=G, 2=B, 3=A); any other value
// reads A.
func EncodeBC4Block(pixels [16]Color, channel int) [8]byte {
	var values [16]uint8
	for i, p := range pixels {
		values[i] = channelOf(p, channel)
	}
	return bc4.EncodeBlock(values)
}

// DecodeBC4Block expands a BC4 block into 16 single-channel values.
func DecodeBC4Block(block [8]byte) [16]uint8 {
	return bc4.DecodeBlock(block)
}

// EncodeBC5Block encodes one 4x4 block's two channels (chA, chB) into 16
// wire bytes, typically a tangent-space normal map's X and Y.
func EncodeBC5Block(pixels [16]Color, chA, chB int) [16]byte {
	var a, b [16]uint8
	for i, p := range pixels {
		a[i] = channelOf(p, chA)
		b[i] = channelOf(p, chB)
	}
	return bc5.EncodeBlock(a, b)
}

// DecodeBC5Block expands a BC5 block into its two channels' 16 values.
func DecodeBC5Block(block [16]byte) (chA, chB [16]uint8) {
	return bc5.DecodeBlock(block)
}

func channelOf(p Color, channel int) uint8 {
	switch channel {
	case 0:
		return p.R
	case 1:
		return p.G
	case 2:
		return p.B
	default:
		return p.A
	}
}

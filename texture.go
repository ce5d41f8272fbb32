package bcn

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// parallelThreshold is the block count below which EncodeTexture just
// walks the grid on the calling goroutine — below this, worker setup and
// a shared atomic counter cost more than they save (spec.md §5).
const parallelThreshold = 16

// EncodeTexture encodes every 4x4 block of src into opts.Format, tiling
// the grid across a fixed worker pool once the block count clears
// parallelThreshold. Workers claim block indices from a shared atomic
// counter rather than pre-partitioning rows, so a slow block (e.g. a
// cluster-fit-heavy BC1 block) doesn't stall other workers on a fixed
// share of the grid — the same load-balancing shape as a teacher-style
// parallel row encoder, adapted here to claim block indices instead of
// rows. Each block's encoded bytes go straight into its slot of out: a
// block is always exactly 8 or 16 bytes (opts.Format.BlockBytes()), so
// there's no variable-sized buffer here for a pool to amortize.
func EncodeTexture(src PixelSource, opts Options) (data []byte, blocksWide, blocksHigh int, err error) {
	if err := opts.validate(); err != nil {
		return nil, 0, 0, err
	}
	width, height := src.Bounds()
	if width <= 0 || height <= 0 {
		return nil, 0, 0, ErrInvalidDimensions
	}

	blocksWide = (width + 3) / 4
	blocksHigh = (height + 3) / 4
	total := blocksWide * blocksHigh
	blockSize := opts.Format.BlockBytes()
	out := make([]byte, total*blockSize)

	encodeAt := func(bx, by int, dst []byte) {
		pixels := blockPixels(src, bx, by)
		switch opts.Format {
		case FormatBC1:
			b := EncodeBC1Block(pixels, opts)
			copy(dst, b[:])
		case FormatBC3:
			b := EncodeBC3Block(pixels, opts)
			copy(dst, b[:])
		case FormatBC4:
			b := EncodeBC4Block(pixels, opts.Channel)
			copy(dst, b[:])
		case FormatBC5:
			b := EncodeBC5Block(pixels, 0, 1)
			copy(dst, b[:])
		}
	}

	if total < parallelThreshold {
		for idx := 0; idx < total; idx++ {
			bx, by := idx%blocksWide, idx/blocksWide
			encodeAt(bx, by, out[idx*blockSize:idx*blockSize+blockSize])
		}
		return out, blocksWide, blocksHigh, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				idx := int(next.Add(1)) - 1
				if idx >= total {
					return
				}
				bx, by := idx%blocksWide, idx/blocksWide
				encodeAt(bx, by, out[idx*blockSize:idx*blockSize+blockSize])
			}
		}()
	}
	wg.Wait()
	return out, blocksWide, blocksHigh, nil
}

// DecodeTexture expands an encoded buffer back into an RGBASource-shaped
// RGBA byte slice. For FormatBC4 the single decoded channel is replicated
// into R, G and B with A forced opaque; for FormatBC5 channel A occupies R
// and channel B occupies G, with B zeroed and A forced opaque.
func DecodeTexture(data []byte, blocksWide, blocksHigh int, opts Options) (pix []byte, width, height int, err error) {
	if err := opts.validate(); err != nil {
		return nil, 0, 0, err
	}
	blockSize := opts.Format.BlockBytes()
	if len(data) < blocksWide*blocksHigh*blockSize {
		return nil, 0, 0, ErrBufferSize
	}
	width, height = blocksWide*4, blocksHigh*4
	pix = make([]byte, width*height*4)

	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			idx := by*blocksWide + bx
			raw := data[idx*blockSize : idx*blockSize+blockSize]
			var pixels [16]Color
			switch opts.Format {
			case FormatBC1:
				var b [8]byte
				copy(b[:], raw)
				pixels = DecodeBC1Block(b, opts.Variant)
			case FormatBC3:
				var b [16]byte
				copy(b[:], raw)
				pixels = DecodeBC3Block(b, opts.Variant)
			case FormatBC4:
				var b [8]byte
				copy(b[:], raw)
				vals := DecodeBC4Block(b)
				for i, v := range vals {
					pixels[i] = Color{R: v, G: v, B: v, A: 255}
				}
			case FormatBC5:
				var b [16]byte
				copy(b[:], raw)
				a, g := DecodeBC5Block(b)
				for i := range pixels {
					pixels[i] = Color{R: a[i], G: g[i], B: 0, A: 255}
				}
			}
			for row := 0; row < 4; row++ {
				for col := 0; col < 4; col++ {
					px, py := bx*4+col, by*4+row
					p := pixels[row*4+col]
					i := (py*width + px) * 4
					pix[i], pix[i+1], pix[i+2], pix[i+3] = p.R, p.G, p.B, p.A
				}
			}
		}
	}
	return pix, width, height, nil
}

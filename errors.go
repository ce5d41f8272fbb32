package bcn

import "github.com/pkg/errors"

// Sentinel errors returned at the package's API boundary. Internal packages
// return no errors; the boundary returns one of these values as-is, so
// callers can errors.Is (or ==) against a stable value.
var (
	// ErrInvalidLevel is returned when a requested compression level falls
	// outside [0,19].
	ErrInvalidLevel = errors.New("bcn: level out of range [0,19]")
	// ErrInvalidDimensions is returned for a zero or negative texture
	// width/height.
	ErrInvalidDimensions = errors.New("bcn: width and height must be positive")
	// ErrBufferSize is returned by DecodeTexture when data holds fewer
	// bytes than blocksWide*blocksHigh blocks of the chosen format need.
	ErrBufferSize = errors.New("bcn: buffer too small")
	// ErrChannelIndex is returned when a BC4/BC5 channel selector is
	// outside the format's supported range.
	ErrChannelIndex = errors.New("bcn: channel index out of range")
	// ErrUnsupportedFormat is returned for a Format value EncodeTexture
	// does not recognize.
	ErrUnsupportedFormat = errors.New("bcn: unsupported format")
)

package xben

import (
	"encoding/binary"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/mggg/ben/ben"
	"github.com/mggg/ben/ben32"
)

// overflowChunk bounds how much decompressed data Reader pulls from the
// LZMA2 stream per Read before re-scanning for complete frames.
const overflowChunk = 1 << 20

// ReaderConfig configures a Reader. It is presently empty; see
// ben.ReaderConfig.
type ReaderConfig struct {
	_ struct{}
}

// Reader pulls decoded Records out of an XBEN stream. It implements
// ben.RecordIterator. The zero value is not usable; construct one with
// NewReader.
type Reader struct {
	zr       io.Reader
	variant  ben.Variant
	overflow []byte
	chunk    []byte
	sawEOF   bool
	err      error
}

// NewReader opens the LZMA2 stream on r, reads and validates the 17-byte
// banner from the decompressed bytes, and returns a Reader positioned at
// the first frame.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	zr, err := xz.NewReader(r)
	if err != nil {
		return nil, &CompressionError{Err: err}
	}

	var banner [ben.BannerLen]byte
	if _, err := io.ReadFull(zr, banner[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, &ben.TruncatedStreamError{}
		}
		return nil, &CompressionError{Err: err}
	}
	variant, ok := ben.VariantFromBanner(banner)
	if !ok {
		return nil, &ben.InvalidHeaderError{Bytes: banner}
	}

	return &Reader{zr: zr, variant: variant, chunk: make([]byte, overflowChunk)}, nil
}

// Variant reports the stream's declared variant.
func (xr *Reader) Variant() ben.Variant { return xr.variant }

// Next implements ben.RecordIterator via the reframing loop described in
// §4.5 of the expanded spec: pull up to 1 MiB of decompressed bytes at a
// time into an overflow buffer, pop one complete frame if the overflow
// already holds one, and only read more once it doesn't. Every pop re-scans
// the (already-drained) overflow buffer from its start, which is the
// resolution this module picked for the scan-restart ambiguity between the
// two reference implementations.
func (xr *Reader) Next() (ben.Record, bool, error) {
	if xr.err != nil {
		return ben.Record{}, false, xr.err
	}
	for {
		if frame, consumed, repeat, ok := popFrame(xr.overflow, xr.variant); ok {
			xr.overflow = xr.overflow[consumed:]
			runs, err := ben32.Decode(frame)
			if err != nil {
				xr.err = err
				return ben.Record{}, false, err
			}
			count := uint16(1)
			if xr.variant == ben.MkvChain {
				count = repeat
			}
			return ben.Record{Assignment: ben.AssignmentFromRuns(runs), Count: count}, true, nil
		}

		if xr.sawEOF {
			if len(xr.overflow) > 0 {
				xr.err = &ben.TruncatedStreamError{}
				return ben.Record{}, false, xr.err
			}
			return ben.Record{}, false, nil
		}

		n, err := xr.zr.Read(xr.chunk)
		if n > 0 {
			xr.overflow = append(xr.overflow, xr.chunk[:n]...)
		}
		if err != nil {
			if err == io.EOF {
				xr.sawEOF = true
				continue
			}
			xr.err = &CompressionError{Err: err}
			return ben.Record{}, false, xr.err
		}
	}
}

// popFrame scans overflow for one complete ben32 frame, returning the
// frame's run-word bytes (excluding the terminator and, under MkvChain, the
// repeat suffix), how many leading bytes of overflow the frame occupied,
// and the repeat count when variant is MkvChain.
//
// Standard scans at 4-byte steps looking for a 4-byte-aligned zero word.
// MkvChain scans at 2-byte steps instead, because each frame's 2-byte
// repeat suffix shifts every subsequent frame's terminator off 4-byte
// alignment.
func popFrame(overflow []byte, variant ben.Variant) (frame []byte, consumed int, repeat uint16, ok bool) {
	if variant == ben.Standard {
		for i := 3; i < len(overflow); i += 4 {
			if isZeroWord(overflow[i-3 : i+1]) {
				return overflow[:i-3], i + 1, 0, true
			}
		}
		return nil, 0, 0, false
	}

	for i := 3; i+2 < len(overflow); i += 2 {
		if isZeroWord(overflow[i-3 : i+1]) {
			repeat = binary.BigEndian.Uint16(overflow[i+1 : i+3])
			return overflow[:i-3], i + 3, repeat, true
		}
	}
	return nil, 0, 0, false
}

func isZeroWord(b []byte) bool {
	return b[0] == 0 && b[1] == 0 && b[2] == 0 && b[3] == 0
}

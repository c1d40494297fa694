package xben

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/mggg/ben/ben"
	"github.com/mggg/ben/ben32"
)

// dictCap approximates xz level 9's 64 MiB dictionary; ulikunitz/xz has no
// numbered preset levels, only an explicit DictCap.
const dictCap = 1 << 26

// WriterConfig configures a Writer. It is presently empty; see
// ben.WriterConfig.
type WriterConfig struct {
	_ struct{}
}

// Writer serializes assignment vectors to an XBEN stream: an LZMA2-wrapped
// banner followed by ben32 frames. Its MkvChain dedup-and-flush behavior on
// Close mirrors ben.Writer exactly, just one layer further out (over ben32
// frame bytes instead of BEN line bytes).
type Writer struct {
	zw       *xz.Writer
	variant  ben.Variant
	wroteHdr bool
	err      error

	pending       []byte
	pendingRepeat uint16
}

// NewWriter returns a Writer that compresses and emits a stream of the
// given variant to w.
func NewWriter(w io.Writer, variant ben.Variant, conf *WriterConfig) (*Writer, error) {
	cfg := xz.WriterConfig{DictCap: dictCap}
	zw, err := cfg.NewWriter(w)
	if err != nil {
		return nil, &CompressionError{Err: err}
	}
	return &Writer{zw: zw, variant: variant}, nil
}

func (xw *Writer) writeHeader() error {
	if xw.wroteHdr {
		return nil
	}
	banner := xw.variant.Banner()
	if _, err := xw.zw.Write(banner[:]); err != nil {
		return &CompressionError{Err: err}
	}
	xw.wroteHdr = true
	return nil
}

// WriteAssignment writes one sample.
func (xw *Writer) WriteAssignment(assignment []uint16) error {
	if xw.err != nil {
		return xw.err
	}
	if err := xw.writeHeader(); err != nil {
		xw.err = err
		return err
	}

	frame := ben32.Encode(assignment)
	if xw.variant == ben.Standard {
		if _, err := xw.zw.Write(frame); err != nil {
			xw.err = &CompressionError{Err: err}
			return xw.err
		}
		return nil
	}
	return xw.writeMkvChain(frame)
}

func (xw *Writer) writeMkvChain(frame []byte) error {
	if xw.pending != nil && bytes.Equal(frame, xw.pending) && xw.pendingRepeat < 0xFFFF {
		xw.pendingRepeat++
		return nil
	}
	if err := xw.flushGroup(); err != nil {
		xw.err = err
		return err
	}
	xw.pending = frame
	xw.pendingRepeat = 1
	return nil
}

func (xw *Writer) flushGroup() error {
	if xw.pending == nil {
		return nil
	}
	if _, err := xw.zw.Write(xw.pending); err != nil {
		return &CompressionError{Err: err}
	}
	var repeatBuf [2]byte
	binary.BigEndian.PutUint16(repeatBuf[:], xw.pendingRepeat)
	if _, err := xw.zw.Write(repeatBuf[:]); err != nil {
		return &CompressionError{Err: err}
	}
	xw.pending = nil
	xw.pendingRepeat = 0
	return nil
}

// Close flushes any pending MkvChain group and finalizes the LZMA2 stream.
// As with ben.Writer, a Writer abandoned without Close loses its last
// pending group.
func (xw *Writer) Close() error {
	if xw.err != nil {
		return xw.err
	}
	if err := xw.writeHeader(); err != nil {
		xw.err = err
		return err
	}
	if err := xw.flushGroup(); err != nil {
		xw.err = err
		return err
	}
	if err := xw.zw.Close(); err != nil {
		xw.err = &CompressionError{Err: err}
		return xw.err
	}
	return nil
}

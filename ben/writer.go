package ben

import (
	"bytes"
	"encoding/binary"
	"io"
)

// WriterConfig configures a Writer. It is presently empty; the blank field
// keeps call sites using keyed struct literals so new options can be added
// without breaking source compatibility.
type WriterConfig struct {
	_ struct{}
}

// Writer serializes assignment vectors to a BEN stream. The zero value is
// not usable; construct one with NewWriter.
//
// Under MkvChain, consecutive identical samples are held rather than
// written immediately, so the final group is only flushed by Close. A
// Writer abandoned without calling Close silently drops that last group,
// mirroring BenEncoder's Drop behavior in the reference implementation —
// callers that can't guarantee Close runs should defer it.
type Writer struct {
	w        io.Writer
	variant  Variant
	wroteHdr bool
	err      error

	pending       []byte
	pendingRepeat uint16
}

// NewWriter returns a Writer that emits a stream of the given variant to w.
func NewWriter(w io.Writer, variant Variant, conf *WriterConfig) (*Writer, error) {
	return &Writer{w: w, variant: variant}, nil
}

func (bw *Writer) writeHeader() error {
	if bw.wroteHdr {
		return nil
	}
	banner := bw.variant.Banner()
	if _, err := bw.w.Write(banner[:]); err != nil {
		return err
	}
	bw.wroteHdr = true
	return nil
}

// WriteAssignment writes one sample, RLE-encoding it first.
func (bw *Writer) WriteAssignment(assignment []uint16) error {
	return bw.WriteRuns(RunsFromAssignment(assignment))
}

// WriteRuns writes one sample already expressed as its run-length encoding.
func (bw *Writer) WriteRuns(runs []Run) error {
	if bw.err != nil {
		return bw.err
	}
	if err := bw.writeHeader(); err != nil {
		bw.err = err
		return err
	}

	line := EncodeLine(runs)
	if bw.variant == Standard {
		if _, err := bw.w.Write(line); err != nil {
			bw.err = err
			return err
		}
		return nil
	}
	return bw.writeMkvChain(line)
}

// writeMkvChain holds a newly packed line against the pending group,
// extending the group's repeat count on a match and flushing it otherwise.
// A group that reaches the 16-bit repeat ceiling is flushed and immediately
// reopened for the same line rather than wrapping.
func (bw *Writer) writeMkvChain(line []byte) error {
	if bw.pending != nil && bytes.Equal(line, bw.pending) && bw.pendingRepeat < 0xFFFF {
		bw.pendingRepeat++
		return nil
	}
	if err := bw.flushGroup(); err != nil {
		bw.err = err
		return err
	}
	bw.pending = line
	bw.pendingRepeat = 1
	return nil
}

func (bw *Writer) flushGroup() error {
	if bw.pending == nil {
		return nil
	}
	if _, err := bw.w.Write(bw.pending); err != nil {
		return err
	}
	var repeatBuf [2]byte
	binary.BigEndian.PutUint16(repeatBuf[:], bw.pendingRepeat)
	if _, err := bw.w.Write(repeatBuf[:]); err != nil {
		return err
	}
	bw.pending = nil
	bw.pendingRepeat = 0
	return nil
}

// Close flushes any pending MkvChain group. Under Standard it only ensures
// the banner was written, which matters for an otherwise-empty stream.
func (bw *Writer) Close() error {
	if bw.err != nil {
		return bw.err
	}
	if err := bw.writeHeader(); err != nil {
		bw.err = err
		return err
	}
	if err := bw.flushGroup(); err != nil {
		bw.err = err
		return err
	}
	return nil
}

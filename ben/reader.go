package ben

import (
	"encoding/binary"
	"io"

	"github.com/mggg/ben/internal/rleerr"
)

// ReaderConfig configures a Reader. It is presently empty; see WriterConfig.
type ReaderConfig struct {
	_ struct{}
}

// Reader pulls decoded Records out of a BEN stream. It implements
// RecordIterator. The zero value is not usable; construct one with
// NewReader.
type Reader struct {
	r       io.Reader
	variant Variant
	err     error
}

// NewReader reads and validates the 17-byte banner and returns a Reader
// positioned at the first line.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	var banner [BannerLen]byte
	if _, err := io.ReadFull(r, banner[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, &TruncatedStreamError{}
		}
		return nil, err
	}
	variant, ok := VariantFromBanner(banner)
	if !ok {
		return nil, &InvalidHeaderError{Bytes: banner}
	}
	return &Reader{r: r, variant: variant}, nil
}

// Variant reports the stream's declared variant.
func (br *Reader) Variant() Variant { return br.variant }

// mustReadFull reads exactly len(buf) bytes or panics with
// *TruncatedStreamError, letting Next's deferred rleerr.Recover turn that
// back into a normal error return without every read site checking err.
func mustReadFull(r io.Reader, buf []byte) {
	if _, err := io.ReadFull(r, buf); err != nil {
		rleerr.Panic(&TruncatedStreamError{})
	}
}

// Next decodes the next line. ok is false with a nil error once the stream
// ends cleanly between lines; any error ending the stream mid-line is
// reported as *TruncatedStreamError.
func (br *Reader) Next() (rec Record, ok bool, err error) {
	if br.err != nil {
		return Record{}, false, br.err
	}
	defer func() { br.err = err }()
	defer rleerr.Recover(&err)

	var firstByte [1]byte
	n, rerr := io.ReadFull(br.r, firstByte[:])
	if n == 0 && rerr == io.EOF {
		return Record{}, false, nil
	}
	if rerr != nil {
		rleerr.Panic(&TruncatedStreamError{})
	}
	maxValBits := firstByte[0]

	var rest [5]byte
	mustReadFull(br.r, rest[:])
	maxLenBits := rest[0]
	nBytes := binary.BigEndian.Uint32(rest[1:5])

	payload := make([]byte, nBytes)
	mustReadFull(br.r, payload)

	count := uint16(1)
	if br.variant == MkvChain {
		var repeatBuf [2]byte
		mustReadFull(br.r, repeatBuf[:])
		count = binary.BigEndian.Uint16(repeatBuf[:])
	}

	runs := unpackLine(maxValBits, maxLenBits, payload)
	return Record{Assignment: AssignmentFromRuns(runs), Count: count}, true, nil
}

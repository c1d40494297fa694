package ben

import (
	"encoding/binary"
	"io"

	"github.com/mggg/ben/internal/rleerr"
)

// Extract reads a BEN stream from r and returns the n'th sample (1-based).
// Lines that don't contain the target are skipped without bit-unpacking
// their payload.
//
// Under MkvChain, n indexes the repeat-expanded sequence rather than the
// stored group index, matching the iteration semantics of Reader and
// Subsample (§4.6 of the expanded spec): a group covering expanded samples
// [lo, hi] satisfies any n in that range, and Extract returns that group's
// single stored vector. Because a group's range is only known after its
// repeat suffix — which follows the payload on the wire — a skipped
// MkvChain group's payload bytes must still be read into memory (they are
// just never bit-unpacked); a Standard group's payload can be discarded
// outright since Standard has no repeat suffix to read past it.
func Extract(r io.Reader, n int) (assignment []uint16, err error) {
	if n < 1 {
		return nil, &InvalidSampleNumberError{}
	}
	defer rleerr.Recover(&err)

	var banner [BannerLen]byte
	if _, rerr := io.ReadFull(r, banner[:]); rerr != nil {
		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			return nil, &TruncatedStreamError{}
		}
		return nil, rerr
	}
	variant, ok := VariantFromBanner(banner)
	if !ok {
		return nil, &InvalidHeaderError{Bytes: banner}
	}

	expanded := 0
	for {
		var hdr [6]byte
		nRead, rerr := io.ReadFull(r, hdr[:])
		if nRead == 0 && rerr == io.EOF {
			return nil, &SampleNotFoundError{Last: expanded}
		}
		if rerr != nil {
			rleerr.Panic(&TruncatedStreamError{})
		}
		maxValBits, maxLenBits := hdr[0], hdr[1]
		nBytes := binary.BigEndian.Uint32(hdr[2:6])
		groupLo := expanded + 1

		if variant == Standard {
			if groupLo == n {
				payload := make([]byte, nBytes)
				mustReadFull(r, payload)
				return AssignmentFromRuns(unpackLine(maxValBits, maxLenBits, payload)), nil
			}
			if _, rerr := io.CopyN(io.Discard, r, int64(nBytes)); rerr != nil {
				rleerr.Panic(&TruncatedStreamError{})
			}
			expanded++
			continue
		}

		payload := make([]byte, nBytes)
		mustReadFull(r, payload)
		var repeatBuf [2]byte
		mustReadFull(r, repeatBuf[:])
		groupHi := expanded + int(binary.BigEndian.Uint16(repeatBuf[:]))
		if n >= groupLo && n <= groupHi {
			return AssignmentFromRuns(unpackLine(maxValBits, maxLenBits, payload)), nil
		}
		expanded = groupHi
	}
}

package ben

import "fmt"

// InvalidHeaderError reports that a stream's 17-byte banner did not match
// either known variant. If the bytes begin with the xz magic, the stream is
// almost certainly an XBEN file and should be opened with package xben
// instead.
type InvalidHeaderError struct {
	Bytes [BannerLen]byte
}

func (e *InvalidHeaderError) Error() string {
	if isXZMagic(e.Bytes[:]) {
		return fmt.Sprintf("ben: invalid header %x: looks like an xz stream, use package xben to open it", e.Bytes)
	}
	return fmt.Sprintf("ben: invalid header %x: not a BEN banner", e.Bytes)
}

var xzMagic = [6]byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}

func isXZMagic(b []byte) bool {
	return len(b) >= len(xzMagic) && [6]byte(b[:6]) == xzMagic
}

// TruncatedStreamError reports that the stream ended in the middle of a
// header, payload, frame, or with a non-empty, unterminated overflow buffer.
type TruncatedStreamError struct{}

func (e *TruncatedStreamError) Error() string { return "ben: truncated stream" }

// InvalidDataError reports that a payload's shape is inconsistent with its
// declared widths, e.g. a ben32 frame whose length isn't a multiple of 4
// before its terminator.
type InvalidDataError struct {
	Msg string
}

func (e *InvalidDataError) Error() string { return "ben: invalid data: " + e.Msg }

// InvalidSampleNumberError reports that a random-access sample number was 0.
type InvalidSampleNumberError struct{}

func (e *InvalidSampleNumberError) Error() string {
	return "ben: invalid sample number: must be >= 1"
}

// SampleNotFoundError reports that a random-access sample number exceeded
// the number of samples actually present in the stream.
type SampleNotFoundError struct {
	Last int
}

func (e *SampleNotFoundError) Error() string {
	return fmt.Sprintf("ben: sample not found: stream has only %d samples", e.Last)
}

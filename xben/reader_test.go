package xben

import (
	"bytes"
	"testing"

	"github.com/mggg/ben/ben"
)

// The ben32 frame for runs (1,3),(2,3) is the two 4-byte run words followed
// by the 4-byte zero terminator:
//
//	00 01 00 03  00 02 00 03  00 00 00 00
var twoRunFrame = []byte{
	0x00, 0x01, 0x00, 0x03,
	0x00, 0x02, 0x00, 0x03,
	0x00, 0x00, 0x00, 0x00,
}

func TestPopFrameStandard(t *testing.T) {
	overflow := append(append([]byte{}, twoRunFrame...), 0xAA, 0xBB) // trailing bytes of a second, incomplete frame
	frame, consumed, _, ok := popFrame(overflow, ben.Standard)
	if !ok {
		t.Fatal("expected a complete frame")
	}
	if !bytes.Equal(frame, twoRunFrame[:8]) {
		t.Errorf("frame = % x, want % x", frame, twoRunFrame[:8])
	}
	if consumed != 12 {
		t.Errorf("consumed = %d, want 12", consumed)
	}
}

func TestPopFrameStandardIncomplete(t *testing.T) {
	overflow := twoRunFrame[:10] // terminator not fully present yet
	_, _, _, ok := popFrame(overflow, ben.Standard)
	if ok {
		t.Fatal("expected no complete frame with a partial terminator")
	}
}

func TestPopFrameMkvChain(t *testing.T) {
	overflow := append(append([]byte{}, twoRunFrame...), 0x00, 0x05)
	frame, consumed, repeat, ok := popFrame(overflow, ben.MkvChain)
	if !ok {
		t.Fatal("expected a complete frame")
	}
	if !bytes.Equal(frame, twoRunFrame[:8]) {
		t.Errorf("frame = % x, want % x", frame, twoRunFrame[:8])
	}
	if consumed != 14 {
		t.Errorf("consumed = %d, want 14", consumed)
	}
	if repeat != 5 {
		t.Errorf("repeat = %d, want 5", repeat)
	}
}

func TestPopFrameRestartsScanAfterDrain(t *testing.T) {
	// Two back-to-back Standard frames in one overflow buffer: popping the
	// first must leave the second poppable by a fresh scan starting at i=3
	// of the drained remainder, not by resuming mid-scan.
	overflow := append(append([]byte{}, twoRunFrame...), twoRunFrame...)

	frame1, consumed1, _, ok := popFrame(overflow, ben.Standard)
	if !ok || !bytes.Equal(frame1, twoRunFrame[:8]) {
		t.Fatalf("first pop: frame=% x ok=%v", frame1, ok)
	}
	remainder := overflow[consumed1:]

	frame2, consumed2, _, ok := popFrame(remainder, ben.Standard)
	if !ok || !bytes.Equal(frame2, twoRunFrame[:8]) {
		t.Fatalf("second pop: frame=% x ok=%v", frame2, ok)
	}
	if consumed2 != len(twoRunFrame) {
		t.Errorf("consumed2 = %d, want %d", consumed2, len(twoRunFrame))
	}
}

package ben32

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mggg/ben/ben"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	assignments := [][]uint16{
		{1, 1, 1, 2, 2, 2},
		{0},
		{1, 2, 3, 4, 5},
		nil,
	}
	for _, a := range assignments {
		frame := Encode(a)
		body := frame[:len(frame)-4] // strip the terminator
		got, err := DecodeAssignment(body)
		if err != nil {
			t.Fatalf("DecodeAssignment: %v", err)
		}
		if len(a) == 0 {
			a = nil
		}
		if len(got) == 0 {
			got = nil
		}
		if diff := cmp.Diff(a, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestEncodeTerminatedWithZeroWord(t *testing.T) {
	frame := Encode([]uint16{1, 1})
	n := len(frame)
	for _, b := range frame[n-4:] {
		if b != 0 {
			t.Fatalf("frame %x does not end in a zero word", frame)
		}
	}
}

func TestDecodeRejectsMisalignedBody(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected an error for a non-multiple-of-4 body")
	}
	var dataErr *ben.InvalidDataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("got %T, want *ben.InvalidDataError", err)
	}
}

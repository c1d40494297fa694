// Package ben32 transcodes between runs and ben32 frames: the byte-aligned
// intermediate representation carried inside an XBEN stream's LZMA2 payload.
// A frame is a sequence of 4-byte big-endian (value<<16)|length words, one
// per run, ended by a 4-byte zero word. Unlike a BEN line, a frame carries
// no bit-width header — every field is a full 16 bits — which is what lets
// package xben's reframing loop locate frame boundaries inside a
// decompressed byte stream without first parsing anything else.
package ben32

import (
	"encoding/binary"

	"github.com/mggg/ben/ben"
)

var terminator [4]byte

// Encode RLE-encodes an assignment vector and serializes it as a ben32
// frame, including the trailing zero word.
func Encode(assignment []uint16) []byte {
	return EncodeRuns(ben.RunsFromAssignment(assignment))
}

// EncodeRuns serializes an already-computed run list as a ben32 frame,
// including the trailing zero word.
func EncodeRuns(runs []ben.Run) []byte {
	frame := make([]byte, 0, 4*(len(runs)+1))
	var word [4]byte
	for _, r := range runs {
		binary.BigEndian.PutUint32(word[:], uint32(r.Value)<<16|uint32(r.Length))
		frame = append(frame, word[:]...)
	}
	frame = append(frame, terminator[:]...)
	return frame
}

// Decode parses a frame body — the run words preceding (and excluding) the
// terminator — into runs. body's length must be a multiple of 4.
func Decode(body []byte) ([]ben.Run, error) {
	if len(body)%4 != 0 {
		return nil, &ben.InvalidDataError{Msg: "ben32 frame length is not a multiple of 4"}
	}
	runs := make([]ben.Run, 0, len(body)/4)
	for i := 0; i < len(body); i += 4 {
		word := binary.BigEndian.Uint32(body[i : i+4])
		runs = append(runs, ben.Run{Value: uint16(word >> 16), Length: uint16(word)})
	}
	return runs, nil
}

// DecodeAssignment parses a frame body and expands it directly into an
// assignment vector.
func DecodeAssignment(body []byte) ([]uint16, error) {
	runs, err := Decode(body)
	if err != nil {
		return nil, err
	}
	return ben.AssignmentFromRuns(runs), nil
}

package bytecode

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Signature is the 8-byte ASCII tag stamped at the start of every
// linked image (spec.md 3.4/6.1). The source project left the exact
// value unfixed (spec.md 9); this implementation picks "GOAT\0\0\0\0"
// and keeps it stable across releases, the way GVM fixes its own
// on-disk encodings once chosen.
var Signature = [8]byte{'G', 'O', 'A', 'T', 0, 0, 0, 0}

// ErrBadSignatureLength is returned by SetSignature when s is not
// exactly 8 bytes.
var ErrBadSignatureLength = errors.New("goat/bytecode: signature must be exactly 8 bytes")

// SetSignature overrides Signature, e.g. from a project's
// internal/config file (spec.md 9: the exact 8-byte value is a
// per-project choice, not fixed by the spec). s must be exactly 8
// bytes long.
func SetSignature(s string) error {
	if len(s) != 8 {
		return ErrBadSignatureLength
	}
	copy(Signature[:], s)
	return nil
}

// headerSize is sizeof(header): the 8-byte signature plus three
// 8-byte little-endian absolute offsets (spec.md 3.4).
const headerSize = 8 + 3*8

var (
	// ErrBadSignature is returned by Parse when the leading 8 bytes
	// don't match Signature.
	ErrBadSignature = errors.New("goat/bytecode: bad file signature")
	// ErrTruncated is returned by Parse when the buffer is too short
	// to hold a declared section.
	ErrTruncated = errors.New("goat/bytecode: truncated image")
)

// Header mirrors the three offsets stamped after the signature
// (spec.md 3.4): absolute byte positions, from the start of the
// buffer, of the instruction, descriptor and data segments.
type Header struct {
	InstructionsOffset     uint64
	DataDescriptorsOffset  uint64
	DataOffset             uint64
}

func (h Header) encode(dst []byte) {
	copy(dst[0:8], Signature[:])
	binary.LittleEndian.PutUint64(dst[8:16], h.InstructionsOffset)
	binary.LittleEndian.PutUint64(dst[16:24], h.DataDescriptorsOffset)
	binary.LittleEndian.PutUint64(dst[24:32], h.DataOffset)
}

func decodeHeader(src []byte) (Header, error) {
	if len(src) < headerSize {
		return Header{}, ErrTruncated
	}
	if [8]byte(src[:8]) != Signature {
		return Header{}, ErrBadSignature
	}
	return Header{
		InstructionsOffset:    binary.LittleEndian.Uint64(src[8:16]),
		DataDescriptorsOffset: binary.LittleEndian.Uint64(src[16:24]),
		DataOffset:            binary.LittleEndian.Uint64(src[24:32]),
	}, nil
}

// Parse decodes a linked image buffer (as produced by Link) back into
// a Bytecode value. Segment lengths are derived from the differences
// between adjacent header offsets and the total buffer size, exactly
// as spec.md 6.1 describes for downstream readers.
func Parse(buf []byte) (*Bytecode, error) {
	hdr, err := decodeHeader(buf)
	if err != nil {
		return nil, err
	}

	if hdr.InstructionsOffset != headerSize {
		return nil, fmt.Errorf("%w: instructions_offset %d != header size %d",
			ErrTruncated, hdr.InstructionsOffset, headerSize)
	}
	if hdr.DataDescriptorsOffset < hdr.InstructionsOffset ||
		hdr.DataOffset < hdr.DataDescriptorsOffset ||
		uint64(len(buf)) < hdr.DataOffset {
		return nil, ErrTruncated
	}

	instBytes := buf[hdr.InstructionsOffset:hdr.DataDescriptorsOffset]
	descBytes := buf[hdr.DataDescriptorsOffset:hdr.DataOffset]
	dataBytes := buf[hdr.DataOffset:]

	if len(instBytes)%instructionSize != 0 || len(descBytes)%descriptorSize != 0 {
		return nil, ErrTruncated
	}

	instructions := make([]Instruction, len(instBytes)/instructionSize)
	for i := range instructions {
		instructions[i] = decodeInstruction(instBytes[i*instructionSize:])
	}

	descriptors := make([]Descriptor, len(descBytes)/descriptorSize)
	for i := range descriptors {
		rec := descBytes[i*descriptorSize:]
		descriptors[i] = Descriptor{
			Offset: binary.LittleEndian.Uint64(rec[0:8]),
			Size:   binary.LittleEndian.Uint32(rec[8:12]),
		}
	}

	return &Bytecode{
		Buffer:      buf,
		Header:      hdr,
		Instructions: instructions,
		Descriptors:  descriptors,
		Data:         dataBytes,
	}, nil
}

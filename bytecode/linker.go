package bytecode

// Bytecode is the linked image: one contiguous byte buffer plus typed
// access to its three segments (spec.md 3.4/4.4). Data is a slice of
// Buffer; Instructions and Descriptors are decoded copies of their
// segments, so they hold the same values but do not alias Buffer.
type Bytecode struct {
	Buffer []byte
	Header Header

	Instructions []Instruction
	Descriptors  []Descriptor
	Data         []byte
}

// InstructionsCount returns the number of linked instructions.
func (b *Bytecode) InstructionsCount() int { return len(b.Instructions) }

// DescriptorsCount returns the number of linked data descriptors.
func (b *Bytecode) DescriptorsCount() int { return len(b.Descriptors) }

// Link assembles a finalized CodeBuilder and DataBuilder into one
// contiguous image: header, instruction segment, descriptor segment,
// data segment, with no padding between sections (spec.md 4.4). Given
// the same inputs and emit order, two calls to Link produce
// byte-identical buffers (spec.md 8 property 5) — there is no
// nondeterminism anywhere in this function: no map iteration, no
// concurrency, just three verbatim copies at fixed offsets.
func Link(code *CodeBuilder, data *DataBuilder) *Bytecode {
	instructions := code.View()
	descriptors := data.Descriptors()
	dataBytes := data.Data()

	instSize := len(instructions) * instructionSize
	descSize := len(descriptors) * descriptorSize
	dataSize := len(dataBytes)

	total := headerSize + instSize + descSize + dataSize
	buf := make([]byte, total)

	hdr := Header{
		InstructionsOffset:    uint64(headerSize),
		DataDescriptorsOffset: uint64(headerSize + instSize),
		DataOffset:            uint64(headerSize + instSize + descSize),
	}
	hdr.encode(buf)

	instStart := headerSize
	for i, instr := range instructions {
		instr.encode(buf[instStart+i*instructionSize:])
	}

	descStart := instStart + instSize
	for i, desc := range descriptors {
		rec := buf[descStart+i*descriptorSize:]
		putUint64(rec, desc.Offset)
		putUint32(rec[8:], desc.Size)
	}

	dataStart := descStart + descSize
	copy(buf[dataStart:], dataBytes)

	return &Bytecode{
		Buffer:       buf,
		Header:       hdr,
		Instructions: append([]Instruction(nil), instructions...),
		Descriptors:  append([]Descriptor(nil), descriptors...),
		Data:         buf[dataStart:],
	}
}

func putUint64(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * i))
	}
}

package bytecode

// descriptorSize is the fixed, 12-byte, little-endian on-disk encoding
// of one Descriptor (spec.md 3.3/6.1).
const descriptorSize = 12

// Descriptor locates one blob within the data segment. Size is the
// logical byte count the caller supplied, not the 4-byte-aligned
// stored size (spec.md 9, resolving the source's ambiguity on this
// field in favor of the logical count; readers recover the aligned
// size via (Size+3) &^ 3 when they need it).
type Descriptor struct {
	Offset uint64
	Size   uint32
}

// initialDataCapacity is the data builder's starting buffer size; it
// grows geometrically (doubling, but always enough for the blob being
// appended), mirroring CodeBuilder's growth policy.
const initialDataCapacity = 256

// DataBuilder interns constants (strings and raw blobs) into an
// append-only, 4-byte-aligned data segment with a parallel descriptor
// table. String interning is content-addressed and deterministic:
// descriptor indices reflect first-insertion order, and re-interning
// the same content returns the original index (spec.md 3.3).
type DataBuilder struct {
	buffer      []byte
	descriptors []Descriptor
	interned    map[string]int // wide-string content -> descriptor index + 1; 0 means absent
}

// NewDataBuilder returns an empty builder.
func NewDataBuilder() *DataBuilder {
	return &DataBuilder{
		buffer:   make([]byte, 0, initialDataCapacity),
		interned: make(map[string]int),
	}
}

// alignUp4 rounds n up to the next multiple of 4.
func alignUp4(n int) int {
	return (n + 3) &^ 3
}

// AppendBlob copies bytes into the data segment, zero-pads the tail up
// to the next multiple of 4, appends a descriptor recording the
// logical size, and returns its index. Descriptor offsets are
// naturally 4-byte aligned because every stored blob's footprint is
// rounded up to 4 bytes before the next one is appended.
func (d *DataBuilder) AppendBlob(data []byte) int {
	offset := uint64(len(d.buffer))
	padded := alignUp4(len(data))

	d.buffer = append(d.buffer, data...)
	for i := len(data); i < padded; i++ {
		d.buffer = append(d.buffer, 0)
	}

	d.descriptors = append(d.descriptors, Descriptor{Offset: offset, Size: uint32(len(data))})
	return len(d.descriptors) - 1
}

// encodeWideString renders s as a sequence of 32-bit little-endian
// wide characters followed by one 32-bit wide null terminator
// (spec.md 6.1). Go source text is UTF-8; runes, not bytes, become the
// wide characters so non-ASCII identifiers and literals round-trip.
func encodeWideString(s string) []byte {
	runes := []rune(s)
	out := make([]byte, (len(runes)+1)*4)
	for i, r := range runes {
		putUint32(out[i*4:], uint32(r))
	}
	putUint32(out[len(runes)*4:], 0)
	return out
}

func putUint32(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

// InternString returns the descriptor index for s's wide-character
// encoding, appending it (plus its terminating wide null) as a new
// blob only the first time this exact content is seen. Dedup is keyed
// on exact content: no case folding or normalization (spec.md 3.3).
func (d *DataBuilder) InternString(s string) int {
	if idx, ok := d.interned[s]; ok {
		return idx - 1
	}
	idx := d.AppendBlob(encodeWideString(s))
	d.interned[s] = idx + 1
	return idx
}

// Descriptors returns the accumulated descriptor table.
func (d *DataBuilder) Descriptors() []Descriptor { return d.descriptors }

// Data returns the raw accumulated data-segment bytes.
func (d *DataBuilder) Data() []byte { return d.buffer }

// DescriptorCount returns the number of interned/appended blobs.
func (d *DataBuilder) DescriptorCount() int { return len(d.descriptors) }

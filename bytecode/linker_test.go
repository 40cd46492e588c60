package bytecode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSample() (*CodeBuilder, *DataBuilder) {
	code := NewCodeBuilder()
	data := NewDataBuilder()

	strIdx := data.InternString("test")
	code.Append(NewInstruction(OpSLoad, uint32(strIdx)))
	code.Append(NewInstruction(OpILoad32, 2))
	code.Append(NewInstruction(OpAdd, 0))
	code.Append(NewInstruction(OpPop, 0))
	code.Append(NewInstruction(OpEnd, 0))

	return code, data
}

// TestLinkHeaderOffsets covers spec.md 8 property 5's header-field formulas.
func TestLinkHeaderOffsets(t *testing.T) {
	code, data := buildSample()
	bc := Link(code, data)

	nInstr := uint64(code.Len())
	nDesc := uint64(data.DescriptorCount())

	require.EqualValues(t, 32, bc.Header.InstructionsOffset)
	require.EqualValues(t, 32+8*nInstr, bc.Header.DataDescriptorsOffset)
	require.EqualValues(t, 32+8*nInstr+12*nDesc, bc.Header.DataOffset)

	wantBufferSize := bc.Header.DataOffset + uint64(len(data.Data()))
	require.EqualValues(t, wantBufferSize, len(bc.Buffer))
}

// TestLinkDeterministic covers spec.md 8 property 5: identical inputs
// produce byte-identical images.
func TestLinkDeterministic(t *testing.T) {
	code1, data1 := buildSample()
	code2, data2 := buildSample()

	bc1 := Link(code1, data1)
	bc2 := Link(code2, data2)

	require.Equal(t, bc1.Buffer, bc2.Buffer)
}

func TestLinkRoundTripsThroughParse(t *testing.T) {
	code, data := buildSample()
	linked := Link(code, data)

	parsed, err := Parse(linked.Buffer)
	require.NoError(t, err)

	require.Equal(t, linked.Instructions, parsed.Instructions)
	require.Equal(t, linked.Descriptors, parsed.Descriptors)
	require.Equal(t, linked.Data, parsed.Data)

	s, ok := parsed.StringAt(0)
	require.True(t, ok)
	require.Equal(t, "test", s)
}

func TestLinkEmptyProgram(t *testing.T) {
	code := NewCodeBuilder()
	data := NewDataBuilder()
	bc := Link(code, data)

	require.EqualValues(t, 32, len(bc.Buffer))
	require.Equal(t, 0, bc.InstructionsCount())
	require.Equal(t, 0, bc.DescriptorsCount())
}

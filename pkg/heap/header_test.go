package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"varheap/util/helpers"
)

func TestHeaderSize(t *testing.T) {
	require.Equal(t, uint32(16), headerSize)
	require.Equal(t, helpers.Sizeof(blockHeader{}), int(headerSize))
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, uint32(0), alignUp(0))
	require.Equal(t, uint32(4), alignUp(1))
	require.Equal(t, uint32(4), alignUp(4))
	require.Equal(t, uint32(8), alignUp(5))
	require.Equal(t, uint32(28), alignUp(28))
}

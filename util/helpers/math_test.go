package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMin(t *testing.T) {
	require.Equal(t, 1, Min(3, 1, 2))
	require.Equal(t, -5, Min(0, -5, 10))
	require.Equal(t, uint32(4), Min(uint32(4)))
}

func TestCeilDiv(t *testing.T) {
	require.Equal(t, uint32(0), CeilDiv(uint32(0), uint32(8)))
	require.Equal(t, uint32(1), CeilDiv(uint32(1), uint32(8)))
	require.Equal(t, uint32(1), CeilDiv(uint32(8), uint32(8)))
	require.Equal(t, uint32(2), CeilDiv(uint32(9), uint32(8)))
	require.Equal(t, uint32(2), CeilDiv(uint32(16), uint32(8)))
	require.Equal(t, uint32(3), CeilDiv(uint32(17), uint32(8)))
}

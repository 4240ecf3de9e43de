package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWidthDefaultsAreZero(t *testing.T) {
	assert.Equal(t, make([]byte, 20), Bytes20{}.Bytes())
	assert.Equal(t, make([]byte, 32), Bytes32{}.Bytes())
	assert.Equal(t, Uint128{}, EtherValue{})
	assert.Equal(t, Uint256{}, Difficulty{})
}

func TestNewBytes20(t *testing.T) {
	input := []byte{
		0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00, 0x11, 0x22, 0x33,
		0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd,
	}
	addr, err := NewBytes20(input)
	require.NoError(t, err)
	assert.Equal(t, input, addr.Bytes())

	_, err = NewBytes20(input[:19])
	require.Error(t, err)
	_, err = NewBytes20(append(input, 0x00))
	require.Error(t, err)
}

func TestNewBytes32(t *testing.T) {
	input := make([]byte, 32)
	input[0] = 0x01
	input[31] = 0xff
	hash, err := NewBytes32(input)
	require.NoError(t, err)
	assert.Equal(t, input, hash.Bytes())

	_, err = NewBytes32(input[:31])
	require.Error(t, err)
}

func TestForceNewRoundTrip(t *testing.T) {
	const addrHex = "aabbccddeeff00112233445566778899aabbccdd"
	addr := ForceNewBytes20(addrHex)
	assert.Equal(t, addrHex, addr.String())

	const hashHex = "0101010101010101010101010101010101010101010101010101010101010101"
	hash := ForceNewBytes32(hashHex)
	assert.Equal(t, hashHex, hash.String())

	require.Panics(t, func() { ForceNewBytes20("zz") })
	require.Panics(t, func() { ForceNewBytes20("aabb") })
	require.Panics(t, func() { ForceNewBytes32(addrHex) })
}

func TestCopiesAreIndependent(t *testing.T) {
	original := ForceNewBytes32("0202020202020202020202020202020202020202020202020202020202020202")
	copied := original
	copied[0] = 0xff
	assert.Equal(t, byte(0x02), original[0])
	assert.Equal(t, byte(0xff), copied[0])
}

package ewasm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ewasm "github.com/ewasm/ewasm-go"
	"github.com/ewasm/ewasm-go/eeitest"
	"github.com/ewasm/ewasm-go/types"
)

func TestCallDataCopyBounds(t *testing.T) {
	callData := []byte("0123456789ab") // 12 bytes
	withHost(t, eeitest.Config{CallData: callData})

	require.Equal(t, uint32(12), ewasm.CallDataSize())

	// Valid ranges match the unchecked fast path byte for byte.
	got, err := ewasm.CallDataCopy(0, 12)
	require.NoError(t, err)
	assert.Equal(t, callData, got)
	assert.Equal(t, got, ewasm.CallDataCopyUnchecked(0, 12))

	got, err = ewasm.CallDataCopy(10, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), got)
	assert.Equal(t, got, ewasm.CallDataCopyUnchecked(10, 2))

	// size - from = 2 < 5: rejected, never truncated.
	_, err = ewasm.CallDataCopy(10, 5)
	require.ErrorIs(t, err, types.ErrOutOfBoundsCopy)

	// from == size with zero length is a valid empty tail.
	got, err = ewasm.CallDataCopy(12, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	// from == size with any length must fail, not wrap.
	_, err = ewasm.CallDataCopy(12, 1)
	require.ErrorIs(t, err, types.ErrOutOfBoundsCopy)

	// from beyond size fails even for zero length.
	_, err = ewasm.CallDataCopy(13, 0)
	require.ErrorIs(t, err, types.ErrOutOfBoundsCopy)

	// A huge length must not overflow the bounds arithmetic.
	_, err = ewasm.CallDataCopy(1, 0xffffffff)
	require.ErrorIs(t, err, types.ErrOutOfBoundsCopy)
}

func TestCallDataAcquire(t *testing.T) {
	callData := []byte{0xde, 0xad, 0xbe, 0xef}
	withHost(t, eeitest.Config{CallData: callData})

	assert.Equal(t, callData, ewasm.CallDataAcquire())
}

func TestCallDataAcquireEmpty(t *testing.T) {
	withHost(t, eeitest.Config{})

	require.Equal(t, uint32(0), ewasm.CallDataSize())
	assert.Empty(t, ewasm.CallDataAcquire())
}

func TestCodeCopy(t *testing.T) {
	code := []byte{0x60, 0x00, 0x60, 0x00, 0xf3}
	withHost(t, eeitest.Config{Code: code})

	require.Equal(t, uint32(5), ewasm.CodeSize())
	assert.Equal(t, code, ewasm.CodeAcquire())

	got, err := ewasm.CodeCopy(2, 3)
	require.NoError(t, err)
	assert.Equal(t, code[2:], got)

	_, err = ewasm.CodeCopy(4, 2)
	require.ErrorIs(t, err, types.ErrOutOfBoundsCopy)
}

func TestExternalCodeCopy(t *testing.T) {
	host := withHost(t, eeitest.Config{})
	code := []byte{0xfe, 0xed, 0xfa, 0xce}
	host.SetCode(otherAddr, code)

	require.Equal(t, uint32(4), ewasm.ExternalCodeSize(otherAddr))
	assert.Equal(t, code, ewasm.ExternalCodeAcquire(otherAddr))

	got, err := ewasm.ExternalCodeCopy(otherAddr, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, code[1:3], got)

	_, err = ewasm.ExternalCodeCopy(otherAddr, 1, 4)
	require.ErrorIs(t, err, types.ErrOutOfBoundsCopy)

	// An account without code has a zero-size buffer.
	require.Equal(t, uint32(0), ewasm.ExternalCodeSize(callerAddr))
	assert.Empty(t, ewasm.ExternalCodeAcquire(callerAddr))
}

func TestReturnDataCopy(t *testing.T) {
	host := withHost(t, eeitest.Config{})

	require.Equal(t, uint32(0), ewasm.ReturnDataSize())
	assert.Empty(t, ewasm.ReturnDataAcquire())

	ret := []byte("result payload")
	host.SetReturnData(ret)

	require.Equal(t, uint32(len(ret)), ewasm.ReturnDataSize())
	assert.Equal(t, ret, ewasm.ReturnDataAcquire())

	got, err := ewasm.ReturnDataCopy(7, 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	_, err = ewasm.ReturnDataCopy(8, 7)
	require.ErrorIs(t, err, types.ErrOutOfBoundsCopy)
}

func TestSizeQueriesAreIdempotent(t *testing.T) {
	withHost(t, eeitest.Config{CallData: []byte{1, 2, 3}, Code: []byte{4, 5}})

	for i := 0; i < 3; i++ {
		assert.Equal(t, uint32(3), ewasm.CallDataSize())
		assert.Equal(t, uint32(2), ewasm.CodeSize())
	}
}

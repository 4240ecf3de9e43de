package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCallResult(t *testing.T) {
	assert.Equal(t, CallSuccessful, DecodeCallResult("call", 0))
	assert.Equal(t, CallFailure, DecodeCallResult("call", 1))
	assert.Equal(t, CallRevert, DecodeCallResult("call", 2))
}

func TestDecodeCallResultUndefinedCodePanics(t *testing.T) {
	// An undefined code is a host contract violation and must never be
	// coerced into one of the defined outcomes.
	for _, code := range []uint32{3, 5, 255, 0xffffffff} {
		require.PanicsWithValue(t,
			HostViolationError{Op: "callStatic", Code: code},
			func() { DecodeCallResult("callStatic", code) },
		)
	}
}

func TestHostViolationErrorMessage(t *testing.T) {
	err := HostViolationError{Op: "create", Code: 5}
	assert.Equal(t, "host returned undefined result code 5 from create", err.Error())
}

func TestDecodeCreateResult(t *testing.T) {
	addr := ForceNewBytes20("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

	success := DecodeCreateResult(0, addr)
	assert.Equal(t, CallSuccessful, success.Outcome)
	assert.Equal(t, addr, success.ContractAddress)

	// The address slot may hold garbage on failure; it must not leak out.
	failure := DecodeCreateResult(1, addr)
	assert.Equal(t, CallFailure, failure.Outcome)
	assert.Equal(t, Address{}, failure.ContractAddress)

	reverted := DecodeCreateResult(2, addr)
	assert.Equal(t, CallRevert, reverted.Outcome)
	assert.Equal(t, Address{}, reverted.ContractAddress)

	require.Panics(t, func() { DecodeCreateResult(5, addr) })
}

func TestCallResultString(t *testing.T) {
	assert.Equal(t, "successful", CallSuccessful.String())
	assert.Equal(t, "failure", CallFailure.String())
	assert.Equal(t, "revert", CallRevert.String())
}

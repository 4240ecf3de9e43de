package ewasm

import (
	"unsafe"

	"github.com/ewasm/ewasm-go/internal/native"
	"github.com/ewasm/ewasm-go/types"
)

// allocBuffer allocates the destination buffer for a host copy operation.
// Strictly internal: it must only be used where the immediately following
// host call writes every one of the length bytes, so that no caller ever
// observes content the host did not produce.
func allocBuffer(length uint32) []byte {
	return make([]byte, length)
}

// dataPtr returns the address of the first byte of b, or nil for an empty
// slice. In Go, taking &b[0] of an empty slice panics, and empty payloads
// cross the boundary as a null pointer anyway.
func dataPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// checkRange validates a requested sub-range against the size reported by
// the host for the source buffer. Comparing before subtracting keeps the
// size-from expression from wrapping on unsigned arithmetic.
func checkRange(size, from, length uint32) error {
	if from > size || size-from < length {
		return types.ErrOutOfBoundsCopy
	}
	return nil
}

// CallDataSize returns the length of the call data supplied with the
// currently executing call.
func CallDataSize() uint32 {
	return native.GetCallDataSize()
}

// CallDataCopyUnchecked copies length bytes of call data starting at from,
// without validating the range. A range beyond the true call data size is
// undefined behavior delegated to the host.
func CallDataCopyUnchecked(from, length uint32) []byte {
	ret := allocBuffer(length)
	native.CallDataCopy(dataPtr(ret), from, length)
	return ret
}

// CallDataCopy returns the segment of call data beginning at from and
// continuing for length bytes, or ErrOutOfBoundsCopy if the range exceeds
// the call data size.
func CallDataCopy(from, length uint32) ([]byte, error) {
	if err := checkRange(CallDataSize(), from, length); err != nil {
		return nil, err
	}
	return CallDataCopyUnchecked(from, length), nil
}

// CallDataAcquire returns all data passed with the currently executing call.
func CallDataAcquire() []byte {
	return CallDataCopyUnchecked(0, CallDataSize())
}

// CodeSize returns the size of the currently executing code.
func CodeSize() uint32 {
	return native.GetCodeSize()
}

// CodeCopyUnchecked copies length bytes of the running code starting at
// from, without validating the range.
func CodeCopyUnchecked(from, length uint32) []byte {
	ret := allocBuffer(length)
	native.CodeCopy(dataPtr(ret), from, length)
	return ret
}

// CodeCopy returns the segment of running code beginning at from and
// continuing for length bytes, or ErrOutOfBoundsCopy if the range exceeds
// the code size.
func CodeCopy(from, length uint32) ([]byte, error) {
	if err := checkRange(CodeSize(), from, length); err != nil {
		return nil, err
	}
	return CodeCopyUnchecked(from, length), nil
}

// CodeAcquire returns the currently executing code.
func CodeAcquire() []byte {
	return CodeCopyUnchecked(0, CodeSize())
}

// ExternalCodeSize returns the size of the code at the given address.
func ExternalCodeSize(addr types.Address) uint32 {
	return native.GetExternalCodeSize(unsafe.Pointer(&addr[0]))
}

// ExternalCodeCopyUnchecked copies length bytes of the code at addr starting
// at from, without validating the range.
func ExternalCodeCopyUnchecked(addr types.Address, from, length uint32) []byte {
	ret := allocBuffer(length)
	native.ExternalCodeCopy(unsafe.Pointer(&addr[0]), dataPtr(ret), from, length)
	return ret
}

// ExternalCodeCopy returns the segment of code at addr beginning at from and
// continuing for length bytes, or ErrOutOfBoundsCopy if the range exceeds
// that account's code size.
func ExternalCodeCopy(addr types.Address, from, length uint32) ([]byte, error) {
	if err := checkRange(ExternalCodeSize(addr), from, length); err != nil {
		return nil, err
	}
	return ExternalCodeCopyUnchecked(addr, from, length), nil
}

// ExternalCodeAcquire returns the code at the given address.
func ExternalCodeAcquire(addr types.Address) []byte {
	return ExternalCodeCopyUnchecked(addr, 0, ExternalCodeSize(addr))
}

// ReturnDataSize returns the length of the data in the VM's return buffer.
func ReturnDataSize() uint32 {
	return native.GetReturnDataSize()
}

// ReturnDataCopyUnchecked copies length bytes of the return buffer starting
// at from, without validating the range.
func ReturnDataCopyUnchecked(from, length uint32) []byte {
	ret := allocBuffer(length)
	native.ReturnDataCopy(dataPtr(ret), from, length)
	return ret
}

// ReturnDataCopy returns the segment of return buffer data beginning at from
// and continuing for length bytes, or ErrOutOfBoundsCopy if the range
// exceeds the return buffer size.
func ReturnDataCopy(from, length uint32) ([]byte, error) {
	if err := checkRange(ReturnDataSize(), from, length); err != nil {
		return nil, err
	}
	return ReturnDataCopyUnchecked(from, length), nil
}

// ReturnDataAcquire returns the data in the VM's return buffer.
func ReturnDataAcquire() []byte {
	return ReturnDataCopyUnchecked(0, ReturnDataSize())
}

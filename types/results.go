package types

import (
	"errors"
	"fmt"
)

// ErrOutOfBoundsCopy is returned by the checked copy operations when the
// requested range exceeds the size reported by the host for the source
// buffer. It is the only recoverable error in this package.
var ErrOutOfBoundsCopy = errors.New("requested copy range is out of bounds")

// HostViolationError is the panic value raised when the host returns a
// result code outside the documented set for an operation. This is a
// contract violation between the host and this library, not a recoverable
// condition; it is never coerced into one of the defined outcomes. Embedders
// that must not crash may recover it at their execution boundary.
type HostViolationError struct {
	Op   string
	Code uint32
}

var _ error = HostViolationError{}

func (e HostViolationError) Error() string {
	return fmt.Sprintf("host returned undefined result code %d from %s", e.Code, e.Op)
}

// CallResult describes the outcome of an inter-contract call. Failure and
// revert are expected, first-class results, not errors; callers must handle
// all three variants.
type CallResult uint32

const (
	CallSuccessful CallResult = iota
	CallFailure
	CallRevert
)

func (r CallResult) String() string {
	switch r {
	case CallSuccessful:
		return "successful"
	case CallFailure:
		return "failure"
	case CallRevert:
		return "revert"
	default:
		return fmt.Sprintf("CallResult(%d)", uint32(r))
	}
}

// DecodeCallResult maps a raw host result code onto a CallResult. The host
// contract defines exactly the codes 0, 1 and 2; any other code panics with
// a HostViolationError.
func DecodeCallResult(op string, code uint32) CallResult {
	switch code {
	case 0:
		return CallSuccessful
	case 1:
		return CallFailure
	case 2:
		return CallRevert
	default:
		panic(HostViolationError{Op: op, Code: code})
	}
}

// CreateResult describes the outcome of a contract creation.
// ContractAddress is populated only when Outcome is CallSuccessful.
type CreateResult struct {
	Outcome         CallResult
	ContractAddress Address
}

// DecodeCreateResult maps a raw host result code and the address slot the
// host may have written onto a CreateResult. The address is carried only on
// success; undefined codes panic with a HostViolationError.
func DecodeCreateResult(code uint32, addr Address) CreateResult {
	outcome := DecodeCallResult("create", code)
	if outcome != CallSuccessful {
		return CreateResult{Outcome: outcome}
	}
	return CreateResult{Outcome: CallSuccessful, ContractAddress: addr}
}

// Package native is the raw host-call surface of the Ethereum Environment
// Interface. Every operation takes raw memory regions (unsafe.Pointer plus a
// length) and performs no bounds checking; callers must guarantee that each
// region is backed by owned memory of the promised size before the call is
// issued. Do not use these functions unless, for some reason, the safe
// wrappers in the root package are not flexible enough.
//
// On wasm builds the operations resolve to the "ethereum" import module. On
// all other builds they are served by a Host registered with SetHost, which
// is the seam used by the eeitest package.
package native

import "github.com/ewasm/ewasm-go/types"

// Host is the Go-typed mirror of the environment interface, implemented by
// test and emulation backends on non-wasm builds. Implementations of Finish,
// Revert and SelfDestruct must not return control; they are expected to
// unwind (panic) instead, and the raw surface panics if one of them returns.
type Host interface {
	UseGas(amount uint64)
	GasLeft() uint64

	Address() types.Address
	Balance(addr types.Address) types.EtherValue
	BlockCoinbase() types.Address
	BlockDifficulty() types.Difficulty
	BlockGasLimit() uint64
	BlockHash(number uint64) (types.Hash, uint32)
	BlockNumber() uint64
	BlockTimestamp() uint64
	TxGasPrice() types.EtherValue
	TxOrigin() types.Address
	Caller() types.Address
	CallValue() types.EtherValue

	CallDataSize() uint32
	CallDataCopy(dst []byte, offset uint32)
	CodeSize() uint32
	CodeCopy(dst []byte, offset uint32)
	ExternalCodeSize(addr types.Address) uint32
	ExternalCodeCopy(addr types.Address, dst []byte, offset uint32)
	ReturnDataSize() uint32
	ReturnDataCopy(dst []byte, offset uint32)

	StorageLoad(key types.StorageKey) types.StorageValue
	StorageStore(key types.StorageKey, value types.StorageValue)

	Log(data []byte, topics []types.Topic)

	Call(gas uint64, addr types.Address, value types.EtherValue, input []byte) uint32
	CallCode(gas uint64, addr types.Address, value types.EtherValue, input []byte) uint32
	CallDelegate(gas uint64, addr types.Address, input []byte) uint32
	CallStatic(gas uint64, addr types.Address, input []byte) uint32
	Create(value types.EtherValue, code []byte) (uint32, types.Address)

	Finish(data []byte)
	Revert(data []byte)
	SelfDestruct(beneficiary types.Address)
}

var currentHost Host

// SetHost registers the backend serving the raw surface on non-wasm builds.
// Passing nil unregisters it. Host calls are strictly sequential; there is
// no synchronization here.
func SetHost(h Host) {
	currentHost = h
}

func mustHost() Host {
	if currentHost == nil {
		panic("native: no host registered, use SetHost or run on a wasm target")
	}
	return currentHost
}

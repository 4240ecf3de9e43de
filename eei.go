// Package ewasm provides typed, bounds-checked bindings for the Ethereum
// Environment Interface (EEI) exposed to ewasm programs. It wraps the raw,
// offset/length-based host calls of the native package in an API built on
// owned value types: every query allocates a correctly sized result, passes
// pointers into it across the boundary, and returns it by value.
//
// Prefer this package over native; the raw surface performs no bounds
// checking.
package ewasm

import (
	"unsafe"

	"github.com/ewasm/ewasm-go/internal/native"
	"github.com/ewasm/ewasm-go/types"
)

// ConsumeGas subtracts the given amount from the VM's gas counter. This is
// usually injected by the metering contract at deployment time, and hence is
// unneeded in most cases.
func ConsumeGas(amount uint64) {
	native.UseGas(amount)
}

// GasLeft returns the gas left in the current call.
func GasLeft() uint64 {
	return native.GetGasLeft()
}

// CurrentAddress returns the executing address.
func CurrentAddress() types.Address {
	var ret types.Address
	native.GetAddress(unsafe.Pointer(&ret[0]))
	return ret
}

// ExternalBalance returns the balance of the given address.
func ExternalBalance(addr types.Address) types.EtherValue {
	var ret types.EtherValue
	native.GetBalance(unsafe.Pointer(&addr[0]), unsafe.Pointer(&ret[0]))
	return ret
}

// BlockCoinbase returns the beneficiary address of the current block.
func BlockCoinbase() types.Address {
	var ret types.Address
	native.GetBlockCoinbase(unsafe.Pointer(&ret[0]))
	return ret
}

// BlockDifficulty returns the difficulty of the most recent block.
func BlockDifficulty() types.Difficulty {
	var ret types.Difficulty
	native.GetBlockDifficulty(unsafe.Pointer(&ret[0]))
	return ret
}

// BlockGasLimit returns the gas limit of the most recent block.
func BlockGasLimit() uint64 {
	return native.GetBlockGasLimit()
}

// BlockHash returns the hash of the numbered block.
func BlockHash(number uint64) types.Hash {
	var ret types.Hash
	native.GetBlockHash(number, unsafe.Pointer(&ret[0]))
	return ret
}

// BlockNumber returns the number of the most recent block.
func BlockNumber() uint64 {
	return native.GetBlockNumber()
}

// BlockTimestamp returns the timestamp of the most recent block.
func BlockTimestamp() uint64 {
	return native.GetBlockTimestamp()
}

// TxGasPrice returns the gas price of the currently executing call.
func TxGasPrice() types.EtherValue {
	var ret types.EtherValue
	native.GetTxGasPrice(unsafe.Pointer(&ret[0]))
	return ret
}

// TxOrigin returns the address of the original transaction sender.
func TxOrigin() types.Address {
	var ret types.Address
	native.GetTxOrigin(unsafe.Pointer(&ret[0]))
	return ret
}

// Caller returns the sender of the currently executing call.
func Caller() types.Address {
	var ret types.Address
	native.GetCaller(unsafe.Pointer(&ret[0]))
	return ret
}

// CallValue returns the value sent with the currently executing call.
func CallValue() types.EtherValue {
	var ret types.EtherValue
	native.GetCallValue(unsafe.Pointer(&ret[0]))
	return ret
}

// StorageLoad returns the storage value at the given key.
func StorageLoad(key types.StorageKey) types.StorageValue {
	var ret types.StorageValue
	native.StorageLoad(unsafe.Pointer(&key[0]), unsafe.Pointer(&ret[0]))
	return ret
}

// StorageStore sets the storage value at the given key.
func StorageStore(key types.StorageKey, value types.StorageValue) {
	native.StorageStore(unsafe.Pointer(&key[0]), unsafe.Pointer(&value[0]))
}

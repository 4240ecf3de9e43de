//go:build !wasm

package native

import (
	"unsafe"

	"github.com/ewasm/ewasm-go/types"
)

// This file serves the raw surface from the registered Host, materializing
// the raw pointer regions as Go slices and arrays. The signatures are
// identical to the wasm build so that the safe wrappers compile unchanged.

// region views length bytes at ptr as a byte slice. A zero length yields nil
// regardless of ptr, mirroring how empty payloads cross the boundary as a
// null pointer.
func region(ptr unsafe.Pointer, length uint32) []byte {
	if length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), length)
}

func addressAt(ptr unsafe.Pointer) types.Address  { return *(*types.Address)(ptr) }
func valueAt(ptr unsafe.Pointer) types.EtherValue { return *(*types.EtherValue)(ptr) }
func wordAt(ptr unsafe.Pointer) types.Bytes32     { return *(*types.Bytes32)(ptr) }

func putAddress(ptr unsafe.Pointer, a types.Address)  { *(*types.Address)(ptr) = a }
func putValue(ptr unsafe.Pointer, v types.EtherValue) { *(*types.EtherValue)(ptr) = v }
func putWord(ptr unsafe.Pointer, w types.Bytes32)     { *(*types.Bytes32)(ptr) = w }
func putUint256(ptr unsafe.Pointer, u types.Uint256)  { *(*types.Uint256)(ptr) = u }

func UseGas(amount uint64) { mustHost().UseGas(amount) }

func GetGasLeft() uint64 { return mustHost().GasLeft() }

func GetAddress(resultPtr unsafe.Pointer) { putAddress(resultPtr, mustHost().Address()) }

func GetBalance(addrPtr, resultPtr unsafe.Pointer) {
	putValue(resultPtr, mustHost().Balance(addressAt(addrPtr)))
}

func GetBlockCoinbase(resultPtr unsafe.Pointer) {
	putAddress(resultPtr, mustHost().BlockCoinbase())
}

func GetBlockDifficulty(resultPtr unsafe.Pointer) {
	putUint256(resultPtr, mustHost().BlockDifficulty())
}

func GetBlockGasLimit() uint64 { return mustHost().BlockGasLimit() }

func GetBlockHash(number uint64, resultPtr unsafe.Pointer) uint32 {
	hash, code := mustHost().BlockHash(number)
	putWord(resultPtr, hash)
	return code
}

func GetBlockNumber() uint64 { return mustHost().BlockNumber() }

func GetBlockTimestamp() uint64 { return mustHost().BlockTimestamp() }

func GetTxGasPrice(resultPtr unsafe.Pointer) { putValue(resultPtr, mustHost().TxGasPrice()) }

func GetTxOrigin(resultPtr unsafe.Pointer) { putAddress(resultPtr, mustHost().TxOrigin()) }

func GetCaller(resultPtr unsafe.Pointer) { putAddress(resultPtr, mustHost().Caller()) }

func GetCallValue(resultPtr unsafe.Pointer) { putValue(resultPtr, mustHost().CallValue()) }

func GetCallDataSize() uint32 { return mustHost().CallDataSize() }

func CallDataCopy(resultPtr unsafe.Pointer, offset, length uint32) {
	mustHost().CallDataCopy(region(resultPtr, length), offset)
}

func GetCodeSize() uint32 { return mustHost().CodeSize() }

func CodeCopy(resultPtr unsafe.Pointer, offset, length uint32) {
	mustHost().CodeCopy(region(resultPtr, length), offset)
}

func GetExternalCodeSize(addrPtr unsafe.Pointer) uint32 {
	return mustHost().ExternalCodeSize(addressAt(addrPtr))
}

func ExternalCodeCopy(addrPtr, resultPtr unsafe.Pointer, offset, length uint32) {
	mustHost().ExternalCodeCopy(addressAt(addrPtr), region(resultPtr, length), offset)
}

func GetReturnDataSize() uint32 { return mustHost().ReturnDataSize() }

func ReturnDataCopy(resultPtr unsafe.Pointer, offset, length uint32) {
	mustHost().ReturnDataCopy(region(resultPtr, length), offset)
}

func StorageLoad(keyPtr, resultPtr unsafe.Pointer) {
	putWord(resultPtr, mustHost().StorageLoad(wordAt(keyPtr)))
}

func StorageStore(keyPtr, valuePtr unsafe.Pointer) {
	mustHost().StorageStore(wordAt(keyPtr), wordAt(valuePtr))
}

func Log(dataPtr unsafe.Pointer, length, numTopics uint32, t1, t2, t3, t4 unsafe.Pointer) {
	ptrs := [4]unsafe.Pointer{t1, t2, t3, t4}
	topics := make([]types.Topic, numTopics)
	for i := range topics {
		topics[i] = wordAt(ptrs[i])
	}
	mustHost().Log(region(dataPtr, length), topics)
}

func Call(gas uint64, addrPtr, valuePtr, dataPtr unsafe.Pointer, dataLen uint32) uint32 {
	return mustHost().Call(gas, addressAt(addrPtr), valueAt(valuePtr), region(dataPtr, dataLen))
}

func CallCode(gas uint64, addrPtr, valuePtr, dataPtr unsafe.Pointer, dataLen uint32) uint32 {
	return mustHost().CallCode(gas, addressAt(addrPtr), valueAt(valuePtr), region(dataPtr, dataLen))
}

func CallDelegate(gas uint64, addrPtr, dataPtr unsafe.Pointer, dataLen uint32) uint32 {
	return mustHost().CallDelegate(gas, addressAt(addrPtr), region(dataPtr, dataLen))
}

func CallStatic(gas uint64, addrPtr, dataPtr unsafe.Pointer, dataLen uint32) uint32 {
	return mustHost().CallStatic(gas, addressAt(addrPtr), region(dataPtr, dataLen))
}

func Create(valuePtr, dataPtr unsafe.Pointer, dataLen uint32, resultPtr unsafe.Pointer) uint32 {
	code, addr := mustHost().Create(valueAt(valuePtr), region(dataPtr, dataLen))
	putAddress(resultPtr, addr)
	return code
}

// Finish never returns: the host unwinds execution. The trailing panic
// asserts the never-return contract at runtime.
func Finish(dataPtr unsafe.Pointer, length uint32) {
	mustHost().Finish(region(dataPtr, length))
	panic("native: host returned from finish")
}

// Revert never returns; see Finish.
func Revert(dataPtr unsafe.Pointer, length uint32) {
	mustHost().Revert(region(dataPtr, length))
	panic("native: host returned from revert")
}

// SelfDestruct never returns; see Finish.
func SelfDestruct(addrPtr unsafe.Pointer) {
	mustHost().SelfDestruct(addressAt(addrPtr))
	panic("native: host returned from selfDestruct")
}
